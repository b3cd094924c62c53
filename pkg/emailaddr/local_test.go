package emailaddr_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/inbucket/emailaddr/pkg/emailaddr"
)

func TestParseLocalPartValid(t *testing.T) {
	testTable := []struct {
		input  string
		quoted bool
		msg    string
	}{
		{"a", false, "Single letter is fine"},
		{"FirstLast", false, "Mixed case permitted"},
		{"user123", false, "Digits permitted"},
		{"a!#$%&'*+-/=?^_`{|}~", false, "All unquoted specials permitted"},
		{"first.last", false, "Embedded period permitted"},
		{"user+mailbox", false, "RFC3696 test case"},
		{"customer/department=shipping", false, "RFC3696 test case"},
		{"$A12345", false, "RFC3696 test case"},
		{"!def!xyz%abc", false, "RFC3696 test case"},
		{"_somename", false, "RFC3696 test case"},
		{strings.Repeat("a", 64), false, "64 bytes is the limit"},
		{`"james"`, true, "Simple quoted string"},
		{`"first last"`, true, "Quoted space permitted"},
		{`"quoted@sign"`, true, "Quoted @ permitted"},
		{`"qp\"quote"`, true, "Escaped quote within quoted string"},
		{`"back\\slash"`, true, "Escaped backslash permitted"},
		{`"tab\	stop"`, true, "Escaped tab permitted"},
		{`"..dots.."`, true, "Dot runs are data inside quotes"},
	}
	for _, tc := range testTable {
		lp, err := emailaddr.ParseLocalPart(tc.input)
		if err != nil {
			t.Errorf("Got error for %q: %v; %s", tc.input, err, tc.msg)
			continue
		}
		if lp.String() != tc.input {
			t.Errorf("Got %q back for input %q", lp.String(), tc.input)
		}
		if lp.Quoted() != tc.quoted {
			t.Errorf("Got quoted=%v for %q, want %v; %s", lp.Quoted(), tc.input, tc.quoted, tc.msg)
		}
	}
}

func TestParseLocalPartInvalid(t *testing.T) {
	testTable := []struct {
		input string
		want  error
		msg   string
	}{
		{"", emailaddr.ErrLocalEmpty, "Empty local-part"},
		{strings.Repeat("a", 65), emailaddr.ErrLocalTooLong, "65 bytes exceeds the limit"},
		{`""`, emailaddr.ErrQuotedEmpty, "Empty quoted string"},
		{`"`, emailaddr.ErrQuotedEmpty, "Lone quote reads as empty quoted string"},
		{".user", emailaddr.ErrDotBoundary, "Cannot lead with a period"},
		{"user.", emailaddr.ErrDotBoundary, "Cannot end with a period"},
		{"first..last", emailaddr.ErrConsecutiveDots, "Sequence of periods not permitted"},
		{"first last", emailaddr.ErrBadLocalChar, "Unquoted space not permitted"},
		{"no,commas", emailaddr.ErrBadLocalChar, "Unquoted comma not permitted"},
		{"t[es]t", emailaddr.ErrBadLocalChar, "Unquoted brackets not permitted"},
		{"with@sign", emailaddr.ErrBadLocalChar, "Unquoted @ not permitted"},
		{`embed"quote`, emailaddr.ErrBadLocalChar, "Embedded quote not permitted"},
		{"\"ctrl\x01char\"", emailaddr.ErrBadQuotedChar, "Control chars not permitted in quotes"},
		{"\"high\x80bit\"", emailaddr.ErrBadQuotedChar, "Bytes beyond ASCII not permitted"},
		{"\"esc\\\x01ape\"", emailaddr.ErrBadEscapedChar, "Cannot escape a control char"},
		{"\"esc\\\x80ape\"", emailaddr.ErrBadEscapedChar, "Cannot escape a high bit byte"},
	}
	for _, tc := range testTable {
		_, err := emailaddr.ParseLocalPart(tc.input)
		if !errors.Is(err, tc.want) {
			t.Errorf("Got %v for %q, want %v; %s", err, tc.input, tc.want, tc.msg)
		}
	}
}

func TestCollapsible(t *testing.T) {
	testTable := []struct {
		input string
		want  bool
		msg   string
	}{
		{"foo", false, "Unquoted is never collapsible"},
		{`"foo"`, true, "Plain atom inside quotes"},
		{`"foo.bar"`, true, "Dot-atom inside quotes"},
		{`"FOO"`, true, "Case does not affect collapsibility"},
		{`"foo bar"`, false, "Space requires quoting"},
		{`"foo@bar"`, false, "@ requires quoting"},
		{`"."`, false, "Single dot is not a dot-atom"},
		{`".foo"`, false, "Leading dot is not a dot-atom"},
		{`"foo."`, false, "Trailing dot is not a dot-atom"},
		{`"foo..bar"`, false, "Dot run is not a dot-atom"},
		{`"back\\slash"`, false, "Escapes require quoting"},
	}
	for _, tc := range testTable {
		lp, err := emailaddr.ParseLocalPart(tc.input)
		if err != nil {
			t.Fatalf("Got error for %q: %v", tc.input, err)
		}
		if got := lp.Collapsible(); got != tc.want {
			t.Errorf("Got %v for %q, want %v; %s", got, tc.input, tc.want, tc.msg)
		}
	}
}
