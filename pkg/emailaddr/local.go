package emailaddr

import "fmt"

// isUnquotedChar reports whether c may appear in a dot-atom local-part.
// Dots are handled by the callers, which must reject empty atom runs.
func isUnquotedChar(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '/',
		'=', '?', '^', '_', '`', '{', '|', '}', '~':
		return true
	}
	return false
}

// isQuotedChar reports whether c may appear bare inside a quoted string.
func isQuotedChar(c byte) bool {
	return c >= 32 && c <= 126 && c != '\\' && c != '"'
}

// isEscapedChar reports whether c may follow a backslash inside a quoted
// string: tab, or any printable ASCII including space, backslash and quote.
func isEscapedChar(c byte) bool {
	return c == '\t' || (c >= 32 && c <= 126)
}

// ParseLocalPart validates s as an RFC 5321/5322 local-part, in either
// dot-atom or quoted-string form.
func ParseLocalPart(s string) (LocalPart, error) {
	if len(s) == 0 {
		return LocalPart{}, ErrLocalEmpty
	}
	if len(s) > MaxLocalLen {
		return LocalPart{}, fmt.Errorf("%w: %d bytes", ErrLocalTooLong, len(s))
	}
	if s[0] == '"' && s[len(s)-1] == '"' {
		if len(s) <= 2 {
			return LocalPart{}, ErrQuotedEmpty
		}
		if err := checkQuotedContent(s[1 : len(s)-1]); err != nil {
			return LocalPart{}, err
		}
		return LocalPart{text: s, quoted: true}, nil
	}
	if err := checkDotAtom(s); err != nil {
		return LocalPart{}, err
	}
	return LocalPart{text: s}, nil
}

// checkQuotedContent walks the interior of a quoted string, enforcing the
// escaping rules. A backslash consumes the following byte as an escape.
func checkQuotedContent(s string) error {
	prevBackslash := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if prevBackslash {
			if !isEscapedChar(c) {
				return fmt.Errorf("%w: %q at offset %d", ErrBadEscapedChar, c, i)
			}
			prevBackslash = false
			continue
		}
		if c == '\\' {
			prevBackslash = true
			continue
		}
		if !isQuotedChar(c) {
			return fmt.Errorf("%w: %q at offset %d", ErrBadQuotedChar, c, i)
		}
	}
	return nil
}

// checkDotAtom walks an unquoted local-part: no leading, trailing or
// consecutive dots, every other byte in the unquoted class.
func checkDotAtom(s string) error {
	if s[0] == '.' || s[len(s)-1] == '.' {
		return ErrDotBoundary
	}
	prevDot := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '.' {
			if prevDot {
				return ErrConsecutiveDots
			}
			prevDot = true
			continue
		}
		prevDot = false
		if !isUnquotedChar(c) {
			return fmt.Errorf("%w: %q at offset %d", ErrBadLocalChar, c, i)
		}
	}
	return nil
}

// Collapsible reports whether the local-part is quoted yet its content would
// stand alone as a legal dot-atom, making the quotes redundant. Compare, Hash
// and Normalize all rely on this single predicate to stay consistent with one
// another.
func (lp LocalPart) Collapsible() bool {
	if !lp.quoted || len(lp.text) < 2 {
		return false
	}
	inner := lp.text[1 : len(lp.text)-1]
	if len(inner) == 0 {
		return false
	}
	return checkDotAtom(inner) == nil
}
