package addrstore_test

import (
	"testing"

	"github.com/inbucket/emailaddr/pkg/addrstore"
	"github.com/inbucket/emailaddr/pkg/emailaddr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseAddr(t *testing.T, s string) emailaddr.Address {
	t.Helper()
	addr, err := emailaddr.Parse(s)
	require.NoError(t, err, "fixture %q", s)
	return addr
}

func TestEncodeDecode(t *testing.T) {
	inputs := []string{
		"foo@example.com",
		`"foo bar"@example.com`,
		"root@[192.168.1.1]",
		"root@[IPv6:2001:db8::1]",
		`"a@b"@c.com`,
	}
	for _, input := range inputs {
		addr := parseAddr(t, input)
		blob := addrstore.Encode(addr)
		require.Len(t, blob, 2+len(addr.LocalPart().String())+len(addr.Domain().String()))
		got, err := addrstore.Decode(blob)
		require.NoError(t, err, "decoding %q", input)
		assert.Equal(t, input, got.String())
		assert.Equal(t, addr.Domain().Kind(), got.Domain().Kind())
	}
}

func TestDecodeCorrupt(t *testing.T) {
	addr := parseAddr(t, "foo@example.com")
	blob := addrstore.Encode(addr)

	testCases := []struct {
		name string
		blob []byte
	}{
		{"empty", []byte{}},
		{"truncated local", blob[:2]},
		{"truncated domain", blob[:len(blob)-3]},
		{"trailing garbage", append(append([]byte{}, blob...), 'x')},
		{"invalid local bytes", []byte{2, ' ', ' ', 5, 'a', '.', 'c', 'o', 'm'}},
		{"invalid domain bytes", []byte{1, 'a', 3, 'b', 'a', 'd'}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := addrstore.Decode(tc.blob)
			require.Error(t, err)
			assert.ErrorIs(t, err, addrstore.ErrCorruptRecord)
		})
	}
}

func TestIndexHash(t *testing.T) {
	a := parseAddr(t, "foo@example.com")
	b := parseAddr(t, `"FOO"@Example.COM`)
	assert.Equal(t, addrstore.IndexHash(a), addrstore.IndexHash(b),
		"equivalent addresses must share an index hash")
	assert.NotZero(t, addrstore.IndexHash(a))
	assert.NotEqual(t, uint32(0xFFFFFFFF), addrstore.IndexHash(a))
}
