// Package addrstore persists validated email addresses: a compact byte
// encoding for embedding addresses in records, a hash suitable for index
// structures with reserved sentinel values, and an in-memory store
// deduplicating addresses under RFC 5321/5322 equivalence.
package addrstore

import (
	"errors"
	"fmt"

	"github.com/inbucket/emailaddr/pkg/emailaddr"
)

// ErrCorruptRecord indicates an encoded address did not decode cleanly.
var ErrCorruptRecord = errors.New("corrupt address record")

// hashReservedSubst replaces hash values reserved by index structures.
const hashReservedSubst uint32 = 0x12345678

// Encode packs addr into two length-prefixed byte runs: a one byte local
// length (max 64), the local bytes, a one byte domain length (max 255), the
// domain bytes.
func Encode(addr emailaddr.Address) []byte {
	local := addr.LocalPart().String()
	domain := addr.Domain().String()
	buf := make([]byte, 0, 2+len(local)+len(domain))
	buf = append(buf, byte(len(local)))
	buf = append(buf, local...)
	buf = append(buf, byte(len(domain)))
	buf = append(buf, domain...)
	return buf
}

// Decode unpacks a record produced by Encode. The parts are revalidated, so
// a corrupt or tampered record cannot yield an invalid Address.
func Decode(blob []byte) (emailaddr.Address, error) {
	if len(blob) < 1 {
		return emailaddr.Address{}, fmt.Errorf("%w: empty", ErrCorruptRecord)
	}
	localLen := int(blob[0])
	if len(blob) < 1+localLen+1 {
		return emailaddr.Address{}, fmt.Errorf("%w: truncated local-part", ErrCorruptRecord)
	}
	local := blob[1 : 1+localLen]
	domainLen := int(blob[1+localLen])
	rest := blob[2+localLen:]
	if len(rest) != domainLen {
		return emailaddr.Address{}, fmt.Errorf("%w: domain length %d, have %d bytes",
			ErrCorruptRecord, domainLen, len(rest))
	}
	lp, err := emailaddr.ParseLocalPart(string(local))
	if err != nil {
		return emailaddr.Address{}, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	d, err := emailaddr.ParseDomain(string(rest))
	if err != nil {
		return emailaddr.Address{}, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	return emailaddr.Join(lp, d), nil
}

// IndexHash returns the address hash with the values reserved by hash index
// implementations (zero and all ones) remapped to a fixed substitute.
func IndexHash(addr emailaddr.Address) uint32 {
	h := addr.Hash()
	if h == 0 || h == 0xFFFFFFFF {
		return hashReservedSubst
	}
	return h
}
