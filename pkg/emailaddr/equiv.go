package emailaddr

import "strings"

// hashSeed and hashStep implement the DJB2 rolling hash. Every hashing path
// below folds bytes through this one primitive so that addresses which
// compare equal cannot hash apart.
const hashSeed uint32 = 5381

func hashStep(h uint32, c byte) uint32 {
	return (h << 5) + h + uint32(c)
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// compareFold compares byte sequences case-insensitively: first the common
// prefix, then shorter sorts before longer.
func compareFold(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ca, cb := lower(a[i]), lower(b[i])
		switch {
		case ca < cb:
			return -1
		case ca > cb:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Compare defines a total order over addresses: domains first, always
// case-insensitively, then local-parts under the quoting rules. Two
// addresses are RFC-equivalent exactly when Compare returns 0.
func (a Address) Compare(b Address) int {
	if cmp := compareFold(a.domain.text, b.domain.text); cmp != 0 {
		return cmp
	}
	return compareLocals(a.local, b.local)
}

// Equal reports RFC 5321/5322 equivalence of two addresses.
func (a Address) Equal(b Address) bool {
	return a.Compare(b) == 0
}

// CompareDomains orders two addresses by domain alone.
func CompareDomains(a, b Address) int {
	return compareFold(a.domain.text, b.domain.text)
}

// compareLocals orders local-parts. Unquoted pairs fold case; quoted pairs
// compare exact bytes, quotes included. A quoted value faces an unquoted one
// through its interior when the quotes are redundant; otherwise it is never
// equal to any unquoted value and sorts after all of them.
func compareLocals(a, b LocalPart) int {
	switch {
	case !a.quoted && !b.quoted:
		return compareFold(a.text, b.text)
	case a.quoted && b.quoted:
		return strings.Compare(a.text, b.text)
	case a.quoted:
		if a.Collapsible() {
			return compareFold(a.interior(), b.text)
		}
		return 1
	default:
		if b.Collapsible() {
			return compareFold(a.text, b.interior())
		}
		return -1
	}
}

// interior strips the surrounding quotes from a quoted local-part.
func (lp LocalPart) interior() string {
	return lp.text[1 : len(lp.text)-1]
}

// hash folds the local-part through the same three-way branch Compare uses:
// collapsible quoted values hash as their lower-cased interior, load-bearing
// quoted values hash verbatim with quotes, unquoted values hash lower-cased.
func (lp LocalPart) hash() uint32 {
	h := hashSeed
	switch {
	case lp.Collapsible():
		inner := lp.interior()
		for i := 0; i < len(inner); i++ {
			h = hashStep(h, lower(inner[i]))
		}
	case lp.quoted:
		for i := 0; i < len(lp.text); i++ {
			h = hashStep(h, lp.text[i])
		}
	default:
		for i := 0; i < len(lp.text); i++ {
			h = hashStep(h, lower(lp.text[i]))
		}
	}
	return h
}

// Hash returns a 32-bit hash consistent with Compare: addresses that compare
// equal hash equal.
func (a Address) Hash() uint32 {
	h := a.local.hash()
	h = hashStep(h, '@')
	d := a.domain.text
	for i := 0; i < len(d); i++ {
		h = hashStep(h, lower(d[i]))
	}
	return h
}

// Normalize returns the canonical form of the address: domain lower-cased,
// redundant local-part quotes removed, and unquoted local-parts lower-cased.
// A quoted local-part whose quoting is load bearing is preserved byte for
// byte. Normalize is idempotent.
func (a Address) Normalize() Address {
	local := a.local
	switch {
	case local.Collapsible():
		local = LocalPart{text: strings.ToLower(local.interior())}
	case !local.quoted:
		local = LocalPart{text: strings.ToLower(local.text)}
	}
	return Address{
		local:  local,
		domain: Domain{text: strings.ToLower(a.domain.text), kind: a.domain.kind},
	}
}
