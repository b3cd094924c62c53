// Package emailaddr validates, splits, compares, hashes and normalizes
// email addresses per the local-part and domain grammars of RFC 5321 and
// RFC 5322, including bracketed IP literal domains.
//
// Equivalent addresses compare equal, hash identically and normalize to the
// same form: the domain is always case-insensitive, the local-part is
// case-insensitive unless it is quoted and the quoting is load bearing.
package emailaddr

// MaxLocalLen is the RFC 5321 limit on local-part length in bytes.
const MaxLocalLen = 64

// MaxDomainLen is the RFC 5321 limit on domain length in bytes.
const MaxDomainLen = 255

// DomainKind discriminates DNS name domains from IP literal domains.
type DomainKind int

// Domain kinds.
const (
	Standard DomainKind = iota
	IPv4Literal
	IPv6Literal
)

func (k DomainKind) String() string {
	switch k {
	case Standard:
		return "standard"
	case IPv4Literal:
		return "ipv4-literal"
	case IPv6Literal:
		return "ipv6-literal"
	}
	return "unknown"
}

// LocalPart is a validated email local-part; obtain one from ParseLocalPart.
type LocalPart struct {
	text   string
	quoted bool
}

// String returns the local-part exactly as validated.
func (lp LocalPart) String() string {
	return lp.text
}

// Quoted indicates the local-part is enclosed in double quotes.
func (lp LocalPart) Quoted() bool {
	return lp.quoted
}

// Domain is a validated email domain; obtain one from ParseDomain.
type Domain struct {
	text string
	kind DomainKind
}

// String returns the domain exactly as validated, brackets included for IP
// literals.
func (d Domain) String() string {
	return d.text
}

// Kind reports whether the domain is a DNS name or an IP literal.
func (d Domain) Kind() DomainKind {
	return d.kind
}

// Address is a fully validated email address. The zero value is not valid;
// use Parse, or Join with parts produced by the validators.
type Address struct {
	local  LocalPart
	domain Domain
}

// Parse splits and validates a complete address.
func Parse(address string) (Address, error) {
	local, domain, err := Split(address)
	if err != nil {
		return Address{}, err
	}
	lp, err := ParseLocalPart(local)
	if err != nil {
		return Address{}, err
	}
	d, err := ParseDomain(domain)
	if err != nil {
		return Address{}, err
	}
	return Address{local: lp, domain: d}, nil
}

// Join assembles an Address from previously validated parts.
func Join(local LocalPart, domain Domain) Address {
	return Address{local: local, domain: domain}
}

// LocalPart returns the validated local-part.
func (a Address) LocalPart() LocalPart {
	return a.local
}

// Domain returns the validated domain.
func (a Address) Domain() Domain {
	return a.domain
}

// String returns the address in local@domain form.
func (a Address) String() string {
	return a.local.text + "@" + a.domain.text
}
