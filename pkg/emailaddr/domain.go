package emailaddr

import (
	"fmt"
	"strings"
)

// maxLabelLen is the RFC 1035 limit on a DNS label.
const maxLabelLen = 63

// ParseDomain validates s as an email domain: a dot-separated DNS name, or a
// bracketed IPv4/IPv6 literal.
func ParseDomain(s string) (Domain, error) {
	if len(s) > MaxDomainLen {
		return Domain{}, fmt.Errorf("%w: %d bytes", ErrDomainTooLong, len(s))
	}
	if strings.HasPrefix(s, "[") {
		return parseIPLiteral(s)
	}
	labels := strings.Split(s, ".")
	if len(labels) < 2 {
		return Domain{}, ErrDomainOneLabel
	}
	for _, label := range labels {
		if err := checkLabel(label); err != nil {
			return Domain{}, err
		}
	}
	if allDigits(labels[len(labels)-1]) {
		return Domain{}, ErrNumericTLD
	}
	return Domain{text: s, kind: Standard}, nil
}

func checkLabel(label string) error {
	if len(label) == 0 {
		return ErrEmptyLabel
	}
	if len(label) > maxLabelLen {
		return fmt.Errorf("%w: %q", ErrLabelTooLong, label)
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return fmt.Errorf("%w: %q", ErrLabelHyphen, label)
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		if !isDomainChar(c) {
			return fmt.Errorf("%w: %q", ErrBadDomainChar, c)
		}
	}
	return nil
}

func isDomainChar(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z') ||
		('0' <= c && c <= '9') || c == '-'
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
