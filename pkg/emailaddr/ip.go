package emailaddr

import (
	"fmt"
	"strings"
)

// ipv6Prefix tags the interior of a bracketed IPv6 literal, per RFC 5321.
const ipv6Prefix = "IPv6:"

// parseIPLiteral validates a bracketed IP literal domain. The caller has
// already seen the opening bracket.
func parseIPLiteral(s string) (Domain, error) {
	if len(s) < 2 || s[len(s)-1] != ']' {
		return Domain{}, ErrBadIPLiteral
	}
	inner := s[1 : len(s)-1]
	if strings.HasPrefix(inner, ipv6Prefix) {
		if err := checkIPv6(inner[len(ipv6Prefix):]); err != nil {
			return Domain{}, err
		}
		return Domain{text: s, kind: IPv6Literal}, nil
	}
	if err := checkIPv4(inner); err != nil {
		return Domain{}, err
	}
	return Domain{text: s, kind: IPv4Literal}, nil
}

// checkIPv4 validates a dotted-quad: exactly four groups of 1-3 digits, each
// valued 0-255.
func checkIPv4(s string) error {
	groups := strings.Split(s, ".")
	if len(groups) != 4 {
		return fmt.Errorf("%w: expected 4 octets", ErrBadIPv4)
	}
	for _, g := range groups {
		if len(g) == 0 || len(g) > 3 {
			return fmt.Errorf("%w: bad octet %q", ErrBadIPv4, g)
		}
		v := 0
		for i := 0; i < len(g); i++ {
			c := g[i]
			if c < '0' || c > '9' {
				return fmt.Errorf("%w: bad octet %q", ErrBadIPv4, g)
			}
			v = v*10 + int(c-'0')
		}
		if v > 255 {
			return fmt.Errorf("%w: octet %q out of range", ErrBadIPv4, g)
		}
	}
	return nil
}

// checkIPv6 validates colon-separated hextets with at most one :: compression
// marker. Without compression exactly eight segments are required; with it,
// at most seven explicit segments.
func checkIPv6(s string) error {
	if s == "" {
		return fmt.Errorf("%w: empty address", ErrBadIPv6Segment)
	}
	if strings.HasSuffix(s, ":") && !strings.HasSuffix(s, "::") {
		return fmt.Errorf("%w: trailing colon", ErrBadIPv6Segment)
	}
	segments := 0
	compressed := false
	segStart := 0
	for i := 0; i < len(s); i++ {
		if s[i] != ':' {
			continue
		}
		if i > segStart {
			if err := checkIPv6Segment(s[segStart:i]); err != nil {
				return err
			}
			segments++
		}
		if i+1 < len(s) && s[i+1] == ':' {
			if compressed {
				return ErrIPv6DoubleColon
			}
			compressed = true
			i++
		} else if i == 0 || s[i-1] == ':' {
			return fmt.Errorf("%w: empty segment", ErrBadIPv6Segment)
		}
		segStart = i + 1
	}
	if segStart < len(s) {
		if err := checkIPv6Segment(s[segStart:]); err != nil {
			return err
		}
		segments++
	}
	if compressed {
		if segments > 7 {
			return fmt.Errorf("%w: %d segments with ::", ErrIPv6SegmentCount, segments)
		}
	} else if segments != 8 {
		return fmt.Errorf("%w: %d segments", ErrIPv6SegmentCount, segments)
	}
	return nil
}

func checkIPv6Segment(seg string) error {
	if len(seg) > 4 {
		return fmt.Errorf("%w: %q too long", ErrBadIPv6Segment, seg)
	}
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if !(('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')) {
			return fmt.Errorf("%w: %q", ErrBadIPv6Segment, seg)
		}
	}
	return nil
}
