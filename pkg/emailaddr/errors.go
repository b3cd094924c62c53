package emailaddr

import "errors"

// Split failures.
var (
	// ErrNoSeparator indicates the address has no unquoted @ separator.
	ErrNoSeparator = errors.New("address contains no @ separator")

	// ErrUnterminatedQuote indicates a quoted section was never closed.
	ErrUnterminatedQuote = errors.New("address contains an unterminated quoted section")

	// ErrDanglingEscape indicates the address ends mid backslash escape.
	ErrDanglingEscape = errors.New("address ends with a dangling backslash escape")
)

// Local-part failures.
var (
	ErrLocalEmpty      = errors.New("local-part is empty")
	ErrLocalTooLong    = errors.New("local-part exceeds 64 bytes")
	ErrQuotedEmpty     = errors.New("quoted local-part has no content")
	ErrBadEscapedChar  = errors.New("invalid escaped character in quoted local-part")
	ErrBadQuotedChar   = errors.New("invalid character in quoted local-part")
	ErrDotBoundary     = errors.New("local-part cannot begin or end with a dot")
	ErrConsecutiveDots = errors.New("local-part cannot contain consecutive dots")
	ErrBadLocalChar    = errors.New("invalid character in local-part")
)

// Domain failures.
var (
	ErrDomainTooLong    = errors.New("domain exceeds 255 bytes")
	ErrEmptyLabel       = errors.New("domain contains an empty label")
	ErrLabelTooLong     = errors.New("domain label exceeds 63 bytes")
	ErrLabelHyphen      = errors.New("domain label cannot begin or end with a hyphen")
	ErrBadDomainChar    = errors.New("invalid character in domain")
	ErrDomainOneLabel   = errors.New("domain requires at least two labels")
	ErrNumericTLD       = errors.New("top level domain cannot be all digits")
	ErrBadIPLiteral     = errors.New("IP literal must be enclosed in square brackets")
	ErrBadIPv4          = errors.New("invalid IPv4 address literal")
	ErrBadIPv6Segment   = errors.New("invalid IPv6 address segment")
	ErrIPv6DoubleColon  = errors.New("IPv6 address allows only one :: marker")
	ErrIPv6SegmentCount = errors.New("wrong number of IPv6 address segments")
)
