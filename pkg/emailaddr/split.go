package emailaddr

// Split locates the @ separating local-part from domain and returns the two
// halves unvalidated. The scan honors backslash escapes and quoted sections;
// an @ inside quotes is data, and when several unquoted separators appear the
// rightmost one wins.
func Split(address string) (local, domain string, err error) {
	sep := -1
	inQuotes := false
	escaped := false
	for i := 0; i < len(address); i++ {
		c := address[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			inQuotes = !inQuotes
		case c == '@' && !inQuotes:
			sep = i
		}
	}
	if inQuotes {
		return "", "", ErrUnterminatedQuote
	}
	if escaped {
		return "", "", ErrDanglingEscape
	}
	if sep < 0 {
		return "", "", ErrNoSeparator
	}
	return address[:sep], address[sep+1:], nil
}
