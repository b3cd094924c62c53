// Package extract harvests email addresses from the address headers of raw
// RFC 822 messages and validates them.
package extract

import (
	"fmt"
	"io"
	"sort"

	"github.com/inbucket/emailaddr/pkg/emailaddr"
	"github.com/jhillyerd/enmime/v2"
)

// addressHeaders are the participant headers harvested from a message.
var addressHeaders = []string{"From", "To", "Cc", "Bcc", "Reply-To"}

// Invalid is an address string that appeared in a message header but failed
// validation.
type Invalid struct {
	Raw string
	Err error
}

// Result holds the outcome of harvesting one message.
type Result struct {
	// Addresses are the validated participants, deduplicated under RFC
	// equivalence and ordered by the address comparison rules.
	Addresses []emailaddr.Address

	// Rejected holds header addresses that failed validation.
	Rejected []Invalid
}

// Harvest parses the message from r and validates every address found in its
// From, To, Cc, Bcc and Reply-To headers. Headers that are absent or that do
// not parse as address lists are skipped.
func Harvest(r io.Reader) (*Result, error) {
	env, err := enmime.ReadEnvelope(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}
	result := &Result{}
	seen := make(map[string]bool)
	for _, key := range addressHeaders {
		list, err := env.AddressList(key)
		if err != nil {
			continue
		}
		for _, ma := range list {
			addr, err := emailaddr.Parse(ma.Address)
			if err != nil {
				result.Rejected = append(result.Rejected, Invalid{Raw: ma.Address, Err: err})
				continue
			}
			norm := addr.Normalize().String()
			if seen[norm] {
				continue
			}
			seen[norm] = true
			result.Addresses = append(result.Addresses, addr)
		}
	}
	sort.Slice(result.Addresses, func(i, j int) bool {
		return result.Addresses[i].Compare(result.Addresses[j]) < 0
	})
	return result, nil
}
