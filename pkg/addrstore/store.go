package addrstore

import (
	"errors"
	"sort"
	"sync"

	"github.com/inbucket/emailaddr/pkg/config"
	"github.com/inbucket/emailaddr/pkg/emailaddr"
)

// ErrCapacity indicates the store has reached its configured capacity.
var ErrCapacity = errors.New("address store at capacity")

// Store is an in-memory set of addresses deduplicated under RFC equivalence:
// adding FOO@example.com after "foo"@Example.COM is a no-op. Safe for
// concurrent use.
type Store struct {
	sync.RWMutex
	addrs map[string]emailaddr.Address // Keyed by normalized form.
	cap   int
}

// New returns an empty address store.
func New(cfg config.Storage) *Store {
	return &Store{
		addrs: make(map[string]emailaddr.Address),
		cap:   cfg.Capacity,
	}
}

// Add stores addr, reporting false if an equivalent address was already
// present. The first stored spelling wins; later equivalents do not replace
// it.
func (s *Store) Add(addr emailaddr.Address) (bool, error) {
	key := addr.Normalize().String()
	s.Lock()
	defer s.Unlock()
	if _, ok := s.addrs[key]; ok {
		return false, nil
	}
	if s.cap > 0 && len(s.addrs) >= s.cap {
		return false, ErrCapacity
	}
	s.addrs[key] = addr
	return true, nil
}

// Contains reports whether an address equivalent to addr is stored.
func (s *Store) Contains(addr emailaddr.Address) bool {
	key := addr.Normalize().String()
	s.RLock()
	defer s.RUnlock()
	_, ok := s.addrs[key]
	return ok
}

// Remove deletes the address equivalent to addr, reporting whether one was
// present.
func (s *Store) Remove(addr emailaddr.Address) bool {
	key := addr.Normalize().String()
	s.Lock()
	defer s.Unlock()
	if _, ok := s.addrs[key]; !ok {
		return false
	}
	delete(s.addrs, key)
	return true
}

// Len returns the number of stored addresses.
func (s *Store) Len() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.addrs)
}

// All returns the stored addresses ordered by the address comparison rules:
// domain first, then local-part.
func (s *Store) All() []emailaddr.Address {
	s.RLock()
	out := make([]emailaddr.Address, 0, len(s.addrs))
	for _, addr := range s.addrs {
		out = append(out, addr)
	}
	s.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		return out[i].Compare(out[j]) < 0
	})
	return out
}
