package corpus

import "sync"

// Store owns the current corpus snapshot. Matching runs read a snapshot and
// keep using it for the whole run; Swap replaces the snapshot as a whole, so
// a run never observes postings from two different loads.
type Store struct {
	mu      sync.RWMutex
	current *Corpus
}

func NewStore(c *Corpus) *Store {
	if c == nil {
		c = &Corpus{}
	}
	return &Store{current: c}
}

// Snapshot returns the current corpus. The returned value must be treated as
// immutable.
func (s *Store) Snapshot() *Corpus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Swap replaces the current corpus with a new snapshot.
func (s *Store) Swap(c *Corpus) {
	if c == nil {
		c = &Corpus{}
	}
	s.mu.Lock()
	s.current = c
	s.mu.Unlock()
}
