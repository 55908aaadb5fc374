package source

import "sync"

// Store holds the current snapshot. Reads see a consistent dataset for
// the whole report computation; a reload swaps the snapshot wholesale.
type Store struct {
	mu      sync.RWMutex
	current *Snapshot
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Current() (*Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.current != nil
}

func (s *Store) Set(snap *Snapshot) {
	s.mu.Lock()
	s.current = snap
	s.mu.Unlock()
}
