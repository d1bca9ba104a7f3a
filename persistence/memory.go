package persistence

import (
	"clementus360/gal-bestfriend/types"
	"context"
	"sync"
)

// MemoryStore keeps state for the lifetime of the process.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]types.SavedState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]types.SavedState)}
}

// Save implements Store.
func (s *MemoryStore) Save(ctx context.Context, owner string, state types.SavedState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[Key(owner)] = state
	return nil
}

// Load implements Store.
func (s *MemoryStore) Load(ctx context.Context, owner string) (*types.SavedState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[Key(owner)]
	if !ok {
		return nil, nil
	}
	return &state, nil
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states = make(map[string]types.SavedState)
	return nil
}
