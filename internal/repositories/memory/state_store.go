package memory

import (
	"context"
	"slices"
	"sync"

	portsrepo "github.com/SscSPs/event_split_app/internal/core/ports/repositories"
)

// StateStore keeps saved blobs in process memory. It is used for development and tests.
type StateStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
	saves int
}

var _ portsrepo.StateStore = (*StateStore)(nil)

// NewStateStore creates an empty in-memory state store.
func NewStateStore() *StateStore {
	return &StateStore{blobs: make(map[string][]byte)}
}

func (s *StateStore) LoadState(ctx context.Context, storeName string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[storeName]
	if !ok {
		return nil, nil
	}
	return slices.Clone(data), nil
}

func (s *StateStore) SaveState(ctx context.Context, storeName string, state []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[storeName] = slices.Clone(state)
	s.saves++
	return nil
}

// Saves returns how many successful SaveState calls have been made.
func (s *StateStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
