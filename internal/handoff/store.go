package handoff

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned when a key has no value in the store.
var ErrNotFound = errors.New("handoff: key not found")

// Store is the hand-off mechanism between the product listing view and the
// inquiry flow: a key-value store the listing side writes a serialized
// ProductSnapshot into and the form side reads once at mount. Values have no
// expiry or cleanup beyond that one-shot read.
type Store interface {
	// Get returns the value under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key, value string) error
}

// MemoryStore keeps hand-off values in process memory. Used in tests and
// single-process dev runs.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value under key, or ErrNotFound.
func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Put stores value under key.
func (s *MemoryStore) Put(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}
