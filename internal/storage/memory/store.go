// Package memory provides an in-process storage.Store for tests and for
// running the daemon without persistence.
package memory

import (
	"context"
	"sync"

	"github.com/KirkDiggler/toon-tailor/internal/storage"
)

// Store keeps values in a map guarded by a mutex
type Store struct {
	mu     sync.Mutex
	values map[string][]byte
}

// New returns an empty store
func New() *Store {
	return &Store{values: make(map[string][]byte)}
}

// Get returns a copy of the value at key
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, storage.ReadError(err, "memory")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values[key]
	if !ok {
		return nil, storage.NotFound(key)
	}
	return clone(v), nil
}

// Set stores a copy of value
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return storage.WriteError(err, "memory")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = clone(value)
	return nil
}

// Update holds the lock across fn
func (s *Store) Update(ctx context.Context, key string, fn storage.UpdateFunc) error {
	if err := ctx.Err(); err != nil {
		return storage.ReadError(err, "memory")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, found := s.values[key]
	next, err := fn(clone(current), found)
	if err != nil {
		return err
	}
	s.values[key] = clone(next)
	return nil
}

// Close is a no-op
func (s *Store) Close() error {
	return nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte{}, b...)
}
