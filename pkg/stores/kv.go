package stores

// KV provides simple key/value storage for arbitrary payloads. Handlers
// decide the structure of the stored data; the dispatcher never touches it.
// The built-in implementation is an in-memory map safe for concurrent use
// which is perfectly sufficient for dev & unit tests. Production deployments
// can swap in a persistent implementation (see the s3 subpackage).

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned when a key has no value in the store.
var ErrNotFound = errors.New("key not found")

type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// InMemoryKV is the default implementation.
type InMemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewInMemoryKV() *InMemoryKV {
	return &InMemoryKV{
		data: make(map[string][]byte),
	}
}

func (s *InMemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	value, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}

	// Copy so callers cannot mutate the stored value.
	out := make([]byte, len(value))
	copy(out, value)

	return out, nil
}

func (s *InMemoryKV) Set(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	s.mu.Lock()
	s.data[key] = stored
	s.mu.Unlock()

	return nil
}

func (s *InMemoryKV) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()

	return nil
}
