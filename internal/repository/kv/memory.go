package kv

import (
	"context"
	"strings"
	"sync"
)

// MemoryStore keeps serialized collections in process memory. It is the
// default backend and the test double for the durable adapters.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.data[namespaced(key)]
	if !ok {
		return nil, ErrKeyNotFound
	}
	// Copy out so callers never alias stored bytes.
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[namespaced(key)] = stored
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, namespaced(key))
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k := range s.data {
		if strings.HasPrefix(k, keyPrefix) {
			delete(s.data, k)
		}
	}
	return nil
}
