package repository

import (
	"bytes"
	"context"
	"sync"

	"github.com/nikolayk812/fyf-cart/internal/port"
)

// MemoryStore is an in-process KeyValueStore. State is lost on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, port.ErrKeyNotFound
	}

	return bytes.Clone(value), nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = bytes.Clone(value)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.values[key]
	delete(s.values, key)
	return ok, nil
}
