package store

import (
	"context"
	"sync"
)

// memoryKeyValueStorage keeps values in a map. Nothing survives the process;
// it backs tests and the "memory" dry-run backend.
type memoryKeyValueStorage struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemoryKeyValueStorage returns an empty in-memory storage.
func NewMemoryKeyValueStorage() KeyValueStorage {
	return &memoryKeyValueStorage{items: make(map[string][]byte)}
}

func (m *memoryKeyValueStorage) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.items[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return append([]byte(nil), value...), nil
}

func (m *memoryKeyValueStorage) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = append([]byte(nil), value...)
	return nil
}
