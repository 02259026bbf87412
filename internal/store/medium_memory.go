package store

import (
	"context"
	"maps"
	"slices"
	"sync"
)

type memoryMedium struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryMedium returns a map-backed [Medium]. Contents live as long as the
// process.
func NewMemoryMedium() Medium {
	return &memoryMedium{items: make(map[string]string)}
}

func (m *memoryMedium) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.items[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (m *memoryMedium) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = value
	return nil
}

func (m *memoryMedium) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.items, key)
	}
	return nil
}

func (m *memoryMedium) Keys(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Sorted(maps.Keys(m.items)), nil
}

func (m *memoryMedium) Close() error {
	return nil
}
