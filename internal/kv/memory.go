package kv

import (
	"bytes"
	"context"
	"sync"
)

// MemoryStore is a process-local Store. Values are copied on the way in and
// out so callers cannot alias stored bytes.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	if !ok {
		return nil, nil
	}
	return bytes.Clone(v), nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = bytes.Clone(value)
	return nil
}

func (m *MemoryStore) SetMany(_ context.Context, items map[string][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range items {
		m.items[k] = bytes.Clone(v)
	}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

func (m *MemoryStore) List(_ context.Context) (map[string][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string][]byte, len(m.items))
	for k, v := range m.items {
		out[k] = bytes.Clone(v)
	}
	return out, nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make(map[string][]byte)
	return nil
}
