package store

import (
	"context"
	"sync"
)

type memEntry struct {
	value   []byte
	version int64
}

// Memory is the in-process KV implementation. Default driver in development
// and the test double everywhere — same semantics as the Redis store, minus
// durability.
type Memory struct {
	mu   sync.RWMutex
	data map[string]memEntry
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]memEntry)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.data[key]
	if !ok {
		return nil, 0, ErrNotFound
	}
	// Copy out — callers must never see later mutations.
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, e.version, nil
}

func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := m.data[key]
	m.data[key] = memEntry{value: clone(value), version: e.version + 1}
	return nil
}

func (m *Memory) CompareAndSwap(_ context.Context, key string, value []byte, version int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.data[key]
	switch {
	case !ok && version != 0:
		return ErrConflict
	case ok && e.version != version:
		return ErrConflict
	}
	m.data[key] = memEntry{value: clone(value), version: version + 1}
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *Memory) Ping(_ context.Context) error { return nil }

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
