package storage

import (
	"context"
	"sync"
)

// Memory is a process-local key-value store. Always available; state is
// lost on restart, which makes it a reference backend for tests and for
// deployments that only care about cookie eviction within one run.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the value for key.
func (m *Memory) Get(ctx context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key.
func (m *Memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Available always reports true.
func (m *Memory) Available(ctx context.Context) bool {
	return true
}
