package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// ErrUnavailable is returned by a MemStore configured to simulate a failing
// backend. Callers are expected to degrade to defaults on read failures.
var ErrUnavailable = errors.New("storage: backend unavailable")

// MemStore is an in-memory Store. It backs tests and the degraded mode used
// when no database can be opened; contents are lost on process exit.
type MemStore struct {
	mu    sync.RWMutex
	data  map[string]json.RawMessage
	fails bool
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		data: make(map[string]json.RawMessage),
	}
}

// SetFailing toggles simulated backend failure for Get/Set/Remove.
func (m *MemStore) SetFailing(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fails = fail
}

// Get unmarshals the stored value for key into out.
func (m *MemStore) Get(key string, out any) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.fails {
		return false, ErrUnavailable
	}

	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("storage: cannot decode value for key %q: %w", key, err)
	}
	return true, nil
}

// Set stores value as JSON under key.
func (m *MemStore) Set(key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fails {
		return ErrUnavailable
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("storage: cannot encode value for key %q: %w", key, err)
	}
	m.data[key] = raw
	return nil
}

// Remove deletes the value for key.
func (m *MemStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fails {
		return ErrUnavailable
	}

	delete(m.data, key)
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemStore) Close() error {
	return nil
}

// Len returns the number of stored keys. Intended for tests.
func (m *MemStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Ensure MemStore implements Store
var _ Store = (*MemStore)(nil)
