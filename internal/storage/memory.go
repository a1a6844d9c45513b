package storage

import (
	"sync"
	"time"
)

// MemoryStore is an in-memory implementation of the Store interface.
// Useful for testing and development.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]Record),
	}
}

// Put stores the serialized ACL for a resource.
func (m *MemoryStore) Put(resource string, body []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	revision := m.records[resource].Revision + 1

	stored := make([]byte, len(body))
	copy(stored, body)

	m.records[resource] = Record{
		Resource:  resource,
		Body:      stored,
		Revision:  revision,
		UpdatedAt: time.Now(),
	}

	return revision, nil
}

// Get retrieves the stored ACL for a resource.
func (m *MemoryStore) Get(resource string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, exists := m.records[resource]
	if !exists {
		return Record{}, ErrACLNotFound
	}

	return record, nil
}

// Delete removes the stored ACL for a resource.
func (m *MemoryStore) Delete(resource string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[resource]; !exists {
		return ErrACLNotFound
	}

	delete(m.records, resource)

	return nil
}

// Exists checks whether a resource has a stored ACL.
func (m *MemoryStore) Exists(resource string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.records[resource]

	return exists, nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
