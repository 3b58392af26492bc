package storage

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryGateway keeps collections as JSON blobs in memory. It backs
// engine tests and the "memory" database driver for throwaway runs.
type MemoryGateway struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{docs: make(map[string][]byte)}
}

func (m *MemoryGateway) SaveCollection(name string, items any) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", name, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[name] = payload
	return nil
}

func (m *MemoryGateway) LoadCollection(name string, out any) error {
	m.mu.Lock()
	payload, ok := m.docs[name]
	m.mu.Unlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode collection %q: %w", name, err)
	}
	return nil
}

// SaveCount reports how many collections have been written. Tests use it
// to assert that mutations reach the gateway.
func (m *MemoryGateway) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}
