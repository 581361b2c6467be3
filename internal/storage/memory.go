package storage

import (
	"context"
	"sort"
	"sync"
)

// Memory is a process-local backend. Nothing survives a restart.
type Memory struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, profile, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[profile][key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (m *Memory) Put(_ context.Context, profile, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	records, ok := m.data[profile]
	if !ok {
		records = make(map[string][]byte)
		m.data[profile] = records
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	records[key] = stored
	return nil
}

func (m *Memory) Delete(_ context.Context, profile, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data[profile], key)
	if len(m.data[profile]) == 0 {
		delete(m.data, profile)
	}
	return nil
}

func (m *Memory) Profiles(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	profiles := make([]string, 0, len(m.data))
	for p := range m.data {
		profiles = append(profiles, p)
	}
	sort.Strings(profiles)
	return profiles, nil
}

func (m *Memory) Close() error {
	return nil
}

var _ Backend = (*Memory)(nil)
