package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
)

// JSONFile keeps every profile's records in one JSON document on disk.
// The whole document is rewritten atomically on each mutation.
type JSONFile struct {
	path string
	mu   sync.RWMutex
	data map[string]map[string]string
}

// OpenJSON loads (or creates on first write) the JSON file at path.
func OpenJSON(path string) (*JSONFile, error) {
	path, err := prepareFile(path)
	if err != nil {
		return nil, err
	}

	s := &JSONFile{
		path: path,
		data: make(map[string]map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *JSONFile) load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("storage: cannot read %s: %w", s.path, err)
	}
	if len(raw) == 0 {
		return nil
	}

	var data map[string]map[string]string
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("storage: cannot parse %s: %w", s.path, err)
	}
	if data != nil {
		s.data = data
	}
	return nil
}

// persistLocked writes the document. Caller must hold s.mu.
func (s *JSONFile) persistLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: cannot encode records: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, raw, 0o644); err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", s.path, err)
	}
	return nil
}

// Get implements Backend.
func (s *JSONFile) Get(_ context.Context, profile, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, ok := s.data[profile]
	if !ok {
		return nil, false, nil
	}
	value, ok := records[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(value), true, nil
}

// Put implements Backend.
func (s *JSONFile) Put(_ context.Context, profile, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, ok := s.data[profile]
	if !ok {
		records = make(map[string]string)
		s.data[profile] = records
	}
	records[key] = string(value)
	return s.persistLocked()
}

// Delete implements Backend.
func (s *JSONFile) Delete(_ context.Context, profile, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, ok := s.data[profile]
	if !ok {
		return nil
	}
	if _, ok := records[key]; !ok {
		return nil
	}
	delete(records, key)
	if len(records) == 0 {
		delete(s.data, profile)
	}
	return s.persistLocked()
}

// Profiles implements Backend.
func (s *JSONFile) Profiles(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profiles := make([]string, 0, len(s.data))
	for p := range s.data {
		profiles = append(profiles, p)
	}
	sort.Strings(profiles)
	return profiles, nil
}

// Close implements Backend. The file is already flushed after every write.
func (s *JSONFile) Close() error {
	return nil
}

var _ Backend = (*JSONFile)(nil)
