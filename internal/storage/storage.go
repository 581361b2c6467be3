// Package storage persists small keyed records for player profiles.
//
// Every profile owns an independent set of records (fruit progress,
// settings, name, character). Backends only move opaque bytes; encoding is
// the caller's concern.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Supported backend engines.
const (
	EngineSQLite = "sqlite"
	EngineJSON   = "json"
	EngineMemory = "memory"
)

// DefaultProfile is used when no profile is given.
const DefaultProfile = "local"

// ErrUnknownEngine is returned by Open for unsupported engine names.
var ErrUnknownEngine = errors.New("storage: unknown engine")

// Backend is a profile-scoped key-value medium.
type Backend interface {
	// Get returns the stored value, or ok=false when the key was never written.
	Get(ctx context.Context, profile, key string) (value []byte, ok bool, err error)

	// Put replaces the value stored under key.
	Put(ctx context.Context, profile, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, profile, key string) error

	// Profiles lists every profile that has at least one record, sorted.
	Profiles(ctx context.Context) ([]string, error)

	Close() error
}

// Open creates the backend for engine at path.
// The memory engine ignores path.
func Open(engine, path string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineSQLite:
		return OpenSQLite(path)
	case EngineJSON:
		return OpenJSON(path)
	case EngineMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// prepareFile expands path and creates its parent directories.
func prepareFile(path string) (string, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", errors.New("storage: empty path")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}
