// Package progress owns the player's persisted state: per-fruit collection
// progress, settings, and identity. All writes go straight through to the
// storage backend.
package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-hunt/internal/catalog"
	"github.com/vovakirdan/fruit-hunt/internal/player"
	"github.com/vovakirdan/fruit-hunt/internal/storage"
)

// Record keys inside a profile.
const (
	KeyFruitProgress = "fruitProgress"
	KeySettings      = "settings"
	KeyPlayerName    = "playerName"
	KeyCharacter     = "character"
)

// FruitProgress is the collection state of one fruit.
type FruitProgress struct {
	FruitID   string `json:"fruitId"`
	Collected bool   `json:"collected"`
	Attempts  int    `json:"attempts"`
	HintsUsed int    `json:"hintsUsed"`
}

// FruitUpdate is a partial update; nil fields are left untouched.
type FruitUpdate struct {
	Collected *bool
	Attempts  *int
	HintsUsed *int
}

// Ptr returns a pointer to v, for building partial updates.
func Ptr[T any](v T) *T {
	return &v
}

// Store is the progress context handed to every consumer.
// It is safe for concurrent use, though each profile normally has a single writer.
type Store struct {
	mu       sync.RWMutex
	backend  storage.Backend
	catalog  *catalog.Catalog
	profile  string
	logger   *log.Logger
	fruits   map[string]FruitProgress
	settings Settings
	name     string
	char     string
}

// Option configures a Store.
type Option func(*Store)

// WithProfile scopes the store to a profile. Defaults to storage.DefaultProfile.
func WithProfile(profile string) Option {
	return func(s *Store) {
		if profile != "" {
			s.profile = profile
		}
	}
}

// WithLogger sets the logger used for recoverable problems.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a store holding the initial state. Call Initialize to load
// what the backend has persisted.
func New(backend storage.Backend, cat *catalog.Catalog, opts ...Option) *Store {
	s := &Store{
		backend:  backend,
		catalog:  cat,
		profile:  storage.DefaultProfile,
		logger:   log.New(io.Discard),
		settings: DefaultSettings(),
		name:     player.DefaultName,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.fruits = s.initialFruits()
	return s
}

// Initialize loads persisted state. Missing or malformed records fall back
// to defaults; only backend read failures are returned.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fruits, err := s.loadFruits(ctx)
	if err != nil {
		return err
	}
	s.fruits = fruits

	settings, err := s.loadSettings(ctx)
	if err != nil {
		return err
	}
	s.settings = settings

	name, ok, err := s.backend.Get(ctx, s.profile, KeyPlayerName)
	if err != nil {
		return fmt.Errorf("progress: load player name: %w", err)
	}
	s.name = player.DefaultName
	if ok && len(name) > 0 {
		s.name = string(name)
	}

	char, _, err := s.backend.Get(ctx, s.profile, KeyCharacter)
	if err != nil {
		return fmt.Errorf("progress: load character: %w", err)
	}
	s.char = string(char)

	s.logger.Debug("progress loaded",
		"profile", s.profile,
		"collected", s.collectedLocked(),
	)
	return nil
}

func (s *Store) initialFruits() map[string]FruitProgress {
	fruits := make(map[string]FruitProgress, s.catalog.Len())
	for _, id := range s.catalog.FruitIDs() {
		fruits[id] = FruitProgress{FruitID: id}
	}
	return fruits
}

func (s *Store) loadFruits(ctx context.Context) (map[string]FruitProgress, error) {
	raw, ok, err := s.backend.Get(ctx, s.profile, KeyFruitProgress)
	if err != nil {
		return nil, fmt.Errorf("progress: load fruit progress: %w", err)
	}
	if !ok {
		return s.initialFruits(), nil
	}

	var saved map[string]FruitProgress
	if err := json.Unmarshal(raw, &saved); err != nil || saved == nil {
		s.logger.Warn("fruit progress record is malformed, starting fresh",
			"profile", s.profile,
			"error", err,
		)
		return s.initialFruits(), nil
	}

	fruits := s.initialFruits()
	for id, fp := range saved {
		if _, known := fruits[id]; !known {
			s.logger.Debug("dropping progress for unknown fruit", "fruit", id)
			continue
		}
		fp.FruitID = id
		fp.Attempts = max(fp.Attempts, 0)
		fp.HintsUsed = max(fp.HintsUsed, 0)
		fruits[id] = fp
	}
	return fruits, nil
}

// saveFruitsLocked persists the full progress map. Caller must hold s.mu.
func (s *Store) saveFruitsLocked(ctx context.Context) error {
	raw, err := json.Marshal(s.fruits)
	if err != nil {
		return fmt.Errorf("progress: encode fruit progress: %w", err)
	}
	if err := s.backend.Put(ctx, s.profile, KeyFruitProgress, raw); err != nil {
		return fmt.Errorf("progress: save fruit progress: %w", err)
	}
	return nil
}

// UpdateFruitProgress merges update into the fruit's entry and persists the
// whole map. Unknown fruit IDs are ignored. Collected never reverts to
// false and counters never decrease; use ResetProgress for that.
func (s *Store) UpdateFruitProgress(ctx context.Context, fruitID string, update FruitUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fp, ok := s.fruits[fruitID]
	if !ok {
		s.logger.Debug("ignoring update for unknown fruit", "fruit", fruitID)
		return nil
	}

	if update.Collected != nil && *update.Collected {
		fp.Collected = true
	}
	if update.Attempts != nil && *update.Attempts > fp.Attempts {
		fp.Attempts = *update.Attempts
	}
	if update.HintsUsed != nil && *update.HintsUsed > fp.HintsUsed {
		fp.HintsUsed = *update.HintsUsed
	}
	s.fruits[fruitID] = fp

	return s.saveFruitsLocked(ctx)
}

// CollectFruit marks a fruit as collected.
func (s *Store) CollectFruit(ctx context.Context, fruitID string) error {
	return s.UpdateFruitProgress(ctx, fruitID, FruitUpdate{Collected: Ptr(true)})
}

// ResetProgress replaces all fruit progress with the initial, uncollected
// state and persists it. Settings and identity are kept.
func (s *Store) ResetProgress(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fruits = s.initialFruits()
	s.logger.Info("progress reset", "profile", s.profile)
	return s.saveFruitsLocked(ctx)
}

// Fruit returns the progress entry for a fruit.
func (s *Store) Fruit(fruitID string) (FruitProgress, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fp, ok := s.fruits[fruitID]
	return fp, ok
}

// Snapshot returns a copy of the full progress map.
func (s *Store) Snapshot() map[string]FruitProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]FruitProgress, len(s.fruits))
	for id, fp := range s.fruits {
		out[id] = fp
	}
	return out
}

// SetPlayerName stores the player's name.
func (s *Store) SetPlayerName(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.name = name
	if err := s.backend.Put(ctx, s.profile, KeyPlayerName, []byte(name)); err != nil {
		return fmt.Errorf("progress: save player name: %w", err)
	}
	return nil
}

// PlayerName returns the stored name, or player.DefaultName.
func (s *Store) PlayerName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

// SetCharacter stores the chosen character ID.
func (s *Store) SetCharacter(ctx context.Context, characterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.char = characterID
	if err := s.backend.Put(ctx, s.profile, KeyCharacter, []byte(characterID)); err != nil {
		return fmt.Errorf("progress: save character: %w", err)
	}
	return nil
}

// Character returns the chosen character ID, empty if none.
func (s *Store) Character() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.char
}

// Profile returns the profile this store is scoped to.
func (s *Store) Profile() string {
	return s.profile
}

// Catalog returns the catalog the store tracks.
func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}
