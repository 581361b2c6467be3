package progress

import (
	"context"
	"encoding/json"
	"fmt"
)

// Settings are the player's toggles.
type Settings struct {
	SoundEffects bool `json:"soundEffects"`
	Vibration    bool `json:"vibration"`
	DarkMode     bool `json:"darkMode"`
}

// SettingsUpdate is a partial settings change; nil fields are left untouched.
type SettingsUpdate struct {
	SoundEffects *bool
	Vibration    *bool
	DarkMode     *bool
}

// DefaultSettings returns sound and vibration on, dark mode off.
func DefaultSettings() Settings {
	return Settings{
		SoundEffects: true,
		Vibration:    true,
		DarkMode:     false,
	}
}

func (s *Store) loadSettings(ctx context.Context) (Settings, error) {
	raw, ok, err := s.backend.Get(ctx, s.profile, KeySettings)
	if err != nil {
		return Settings{}, fmt.Errorf("progress: load settings: %w", err)
	}
	if !ok {
		return DefaultSettings(), nil
	}

	// Decode over the defaults so fields missing from older records keep them.
	settings := DefaultSettings()
	if err := json.Unmarshal(raw, &settings); err != nil {
		s.logger.Warn("settings record is malformed, using defaults",
			"profile", s.profile,
			"error", err,
		)
		return DefaultSettings(), nil
	}
	return settings, nil
}

// Settings returns the current settings.
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings merges update into the settings and persists them.
func (s *Store) UpdateSettings(ctx context.Context, update SettingsUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.SoundEffects != nil {
		s.settings.SoundEffects = *update.SoundEffects
	}
	if update.Vibration != nil {
		s.settings.Vibration = *update.Vibration
	}
	if update.DarkMode != nil {
		s.settings.DarkMode = *update.DarkMode
	}

	raw, err := json.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("progress: encode settings: %w", err)
	}
	if err := s.backend.Put(ctx, s.profile, KeySettings, raw); err != nil {
		return fmt.Errorf("progress: save settings: %w", err)
	}
	return nil
}
