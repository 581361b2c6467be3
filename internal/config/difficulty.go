package config

import "fmt"

// DifficultyPreset represents a named difficulty level. Difficulty only
// changes how soon quiz hints appear.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// HintAfterAttemptsForPreset returns hint_after_attempts for a preset.
func HintAfterAttemptsForPreset(preset DifficultyPreset) (int, error) {
	switch preset {
	case DifficultyEasy:
		return 2, nil
	case DifficultyNormal:
		return 3, nil
	case DifficultyHard:
		return 5, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", preset)
	}
}

// ApplyDifficultyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyDifficultyPreset(cfg *Config, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	n, err := HintAfterAttemptsForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Quiz.HintAfterAttempts = n
	return nil
}
