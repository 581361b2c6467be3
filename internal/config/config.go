// Package config provides YAML-based application configuration loading
// for Fruit Hunt.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-hunt/internal/storage"
)

// Config is the full application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Quiz    QuizConfig    `yaml:"quiz"`
	Catalog CatalogConfig `yaml:"catalog"`
	SSH     SSHConfig     `yaml:"ssh"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig selects where progress is persisted.
type StorageConfig struct {
	Engine  string `yaml:"engine"` // "sqlite", "json" or "memory"
	Path    string `yaml:"path"`
	Profile string `yaml:"profile"`
}

// QuizConfig tunes the quiz engine.
type QuizConfig struct {
	HintAfterAttempts int   `yaml:"hint_after_attempts"`
	Seed              int64 `yaml:"seed"` // 0 = non-deterministic elimination
}

// CatalogConfig points at an alternative content catalog.
type CatalogConfig struct {
	Path string `yaml:"path"` // empty = embedded catalog
}

// SSHConfig configures the SSH game server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate reports every problem found in the configuration.
func (c Config) Validate() error {
	var problems []error

	switch strings.ToLower(c.Storage.Engine) {
	case storage.EngineSQLite, storage.EngineJSON, storage.EngineMemory:
	default:
		problems = append(problems, fmt.Errorf("storage.engine: unknown engine %q", c.Storage.Engine))
	}
	if c.Storage.Path == "" && !strings.EqualFold(c.Storage.Engine, storage.EngineMemory) {
		problems = append(problems, errors.New("storage.path: required"))
	}
	if c.Quiz.HintAfterAttempts < 1 {
		problems = append(problems, fmt.Errorf("quiz.hint_after_attempts: must be at least 1, got %d", c.Quiz.HintAfterAttempts))
	}
	if c.SSH.IdleTimeout < 0 {
		problems = append(problems, fmt.Errorf("ssh.idle_timeout: must not be negative, got %s", c.SSH.IdleTimeout))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, fmt.Errorf("log.level: %w", err))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(problems...))
	}
	return nil
}

// LogLevel returns the configured log level, info if it does not parse.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
