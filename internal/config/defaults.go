package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/fruit-hunt/internal/storage"
)

//go:embed defaults/fruithunt.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Engine:  storage.EngineSQLite,
			Path:    "~/.fruithunt/progress.db",
			Profile: storage.DefaultProfile,
		},
		Quiz: QuizConfig{
			HintAfterAttempts: 3,
		},
		SSH: SSHConfig{
			Address:     ":2323",
			HostKey:     "~/.fruithunt/ssh_host_ed25519",
			IdleTimeout: 15 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
