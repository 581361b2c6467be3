package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-hunt/internal/catalog"
	"github.com/vovakirdan/fruit-hunt/internal/config"
	"github.com/vovakirdan/fruit-hunt/internal/feedback"
	"github.com/vovakirdan/fruit-hunt/internal/progress"
	"github.com/vovakirdan/fruit-hunt/internal/quiz"
	"github.com/vovakirdan/fruit-hunt/internal/storage"
)

// Deps are shared by every session. The backend is owned by the caller.
type Deps struct {
	Catalog *catalog.Catalog
	Backend storage.Backend
	Config  config.Config
	Logger  *log.Logger

	// Bell receives the terminal bell in local play. Defaults to stderr.
	Bell io.Writer
}

func (d Deps) bellWriter() io.Writer {
	if d.Bell != nil {
		return d.Bell
	}
	return os.Stderr
}

// NewModel loads a profile's progress and builds its session model.
// Cues are gated by the profile's sound and vibration settings.
func (d Deps) NewModel(ctx context.Context, profile string, cues feedback.Sink) (Model, error) {
	logger := d.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	store := progress.New(d.Backend, d.Catalog,
		progress.WithProfile(profile),
		progress.WithLogger(logger),
	)
	if err := store.Initialize(ctx); err != nil {
		return Model{}, fmt.Errorf("load profile %q: %w", profile, err)
	}

	source := quiz.NewCryptoSource()
	if d.Config.Quiz.Seed != 0 {
		source = quiz.NewSeededSource(d.Config.Quiz.Seed)
	}
	engine := quiz.NewEngine(store, d.Catalog,
		quiz.WithSource(source),
		quiz.WithHintThreshold(d.Config.Quiz.HintAfterAttempts),
		quiz.WithLogger(logger),
	)

	gate := feedback.Gate{
		Next:      cues,
		Sound:     func() bool { return store.Settings().SoundEffects },
		Vibration: func() bool { return store.Settings().Vibration },
	}
	return NewModel(ctx, store, engine, gate, logger), nil
}
