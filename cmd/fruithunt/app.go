package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-hunt/internal/catalog"
	"github.com/vovakirdan/fruit-hunt/internal/config"
	"github.com/vovakirdan/fruit-hunt/internal/platform/tui"
	"github.com/vovakirdan/fruit-hunt/internal/progress"
	"github.com/vovakirdan/fruit-hunt/internal/storage"
)

// app holds what every command needs: config, catalog, storage, logger.
type app struct {
	cfg     config.Config
	catalog *catalog.Catalog
	backend storage.Backend
	logger  *log.Logger
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("engine") {
		cfg.Storage.Engine = flagEngine
	}
	if flags.Changed("db") {
		cfg.Storage.Path = flagDBPath
	}
	if flags.Changed("profile") {
		cfg.Storage.Profile = flagProfile
	}
	if flags.Changed("seed") {
		cfg.Quiz.Seed = flagSeed
	}
	if flags.Changed("catalog") {
		cfg.Catalog.Path = flagCatalog
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if err := config.ApplyDifficultyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return config.Config{}, err
	}
	if cfg.Storage.Profile == "" {
		cfg.Storage.Profile = storage.DefaultProfile
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "fruithunt",
		Level:           level,
	})
}

// openApp loads config, catalog and storage. Callers must close it.
func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger := newLogger(os.Stderr, cfg.LogLevel())

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	backend, err := storage.Open(cfg.Storage.Engine, cfg.Storage.Path)
	if err != nil {
		return nil, err
	}
	logger.Debug("storage opened", "engine", cfg.Storage.Engine, "path", cfg.Storage.Path)

	return &app{cfg: cfg, catalog: cat, backend: backend, logger: logger}, nil
}

// mustLoadCatalog loads the catalog for commands that need no storage.
func mustLoadCatalog(path string) *catalog.Catalog {
	cat, err := catalog.Load(path)
	if err != nil {
		fail("%v", err)
	}
	return cat
}

// mustOpenApp is openApp for command Run functions.
func mustOpenApp(cmd *cobra.Command) *app {
	a, err := openApp(cmd)
	if err != nil {
		fail("%v", err)
	}
	return a
}

func (a *app) Close() {
	if err := a.backend.Close(); err != nil {
		a.logger.Warn("could not close storage", "error", err)
	}
}

// store loads the configured profile's progress.
func (a *app) store(ctx context.Context) (*progress.Store, error) {
	s := progress.New(a.backend, a.catalog,
		progress.WithProfile(a.cfg.Storage.Profile),
		progress.WithLogger(a.logger),
	)
	if err := s.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("load profile %q: %w", a.cfg.Storage.Profile, err)
	}
	return s, nil
}

// deps builds the shared dependencies of TUI sessions.
func (a *app) deps() tui.Deps {
	return tui.Deps{
		Catalog: a.catalog,
		Backend: a.backend,
		Config:  a.cfg,
		Logger:  a.logger,
	}
}
