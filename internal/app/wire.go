package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"travelbook/internal/store"
)

// Wire bundles the logger and the loaded app for the CLI.
type Wire struct {
	Config Config
	Log    *zap.Logger
	App    *App
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := NewLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	opts := []store.Option{store.WithLogger(log.Named("store"))}
	if cfg.Passphrase != "" {
		opts = append(opts, store.WithPassphrase(cfg.Passphrase))
	}
	bookStore := store.NewBookFileStore(cfg.Home, opts...)

	a, err := New(bookStore, log)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}
	if err := a.RestoreView(bookStore); err != nil {
		_ = log.Sync()
		return nil, err
	}
	return &Wire{Config: cfg, Log: log, App: a}, nil
}

// Close flushes the logger.
func (w *Wire) Close() {
	_ = w.Log.Sync()
}
