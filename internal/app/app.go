package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/contentsync/internal/content"
	"github.com/vk/contentsync/internal/ctxlog"
	"github.com/vk/contentsync/internal/pending"
	"github.com/vk/contentsync/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config

	// load is the shared parse both stores derive from; Run re-waits on it
	// to surface parse failures as errors instead of silently empty stores.
	load  *pending.Pending[*content.Set]
	hulls *registry.Store[*content.Hull]
	parts *registry.Store[*content.Part]
}

// NewApp is the constructor for the main application. It configures an
// isolated logger, starts the asynchronous content parse, and attaches the
// pending results to fresh stores. The parse runs while the rest of startup
// proceeds; the first content query blocks until it completes.
func NewApp(outW io.Writer, cfg *Config, loader content.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if loader == nil {
		// A missing loader is a wiring bug, not a runtime condition.
		panic("app: content loader must not be nil")
	}

	load := pending.Start(ctx, "content", func(ctx context.Context) (*content.Set, error) {
		return loader.Load(ctx, cfg.ContentPath)
	})

	hulls := registry.New[*content.Hull]("hulls")
	hulls.SetContent(pending.Start(ctx, "hulls", func(ctx context.Context) (map[string]*content.Hull, error) {
		set, err := load.Wait(ctx)
		if err != nil {
			return nil, err
		}
		return set.Hulls, nil
	}))

	parts := registry.New[*content.Part]("parts")
	parts.SetContent(pending.Start(ctx, "parts", func(ctx context.Context) (map[string]*content.Part, error) {
		set, err := load.Wait(ctx)
		if err != nil {
			return nil, err
		}
		return set.Parts, nil
	}))
	logger.Debug("Content stores configured.", "path", cfg.ContentPath)

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		load:   load,
		hulls:  hulls,
		parts:  parts,
	}
}

// Hulls returns the hull store. Components needing hull lookups receive it
// from here instead of reaching for ambient global state.
func (a *App) Hulls() *registry.Store[*content.Hull] {
	return a.hulls
}

// Parts returns the part store.
func (a *App) Parts() *registry.Store[*content.Part] {
	return a.parts
}
