package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/five82/getphotos/internal/config"
	"github.com/five82/getphotos/internal/gallery"
	"github.com/five82/getphotos/internal/logging"
	"github.com/five82/getphotos/internal/prefs"
	"github.com/five82/getphotos/internal/state"
	"github.com/five82/getphotos/internal/ui"
	"github.com/five82/getphotos/internal/unsplash"
)

// Options configure the getphotos application.
type Options struct {
	ConfigPath string // empty uses ~/.config/getphotos/config.toml
	PrefsPath  string // empty uses ~/.config/getphotos/prefs.toml
	Debug      bool
}

// Run boots the getphotos TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	logger, closer, err := logging.OpenFile(cfg.LogPath, logging.Options{Debug: opts.Debug})
	if err != nil {
		return fmt.Errorf("open diagnostic log: %w", err)
	}
	defer func() { _ = closer.Close() }()

	client, controller, err := newController(cfg, logger)
	if err != nil {
		return err
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn().Err(err).Msg("load prefs failed, using defaults")
	}

	logger.Info().Str("api", cfg.APIBase).Str("theme", userPrefs.Theme).Msg("starting getphotos")
	defer logger.Info().Msg("getphotos stopped")

	return ui.Run(ui.Options{
		Context:     ctx,
		Controller:  controller,
		HTTPClient:  client.HTTPClient(),
		DownloadDir: cfg.DownloadDir,
		LogPath:     cfg.LogPath,
		ThemeName:   userPrefs.Theme,
		Columns:     userPrefs.Columns,
		PrefsPath:   opts.PrefsPath,
		Logger:      logging.Component(logger, "ui"),
	})
}

func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newController builds the API client and the controller merging its pages
// into a fresh store.
func newController(cfg config.Config, logger zerolog.Logger) (*unsplash.Client, *gallery.Controller, error) {
	client, err := unsplash.NewClient(cfg.APIBase, cfg.AccessKey)
	if err != nil {
		return nil, nil, fmt.Errorf("init unsplash client: %w", err)
	}
	controller := gallery.New(client, &state.Store{}, logging.Component(logger, "gallery"))
	return client, controller, nil
}
