package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/five82/flightdeck/internal/config"
	"github.com/five82/flightdeck/internal/dataset"
	"github.com/five82/flightdeck/internal/logging"
	"github.com/five82/flightdeck/internal/prefs"
	"github.com/five82/flightdeck/internal/state"
	"github.com/five82/flightdeck/internal/ui"
)

// Options configure the flightdeck console. Non-empty fields override the
// matching config.toml values.
type Options struct {
	ConfigPath  string
	DatasetPath string
	StartPage   string
	PrefsPath   string // empty uses default ~/.config/flightdeck/prefs.toml
}

// Run boots the console until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg, err = applyOverrides(cfg, opts)
	if err != nil {
		return err
	}

	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closer.Close() }()

	source, label, err := loadDataset(cfg.DatasetPath)
	if err != nil {
		logger.Error().Err(err).Str("path", cfg.DatasetPath).Msg("dataset rejected")
		return fmt.Errorf("load dataset: %w", err)
	}

	prefsPath := opts.PrefsPath
	if strings.TrimSpace(prefsPath) == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	logStart(logger, cfg, source, label)

	uiOpts := ui.Options{
		Context:      ctx,
		Source:       source,
		Config:       cfg,
		Logger:       logger,
		Prefs:        userPrefs,
		PrefsPath:    prefsPath,
		DatasetLabel: label,
	}
	err = ui.Run(uiOpts)
	if err != nil {
		logger.Error().Err(err).Msg("console exited with error")
		return err
	}
	logger.Info().Msg("console stopped")
	return nil
}

// applyOverrides layers command-line values over the loaded config.
func applyOverrides(cfg config.Config, opts Options) (config.Config, error) {
	if path := strings.TrimSpace(opts.DatasetPath); path != "" {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("dataset path: %w", err)
		}
		cfg.DatasetPath = expanded
	}
	if page := strings.TrimSpace(opts.StartPage); page != "" {
		parsed, err := state.ParsePage(page)
		if err != nil {
			return config.Config{}, fmt.Errorf("start page: %w", err)
		}
		cfg.StartPage = parsed
	}
	return cfg, nil
}

// loadDataset returns the records for the session and a label naming where
// they came from. An empty path selects the built-in sample.
func loadDataset(path string) (dataset.Source, string, error) {
	if path == "" {
		return dataset.Sample(), "built-in sample", nil
	}
	source, err := dataset.Load(path)
	if err != nil {
		return nil, "", err
	}
	return source, path, nil
}

func logStart(logger zerolog.Logger, cfg config.Config, source dataset.Source, label string) {
	logger.Info().
		Str("config", cfg.Path).
		Str("dataset", label).
		Int("devices", len(source.Devices())).
		Int("fleets", len(source.Fleets())).
		Str("start_page", string(cfg.StartPage)).
		Msg("console starting")
}
