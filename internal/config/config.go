package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/five82/flightdeck/internal/state"
)

// Config captures console settings read from config.toml.
type Config struct {
	Path         string // resolved file the values came from
	DatasetPath  string // empty uses the built-in sample dataset
	LogFile      string
	LogLevel     zerolog.Level
	StartPage    state.Page
	Organization string
}

const (
	defaultConfigPath   = "~/.config/flightdeck/config.toml"
	defaultLogFile      = "~/.local/state/flightdeck/flightdeck.log"
	defaultStartPage    = state.PageOverview
	defaultOrganization = "Charlie Services"
)

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Path:         resolved,
		LogFile:      mustExpand(defaultLogFile),
		LogLevel:     zerolog.InfoLevel,
		StartPage:    defaultStartPage,
		Organization: defaultOrganization,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Dataset      string `toml:"dataset"`
		LogFile      string `toml:"log_file"`
		LogLevel     string `toml:"log_level"`
		StartPage    string `toml:"start_page"`
		Organization string `toml:"organization"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dataset := strings.TrimSpace(raw.Dataset); dataset != "" {
		expanded, err := expandPath(dataset)
		if err != nil {
			return Config{}, fmt.Errorf("dataset path: %w", err)
		}
		cfg.DatasetPath = expanded
	}

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return Config{}, fmt.Errorf("log_level: %w", err)
		}
		cfg.LogLevel = parsed
	}

	if page := strings.TrimSpace(raw.StartPage); page != "" {
		parsed, err := state.ParsePage(page)
		if err != nil {
			return Config{}, fmt.Errorf("start_page: %w", err)
		}
		cfg.StartPage = parsed
	}

	if org := strings.TrimSpace(raw.Organization); org != "" {
		cfg.Organization = org
	}

	return cfg, nil
}

// ExpandPath resolves ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
