package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// ErrMissingAccessKey is returned by Validate when no Unsplash access key is configured.
var ErrMissingAccessKey = errors.New("unsplash access key not configured")

// AccessKeyEnv names the environment variable that supplies the access key.
const AccessKeyEnv = "UNSPLASH_ACCESS_KEY"

// Config captures everything getphotos reads from disk and the environment.
type Config struct {
	APIBase     string
	AccessKey   string
	DownloadDir string
	LogPath     string
}

const (
	defaultConfigPath  = "~/.config/getphotos/config.toml"
	defaultAPIBase     = "https://api.unsplash.com"
	defaultDownloadDir = "~/Pictures/getphotos"
	defaultLogPath     = "~/.local/state/getphotos/getphotos.log"
	dotenvFile         = ".env"
)

// Load locates and parses the config, falling back to defaults when missing.
// A .env file in the working directory is read first; it never overrides
// variables already set in the environment.
func Load(path string) (Config, error) {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", dotenvFile, err)
	}

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var raw struct {
		APIBase     string `toml:"api_base"`
		AccessKey   string `toml:"access_key"`
		DownloadDir string `toml:"download_dir"`
		LogPath     string `toml:"log_path"`
	}

	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	cfg := Config{
		APIBase:     orDefault(raw.APIBase, defaultAPIBase),
		AccessKey:   strings.TrimSpace(raw.AccessKey),
		DownloadDir: mustExpand(orDefault(raw.DownloadDir, defaultDownloadDir)),
		LogPath:     mustExpand(orDefault(raw.LogPath, defaultLogPath)),
	}
	if key := strings.TrimSpace(os.Getenv(AccessKeyEnv)); key != "" {
		cfg.AccessKey = key
	}
	return cfg, nil
}

// Validate reports configuration that would make every request fail.
func (c Config) Validate() error {
	if strings.TrimSpace(c.AccessKey) == "" {
		return fmt.Errorf("%w: set %s or access_key in %s", ErrMissingAccessKey, AccessKeyEnv, defaultConfigPath)
	}
	return nil
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
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
