// Package config loads client configuration for the Ludex CLI.
//
// Values are resolved in order: built-in defaults, the optional YAML file at
// <data dir>/config.yaml, an optional .env file in the working directory, and
// finally LUDEX_-prefixed environment variables. Later sources win.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ludexhq/ludex/internal/errors"
)

// Config holds all client settings
type Config struct {
	// APIURL is the base URL of the Ludex REST API
	APIURL string `yaml:"api_url" env:"API_URL"`

	// Timeout bounds every HTTP request
	Timeout time.Duration `yaml:"timeout" env:"TIMEOUT"`

	// PageSize is the page size used for catalog listings
	PageSize int `yaml:"page_size" env:"PAGE_SIZE"`

	// DataDir is where the session file and config live (default ~/.ludex)
	DataDir string `yaml:"data_dir" env:"DATA_DIR"`

	// LogLevel is the minimum log level (debug, info, warn, error)
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`

	// LogFormat is the log output format (text, json)
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		APIURL:    "https://api.ludex.gg",
		Timeout:   30 * time.Second,
		PageSize:  12,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Load resolves the configuration from all sources
func Load() (Config, error) {
	cfg := Defaults()

	dataDir, err := resolveDataDir()
	if err != nil {
		return cfg, err
	}
	cfg.DataDir = dataDir

	if err := loadFile(&cfg, filepath.Join(dataDir, "config.yaml")); err != nil {
		return cfg, err
	}

	// Missing .env is fine; a broken one is not.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return cfg, errors.Wrap(errors.ErrCodeConfigLoad, "failed to load .env file", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "LUDEX_"}); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeConfigLoad, "failed to parse environment", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the configuration for usable values
func (c Config) Validate() error {
	if c.APIURL == "" {
		return errors.New(errors.ErrCodeConfigInvalid, "api_url cannot be empty").
			WithSuggestion("Set LUDEX_API_URL or api_url in config.yaml")
	}
	if !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
		return errors.New(errors.ErrCodeConfigInvalid, "api_url must start with http:// or https://")
	}
	if c.Timeout <= 0 {
		return errors.New(errors.ErrCodeConfigInvalid, "timeout must be positive")
	}
	if c.PageSize <= 0 || c.PageSize > 100 {
		return errors.New(errors.ErrCodeConfigInvalid, "page_size must be between 1 and 100")
	}
	return nil
}

// SessionFile returns the canonical session file path
func (c Config) SessionFile() string {
	return filepath.Join(c.DataDir, "session.json")
}

func resolveDataDir() (string, error) {
	if dir := os.Getenv("LUDEX_DATA_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeConfigLoad, "failed to resolve home directory", err)
	}
	return filepath.Join(home, ".ludex"), nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(errors.ErrCodeConfigLoad, "failed to read config file", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrap(errors.ErrCodeConfigLoad, "failed to parse config file", err)
	}
	return nil
}
