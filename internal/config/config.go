// Package config loads the server configuration from an optional YAML file;
// every field has a default so a missing file is not an error for callers
// that pass an empty path.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr"`
	// PersistPath is the directory puzzles are saved under.
	PersistPath string `yaml:"persistPath"`
	// LogLevel is one of debug|info|warn|error.
	LogLevel string `yaml:"logLevel"`
}

func Default() Config {
	return Config{
		Addr:        ":8080",
		PersistPath: "./data",
		LogLevel:    "info",
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps LogLevel onto slog's levels, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
