// Package config reads the optional leego.yaml file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file.
const FileName = "leego.yaml"

// Defaults.
const (
	DefaultUpdatingStrategy = "whenBrickChanged"
	DefaultHeightCacheSize  = 256
	DefaultLogLevel         = "info"
	DefaultMinVersion       = "v1.0.0"
)

// Config represents the optional leego.yaml configuration.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Log    LogConfig    `yaml:"log"`
	Store  StoreConfig  `yaml:"store"`
}

// EngineConfig contains composition settings.
type EngineConfig struct {
	UpdatingStrategy string `yaml:"updatingStrategy,omitempty"`
	HeightCacheSize  *int   `yaml:"heightCacheSize,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// StoreConfig contains document store settings.
type StoreConfig struct {
	Strict     bool   `yaml:"strict,omitempty"`
	MinVersion string `yaml:"minVersion,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root             string
	UpdatingStrategy string
	HeightCacheSize  int
	LogLevel         slog.Level
	StoreStrict      bool
	MinVersion       string
}

// LoadOptional reads leego.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Parse decodes a leego.yaml document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads leego.yaml from dir (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	r, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	r.Root = dir
	return r, nil
}

// Default returns the resolved configuration of an empty file.
func Default() *Resolved {
	r, _ := (&Config{}).Resolve()
	return r
}

// Resolve applies defaults to cfg and validates it.
func (cfg *Config) Resolve() (*Resolved, error) {
	strategy := strings.TrimSpace(cfg.Engine.UpdatingStrategy)
	if strategy == "" {
		strategy = DefaultUpdatingStrategy
	}
	if strategy != "whenBrickChanged" && strategy != "always" {
		return nil, fmt.Errorf("engine.updatingStrategy must be whenBrickChanged or always (got %q)", strategy)
	}

	cacheSize := DefaultHeightCacheSize
	if cfg.Engine.HeightCacheSize != nil {
		cacheSize = *cfg.Engine.HeightCacheSize
	}
	if cacheSize < 0 {
		return nil, fmt.Errorf("engine.heightCacheSize cannot be negative (got %d)", cacheSize)
	}

	levelName := strings.TrimSpace(cfg.Log.Level)
	if levelName == "" {
		levelName = DefaultLogLevel
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}

	minVersion := strings.TrimSpace(cfg.Store.MinVersion)
	if minVersion == "" {
		minVersion = DefaultMinVersion
	}
	if !strings.HasPrefix(minVersion, "v") {
		minVersion = "v" + minVersion
	}
	if !semver.IsValid(minVersion) {
		return nil, fmt.Errorf("store.minVersion must be a semantic version (got %q)", cfg.Store.MinVersion)
	}

	return &Resolved{
		UpdatingStrategy: strategy,
		HeightCacheSize:  cacheSize,
		LogLevel:         level,
		StoreStrict:      cfg.Store.Strict,
		MinVersion:       semver.Canonical(minVersion),
	}, nil
}

// Logger returns a text logger writing to stderr at the configured level.
func (r *Resolved) Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: r.LogLevel}))
}
