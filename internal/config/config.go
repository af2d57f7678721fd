// Package config loads pathfill settings from defaults, an optional YAML
// file, and PATHFILL_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the full pathfill configuration.
type Config struct {
	Log    LogConfig    `koanf:"log"`
	Fill   FillConfig   `koanf:"fill"`
	Search SearchConfig `koanf:"search"`
}

// LogConfig selects logger level, encoding and destination.
// An empty File means stderr; otherwise the file is rotated.
type LogConfig struct {
	Level      string `koanf:"level"`  // debug, info, warn, error
	Format     string `koanf:"format"` // console, json
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
}

// FillConfig holds flood-fill defaults.
type FillConfig struct {
	Mode         string `koanf:"mode"`         // bfs, dfs
	Connectivity int    `koanf:"connectivity"` // 4, 8; grid documents only
}

// SearchConfig holds max-probability search defaults.
type SearchConfig struct {
	MinProbability float64 `koanf:"min_probability"`
}

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"console": true, "json": true}
	validModes   = map[string]bool{"bfs": true, "dfs": true}
)

// Validate reports every invalid field at once. Each fault wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	var err error

	if !validLevels[strings.ToLower(c.Log.Level)] {
		err = multierr.Append(err, fmt.Errorf("%w: log.level must be one of debug, info, warn, error, got %q", ErrInvalidConfig, c.Log.Level))
	}
	if !validFormats[strings.ToLower(c.Log.Format)] {
		err = multierr.Append(err, fmt.Errorf("%w: log.format must be console or json, got %q", ErrInvalidConfig, c.Log.Format))
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: log rotation limits must be non-negative", ErrInvalidConfig))
	}
	if !validModes[strings.ToLower(c.Fill.Mode)] {
		err = multierr.Append(err, fmt.Errorf("%w: fill.mode must be bfs or dfs, got %q", ErrInvalidConfig, c.Fill.Mode))
	}
	if c.Fill.Connectivity != 4 && c.Fill.Connectivity != 8 {
		err = multierr.Append(err, fmt.Errorf("%w: fill.connectivity must be 4 or 8, got %d", ErrInvalidConfig, c.Fill.Connectivity))
	}
	if p := c.Search.MinProbability; !(p >= 0 && p <= 1) {
		err = multierr.Append(err, fmt.Errorf("%w: search.min_probability must be in [0,1], got %v", ErrInvalidConfig, p))
	}

	return err
}
