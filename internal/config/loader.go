package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is the prefix of every environment override.
	EnvPrefix = "PATHFILL_"
	// configKey names the env variable (after the prefix) holding a config file path.
	configKey = "CONFIG"
)

// Loader assembles a Config from its sources.
type Loader struct {
	k          *koanf.Koanf
	configFile string
	envPrefix  string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithConfigFile sets an explicit YAML file; it takes priority over PATHFILL_CONFIG.
func WithConfigFile(path string) LoaderOption {
	return func(l *Loader) {
		l.configFile = path
	}
}

// WithEnvPrefix overrides the environment prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// NewLoader returns a Loader with the given options applied.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: EnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Defaults returns the built-in settings as flat koanf keys.
func Defaults() map[string]any {
	return map[string]any{
		"log.level":        "info",
		"log.format":       "console",
		"log.file":         "",
		"log.max_size_mb":  10,
		"log.max_backups":  3,
		"log.max_age_days": 7,

		"fill.mode":         "bfs",
		"fill.connectivity": 4,

		"search.min_probability": 0.0,
	}
}

// Load merges defaults < YAML file < environment, then validates.
// A missing file is an error only when one was requested.
func (l *Loader) Load() (*Config, error) {
	if err := l.k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	path := l.configFile
	if path == "" {
		path = os.Getenv(l.envPrefix + configKey)
	}
	if path != "" {
		if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := l.k.Load(env.ProviderWithValue(l.envPrefix, ".", l.envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps PATHFILL_LOG_MAX_SIZE_MB to log.max_size_mb: the first
// underscore separates the section, the rest belong to the field name.
// The config-path variable is skipped.
func (l *Loader) envKey(envKey, value string) (string, any) {
	key := strings.TrimPrefix(envKey, l.envPrefix)
	if key == configKey {
		return "", nil
	}

	return strings.Replace(strings.ToLower(key), "_", ".", 1), value
}

// Load is NewLoader(opts...).Load().
func Load(opts ...LoaderOption) (*Config, error) {
	return NewLoader(opts...).Load()
}
