package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all settings.
const envPrefix = "MATERNA"

// newViper builds a pre-configured viper instance with the application's
// standard settings: YAML file type, MATERNA_ env prefix, automatic env
// binding, and a key replacer mapping "." → "_" so nested keys like
// "ocr.data_path" resolve to "MATERNA_OCR_DATA_PATH".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Register every key with a zero value so environment-only overrides are
	// visible to Unmarshal; real defaults are applied by ApplyDefaults.
	v.SetDefault("log.level", "")
	v.SetDefault("log.format", "")
	v.SetDefault("log.output_paths", []string{})
	v.SetDefault("ocr.languages", []string{})
	v.SetDefault("ocr.data_path", "")
	v.SetDefault("extraction.max_text_length", 0)
	v.SetDefault("metrics.enabled", false)

	return v
}

// Load reads the YAML file at configPath, merges MATERNA_* environment
// variable overrides, applies defaults for unset fields, and validates the
// result. It returns a fully-populated *Config or a descriptive error.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from MATERNA_* environment variables
// and defaults, with no config file required. This is the path taken when the
// CLI is run without --config.
func LoadFromEnv() (*Config, error) {
	v := newViper()
	return unmarshalAndFinalize(v)
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath for changes and invokes onChange with the newly
// parsed Config whenever the file is modified on disk. Intended for
// hot-reloading non-critical settings such as log level; callers are
// responsible for applying only the safe subset of changes at runtime.
//
// Watch is non-blocking; the watching goroutine is managed by viper. A change
// that fails to parse or validate is dropped without invoking onChange so the
// application never enters a broken state.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Initial read; errors are ignored here since callers call Load first.
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			return
		}
		onChange(cfg)
	})
}
