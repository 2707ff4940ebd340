// Package config handles configuration loading for coinwatch. It reads
// an optional YAML config file with environment variable overrides; the
// built-in defaults are enough to run without any file at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	API     APIConfig     `mapstructure:"api"     yaml:"api"`
	News    NewsConfig    `mapstructure:"news"    yaml:"news"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// APIConfig holds coinpaprika API settings.
type APIConfig struct {
	BaseURL    string `mapstructure:"base_url"    yaml:"base_url"`
	Key        string `mapstructure:"key"         yaml:"key"` // pro key, optional
	TimeoutSec int    `mapstructure:"timeout_sec" yaml:"timeout_sec"`
}

// Timeout returns the HTTP timeout as a duration.
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSec) * time.Second
}

// NewsConfig holds the RSS news feed list. An empty list means the
// built-in default feeds.
type NewsConfig struct {
	Feeds []FeedConfig `mapstructure:"feeds" yaml:"feeds"`
}

// FeedConfig is one configured RSS feed.
type FeedConfig struct {
	Name string `mapstructure:"name" yaml:"name"`
	URL  string `mapstructure:"url"  yaml:"url"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml
//  2. ~/.coinwatch/config.yaml
//  3. /etc/coinwatch/config.yaml
//
// Environment variables override file values, prefixed COINWATCH_,
// e.g., COINWATCH_API_KEY or COINWATCH_LOGGING_LEVEL.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".coinwatch"))
	v.AddConfigPath("/etc/coinwatch")

	v.SetEnvPrefix("COINWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file is fine; defaults plus env vars apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("COINWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// setDefaults sets the built-in defaults for all config values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "https://api.coinpaprika.com/v1")
	v.SetDefault("api.timeout_sec", 30)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// overrideFromEnv explicitly reads sensitive keys from the environment.
func overrideFromEnv(cfg *Config) {
	if key := os.Getenv("COINWATCH_API_KEY"); key != "" {
		cfg.API.Key = key
	}
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
