package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Journal store backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Journal JournalConfig `mapstructure:"journal"`
	Log     LogConfig     `mapstructure:"log"`
}

// JournalConfig holds journal store configuration
type JournalConfig struct {
	Path    string `mapstructure:"path"`
	Backend string `mapstructure:"backend"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("journal.path", "lifelog.json")
	v.SetDefault("journal.backend", BackendJSON)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read from environment variables
	v.SetEnvPrefix("LIFELOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Also bind to short environment variables
	v.BindEnv("journal.path", "LIFELOG_JOURNAL")
	v.BindEnv("log.level", "LIFELOG_LOG_LEVEL")

	// Read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// It's okay if config file doesn't exist
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that all required configuration values are present
func (c *Config) Validate() error {
	if c.Journal.Path == "" {
		return fmt.Errorf("journal path is required")
	}
	switch c.Journal.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("unknown journal backend %q (want %q or %q)", c.Journal.Backend, BackendJSON, BackendSQLite)
	}
	return nil
}
