package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load loads the configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".pkctl"))
		}

		// Check /etc
		v.AddConfigPath("/etc/pkctl/")
	}

	// Allow PKCTL_PLURALKIT_TOKEN etc. to override file values
	v.SetEnvPrefix("pkctl")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file; a missing file is fine when the token comes
	// from the environment
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// PluralKit defaults
	v.SetDefault("pluralkit.base_url", "https://api.pluralkit.me/v2/")
	v.SetDefault("pluralkit.timeout_seconds", 30)
	v.SetDefault("pluralkit.requests_per_second", 2)
	v.SetDefault("pluralkit.burst", 2)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.PluralKit.BaseURL == "" {
		return fmt.Errorf("pluralkit.base_url is required")
	}
	if _, err := url.Parse(cfg.PluralKit.BaseURL); err != nil {
		return fmt.Errorf("invalid pluralkit.base_url: %w", err)
	}

	if cfg.PluralKit.TimeoutSeconds <= 0 {
		return fmt.Errorf("pluralkit.timeout_seconds must be positive")
	}
	if cfg.PluralKit.RequestsPerSecond <= 0 {
		return fmt.Errorf("pluralkit.requests_per_second must be positive")
	}
	if cfg.PluralKit.Burst <= 0 {
		return fmt.Errorf("pluralkit.burst must be positive")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
