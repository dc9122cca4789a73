package config

// Config represents the complete configuration structure
type Config struct {
	PluralKit PluralKitConfig `mapstructure:"pluralkit"`
	Presets   PresetConfig    `mapstructure:"presets"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// PluralKitConfig holds PluralKit API connection details
type PluralKitConfig struct {
	// Token is the system's API token. Optional; without it only
	// public, read-only endpoints are available.
	Token             string  `mapstructure:"token"`
	BaseURL           string  `mapstructure:"base_url"`
	TimeoutSeconds    int     `mapstructure:"timeout_seconds"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// PresetConfig maps preset names to filter expressions
type PresetConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
