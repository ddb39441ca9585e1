package config

// Config represents the full taskmgr configuration
type Config struct {
	Version string `yaml:"version" mapstructure:"version"`

	// Task snapshot location and encoding
	Store StoreConfig `yaml:"store" mapstructure:"store" validate:"required"`

	// Diagnostic logging (stderr)
	Log LogConfig `yaml:"log" mapstructure:"log" validate:"required"`
}

// StoreConfig configures the task snapshot file
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path" validate:"required"`
	// Empty means infer from the file extension
	Format string `yaml:"format" mapstructure:"format" validate:"omitempty,oneof=json yaml yml toml"`
}

// LogConfig configures diagnostic logging
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `yaml:"format" mapstructure:"format" validate:"required,oneof=text json"`
}
