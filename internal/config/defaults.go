package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultStorePath is the snapshot file used when none is configured
const DefaultStorePath = "tasks.json"

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Store: StoreConfig{
			Path: DefaultStorePath,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

const defaultContent = `# taskmgr configuration
version: "1"

# Task snapshot file. Relative paths are resolved against the working
# directory; a leading ~/ is expanded to the home directory.
store:
  path: tasks.json
  # json, yaml or toml. Empty infers the format from the file extension.
  format: ""

# Diagnostic logging, written to stderr
log:
  level: warn   # debug, info, warn, error
  format: text  # text or json
`

// WriteDefault writes the default configuration to path.
// An existing file is left untouched unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return os.WriteFile(path, []byte(defaultContent), 0644)
}
