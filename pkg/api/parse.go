package api

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads a .release.yaml file, layers it over the defaults,
// sets FilePath, and validates the result. Keys absent from the file
// keep their default values; lists present in the file replace the
// default lists entirely.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading configuration file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration file: %w", err)
	}

	absPath, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}
	cfg.FilePath = absPath

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration %s: %w", filename, err)
	}

	return cfg, nil
}
