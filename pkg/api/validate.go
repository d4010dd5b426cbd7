package api

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Workspace == "" {
		return fmt.Errorf("workspace is required")
	}

	for i, pattern := range c.Clean {
		if pattern == "" {
			return fmt.Errorf("clean pattern %d: pattern is empty", i)
		}
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("clean pattern %d: %q is not a valid glob pattern", i, pattern)
		}
	}

	for i, variant := range c.Variants {
		if variant == "" {
			return fmt.Errorf("variant %d: identifier is empty", i)
		}
	}

	if len(c.Build.Command) == 0 {
		return fmt.Errorf("build.command is required")
	}
	if len(c.Image.Command) == 0 {
		return fmt.Errorf("image.command is required")
	}

	return nil
}
