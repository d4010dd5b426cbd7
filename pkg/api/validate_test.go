package api

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Workspace: ".",
		Clean:     []string{"dist"},
		Variants:  []string{"3.11", "3.12"},
		Build:     CommandConfig{Command: []string{"python", "-m", "build"}},
		Image:     CommandConfig{Command: []string{"docker", "build", "."}},
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_DefaultConfig(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default configuration must validate: %v", err)
	}
}

func TestValidate_EmptyVariantList(t *testing.T) {
	cfg := validConfig()
	cfg.Variants = nil
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty variant list must be valid: %v", err)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing workspace",
			mutate:  func(c *Config) { c.Workspace = "" },
			wantErr: "workspace is required",
		},
		{
			name:    "empty clean pattern",
			mutate:  func(c *Config) { c.Clean = []string{""} },
			wantErr: "pattern is empty",
		},
		{
			name:    "invalid clean pattern",
			mutate:  func(c *Config) { c.Clean = []string{"["} },
			wantErr: "not a valid glob pattern",
		},
		{
			name:    "empty variant",
			mutate:  func(c *Config) { c.Variants = []string{"3.11", ""} },
			wantErr: "identifier is empty",
		},
		{
			name:    "missing build command",
			mutate:  func(c *Config) { c.Build.Command = nil },
			wantErr: "build.command is required",
		},
		{
			name:    "missing image command",
			mutate:  func(c *Config) { c.Image.Command = nil },
			wantErr: "image.command is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}
