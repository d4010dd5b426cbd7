package api

// DefaultConfigFilename is looked up in the workspace when no explicit
// configuration file is given.
const DefaultConfigFilename = ".release.yaml"

// DefaultConfig mirrors the conventional Python release flow: clean the
// sdist/wheel output, build with the build frontend, then build one
// container image per supported interpreter version.
func DefaultConfig() *Config {
	return &Config{
		Workspace: ".",
		Clean:     []string{"dist", "*.egg-info"},
		Variants:  []string{"3.9", "3.10", "3.11", "3.12"},
		Build: CommandConfig{
			Command: []string{"python", "-m", "build"},
		},
		Image: CommandConfig{
			Command: []string{
				"docker", "build",
				"--build-arg", "PYTHON_VERSION={{ .Variant }}",
				"-t", "pysqlsync:py{{ .Variant }}",
				".",
			},
		},
	}
}
