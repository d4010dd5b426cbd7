package api

// Config is the .release.yaml configuration format. It is assembled once
// at startup and treated as read-only for the rest of the run.
type Config struct {
	// Workspace is the directory the pipeline operates on. Clean patterns
	// are resolved against it and collaborators run with it as their
	// working directory.
	Workspace string `yaml:"workspace"`

	// Clean lists glob patterns (relative to Workspace) of stale build
	// output to remove before building.
	Clean []string `yaml:"clean"`

	// Variants is the ordered list of runtime-version identifiers to
	// build images for. Order is preserved exactly as declared.
	Variants []string `yaml:"variants"`

	Build CommandConfig `yaml:"build"`
	Image CommandConfig `yaml:"image"`

	// Set by the loader, not from YAML.
	FilePath string `yaml:"-"`
}

// CommandConfig holds the argv of an external collaborator command.
// For the image command, each element is a template rendered per variant
// with {{ .Variant }} and {{ .Workspace }} available.
type CommandConfig struct {
	Command []string `yaml:"command"`
}
