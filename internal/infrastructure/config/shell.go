package config

// SeedConfig controls the initial world
type SeedConfig struct {
	// YAML file describing producers, factories, markets and customers.
	// Empty means the built-in demo world.
	Path string `mapstructure:"path"`

	// Start with an empty world
	Disabled bool `mapstructure:"disabled"`
}

// ShellConfig tunes the interactive shell
type ShellConfig struct {
	Prompt string `mapstructure:"prompt"`

	// Echo each script line before executing it
	Echo bool `mapstructure:"echo"`
}
