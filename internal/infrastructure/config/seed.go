package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/andrescamacho/supplychain-go/internal/application/seed"
)

// LoadSeed returns the world to start with: nothing when seeding is disabled,
// the demo world when no path is set, otherwise the YAML file at Path.
func (c SeedConfig) LoadSeed() (*seed.Data, error) {
	if c.Disabled {
		return &seed.Data{}, nil
	}
	if c.Path == "" {
		return seed.Default(), nil
	}
	return LoadSeedFile(c.Path)
}

// LoadSeedFile decodes and validates a seed file
func LoadSeedFile(path string) (*seed.Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var data seed.Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	if err := NewValidator().Validate(&data); err != nil {
		return nil, fmt.Errorf("invalid seed file %s: %w", path, err)
	}
	return &data, nil
}
