// Package config provides configuration loading for the terrapath tools.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"terrapath/internal/mapgen"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds world, pathfinding and generator parameters.
type Config struct {
	World       WorldConfig       `yaml:"world"`
	Pathfinding PathfindingConfig `yaml:"pathfinding"`
	Generator   mapgen.Options    `yaml:"generator"`
}

// WorldConfig holds the world extent and grid resolution.
type WorldConfig struct {
	Width    float64 `yaml:"width"`     // world width in world units
	Height   float64 `yaml:"height"`    // world height in world units
	CellSize float64 `yaml:"cell_size"` // world units per grid cell
}

// PathfindingConfig holds search limits.
type PathfindingConfig struct {
	MaxNodes int `yaml:"max_nodes"` // node-expansion cap per search, 0 = unbounded
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields present
		// in the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
