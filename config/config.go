package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig is the file-settable configuration for one exploration run.
// CLI flags override anything loaded from file.
type RunConfig struct {
	Length      int    `yaml:"length"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Output      string `yaml:"output"`       // Tree artifact path; derived from dimensions when empty
	GraphOutput string `yaml:"graph_output"` // Optional flattened-graph artifact path
	MaxStates   int    `yaml:"max_states"`   // 0 disables the state budget
}

// Default returns the configuration for a classic single-layer board.
func Default() RunConfig {
	return RunConfig{Length: 3, Width: 3, Height: 1}
}

// Load reads a YAML run configuration from path, applying defaults for
// unset fields.
func Load(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return RunConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations that would fail before exploration starts.
func (c RunConfig) Validate() error {
	if c.Length < 1 || c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("board dimensions must be positive, got %dx%dx%d", c.Length, c.Width, c.Height)
	}
	if c.MaxStates < 0 {
		return fmt.Errorf("max_states must not be negative, got %d", c.MaxStates)
	}
	return nil
}
