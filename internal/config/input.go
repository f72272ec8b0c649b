package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mcscylla/portfolio-simulator/internal/domain"
)

// InputParser handles parsing of simulation parameter files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a simulation configuration from a YAML file.
// Fields absent from the file keep their defaults, so a file can
// override just the parameters it cares about.
func (ip *InputParser) LoadFromFile(filename string) (*domain.SimulationConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// ValidateConfiguration validates a loaded configuration.
func (ip *InputParser) ValidateConfiguration(cfg *domain.SimulationConfig) error {
	if cfg == nil {
		return fmt.Errorf("no configuration provided")
	}
	return cfg.Validate()
}

// CreateExampleConfiguration returns the stock parameter set, suitable
// for writing out as a starter file.
func (ip *InputParser) CreateExampleConfiguration() *domain.SimulationConfig {
	cfg := domain.DefaultConfig()
	return &cfg
}

// WriteExampleFile writes the example configuration as YAML to the
// given path.
func (ip *InputParser) WriteExampleFile(filename string) error {
	cfg := ip.CreateExampleConfiguration()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal example configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
