package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Constraints is the YAML representation of a timing constraints file.
// Every field is optional; absent fields leave the Config untouched.
//
//	tclk: 1.0
//	setup: 0.05
//	clock_to_q: 0.06
//	max_paths: 5
//	startpoint_overrides:
//	  clk_q: 0.08
//	endpoint_overrides:
//	  dout: 0.9
type Constraints struct {
	Tclk                *float64           `yaml:"tclk,omitempty"`
	Setup               *float64           `yaml:"setup,omitempty"`
	ClockToQ            *float64           `yaml:"clock_to_q,omitempty"`
	Eps                 *float64           `yaml:"eps,omitempty"`
	MaxPaths            *int               `yaml:"max_paths,omitempty"`
	StartpointOverrides map[string]float64 `yaml:"startpoint_overrides,omitempty"`
	EndpointOverrides   map[string]float64 `yaml:"endpoint_overrides,omitempty"`
}

// LoadConstraints reads a YAML constraints file and merges it over a clone
// of the given configuration. The merged result is validated before it is
// returned; the input Config is never modified.
func LoadConstraints(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConstraintsUnreadable, path, err)
	}

	var cons Constraints
	if err := yaml.Unmarshal(data, &cons); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConstraints, err)
	}

	cfg := base.Clone()
	cons.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConstraints, err)
	}
	return cfg, nil
}

// Apply merges the constraints into the configuration in place.
func (cons *Constraints) Apply(cfg *Config) {
	if cons.Tclk != nil {
		cfg.Tclk = *cons.Tclk
	}
	if cons.Setup != nil {
		cfg.Setup = *cons.Setup
	}
	if cons.ClockToQ != nil {
		cfg.ClockToQ = *cons.ClockToQ
	}
	if cons.Eps != nil {
		cfg.Eps = *cons.Eps
	}
	if cons.MaxPaths != nil {
		cfg.MaxPaths = *cons.MaxPaths
	}
	if len(cons.StartpointOverrides) > 0 {
		if cfg.StartpointOverrides == nil {
			cfg.StartpointOverrides = make(map[string]float64, len(cons.StartpointOverrides))
		}
		for k, v := range cons.StartpointOverrides {
			cfg.StartpointOverrides[k] = v
		}
	}
	if len(cons.EndpointOverrides) > 0 {
		if cfg.EndpointOverrides == nil {
			cfg.EndpointOverrides = make(map[string]float64, len(cons.EndpointOverrides))
		}
		for k, v := range cons.EndpointOverrides {
			cfg.EndpointOverrides[k] = v
		}
	}
}
