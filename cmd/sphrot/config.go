package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/flywave/go-sphrot"
)

// Config drives the check command. Caps are polar cap half-angles as
// fractions of π, so 1 is the full sphere and 0.5 the upper hemisphere.
type Config struct {
	Samples int       `yaml:"samples"`
	From    []float64 `yaml:"from"`
	To      []float64 `yaml:"to"`
	Method  string    `yaml:"method"`
	Caps    []float64 `yaml:"caps"`
}

func DefaultConfig() Config {
	return Config{
		Samples: 500,
		From:    []float64{0, 0, 1},
		To:      []float64{1, 0, 0},
		Method:  string(sphrot.Linear),
		Caps:    []float64{1, 0.5, 0.001},
	}
}

// LoadConfig reads path over the defaults. An empty path returns the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Samples < 3 {
		return fmt.Errorf("samples must be at least 3, got %d", c.Samples)
	}
	if len(c.From) != 3 || len(c.To) != 3 {
		return fmt.Errorf("from and to need 3 components")
	}
	switch sphrot.Method(c.Method) {
	case sphrot.Linear, sphrot.Nearest:
	default:
		return fmt.Errorf("method %q: %w", c.Method, sphrot.ErrBadMethod)
	}
	for _, f := range c.Caps {
		if !(f > 0 && f <= 1) {
			return fmt.Errorf("cap fraction %v outside (0, 1]", f)
		}
	}
	return nil
}
