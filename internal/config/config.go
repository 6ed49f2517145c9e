package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/qwell/internal/wells"
)

const (
	DefaultBasis   = 40
	DefaultSamples = 200
	DefaultWall    = 10.0
	DefaultBarrier = 5.0
)

// Config is a problem file: a structure plus solver settings.
type Config struct {
	Name     string     `yaml:"name"`
	Vext     [2]float64 `yaml:"vext"`
	Vint     []float64  `yaml:"vint"`
	Wells    []float64  `yaml:"wells"`
	Barriers []float64  `yaml:"barriers"`
	// Placement is "shifted" (default) or "adjacent".
	Placement wells.Placement `yaml:"placement,omitempty"`
	Basis     int             `yaml:"basis"`
	Samples   int             `yaml:"samples"`
}

// DefaultConfig returns the symmetric double-well problem.
func DefaultConfig() *Config {
	return &Config{
		Name:     "double_well",
		Vext:     [2]float64{DefaultWall, DefaultWall},
		Vint:     []float64{DefaultBarrier},
		Wells:    []float64{1, 1},
		Barriers: []float64{0.5},
		Basis:    DefaultBasis,
		Samples:  DefaultSamples,
	}
}

// Load reads a YAML problem file. The structure comes from the file alone;
// a missing name, basis or samples key takes its default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Name == "" {
		cfg.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if cfg.Basis == 0 {
		cfg.Basis = DefaultBasis
	}
	if cfg.Samples == 0 {
		cfg.Samples = DefaultSamples
	}
	return cfg, nil
}

// Save writes cfg as YAML to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Structure returns a copy of the potential described by c.
func (c *Config) Structure() wells.Structure {
	return wells.Structure{
		Vext:      c.Vext,
		Vint:      append([]float64(nil), c.Vint...),
		Wells:     append([]float64(nil), c.Wells...),
		Barriers:  append([]float64(nil), c.Barriers...),
		Placement: c.Placement,
	}
}

// Validate checks the structure and the basis size. Errors wrap the wells
// sentinels, including wells.ErrBasisSize for a basis below 1.
func (c *Config) Validate() error {
	if err := c.Structure().Validate(); err != nil {
		return err
	}
	if c.Basis < 1 {
		return fmt.Errorf("%w: got %d", wells.ErrBasisSize, c.Basis)
	}
	return nil
}
