// Package engineconfig loads the YAML configuration for the folp command
// line tool: which SMT backend to dial, and which encoding knobs to pass
// through to the encoder. Library packages never parse YAML themselves —
// only this ambient layer does, the same split the teacher draws between
// its declarative funxy.yaml loader and the packages that actually consume
// the parsed values.
package engineconfig

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level folp.yaml configuration.
type Config struct {
	// Backend describes how to reach the SMT oracle.
	Backend BackendConfig `yaml:"backend"`
	// Encoding carries the encoder options this run should apply.
	Encoding EncodingConfig `yaml:"encoding,omitempty"`
	// Logging selects the ambient logger's verbosity.
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// BackendConfig addresses the gRPC SMT bridge.
type BackendConfig struct {
	// Target is the gRPC dial target (host:port, or a resolver-prefixed
	// name such as "dns:///solver.internal:443").
	Target string `yaml:"target"`
	// Timeout is one deadline shared by all of folp check's round trips
	// (the batched Asserts and the CheckSat call together). Zero leaves
	// the CLI's built-in default deadline in force.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// EncodingConfig carries knobs for the SNF encoding pass.
type EncodingConfig struct {
	// AnchorPrefix overrides the surrogate tag used for the formula's
	// top-level anchor predicate. Empty keeps the encoder's default.
	AnchorPrefix string `yaml:"anchor_prefix,omitempty"`
}

// LoggingConfig selects logger verbosity.
type LoggingConfig struct {
	Verbose bool `yaml:"verbose,omitempty"`
}

// Load reads and parses path as folp.yaml content.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses raw YAML bytes. path is used only in error messages.
func Parse(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) validate(path string) error {
	if c.Backend.Target == "" {
		return fmt.Errorf("%s: backend.target is required", path)
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Encoding.AnchorPrefix == "" {
		c.Encoding.AnchorPrefix = "phi"
	}
}
