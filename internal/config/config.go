// Package config is the YAML run configuration of the bitops command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/celestiaorg/go-bitops/bench"
	"github.com/celestiaorg/go-bitops/strategy"
)

const (
	// All selects every preset.
	All = "all"
	// Default selects the preset best suited to the running CPU.
	Default = "default"
	// Custom selects the Custom selection.
	Custom = "custom"
)

var (
	ErrNoVariants = errors.New("no variants selected")
	ErrNoCustom   = errors.New("custom variant selected without a custom selection")
	ErrIterations = errors.New("iterations must be positive")
)

// Config is one run of the command.
type Config struct {
	// Variants are preset names, or All, Default or Custom.
	Variants    []string            `yaml:"variants"`
	Custom      *strategy.Selection `yaml:"custom,omitempty"`
	Color       bool                `yaml:"color"`
	Iterations  int                 `yaml:"iterations"`
	SkipReflect bool                `yaml:"skip_reflect"`
	Linearity   bool                `yaml:"linearity"`
	LogLevel    string              `yaml:"log_level"`
}

// DefaultConfig runs every preset with the standard iteration count.
func DefaultConfig() *Config {
	return &Config{
		Variants:   []string{All},
		Color:      true,
		Iterations: bench.Iterations,
		LogLevel:   "info",
	}
}

// Load reads the configuration at path over the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks the fields that do not need a strategy build.
func (c *Config) Validate() error {
	if len(c.Variants) == 0 {
		return ErrNoVariants
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: %d", ErrIterations, c.Iterations)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty level is info.
func (c *Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// Sets builds the selected strategy Sets in the order listed. A Set listed
// twice is built twice.
func (c *Config) Sets() ([]*strategy.Set, error) {
	if len(c.Variants) == 0 {
		return nil, ErrNoVariants
	}
	var sets []*strategy.Set
	for _, name := range c.Variants {
		switch name {
		case All:
			sets = append(sets, strategy.All()...)
		case Default:
			sets = append(sets, strategy.Default())
		case Custom:
			if c.Custom == nil {
				return nil, ErrNoCustom
			}
			s, err := strategy.Build(*c.Custom)
			if err != nil {
				return nil, fmt.Errorf("custom: %w", err)
			}
			s.Name = Custom
			sets = append(sets, s)
		default:
			s, err := strategy.Preset(name)
			if err != nil {
				return nil, err
			}
			sets = append(sets, s)
		}
	}
	return sets, nil
}
