package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/dynarray/internal/dynarray"
)

const (
	DefaultCapacity     = 5
	DefaultGrowStep     = 3
	DefaultBackend      = "file"
	DefaultDataDir      = ".dynarray"
	DefaultTraceSamples = 64
	DefaultPlotHeight   = 10
	DefaultPlotWidth    = 80
)

type Config struct {
	Capacity int         `yaml:"capacity"`
	GrowStep int         `yaml:"grow_step"`
	Styled   bool        `yaml:"styled"`
	Store    StoreConfig `yaml:"store"`
	Trace    TraceConfig `yaml:"trace"`
}

type StoreConfig struct {
	Backend string `yaml:"backend"`
	Dir     string `yaml:"dir"`
}

type TraceConfig struct {
	Samples int `yaml:"samples"`
	Height  int `yaml:"height"`
	Width   int `yaml:"width"`
}

func DefaultConfig() *Config {
	return &Config{
		Capacity: DefaultCapacity,
		GrowStep: DefaultGrowStep,
		Store: StoreConfig{
			Backend: DefaultBackend,
			Dir:     DefaultDataDir,
		},
		Trace: TraceConfig{
			Samples: DefaultTraceSamples,
			Height:  DefaultPlotHeight,
			Width:   DefaultPlotWidth,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the array parameters with the same rules the array
// applies at construction, and the store backend name.
func (c *Config) Validate() error {
	if c.Capacity < 0 {
		return dynarray.ErrInvalidCapacity
	}
	if c.GrowStep <= 0 {
		return dynarray.ErrInvalidGrowStep
	}
	switch c.Store.Backend {
	case "file", "bolt":
	default:
		return fmt.Errorf("config: unknown store backend %q", c.Store.Backend)
	}
	if c.Trace.Samples < 0 {
		return fmt.Errorf("config: negative trace samples %d", c.Trace.Samples)
	}
	return nil
}

// NewArray builds an int array from the configured capacity and step.
func (c *Config) NewArray(opts ...dynarray.Option) (*dynarray.DynamicArray[int], error) {
	return dynarray.New[int](c.Capacity, c.GrowStep, opts...)
}
