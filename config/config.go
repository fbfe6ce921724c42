// Package config loads the benchmark configuration of the reachlab command.
//
// Sources, in increasing priority: Default(), a YAML file, environment
// variables (REACHLAB_REPETITIONS, REACHLAB_LOG_LEVEL, REACHLAB_LOG_FORMAT).
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/reachlab/builder"
	"github.com/katalvlaran/reachlab/internal/logging"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// FamilyConfig selects one graph family and the sizes to time.
type FamilyConfig struct {
	// Name is a builder family name (path, cycle, star, grid, ...).
	Name string `json:"name" yaml:"name"`

	// Sizes are node counts, timed in order.
	Sizes []int `json:"sizes" yaml:"sizes"`

	// Probability applies to random and clustered; 0 keeps the builder default.
	Probability float64 `json:"probability,omitempty" yaml:"probability,omitempty"`

	// Seed fixes the random stream of stochastic families.
	Seed int64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	// ClusterSize applies to clustered; 0 keeps the builder default.
	ClusterSize int `json:"cluster_size,omitempty" yaml:"cluster_size,omitempty"`
}

// OutputConfig names the optional result files.
type OutputConfig struct {
	// CSV receives the sample log when non-empty.
	CSV string `json:"csv,omitempty" yaml:"csv,omitempty"`

	// Metrics receives a prometheus text exposition when non-empty.
	Metrics string `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

// LogConfig configures internal/logging.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// Config is the full benchmark configuration.
type Config struct {
	Families    []FamilyConfig `json:"families" yaml:"families"`
	Repetitions int            `json:"repetitions" yaml:"repetitions"`
	CrossCheck  bool           `json:"validate" yaml:"validate"`
	Isolate     bool           `json:"isolate" yaml:"isolate"`
	Output      OutputConfig   `json:"output" yaml:"output"`
	Log         LogConfig      `json:"log" yaml:"log"`
}

// quickSizes are the sizes of the quick path/cycle/star benchmark.
var quickSizes = []int{5, 8, 10, 12, 15, 20, 25, 30}

// Default returns the quick benchmark: path, cycle and star at 5…30 nodes,
// square grids 3×3…6×6, one repetition, validation and isolation on.
func Default() *Config {
	return &Config{
		Families: []FamilyConfig{
			{Name: builder.FamilyPath, Sizes: append([]int(nil), quickSizes...)},
			{Name: builder.FamilyCycle, Sizes: append([]int(nil), quickSizes...)},
			{Name: builder.FamilyStar, Sizes: append([]int(nil), quickSizes...)},
			{Name: builder.FamilyGrid, Sizes: []int{9, 16, 25, 36}},
		},
		Repetitions: 1,
		CrossCheck:  true,
		Isolate:     true,
		Log:         LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over Default(), applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return Parse(data)
}

// Parse is Load without the file read.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: yaml: %w", ErrInvalidConfig, err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("REACHLAB_REPETITIONS"); v != "" {
		r, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: REACHLAB_REPETITIONS=%q: %w", ErrInvalidConfig, v, err)
		}
		c.Repetitions = r
	}
	if v := os.Getenv("REACHLAB_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("REACHLAB_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}

	return nil
}

// Validate checks every field and reports the first problem.
func (c *Config) Validate() error {
	if len(c.Families) == 0 {
		return fmt.Errorf("%w: no families", ErrInvalidConfig)
	}
	for i, f := range c.Families {
		if _, err := builder.FamilyByName(f.Name); err != nil {
			return fmt.Errorf("%w: families[%d]: %w", ErrInvalidConfig, i, err)
		}
		if len(f.Sizes) == 0 {
			return fmt.Errorf("%w: families[%d] %s: no sizes", ErrInvalidConfig, i, f.Name)
		}
		for _, n := range f.Sizes {
			if n < 0 {
				return fmt.Errorf("%w: families[%d] %s: negative size %d", ErrInvalidConfig, i, f.Name, n)
			}
		}
		if math.IsNaN(f.Probability) || f.Probability < 0 || f.Probability > 1 {
			return fmt.Errorf("%w: families[%d] %s: probability %v not in [0,1]", ErrInvalidConfig, i, f.Name, f.Probability)
		}
		if f.ClusterSize < 0 {
			return fmt.Errorf("%w: families[%d] %s: cluster_size %d", ErrInvalidConfig, i, f.Name, f.ClusterSize)
		}
	}
	if c.Repetitions < 1 {
		return fmt.Errorf("%w: repetitions must be ≥ 1 (%d)", ErrInvalidConfig, c.Repetitions)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Family resolves f into a builder.Family. Stochastic families are always
// seeded, with Seed 0 being a valid seed.
func (f FamilyConfig) Family() (builder.Family, error) {
	opts := []builder.BuilderOption{builder.WithSeed(f.Seed)}
	if f.Probability > 0 {
		opts = append(opts, builder.WithProbability(f.Probability))
	}
	if f.ClusterSize > 0 {
		opts = append(opts, builder.WithClusterSize(f.ClusterSize))
	}

	return builder.FamilyByName(f.Name, opts...)
}

// YAML renders c as a YAML document.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return out, nil
}
