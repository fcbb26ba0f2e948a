// Package config loads gridsnek settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cmars/gridsnek/graph"
	"github.com/cmars/gridsnek/hamilton"
	"github.com/cmars/gridsnek/heuristic"
)

const (
	ModeExact     = "exact"
	ModeHeuristic = "heuristic"

	FallbackHeuristic = "heuristic"
	FallbackRandom    = "random"
)

type Config struct {
	Listen    string    `yaml:"listen"`
	Debug     bool      `yaml:"debug"`
	Engine    Engine    `yaml:"engine"`
	Heuristic Heuristic `yaml:"heuristic"`
}

type Engine struct {
	// Mode is "exact" to try the Hamiltonian search first, or "heuristic".
	Mode string `yaml:"mode"`
	// Fallback is what exact mode does when the search fails.
	Fallback      string        `yaml:"fallback"`
	SearchBudget  int           `yaml:"search_budget"`
	SearchTimeout time.Duration `yaml:"search_timeout"`
	MaxNodes      int           `yaml:"max_nodes"`
	// Seed seeds the random fallback; zero seeds from the clock.
	Seed int64 `yaml:"seed"`
}

type Heuristic struct {
	Weights    heuristic.Weights    `yaml:"weights"`
	Thresholds heuristic.Thresholds `yaml:"thresholds"`
}

func Default() Config {
	return Config{
		Listen: ":3000",
		Engine: Engine{
			Mode:          ModeExact,
			Fallback:      FallbackHeuristic,
			SearchBudget:  hamilton.DefaultBudget,
			SearchTimeout: 200 * time.Millisecond,
			MaxNodes:      graph.DefaultMaxNodes,
		},
		Heuristic: Heuristic{
			Weights:    heuristic.DefaultWeights(),
			Thresholds: heuristic.DefaultThresholds(),
		},
	}
}

// Load reads path over the defaults, so a file only needs the settings it
// changes.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

var ErrInvalid = errors.New("invalid setting")

func (c Config) Validate() error {
	switch c.Engine.Mode {
	case ModeExact, ModeHeuristic:
	default:
		return fmt.Errorf("%w: engine.mode %q", ErrInvalid, c.Engine.Mode)
	}
	switch c.Engine.Fallback {
	case FallbackHeuristic, FallbackRandom:
	default:
		return fmt.Errorf("%w: engine.fallback %q", ErrInvalid, c.Engine.Fallback)
	}
	if c.Engine.SearchBudget < 0 {
		return fmt.Errorf("%w: engine.search_budget %d", ErrInvalid, c.Engine.SearchBudget)
	}
	if c.Engine.SearchTimeout < 0 {
		return fmt.Errorf("%w: engine.search_timeout %s", ErrInvalid, c.Engine.SearchTimeout)
	}
	if c.Engine.MaxNodes <= 0 {
		return fmt.Errorf("%w: engine.max_nodes %d", ErrInvalid, c.Engine.MaxNodes)
	}
	t := c.Heuristic.Thresholds
	if t.Crowded <= 0 || t.Crowded > 1 {
		return fmt.Errorf("%w: heuristic.thresholds.crowded %v", ErrInvalid, t.Crowded)
	}
	if t.EdgeMargin < 0 {
		return fmt.Errorf("%w: heuristic.thresholds.edge_margin %d", ErrInvalid, t.EdgeMargin)
	}
	return nil
}
