// Package config provides YAML-based configuration loading for the Tigrão
// board variants and the pacing of their animation.
package config

import (
	"errors"
	"fmt"
)

// Speed limits accepted from configuration. They mirror the engine bounds.
const (
	MinSpeed = 0.5
	MaxSpeed = 2.0
)

// minBoard is the smallest board edge that can hold a run of three.
const minBoard = 3

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// TigraoConfig contains all configuration for the Tigrão simulation.
type TigraoConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Speed  SpeedConfig  `yaml:"speed"`
	Pace   PaceConfig   `yaml:"pace"`
	Engine EngineConfig `yaml:"engine"`
}

// BoardConfig sets the default board size. Variants may override it.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// SpeedConfig defines the speed multiplier slider.
type SpeedConfig struct {
	Initial float64 `yaml:"initial"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Step    float64 `yaml:"step"`
}

// PaceConfig holds the animation delays, in seconds at speed 1.0.
type PaceConfig struct {
	MatchDelay  float64 `yaml:"match_delay"`  // matched cells stay highlighted
	SettleDelay float64 `yaml:"settle_delay"` // pause between two checks
}

// EngineConfig tunes the simulation itself.
type EngineConfig struct {
	MaxChainPasses int `yaml:"max_chain_passes"`
}

// Validate checks that the configuration describes a playable board and a
// speed slider inside the supported range.
func (c TigraoConfig) Validate() error {
	if c.Board.Rows < minBoard || c.Board.Cols < minBoard {
		return fmt.Errorf("%w: board %dx%d, both sides must be at least %d",
			ErrInvalidConfig, c.Board.Rows, c.Board.Cols, minBoard)
	}
	s := c.Speed
	if s.Min < MinSpeed || s.Max > MaxSpeed || s.Min > s.Max {
		return fmt.Errorf("%w: speed range [%.2f, %.2f] outside [%.1f, %.1f]",
			ErrInvalidConfig, s.Min, s.Max, MinSpeed, MaxSpeed)
	}
	if s.Initial < s.Min || s.Initial > s.Max {
		return fmt.Errorf("%w: initial speed %.2f outside [%.2f, %.2f]",
			ErrInvalidConfig, s.Initial, s.Min, s.Max)
	}
	if s.Step <= 0 {
		return fmt.Errorf("%w: speed step must be positive", ErrInvalidConfig)
	}
	if c.Pace.MatchDelay < 0 || c.Pace.SettleDelay < 0 {
		return fmt.Errorf("%w: negative pace delay", ErrInvalidConfig)
	}
	if c.Engine.MaxChainPasses < 0 {
		return fmt.Errorf("%w: max_chain_passes must not be negative", ErrInvalidConfig)
	}
	return nil
}
