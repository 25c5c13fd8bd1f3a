package config

import (
	"math"

	"github.com/vovakirdan/tigrao/internal/core"
)

// Pacer turns the configured delays and the current speed multiplier into
// frame counts for the platform's fixed tick rate.
type Pacer struct {
	speed SpeedConfig
	pace  PaceConfig
	rt    core.RuntimeConfig
}

// NewPacer creates a pacer for the given configuration and runtime.
func NewPacer(cfg TigraoConfig, rt core.RuntimeConfig) *Pacer {
	return &Pacer{
		speed: cfg.Speed,
		pace:  cfg.Pace,
		rt:    rt,
	}
}

// MatchFrames returns how long matched cells stay highlighted at speed.
func (p *Pacer) MatchFrames(speed float64) int {
	return p.rt.FramesFor(p.pace.MatchDelay / p.clamp(speed))
}

// SettleFrames returns the pause between two checks at speed.
func (p *Pacer) SettleFrames(speed float64) int {
	return p.rt.FramesFor(p.pace.SettleDelay / p.clamp(speed))
}

// Faster returns speed raised by one slider step, clamped to the range.
func (p *Pacer) Faster(speed float64) float64 {
	return p.clamp(roundStep(speed + p.speed.Step))
}

// Slower returns speed lowered by one slider step, clamped to the range.
func (p *Pacer) Slower(speed float64) float64 {
	return p.clamp(roundStep(speed - p.speed.Step))
}

// Initial returns the configured starting speed.
func (p *Pacer) Initial() float64 {
	return p.clamp(p.speed.Initial)
}

func (p *Pacer) clamp(speed float64) float64 {
	lo, hi := p.speed.Min, p.speed.Max
	if lo <= 0 {
		lo = MinSpeed
	}
	if hi < lo {
		hi = lo
	}
	return core.ClampF(speed, lo, hi)
}

// roundStep snaps to two decimals so repeated 0.1 steps do not drift.
func roundStep(v float64) float64 {
	return math.Round(v*100) / 100
}
