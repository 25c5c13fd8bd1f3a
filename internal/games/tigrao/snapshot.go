package tigrao

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Variant   string
	Score     int
	Speed     float64
	State     string // engine state: idle, running, ended
	Highlight bool   // a matched pass is on display
	Countdown int    // frames left in the current phase
	Passes    int
	BestChain int
	Board     string // short names, one row per line
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Variant:   g.variant.ID,
		Score:     g.session.Score(),
		Speed:     g.session.Speed(),
		State:     g.session.State().String(),
		Highlight: g.lastPass != nil,
		Countdown: g.countdown,
		Passes:    g.session.Passes(),
		BestChain: g.bestChain,
		Board:     g.session.Grid().String(),
	}
}
