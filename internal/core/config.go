package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the platform (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FramesFor converts a duration in seconds to a whole number of frames at
// the configured tick rate. It never returns less than one frame.
func (c RuntimeConfig) FramesFor(seconds float64) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	frames := int(seconds*float64(rate) + 0.5)
	return Max(frames, 1)
}

// GameState is what the platform needs to know about a game after each frame.
type GameState struct {
	Score    int  // Cumulative score
	GameOver bool // The game has ended and waits for a new game
	Paused   bool // The game is not advancing
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
