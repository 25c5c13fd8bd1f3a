package engine

import (
	"errors"
	"fmt"
)

// Speed bounds for the pacing multiplier.
const (
	MinSpeed     = 0.5
	MaxSpeed     = 2.0
	DefaultSpeed = 1.0
)

// DefaultMaxChainPasses bounds the passes resolved by a single Tick.
const DefaultMaxChainPasses = 100

// ErrSpeedOutOfRange is returned by SetSpeed for values outside [MinSpeed, MaxSpeed].
var ErrSpeedOutOfRange = errors.New("engine: speed out of range")

// State is the session lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateEnded
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Pass records one detect, clear and fall cycle.
type Pass struct {
	Before  *Grid // board as it was scanned
	Mask    Mask  // cells matched in Before
	Score   int   // points earned by this pass
	Cleared int   // cells emptied before gravity
	After   *Grid // board after gravity and refill
}

// TickResult summarises a Tick.
type TickResult struct {
	Passes []Pass
	Score  int  // points earned during this tick
	Ended  bool // the tick found no run and ended the game
	Capped bool // the chain hit MaxChainPasses before settling
}

// Options tune a Session. Zero values select defaults.
type Options struct {
	Rows           int
	Cols           int
	Speed          float64
	MaxChainPasses int
}

// Session is the mutable state of one game. It is not safe for concurrent
// use; callers run one command at a time.
type Session struct {
	src       SymbolSource
	rows      int
	cols      int
	maxPasses int

	grid     *Grid
	score    int
	running  bool
	terminal bool
	speed    float64
	ticks    uint64
	passes   int
}

// NewSession creates an idle session with a freshly filled grid.
func NewSession(opts Options, src SymbolSource) (*Session, error) {
	if opts.Rows == 0 {
		opts.Rows = DefaultRows
	}
	if opts.Cols == 0 {
		opts.Cols = DefaultCols
	}
	if opts.Speed == 0 {
		opts.Speed = DefaultSpeed
	}
	if opts.MaxChainPasses <= 0 {
		opts.MaxChainPasses = DefaultMaxChainPasses
	}
	if opts.Speed < MinSpeed || opts.Speed > MaxSpeed {
		return nil, fmt.Errorf("%w: %.2f", ErrSpeedOutOfRange, opts.Speed)
	}

	grid, err := NewGrid(opts.Rows, opts.Cols, src)
	if err != nil {
		return nil, err
	}

	return &Session{
		src:       src,
		rows:      opts.Rows,
		cols:      opts.Cols,
		maxPasses: opts.MaxChainPasses,
		grid:      grid,
		speed:     opts.Speed,
	}, nil
}

// NewSessionWithGrid creates an idle session starting from a prepared board.
// The grid is copied; src only feeds refills and later new games.
func NewSessionWithGrid(grid *Grid, src SymbolSource) *Session {
	return &Session{
		src:       src,
		rows:      grid.Rows(),
		cols:      grid.Cols(),
		maxPasses: DefaultMaxChainPasses,
		grid:      grid.Clone(),
		speed:     DefaultSpeed,
	}
}

// Start begins or resumes play. It has no effect once the game has ended.
func (s *Session) Start() {
	if s.terminal {
		return
	}
	s.running = true
}

// Pause stops play between ticks.
func (s *Session) Pause() {
	s.running = false
}

// Toggle starts a paused game or pauses a running one.
func (s *Session) Toggle() {
	if s.running {
		s.Pause()
		return
	}
	s.Start()
}

// NewGame replaces the board, zeroes the score and starts running.
// It is available from every state, including Ended.
func (s *Session) NewGame() {
	// Dimensions were validated at construction.
	grid, _ := NewGrid(s.rows, s.cols, s.src)
	s.grid = grid
	s.score = 0
	s.terminal = false
	s.running = true
	s.ticks = 0
	s.passes = 0
}

// SetSpeed stores a new pacing multiplier. Values outside [MinSpeed, MaxSpeed]
// are rejected and the current speed is kept.
func (s *Session) SetSpeed(v float64) error {
	if v < MinSpeed || v > MaxSpeed {
		return fmt.Errorf("%w: %.2f not in [%.1f, %.1f]", ErrSpeedOutOfRange, v, MinSpeed, MaxSpeed)
	}
	s.speed = v
	return nil
}

// Tick runs one orchestration step. When the board has no run the game ends;
// otherwise passes repeat until a scan scores nothing, so chain reactions
// settle before Tick returns.
func (s *Session) Tick() TickResult {
	var res TickResult
	if !s.running || s.terminal {
		return res
	}
	s.ticks++

	if !HasAnyMatch(s.grid) {
		s.end()
		res.Ended = true
		return res
	}

	for len(res.Passes) < s.maxPasses {
		pass, ok := s.resolve()
		if !ok {
			return res
		}
		res.Passes = append(res.Passes, pass)
		res.Score += pass.Score
	}
	res.Capped = HasAnyMatch(s.grid)
	return res
}

// Step performs at most one pass. It returns false when nothing was resolved,
// either because the session is not running or because the board had no run
// and the game has just ended.
func (s *Session) Step() (Pass, bool) {
	if !s.running || s.terminal {
		return Pass{}, false
	}
	s.ticks++

	if !HasAnyMatch(s.grid) {
		s.end()
		return Pass{}, false
	}
	return s.resolve()
}

func (s *Session) resolve() (Pass, bool) {
	mask, score := Detect(s.grid)
	if score == 0 {
		return Pass{}, false
	}

	before := s.grid.Clone()
	cleared := ClearMatched(s.grid, mask)
	s.grid = ApplyGravity(s.grid, s.src)
	s.score += score
	s.passes++

	return Pass{
		Before:  before,
		Mask:    mask,
		Score:   score,
		Cleared: cleared,
		After:   s.grid.Clone(),
	}, true
}

func (s *Session) end() {
	s.terminal = true
	s.running = false
}

// Grid returns a copy of the current board.
func (s *Session) Grid() *Grid {
	return s.grid.Clone()
}

// Score returns the cumulative score.
func (s *Session) Score() int {
	return s.score
}

// Running reports whether the session advances on Tick.
func (s *Session) Running() bool {
	return s.running
}

// Terminal reports whether the game has ended.
func (s *Session) Terminal() bool {
	return s.terminal
}

// Speed returns the pacing multiplier.
func (s *Session) Speed() float64 {
	return s.speed
}

// State returns the lifecycle state.
func (s *Session) State() State {
	switch {
	case s.terminal:
		return StateEnded
	case s.running:
		return StateRunning
	default:
		return StateIdle
	}
}

// Ticks returns the number of Tick or Step calls that did work since the
// last new game.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Passes returns the number of resolved passes since the last new game.
func (s *Session) Passes() int {
	return s.passes
}

// Size returns the board dimensions.
func (s *Session) Size() (rows, cols int) {
	return s.rows, s.cols
}
