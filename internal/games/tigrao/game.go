// Package tigrao adapts the match-3 engine to the terminal platform: it paces
// engine passes into frames, maps actions to session commands and draws the
// board.
package tigrao

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/vovakirdan/tigrao/internal/config"
	"github.com/vovakirdan/tigrao/internal/core"
	"github.com/vovakirdan/tigrao/internal/games/tigrao/engine"
	"github.com/vovakirdan/tigrao/internal/registry"
)

// Variant describes a registered board. Zero sizes use the configured board.
type Variant struct {
	ID    string
	Title string
	Rows  int
	Cols  int
}

// Variants are the boards offered by the menus and the CLI.
var Variants = []Variant{
	{ID: "tigrao", Title: "Tigrão"},
	{ID: "tigrao_mini", Title: "Tigrão Mini", Rows: 5, Cols: 5},
	{ID: "tigrao_big", Title: "Tigrão Big", Rows: 10, Cols: 12},
}

var (
	cfgMu     sync.RWMutex
	activeCfg = config.DefaultTigraoConfig()
)

// SetConfig replaces the configuration used by games reset afterwards.
func SetConfig(cfg config.TigraoConfig) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	activeCfg = cfg
}

// Config returns the configuration new games are built with.
func Config() config.TigraoConfig {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return activeCfg
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// phase is where the game is within one detect, highlight and settle cycle.
type phase int

const (
	phaseSettle    phase = iota // waiting before the next check
	phaseHighlight              // matched cells are shown before they fall
)

// Game runs one engine session inside the platform frame loop.
type Game struct {
	variant Variant
	cfg     config.TigraoConfig
	pacer   *config.Pacer
	session *engine.Session
	tick    uint64

	startSpeed float64 // overrides the configured initial speed when set

	phase     phase
	countdown int
	lastPass  *engine.Pass // shown while highlighting
	chain     int          // passes since the board last settled
	bestChain int

	showHelp bool
	tooSmall bool
	screenW  int
	screenH  int
}

// New creates a game for the given variant. Reset must be called before use.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Description returns the board size for listings.
func (g *Game) Description() string {
	rows, cols := g.boardSize(Config())
	return fmt.Sprintf("%dx%d board", rows, cols)
}

// BoardSize reports the board a registered variant plays on with the current
// configuration.
func BoardSize(id string) (rows, cols int, ok bool) {
	for _, v := range Variants {
		if v.ID == id {
			rows, cols = New(v).boardSize(Config())
			return rows, cols, true
		}
	}
	return 0, 0, false
}

func (g *Game) boardSize(cfg config.TigraoConfig) (rows, cols int) {
	rows, cols = g.variant.Rows, g.variant.Cols
	if rows == 0 {
		rows = cfg.Board.Rows
	}
	if cols == 0 {
		cols = cfg.Board.Cols
	}
	return rows, cols
}

// Reset builds a new idle session seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = Config()
	g.pacer = config.NewPacer(g.cfg, cfg)

	speed := g.pacer.Initial()
	if g.startSpeed > 0 {
		speed = core.ClampF(g.startSpeed, g.cfg.Speed.Min, g.cfg.Speed.Max)
	}

	rows, cols := g.boardSize(g.cfg)
	src := engine.NewRandSourceFrom(rand.New(rand.NewSource(cfg.Seed)))
	session, err := engine.NewSession(engine.Options{
		Rows:           rows,
		Cols:           cols,
		Speed:          speed,
		MaxChainPasses: g.cfg.Engine.MaxChainPasses,
	}, src)
	if err != nil {
		// The configuration was validated on load; fall back to the defaults.
		session, _ = engine.NewSession(engine.Options{}, src)
	}

	g.session = session
	g.tick = 0
	g.resetCycle()
	g.bestChain = 0
	g.showHelp = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()
}

// SetStartSpeed chooses the speed of games reset afterwards.
func (g *Game) SetStartSpeed(v float64) {
	g.startSpeed = v
}

// resetCycle makes the next running frame check the board immediately.
func (g *Game) resetCycle() {
	g.phase = phaseSettle
	g.countdown = 0
	g.lastPass = nil
	g.chain = 0
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	w, h := layoutSize(g.session.Size())
	g.tooSmall = g.screenW < w || g.screenH < h
}

// Resize adapts the layout to a new screen size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionHelp) {
		g.showHelp = !g.showHelp
	}

	restarted := in.Has(core.ActionRestart)
	if restarted {
		g.session.NewGame()
		g.resetCycle()
	}

	// A new game is already running; a toggle in the same frame would pause it.
	if !restarted && (in.Has(core.ActionToggle) || in.Has(core.ActionConfirm)) {
		g.session.Toggle()
	}

	switch {
	case in.Has(core.ActionSpeedUp):
		g.setSpeed(g.pacer.Faster(g.session.Speed()))
	case in.Has(core.ActionSpeedDown):
		g.setSpeed(g.pacer.Slower(g.session.Speed()))
	}

	if g.tooSmall || g.showHelp || !g.session.Running() {
		return core.StepResult{State: g.State()}
	}

	if g.countdown > 0 {
		g.countdown--
		return core.StepResult{State: g.State()}
	}

	g.advance()
	return core.StepResult{State: g.State()}
}

// advance moves to the next phase once the current delay has run out.
func (g *Game) advance() {
	speed := g.session.Speed()

	switch g.phase {
	case phaseSettle:
		pass, ok := g.session.Step()
		if !ok {
			// No run left: the session has ended.
			g.lastPass = nil
			return
		}
		g.lastPass = &pass
		g.chain++
		g.bestChain = core.Max(g.bestChain, g.chain)
		g.phase = phaseHighlight
		g.countdown = g.pacer.MatchFrames(speed)

	case phaseHighlight:
		g.lastPass = nil
		g.phase = phaseSettle
		g.countdown = g.pacer.SettleFrames(speed)
		if !engine.HasAnyMatch(g.session.Grid()) {
			g.chain = 0
		}
	}
}

// setSpeed applies an already clamped speed.
func (g *Game) setSpeed(v float64) {
	//nolint:errcheck // pacer output is already inside the engine range
	g.session.SetSpeed(v)
}

// Speed returns the current speed multiplier.
func (g *Game) Speed() float64 {
	return g.session.Speed()
}

// Highlighting reports whether matched cells are currently on display.
func (g *Game) Highlighting() bool {
	return g.lastPass != nil
}

// RunStats reports the figures stored alongside a final score.
func (g *Game) RunStats() (passes, rows, cols int) {
	rows, cols = g.session.Size()
	return g.session.Passes(), rows, cols
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Terminal(),
		Paused:   !g.session.Running() && !g.session.Terminal(),
	}
}
