package tigrao

import (
	"fmt"

	"github.com/vovakirdan/tigrao/internal/core"
	"github.com/vovakirdan/tigrao/internal/games/tigrao/engine"
)

const (
	cellWidth  = 3 // glyph (2 columns) + gap
	hudHeight  = 3 // title, score line, blank
	footHeight = 3 // blank, status, keys
	minWidth   = 60
	minHeight  = 20 // room for the help overlay
)

var (
	titleStyle   = core.Fg(core.ColorGold).With(core.AttrBold)
	borderStyle  = core.Fg(core.ColorOrange)
	matchStyle   = core.Fg(core.ColorGold).With(core.AttrReverse | core.AttrBold)
	hudStyle     = core.Fg(core.ColorWhite)
	runningStyle = core.Fg(core.ColorGreen).With(core.AttrBold)
	idleStyle    = core.Fg(core.ColorYellow)
	endedStyle   = core.Fg(core.ColorRed).With(core.AttrBold)
	keysStyle    = core.Fg(core.ColorGray)
)

// layoutSize returns the screen area needed for a board of the given size.
func layoutSize(rows, cols int) (w, h int) {
	return core.Max(cols*cellWidth+3, minWidth), core.Max(rows+2+hudHeight+footHeight, minHeight)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	rows, cols := g.session.Size()
	boardW, boardH := cols*cellWidth+3, rows+2
	box := core.NewRect((g.screenW-boardW)/2, hudHeight, boardW, boardH)

	g.renderHUD(dst)
	g.renderBoard(dst, box)
	g.renderFooter(dst, box.Bottom())

	if g.showHelp {
		g.renderHelp(dst)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.Plain)
	w, h := layoutSize(g.session.Size())
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", w, h), core.Plain)
}

// renderHUD draws the title, score and speed.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, "T I G R Ã O", titleStyle)

	state := g.session.State()
	stateStyle := idleStyle
	switch state {
	case engine.StateRunning:
		stateStyle = runningStyle
	case engine.StateEnded:
		stateStyle = endedStyle
	}

	score := fmt.Sprintf("Score: %-6d Speed: %.1fx  ", g.session.Score(), g.session.Speed())
	label := fmt.Sprintf("[%s]", state)
	x := (g.screenW - len(score) - len(label)) / 2
	dst.DrawStyledText(x, 1, score, hudStyle)
	dst.DrawStyledText(x+len(score), 1, label, stateStyle)
}

// renderBoard draws the grid. While a pass is highlighted, the board as it
// was scanned is shown with the matched cells marked.
func (g *Game) renderBoard(dst *core.Screen, box core.Rect) {
	dst.DrawBox(box, borderStyle)

	grid := g.session.Grid()
	var mask engine.Mask
	if g.lastPass != nil {
		grid = g.lastPass.Before
		mask = g.lastPass.Mask
	}

	for r := range grid.Rows() {
		for c := range grid.Cols() {
			st := core.Plain
			if g.lastPass != nil && mask.At(r, c) {
				st = matchStyle
			}
			x := box.X + 2 + c*cellWidth
			dst.SetWide(x, box.Y+1+r, grid.At(r, c).Glyph(), st)
		}
	}
}

// renderFooter draws the status line and the key reminder.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	var status string
	st := hudStyle
	switch {
	case g.session.Terminal():
		status = fmt.Sprintf("No more matches! Final score %d. Press N for a new game.", g.session.Score())
		st = endedStyle
	case g.lastPass != nil:
		status = fmt.Sprintf("+%d points", g.lastPass.Score)
		if g.chain > 1 {
			status += fmt.Sprintf("  chain x%d", g.chain)
		}
		st = titleStyle
	case !g.session.Running():
		status = "Paused. Press SPACE to start."
		st = idleStyle
	}
	dst.DrawTextCentered(y+1, status, st)
	dst.DrawTextCentered(y+2, "SPACE start/pause  N new  +/- speed  ? help  Q quit", keysStyle)
}

var helpLines = []string{
	"HOW TO PLAY",
	"",
	"The board checks itself for runs of three",
	"identical symbols in a row or a column.",
	"",
	"  3 in a row ........ 10 points",
	"  4 in a row ........ 15 points",
	"",
	"Matched tiles vanish, the rest fall down",
	"and new symbols drop in from the top.",
	"The game ends when no run of three is left.",
	"",
}

// renderHelp draws the rules and the symbol legend over the board.
func (g *Game) renderHelp(dst *core.Screen) {
	width := 0
	for _, line := range helpLines {
		width = core.Max(width, len([]rune(line)))
	}
	legendRows := (engine.SymbolCount + 1) / 2
	box := dst.Bounds().Centered(width+4, len(helpLines)+legendRows+4)

	dst.FillRect(box, ' ', core.Plain)
	dst.DrawBox(box, titleStyle)

	y := box.Y + 1
	for i, line := range helpLines {
		st := core.Plain
		if i == 0 {
			st = titleStyle
		}
		dst.DrawStyledText(box.X+2, y, line, st)
		y++
	}

	for i, sym := range engine.Alphabet {
		x := box.X + 2 + (i%2)*(width/2)
		row := y + i/2
		dst.SetWide(x, row, sym.Glyph(), core.Plain)
		dst.DrawText(x+3, row, sym.String())
	}

	dst.DrawStyledText(box.X+2, box.Bottom()-2, "Press ? to close", keysStyle)
}
