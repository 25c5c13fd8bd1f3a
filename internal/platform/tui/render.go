package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tigrao/internal/core"
)

// colorCodes maps core.Color to ANSI 256-colour codes.
var colorCodes = map[core.Color]string{
	core.ColorRed:     "1",
	core.ColorGreen:   "2",
	core.ColorYellow:  "3",
	core.ColorBlue:    "4",
	core.ColorMagenta: "5",
	core.ColorCyan:    "6",
	core.ColorWhite:   "7",
	core.ColorGray:    "245",
	core.ColorOrange:  "208",
	core.ColorGold:    "220",
}

// lipglossStyle converts a cell style to a lipgloss style.
func lipglossStyle(st core.Style) lipgloss.Style {
	s := lipgloss.NewStyle()
	if code, ok := colorCodes[st.Color]; ok {
		s = s.Foreground(lipgloss.Color(code))
	}
	if st.Attr.Has(core.AttrBold) {
		s = s.Bold(true)
	}
	if st.Attr.Has(core.AttrReverse) {
		s = s.Reverse(true)
	}
	if st.Attr.Has(core.AttrBlink) {
		s = s.Blink(true)
	}
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[core.Style]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Style

			// Collect consecutive cells with the same style
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != start {
					break
				}
				if !s.IsWideTail(x, y) {
					run.WriteRune(cell.Rune)
				}
				x++
			}

			if start == core.Plain {
				sb.WriteString(run.String())
				continue
			}
			style, ok := styles[start]
			if !ok {
				style = lipglossStyle(start)
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
