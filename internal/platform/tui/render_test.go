package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tigrao/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "score")
	s.SetWide(0, 1, '🐯', core.Fg(core.ColorGold).With(core.AttrReverse))
	s.DrawStyledText(3, 1, "ok", core.Fg(core.ColorGreen))

	out := ansi.Strip(RenderScreen(s))

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, want 2", len(lines))
	}
	if lines[0] != "score " {
		t.Errorf("line 0 = %q, want %q", lines[0], "score ")
	}
	if lines[1] != "🐯 ok " {
		t.Errorf("line 1 = %q, want %q", lines[1], "🐯 ok ")
	}
}

func TestLipglossStyleAttributes(t *testing.T) {
	st := lipglossStyle(core.Fg(core.ColorRed).With(core.AttrBold | core.AttrReverse))
	if !st.GetBold() || !st.GetReverse() {
		t.Error("bold and reverse should carry over")
	}
	if st.GetBlink() {
		t.Error("blink was not requested")
	}
}
