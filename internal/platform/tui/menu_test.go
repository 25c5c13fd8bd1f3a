package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tigrao/internal/core"
	"github.com/vovakirdan/tigrao/internal/registry"
	"github.com/vovakirdan/tigrao/internal/storage"
)

func init() {
	registry.Register("fake", func() registry.Game { return &fakeGame{endAt: 3} })
}

func TestMenuSelectsBoard(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	if _, _, err := store.SaveRun(storage.Run{GameID: "fake", Score: 120}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if !strings.Contains(m.View(), "best 120") {
		t.Errorf("menu should show the high score:\n%s", m.View())
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	menu := next.(MenuModel)
	if cmd == nil || menu.Selected() == nil {
		t.Fatal("enter should select the board under the cursor")
	}
	if menu.Selected().GameID != registry.List()[0].ID {
		t.Errorf("selected %q, want the first board", menu.Selected().GameID)
	}
}

func TestMenuScoreboardAndResize(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(MenuModel)
	if cfg := m.Config(); cfg.ScreenW != 100 || cfg.ScreenH != 40 {
		t.Errorf("Config() = %dx%d, want 100x40", cfg.ScreenW, cfg.ScreenH)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
}

func TestSpeedMenu(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		speed    float64
		choosing bool
		back     bool
	}{
		{
			name:  "start with default speed",
			keys:  []tea.KeyMsg{{Type: tea.KeyEnter}},
			speed: 0,
		},
		{
			name: "pick a faster speed",
			keys: []tea.KeyMsg{
				{Type: tea.KeyDown},
				{Type: tea.KeyEnter}, // open the picker at 1.0x
				{Type: tea.KeyDown},
				{Type: tea.KeyDown},
				{Type: tea.KeyEnter},
			},
			speed: 1.2,
		},
		{
			name: "slowest speed",
			keys: []tea.KeyMsg{
				{Type: tea.KeyDown},
				{Type: tea.KeyEnter},
				{Type: tea.KeyUp}, {Type: tea.KeyUp}, {Type: tea.KeyUp},
				{Type: tea.KeyUp}, {Type: tea.KeyUp}, {Type: tea.KeyUp},
				{Type: tea.KeyEnter},
			},
			speed: 0.5,
		},
		{
			name:     "back leaves the picker",
			keys:     []tea.KeyMsg{{Type: tea.KeyEsc}},
			choosing: true,
			back:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSpeedMenuModel("Tigrão", 80, 24)
			for _, k := range tt.keys {
				next, _ := m.Update(k)
				m = next.(SpeedMenuModel)
			}
			if m.Speed() != tt.speed {
				t.Errorf("Speed() = %v, want %v", m.Speed(), tt.speed)
			}
			if m.IsChoosing() != tt.choosing {
				t.Errorf("IsChoosing() = %v, want %v", m.IsChoosing(), tt.choosing)
			}
			if m.WantsBack() != tt.back {
				t.Errorf("WantsBack() = %v, want %v", m.WantsBack(), tt.back)
			}
		})
	}
}

func TestScoreboardShowsScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, score := range []int{1500, 40} {
		if _, _, err := store.SaveRun(storage.Run{GameID: "fake", Score: score, Passes: 3, Rows: 8, Cols: 8}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	for i, info := range m.boards {
		if info.ID == "fake" {
			m.selectBoard(i)
		}
	}

	view := m.View()
	if !strings.Contains(view, "1,500") {
		t.Errorf("scoreboard should show humanized scores:\n%s", view)
	}
	if !strings.Contains(view, "2 runs") {
		t.Errorf("scoreboard should show run count:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back to the menu")
	}
}

func TestScoreboardLayout(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		wantList bool
	}{
		{"wide terminal lists boards", 100, true},
		{"narrow terminal shows tabs", 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(nil, tt.width, 30)
			if m.showBoardList() != tt.wantList {
				t.Fatalf("showBoardList() = %v, want %v", m.showBoardList(), tt.wantList)
			}

			view := m.View()
			if got := strings.Contains(view, "Boards"); got != tt.wantList {
				t.Errorf("board list shown = %v, want %v:\n%s", got, tt.wantList, view)
			}
			if !strings.Contains(view, "No runs saved for this board yet.") {
				t.Errorf("empty board should say so:\n%s", view)
			}
			if !strings.Contains(view, "next board") {
				t.Errorf("help should mention board switching:\n%s", view)
			}
		})
	}
}

func TestScoreboardBoardsWrapAround(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	n := len(m.boards)
	if n == 0 {
		t.Fatal("no boards registered")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := next.(ScoreboardModel).current; got != n-1 {
		t.Errorf("shift+tab from the first board = %d, want %d", got, n-1)
	}

	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := next.(ScoreboardModel).current; got != 0 {
		t.Errorf("tab from the last board = %d, want 0", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Tigrão", 10, "Tigrão"},
		{"Tigrão Mini", 10, "Tigrão Mi."},
		{"Tigrão", 5, "Tigr."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
