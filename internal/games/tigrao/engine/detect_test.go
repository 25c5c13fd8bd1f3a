package engine

import (
	"math/rand"
	"testing"
)

func mustParse(t *testing.T, text string) *Grid {
	t.Helper()
	g, err := ParseGrid(text)
	if err != nil {
		t.Fatalf("ParseGrid() failed: %v", err)
	}
	return g
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		grid      string
		score     int
		maskCount int
	}{
		{
			name:      "single symbol 3x3",
			grid:      "TTT\nTTT\nTTT",
			score:     60, // 3 row runs + 3 column runs, no room for a 4th
			maskCount: 9,
		},
		{
			name:      "no runs",
			grid:      "TDS\nDST\nSTD",
			score:     0,
			maskCount: 0,
		},
		{
			name:      "horizontal run of four",
			grid:      "TTTT\nDSCD\nSCDS",
			score:     10 + 5 + 10,
			maskCount: 4,
		},
		{
			name:      "horizontal run of five double counts",
			grid:      "TTTTT\nDSCDS\nSCDSC",
			score:     10 + 5 + 10 + 5 + 10,
			maskCount: 5,
		},
		{
			name:      "vertical run of four",
			grid:      "TDS\nTSC\nTCD\nTDS",
			score:     10 + 5 + 10,
			maskCount: 4,
		},
		{
			name:      "cross shares a cell",
			grid:      "DTS\nTTT\nSTD",
			score:     20,
			maskCount: 5,
		},
		{
			name:      "empty cells never match",
			grid:      "...\n...\n...",
			score:     0,
			maskCount: 0,
		},
		{
			name:      "run broken by empty",
			grid:      "TT.T\nDSCD\nSCDS",
			score:     0,
			maskCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, tt.grid)
			mask, score := Detect(g)
			if score != tt.score {
				t.Errorf("Detect() score = %d, want %d", score, tt.score)
			}
			if mask.Count() != tt.maskCount {
				t.Errorf("Detect() marked %d cells, want %d", mask.Count(), tt.maskCount)
			}
			if mask.Rows() != g.Rows() || mask.Cols() != g.Cols() {
				t.Errorf("mask is %dx%d, grid is %dx%d", mask.Rows(), mask.Cols(), g.Rows(), g.Cols())
			}
			if got, want := HasAnyMatch(g), tt.score > 0; got != want {
				t.Errorf("HasAnyMatch() = %v, want %v", got, want)
			}
		})
	}
}

func TestDetectMarksExtensionCell(t *testing.T) {
	g := mustParse(t, `
		TTTTD
		DSCDS
		SCDSC`)

	mask, _ := Detect(g)
	for c := range 4 {
		if !mask.At(0, c) {
			t.Errorf("expected (0,%d) to be marked", c)
		}
	}
	if mask.At(0, 4) {
		t.Error("(0,4) holds a different symbol and must not be marked")
	}
}

// countWindows recomputes the detector's arithmetic by brute force.
func countWindows(g *Grid) (windows, extensions int) {
	for r := range g.Rows() {
		for c := 0; c+2 < g.Cols(); c++ {
			s := g.At(r, c)
			if s == Empty || g.At(r, c+1) != s || g.At(r, c+2) != s {
				continue
			}
			windows++
			if c+3 < g.Cols() && g.At(r, c+3) == s {
				extensions++
			}
		}
	}
	for c := range g.Cols() {
		for r := 0; r+2 < g.Rows(); r++ {
			s := g.At(r, c)
			if s == Empty || g.At(r+1, c) != s || g.At(r+2, c) != s {
				continue
			}
			windows++
			if r+3 < g.Rows() && g.At(r+3, c) == s {
				extensions++
			}
		}
	}
	return windows, extensions
}

func randomGrid(t *testing.T, rng *rand.Rand, withHoles bool) *Grid {
	t.Helper()
	rows := 3 + rng.Intn(6)
	cols := 3 + rng.Intn(6)
	g, err := NewGrid(rows, cols, NewRandSourceFrom(rng))
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}
	if withHoles {
		for r := range rows {
			for c := range cols {
				if rng.Intn(5) == 0 {
					g.Set(r, c, Empty)
				}
			}
		}
	}
	return g
}

func TestDetectProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := range 500 {
		g := randomGrid(t, rng, i%2 == 1)

		mask, score := Detect(g)

		windows, extensions := countWindows(g)
		if want := windows*RunPoints + extensions*ExtensionPoints; score != want {
			t.Fatalf("grid\n%s\nscore = %d, want %d", g, score, want)
		}

		for r := range g.Rows() {
			for c := range g.Cols() {
				if mask.At(r, c) && g.At(r, c) == Empty {
					t.Fatalf("grid\n%s\nempty cell (%d,%d) is marked", g, r, c)
				}
			}
		}

		if HasAnyMatch(g) != (windows > 0) {
			t.Fatalf("grid\n%s\nHasAnyMatch() disagrees with brute force", g)
		}

		mask2, score2 := Detect(g)
		if score2 != score {
			t.Fatalf("second Detect() score = %d, first = %d", score2, score)
		}
		for r := range g.Rows() {
			for c := range g.Cols() {
				if mask.At(r, c) != mask2.At(r, c) {
					t.Fatalf("second Detect() mask differs at (%d,%d)", r, c)
				}
			}
		}
	}
}

func TestHasAnyMatchVertical(t *testing.T) {
	g := mustParse(t, `
		DSC
		DCS
		DSC`)
	if !HasAnyMatch(g) {
		t.Error("expected vertical run to be found")
	}
}
