package engine

import (
	"math/rand"
	"testing"
)

func TestApplyGravityColumn(t *testing.T) {
	// Column 0 is [T, _, D, _] top to bottom; the other columns are full.
	g := mustParse(t, `
		TDS
		.SC
		DCD
		.DS`)

	out := ApplyGravity(g, NewSequenceSource(Cherry, Star))

	got := out.Column(0)
	want := []Symbol{Cherry, Star, Tiger, Diamond}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("column 0 = %v, want %v", got, want)
		}
	}

	for c := 1; c < 3; c++ {
		before, after := g.Column(c), out.Column(c)
		for r := range before {
			if before[r] != after[r] {
				t.Errorf("column %d changed at row %d: %v -> %v", c, r, before[r], after[r])
			}
		}
	}

	if g.At(1, 0) != Empty {
		t.Error("ApplyGravity modified its input")
	}
}

func TestApplyGravityFullBoardDrawsNothing(t *testing.T) {
	g := mustParse(t, "TDS\nDST\nSTD")
	src := NewSequenceSource(Star, Cherry)

	out := ApplyGravity(g, src)

	if !out.Equal(g) {
		t.Errorf("full board changed:\n%s", out)
	}
	if src.Drawn() != 0 {
		t.Errorf("drew %d symbols for a full board", src.Drawn())
	}
}

func TestApplyGravityEmptyColumn(t *testing.T) {
	g := mustParse(t, `
		T.S
		D.C
		S.D`)

	out := ApplyGravity(g, NewSequenceSource(Star, Cherry, Tiger))

	got := out.Column(1)
	want := []Symbol{Star, Cherry, Tiger}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("column 1 = %v, want %v", got, want)
		}
	}
}

func TestApplyGravityColumnsLeftToRight(t *testing.T) {
	g := mustParse(t, `
		.T.
		DSC
		SCD`)

	out := ApplyGravity(g, NewSequenceSource(Star, Cherry))

	if out.At(0, 0) != Star || out.At(0, 2) != Cherry {
		t.Errorf("refill order wrong:\n%s", out)
	}
}

func TestClearMatched(t *testing.T) {
	g := mustParse(t, "DTS\nTTT\nSTD")
	mask, _ := Detect(g)

	cleared := ClearMatched(g, mask)

	if cleared != 5 {
		t.Errorf("ClearMatched() = %d, want 5", cleared)
	}
	want := "D.S\n...\nS.D"
	if g.String() != want {
		t.Errorf("grid after clear =\n%s\nwant\n%s", g, want)
	}
}

func TestClearMatchedPanicsOnMismatch(t *testing.T) {
	g := mustParse(t, "TDS\nDST\nSTD")
	defer func() {
		if recover() == nil {
			t.Error("expected panic for mismatched mask")
		}
	}()
	ClearMatched(g, NewMask(4, 3))
}

// Survivors keep their relative order and end up at the bottom of their
// column; only the missing cells are refilled.
func TestApplyGravityPreservesSurvivors(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for range 300 {
		g := randomGrid(t, rng, true)
		before := g.Clone()
		src := NewSequenceSource(Alphabet[:]...)

		out := ApplyGravity(g, src)

		if out.EmptyCount() != 0 {
			t.Fatalf("grid still has holes:\n%s", out)
		}
		if src.Drawn() != before.EmptyCount()%SymbolCount {
			t.Fatalf("drew %d symbols (mod %d), want %d", src.Drawn(), SymbolCount, before.EmptyCount()%SymbolCount)
		}

		for c := range g.Cols() {
			var survivors []Symbol
			for _, s := range before.Column(c) {
				if s != Empty {
					survivors = append(survivors, s)
				}
			}
			col := out.Column(c)
			tail := col[len(col)-len(survivors):]
			for i := range survivors {
				if tail[i] != survivors[i] {
					t.Fatalf("column %d = %v, survivors %v not kept in order", c, col, survivors)
				}
			}
		}
	}
}
