package engine

// Points awarded by the detector.
const (
	RunPoints       = 10 // three identical symbols in a line
	ExtensionPoints = 5  // a fourth identical symbol right after the three
)

// Mask marks the cells taking part in a match for one detection pass.
type Mask struct {
	rows  int
	cols  int
	cells []bool
}

// NewMask creates an all-false mask of the given size.
func NewMask(rows, cols int) Mask {
	return Mask{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
}

// Rows returns the number of rows.
func (m Mask) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m Mask) Cols() int {
	return m.cols
}

// At reports whether (r, c) is marked. Out-of-bounds positions are unmarked.
func (m Mask) At(r, c int) bool {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return false
	}
	return m.cells[r*m.cols+c]
}

func (m Mask) mark(r, c int) {
	m.cells[r*m.cols+c] = true
}

// Count returns the number of marked cells.
func (m Mask) Count() int {
	n := 0
	for _, v := range m.cells {
		if v {
			n++
		}
	}
	return n
}

// Any reports whether at least one cell is marked.
func (m Mask) Any() bool {
	for _, v := range m.cells {
		if v {
			return true
		}
	}
	return false
}

// Detect scans g for runs and returns the matched cells and the points earned.
//
// Every window of three starting at each column (rows pass) and each row
// (columns pass) is evaluated on its own. A fired window scores RunPoints, and
// if the cell right after it holds the same symbol that cell is marked too and
// scores ExtensionPoints. Overlapping windows are not merged, so a run of five
// scores three windows and two extensions.
func Detect(g *Grid) (Mask, int) {
	mask := NewMask(g.rows, g.cols)
	score := 0

	for i := range g.rows {
		for j := 0; j < g.cols-2; j++ {
			sym := g.At(i, j)
			if sym == Empty || g.At(i, j+1) != sym || g.At(i, j+2) != sym {
				continue
			}
			mask.mark(i, j)
			mask.mark(i, j+1)
			mask.mark(i, j+2)
			score += RunPoints
			if j+3 < g.cols && g.At(i, j+3) == sym {
				mask.mark(i, j+3)
				score += ExtensionPoints
			}
		}
	}

	for i := 0; i < g.rows-2; i++ {
		for j := range g.cols {
			sym := g.At(i, j)
			if sym == Empty || g.At(i+1, j) != sym || g.At(i+2, j) != sym {
				continue
			}
			mask.mark(i, j)
			mask.mark(i+1, j)
			mask.mark(i+2, j)
			score += RunPoints
			if i+3 < g.rows && g.At(i+3, j) == sym {
				mask.mark(i+3, j)
				score += ExtensionPoints
			}
		}
	}

	return mask, score
}

// HasAnyMatch reports whether g contains three identical non-empty symbols in
// a row or column. It stops at the first hit.
func HasAnyMatch(g *Grid) bool {
	for i := range g.rows {
		for j := 0; j < g.cols-2; j++ {
			sym := g.At(i, j)
			if sym != Empty && g.At(i, j+1) == sym && g.At(i, j+2) == sym {
				return true
			}
		}
	}
	for i := 0; i < g.rows-2; i++ {
		for j := range g.cols {
			sym := g.At(i, j)
			if sym != Empty && g.At(i+1, j) == sym && g.At(i+2, j) == sym {
				return true
			}
		}
	}
	return false
}
