package engine

import "fmt"

// ClearMatched sets every masked cell of g to Empty and returns how many
// cells were cleared. The mask must have the grid's dimensions.
func ClearMatched(g *Grid, m Mask) int {
	if m.rows != g.rows || m.cols != g.cols {
		panic(fmt.Sprintf("engine: mask %dx%d does not fit grid %dx%d", m.rows, m.cols, g.rows, g.cols))
	}
	cleared := 0
	for i, marked := range m.cells {
		if marked && g.cells[i] != Empty {
			g.cells[i] = Empty
			cleared++
		}
	}
	return cleared
}

// ApplyGravity returns a new grid where, column by column, the surviving
// symbols of g have dropped to the bottom in their original order and the
// cells left above them hold fresh symbols from src. The first symbol drawn
// for a column lands in its top cell. g is not modified.
func ApplyGravity(g *Grid, src SymbolSource) *Grid {
	out := g.Clone()
	column := make([]Symbol, 0, g.rows)

	for c := range g.cols {
		column = column[:0]
		for r := range g.rows {
			if sym := g.At(r, c); sym != Empty {
				column = append(column, sym)
			}
		}

		missing := g.rows - len(column)
		for r := range missing {
			out.cells[r*g.cols+c] = src.Next()
		}
		for i, sym := range column {
			out.cells[(missing+i)*g.cols+c] = sym
		}
	}

	return out
}
