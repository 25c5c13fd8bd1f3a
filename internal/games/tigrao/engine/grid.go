package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Default board size.
const (
	DefaultRows = 8
	DefaultCols = 8
)

// MinDimension is the smallest row or column count that can hold a run.
const MinDimension = 3

// ErrInvalidDimensions is returned when a grid would be too small to match in.
var ErrInvalidDimensions = errors.New("engine: grid needs at least 3 rows and 3 columns")

// Grid is a fixed-size board of symbols stored in row-major order.
// Every cell is either an alphabet member or Empty.
type Grid struct {
	rows  int
	cols  int
	cells []Symbol
}

// NewGrid creates a rows×cols grid with every cell drawn from src.
// Runs already present in the initial fill are allowed.
func NewGrid(rows, cols int, src SymbolSource) (*Grid, error) {
	g, err := newBlankGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range g.cells {
		g.cells[i] = src.Next()
	}
	return g, nil
}

// ParseGrid builds a grid from fixture text: one line per row, one short name
// per cell (T D S C * and . for empty). Whitespace between cells is ignored.
func ParseGrid(text string) (*Grid, error) {
	var rows [][]Symbol
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var row []Symbol
		for i := 0; i < len(line); i++ {
			if line[i] == ' ' || line[i] == '\t' {
				continue
			}
			sym, ok := ParseSymbol(line[i])
			if !ok {
				return nil, fmt.Errorf("engine: unknown symbol %q in row %d", line[i], len(rows))
			}
			row = append(row, sym)
		}
		rows = append(rows, row)
	}
	return FromRows(rows)
}

// FromRows builds a grid from explicit rows. All rows must have equal length.
func FromRows(rows [][]Symbol) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: got 0x0", ErrInvalidDimensions)
	}
	g, err := newBlankGrid(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != g.cols {
			return nil, fmt.Errorf("engine: row %d has %d cells, want %d", r, len(row), g.cols)
		}
		for c, sym := range row {
			if sym != Empty && !sym.Valid() {
				return nil, fmt.Errorf("engine: invalid symbol %d at (%d,%d)", sym, r, c)
			}
			g.cells[r*g.cols+c] = sym
		}
	}
	return g, nil
}

func newBlankGrid(rows, cols int) (*Grid, error) {
	if rows < MinDimension || cols < MinDimension {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Symbol, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (r, c) lies on the board.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the symbol at (r, c), or Empty when out of bounds.
func (g *Grid) At(r, c int) Symbol {
	if !g.InBounds(r, c) {
		return Empty
	}
	return g.cells[r*g.cols+c]
}

// Set stores s at (r, c). Out-of-bounds positions and values outside the
// alphabet (other than Empty) are ignored.
func (g *Grid) Set(r, c int, s Symbol) {
	if !g.InBounds(r, c) || (s != Empty && !s.Valid()) {
		return
	}
	g.cells[r*g.cols+c] = s
}

// Column returns a copy of column c, top to bottom.
func (g *Grid) Column(c int) []Symbol {
	col := make([]Symbol, g.rows)
	for r := range g.rows {
		col[r] = g.At(r, c)
	}
	return col
}

// EmptyCount returns the number of Empty cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, s := range g.cells {
		if s == Empty {
			n++
		}
	}
	return n
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	cells := make([]Symbol, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Equal reports whether two grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid with fixture short names, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := range g.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range g.cols {
			sb.WriteByte(g.At(r, c).Short())
		}
	}
	return sb.String()
}
