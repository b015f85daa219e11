package grid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func New(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), cols, ErrNonRectangular)
		}
	}
	// Deep copy to prevent external mutation
	copied := make([][]Cell, rows)
	for r := range cells {
		copied[r] = make([]Cell, cols)
		copy(copied[r], cells[r])
	}

	return &Grid{rows: rows, cols: cols, cells: copied}, nil
}

// Filled returns a rows×cols grid where every cell is c.
func Filled(rows, cols int, c Cell) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("rows=%d, cols=%d: %w", rows, cols, ErrEmptyGrid)
	}
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
		for col := range cells[r] {
			cells[r][col] = c
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows (≥ 1).
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns (≥ 1).
func (g *Grid) Columns() int { return g.cols }

// Get returns the cell at (row, col). It panics when the coordinate is
// outside the grid, like an out-of-range slice index.
// Complexity: O(1).
func (g *Grid) Get(row, col int) Cell {
	return g.cells[row][col]
}

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// CraneCount returns the number of crane cells on the grid.
func (g *Grid) CraneCount() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			n += c.Cranes()
		}
	}
	return n
}

// String renders g in the text format accepted by Parse.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for _, row := range g.cells {
		for _, c := range row {
			sb.WriteRune(c.Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
