package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCell indicates an unknown cell rune in text input.
	ErrBadCell = errors.New("grid: unknown cell rune")
	// ErrBadProbability indicates RandomOptions probabilities outside [0,1].
	ErrBadProbability = errors.New("grid: cell probabilities must lie in [0,1]")
)

// Cell classifies a single grid position.
type Cell uint8

const (
	// Empty is passable and carries nothing.
	Empty Cell = iota
	// Crane is passable and worth one crane when entered.
	Crane
	// Building is impassable.
	Building
)

// Text runes used by Parse and String.
const (
	emptyRune    = '.'
	craneRune    = 'c'
	buildingRune = 'X'
)

// Passable reports whether a path may enter the cell.
func (c Cell) Passable() bool {
	return c != Building
}

// Cranes returns the score contribution of entering the cell.
func (c Cell) Cranes() int {
	if c == Crane {
		return 1
	}
	return 0
}

// Rune returns the text-format rune for c.
func (c Cell) Rune() rune {
	switch c {
	case Crane:
		return craneRune
	case Building:
		return buildingRune
	default:
		return emptyRune
	}
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Crane:
		return "crane"
	case Building:
		return "building"
	default:
		return "unknown"
	}
}

// cellFromRune is the inverse of Cell.Rune.
func cellFromRune(r rune) (Cell, bool) {
	switch r {
	case emptyRune:
		return Empty, true
	case craneRune:
		return Crane, true
	case buildingRune:
		return Building, true
	}
	return 0, false
}

// Grid is an immutable rectangular arrangement of cells.
// cells[r][c] holds the cell at row r, column c.
type Grid struct {
	rows, cols int
	cells      [][]Cell
}
