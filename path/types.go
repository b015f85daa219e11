package path

import "github.com/katalvlaran/cranes/grid"

// Direction is a single step of a monotone path.
type Direction uint8

const (
	// East moves one column to the right.
	East Direction = iota
	// South moves one row down.
	South
)

// delta returns the (row, column) offset of d.
func (d Direction) delta() (dr, dc int) {
	if d == South {
		return 1, 0
	}
	return 0, 1
}

func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case South:
		return "south"
	default:
		return "unknown"
	}
}

// Path is a sequence of steps from the origin of g.
// row, col track the current position; cranes is the running score.
type Path struct {
	g        *grid.Grid
	steps    []Direction
	row, col int
	cranes   int
}
