package solver

import (
	"fmt"

	"github.com/katalvlaran/cranes/grid"
)

// validateGrid rejects a nil grid. A non-nil *grid.Grid always has at least
// one row and one column, as grid.New enforces.
func validateGrid(g *grid.Grid) error {
	if g == nil || g.Rows() < 1 || g.Columns() < 1 {
		return ErrEmptyGrid
	}
	return nil
}

// maxSteps returns rows+columns−2, the length of the longest monotone path.
func maxSteps(g *grid.Grid) int {
	return g.Rows() + g.Columns() - 2
}

// validateExhaustive checks the exhaustive solver's preconditions and
// returns the candidate length.
func validateExhaustive(g *grid.Grid) (int, error) {
	if err := validateGrid(g); err != nil {
		return 0, err
	}
	n := maxSteps(g)
	if n > MaxExhaustiveSteps {
		return 0, fmt.Errorf("%dx%d grid needs %d steps: %w", g.Rows(), g.Columns(), n, ErrTooManySteps)
	}
	return n, nil
}
