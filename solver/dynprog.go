package solver

import (
	"github.com/samber/lo"

	"github.com/katalvlaran/cranes/grid"
	"github.com/katalvlaran/cranes/path"
)

// entry is one memo table slot. ok=false means no path reaches the cell.
type entry struct {
	path path.Path
	ok   bool
}

// DynProg solves the crane unloading problem by dynamic programming.
//
// Algorithm Outline:
//  1. Allocate an R×C table A, every entry absent.
//  2. Seed A[0][0] with the empty path. The origin counts as reachable
//     whatever its cell kind.
//  3. For each other cell in row-major order:
//     - a building stays absent;
//     - from-above = A[r-1][c] + South, if that neighbor is passable and present;
//     - from-left  = A[r][c-1] + East,  if that neighbor is passable and present;
//     - the origin always counts as passable here;
//     - with both, from-left is kept only when strictly better;
//     - with one, it is kept; with none, the cell stays absent.
//  4. Return the present entry with the highest score. A[0][0] is the
//     default; the first maximum in row-major order wins.
//
// Since a path only enters a cell from the north or the west, row-major
// order finalizes both predecessors before the cell itself. Scores never
// decrease along a path, so the best entry anywhere is the best stopping
// point overall.
//
// Complexity: O(R·C) table cells, each holding a path copy of length ≤ R+C−2.
//
// Errors: ErrEmptyGrid.
func DynProg(g *grid.Grid) (path.Path, error) {
	if err := validateGrid(g); err != nil {
		return path.Path{}, err
	}
	rows, cols := g.Rows(), g.Columns()

	table := make([][]entry, rows)
	for r := range table {
		table[r] = make([]entry, cols)
	}
	table[0][0] = entry{path: path.New(g), ok: true}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r == 0 && c == 0 {
				continue
			}
			if !g.Get(r, c).Passable() {
				continue
			}

			var fromAbove, fromLeft entry
			if r > 0 && extendable(g, table, r-1, c) {
				fromAbove = extend(table[r-1][c].path, path.South)
			}
			if c > 0 && extendable(g, table, r, c-1) {
				fromLeft = extend(table[r][c-1].path, path.East)
			}

			switch {
			case fromAbove.ok && fromLeft.ok:
				if fromLeft.path.TotalCranes() > fromAbove.path.TotalCranes() {
					table[r][c] = fromLeft
				} else {
					table[r][c] = fromAbove
				}
			case fromAbove.ok:
				table[r][c] = fromAbove
			case fromLeft.ok:
				table[r][c] = fromLeft
			}
		}
	}

	return bestEntry(table), nil
}

// extendable reports whether the entry at (r, c) may be continued: it must
// be present and its cell passable. The origin is exempt from the
// passability check, matching path.IsStepValid, which only inspects the
// destination of a step.
func extendable(g *grid.Grid, table [][]entry, r, c int) bool {
	if !table[r][c].ok {
		return false
	}
	return g.Get(r, c).Passable() || (r == 0 && c == 0)
}

// extend copies p and appends d.
func extend(p path.Path, d path.Direction) entry {
	q := p.Clone()
	q.AddStep(d)
	return entry{path: q, ok: true}
}

// bestEntry scans the filled table. Presence is checked before scores are
// compared; the origin is always present and comes first.
func bestEntry(table [][]entry) path.Path {
	present := lo.FilterMap(lo.Flatten(table), func(e entry, _ int) (path.Path, bool) {
		return e.path, e.ok
	})
	return lo.MaxBy(present, func(a, b path.Path) bool {
		return a.TotalCranes() > b.TotalCranes()
	})
}
