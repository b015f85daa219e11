package path

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/katalvlaran/cranes/grid"
)

// Path render markers.
const (
	startRune   = 'S'
	visitedRune = '*'
	craneRune   = '@'
)

// New returns the empty path at the origin of g with score zero.
// The origin cell never contributes to the score.
func New(g *grid.Grid) Path {
	return Path{g: g}
}

// Grid returns the grid the path walks on.
func (p Path) Grid() *grid.Grid { return p.g }

// IsStepValid reports whether taking d from the current position stays
// inside the grid and lands on a passable cell.
// Complexity: O(1).
func (p Path) IsStepValid(d Direction) bool {
	dr, dc := d.delta()
	r, c := p.row+dr, p.col+dc
	return p.g.InBounds(r, c) && p.g.Get(r, c).Passable()
}

// AddStep appends d, moves to the destination and adds its cranes.
// It panics if the step is not valid; callers check IsStepValid first.
// Complexity: amortized O(1).
func (p *Path) AddStep(d Direction) {
	if !p.IsStepValid(d) {
		panic(fmt.Sprintf("path: invalid %s step from (%d,%d)", d, p.row, p.col))
	}
	dr, dc := d.delta()
	p.row += dr
	p.col += dc
	p.cranes += p.g.Get(p.row, p.col).Cranes()
	p.steps = append(p.steps, d)
}

// TotalCranes returns the number of cranes collected so far.
func (p Path) TotalCranes() int { return p.cranes }

// Len returns the number of steps taken.
func (p Path) Len() int { return len(p.steps) }

// Position returns the current (row, column).
func (p Path) Position() (row, col int) { return p.row, p.col }

// Steps returns a copy of the step sequence.
func (p Path) Steps() []Direction {
	out := make([]Direction, len(p.steps))
	copy(out, p.steps)
	return out
}

// Clone returns an independent copy of p; appending to the clone never
// affects p.
func (p Path) Clone() Path {
	q := p
	q.steps = p.Steps()
	return q
}

// Cells returns every visited coordinate as {row, col}, origin first.
// Complexity: O(L) where L = Len().
func (p Path) Cells() [][2]int {
	cells := make([][2]int, 0, len(p.steps)+1)
	r, c := 0, 0
	cells = append(cells, [2]int{r, c})
	for _, d := range p.steps {
		dr, dc := d.delta()
		r, c = r+dr, c+dc
		cells = append(cells, [2]int{r, c})
	}
	return cells
}

// Equal reports whether p and o have the same steps and score.
func (p Path) Equal(o Path) bool {
	if p.cranes != o.cranes || len(p.steps) != len(o.steps) {
		return false
	}
	for i := range p.steps {
		if p.steps[i] != o.steps[i] {
			return false
		}
	}
	return true
}

// String lists the steps, e.g. "[start east south]".
func (p Path) String() string {
	names := lo.Map(p.steps, func(d Direction, _ int) string {
		return d.String()
	})
	return "[" + strings.Join(append([]string{"start"}, names...), " ") + "]"
}

// Render draws the grid with the path overlaid: 'S' marks the origin,
// '@' a collected crane and '*' any other visited cell.
func (p Path) Render() string {
	if p.g == nil {
		return ""
	}
	rows := strings.Split(strings.TrimSuffix(p.g.String(), "\n"), "\n")
	canvas := lo.Map(rows, func(row string, _ int) []rune {
		return []rune(row)
	})
	for i, rc := range p.Cells() {
		switch {
		case i == 0:
			canvas[rc[0]][rc[1]] = startRune
		case p.g.Get(rc[0], rc[1]) == grid.Crane:
			canvas[rc[0]][rc[1]] = craneRune
		default:
			canvas[rc[0]][rc[1]] = visitedRune
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}
