package solver

import (
	"github.com/katalvlaran/cranes/grid"
	"github.com/katalvlaran/cranes/path"
)

// Exhaustive solves the crane unloading problem by brute force.
//
// Algorithm Outline:
//  1. S = rows + columns − 2; S must be below 64.
//  2. For every k in [0, 2^S):
//     decode k into S directions, bit i of k giving step i
//     (0 → East, 1 → South, least-significant bit first).
//  3. Walk the decoded steps from a fresh empty path, stopping at the first
//     invalid step. After each applied step, a score ≥ the best so far makes
//     the current prefix the new best.
//  4. Return the best prefix; the empty path is the starting best.
//
// Every monotone path of length ≤ S is a prefix of some candidate, so the
// enumeration covers every feasible stopping point.
//
// Complexity: O(2^S · S) time, O(S) memory. Exponential; small grids only.
//
// Errors: ErrEmptyGrid, ErrTooManySteps.
func Exhaustive(g *grid.Grid) (path.Path, error) {
	steps, err := validateExhaustive(g)
	if err != nil {
		return path.Path{}, err
	}

	// The best prefix is kept as (candidate bits, length) and replayed at the
	// end, so no path is copied inside the loop.
	var (
		bestBits  uint64
		bestLen   int
		bestScore int
	)
	buf := make([]path.Direction, steps)
	total := uint64(1) << uint(steps)
	for k := uint64(0); k < total; k++ {
		candidate := decodeCandidate(k, buf)
		p := path.New(g)
		for i, d := range candidate {
			if !p.IsStepValid(d) {
				break
			}
			p.AddStep(d)
			if p.TotalCranes() >= bestScore {
				bestBits, bestLen, bestScore = k, i+1, p.TotalCranes()
			}
		}
	}

	return replay(g, decodeCandidate(bestBits, buf)[:bestLen]), nil
}

// decodeCandidate fills buf with the directions encoded by the low len(buf)
// bits of k and returns it.
func decodeCandidate(k uint64, buf []path.Direction) []path.Direction {
	for i := range buf {
		if (k>>uint(i))&1 == 0 {
			buf[i] = path.East
		} else {
			buf[i] = path.South
		}
	}
	return buf
}

// replay rebuilds a path from steps already known to be valid.
func replay(g *grid.Grid, steps []path.Direction) path.Path {
	p := path.New(g)
	for _, d := range steps {
		p.AddStep(d)
	}
	return p
}
