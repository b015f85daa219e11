package grid

import (
	"encoding/binary"
	"fmt"

	"lukechampine.com/frand"
)

// defaultSeed is used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed uint64 = 1

// chachaRounds and rngBufSize configure the seeded frand stream.
const (
	chachaRounds = 12
	rngBufSize   = 1024
)

// RandomOptions tunes Random.
type RandomOptions struct {
	// Seed selects the deterministic stream; 0 means defaultSeed.
	Seed uint64
	// BuildingProbability is the chance that a cell is a building.
	BuildingProbability float64
	// CraneProbability is the chance that a non-building cell is a crane.
	CraneProbability float64
}

// DefaultRandomOptions returns RandomOptions with Seed=0,
// BuildingProbability=0.15 and CraneProbability=0.25.
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{
		BuildingProbability: 0.15,
		CraneProbability:    0.25,
	}
}

// Random builds a rows×cols grid where every cell is drawn independently:
// a building with opts.BuildingProbability, otherwise a crane with
// opts.CraneProbability, otherwise empty. The origin is always Empty.
//
// The same (rows, cols, opts) always yields the same grid.
// Complexity: O(R×C).
func Random(rows, cols int, opts RandomOptions) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("rows=%d, cols=%d: %w", rows, cols, ErrEmptyGrid)
	}
	if !validProbability(opts.BuildingProbability) || !validProbability(opts.CraneProbability) {
		return nil, ErrBadProbability
	}

	rng := rngFromSeed(opts.Seed)
	cells := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]Cell, cols)
		for c := 0; c < cols; c++ {
			// Draw both numbers for every cell so that the stream position
			// depends only on the coordinate.
			b, k := unitFloat(rng), unitFloat(rng)
			switch {
			case b < opts.BuildingProbability:
				cells[r][c] = Building
			case k < opts.CraneProbability:
				cells[r][c] = Crane
			default:
				cells[r][c] = Empty
			}
		}
	}
	cells[0][0] = Empty

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

func validProbability(p float64) bool {
	return p >= 0 && p <= 1
}

// rngFromSeed returns a deterministic frand stream keyed by seed.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed uint64) *frand.RNG {
	if seed == 0 {
		seed = defaultSeed
	}
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	return frand.NewCustom(key, rngBufSize, chachaRounds)
}

// unitFloat returns a uniform float64 in [0,1) with 53 bits of precision.
func unitFloat(rng *frand.RNG) float64 {
	return float64(rng.Uint64n(1<<53)) / (1 << 53)
}
