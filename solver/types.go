package solver

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/cranes/path"
)

// MaxExhaustiveSteps is the largest step count the exhaustive solver can
// enumerate in a uint64 counter.
const MaxExhaustiveSteps = 63

var (
	// ErrEmptyGrid indicates a nil grid was passed to a solver.
	ErrEmptyGrid = errors.New("solver: grid must have at least one row and one column")

	// ErrTooManySteps indicates rows+columns−2 does not fit the exhaustive enumeration width.
	ErrTooManySteps = errors.New("solver: rows+columns-2 must be below 64 for exhaustive search")

	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("solver: unsupported algorithm")

	// ErrScoreMismatch indicates the exhaustive and DP solvers returned different scores.
	ErrScoreMismatch = errors.New("solver: exhaustive and dynamic programming scores differ")
)

// Algorithm selects a solving strategy.
type Algorithm int

const (
	// DynamicProgramming runs DynProg; the practical choice for any grid size.
	DynamicProgramming Algorithm = iota
	// ExhaustiveSearch runs Exhaustive; small grids only.
	ExhaustiveSearch
)

func (a Algorithm) String() string {
	switch a {
	case DynamicProgramming:
		return "dynprog"
	case ExhaustiveSearch:
		return "exhaustive"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "dynprog"/"dp" and "exhaustive" (case-insensitive)
// to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dynprog", "dp", "dynamic":
		return DynamicProgramming, nil
	case "exhaustive", "brute":
		return ExhaustiveSearch, nil
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnsupportedAlgorithm)
}

// Options configures Solve.
//
// Fields:
//   - Algo:   which solver to run.
//   - Logger: receives one debug record per solve; nil disables logging.
type Options struct {
	Algo   Algorithm
	Logger *zerolog.Logger
}

// DefaultOptions returns Options{Algo: DynamicProgramming} with logging off.
func DefaultOptions() Options {
	return Options{Algo: DynamicProgramming}
}

// Result holds the outcome of Solve.
type Result struct {
	// Path is the best path found; owned by the caller.
	Path path.Path
	// Algorithm is the solver that produced Path.
	Algorithm Algorithm
	// Elapsed is the wall time spent inside the solver.
	Elapsed time.Duration
}
