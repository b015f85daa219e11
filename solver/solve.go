package solver

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/cranes/grid"
	"github.com/katalvlaran/cranes/path"
)

// Solve validates g and routes to the solver chosen by opts.Algo.
//
// A debug record with the algorithm, grid size, step bound, score, path
// length and elapsed time is written to opts.Logger when it is set.
//
// Errors: ErrEmptyGrid, ErrTooManySteps (exhaustive only), ErrUnsupportedAlgorithm.
func Solve(g *grid.Grid, opts Options) (Result, error) {
	if err := validateGrid(g); err != nil {
		return Result{}, err
	}
	logger := loggerOrNop(opts.Logger)

	var (
		best path.Path
		err  error
	)
	start := time.Now()
	switch opts.Algo {
	case DynamicProgramming:
		best, err = DynProg(g)
	case ExhaustiveSearch:
		best, err = Exhaustive(g)
	default:
		return Result{}, fmt.Errorf("%s: %w", opts.Algo, ErrUnsupportedAlgorithm)
	}
	elapsed := time.Since(start)
	if err != nil {
		logger.Debug().Err(err).Str("algorithm", opts.Algo.String()).Msg("solve rejected")
		return Result{}, err
	}

	logger.Debug().
		Str("algorithm", opts.Algo.String()).
		Int("rows", g.Rows()).
		Int("columns", g.Columns()).
		Int("max-steps", maxSteps(g)).
		Int("cranes", best.TotalCranes()).
		Int("steps", best.Len()).
		Dur("elapsed", elapsed).
		Msg("solved")

	return Result{Path: best, Algorithm: opts.Algo, Elapsed: elapsed}, nil
}

// Compare runs both solvers on g and checks that they agree on the score.
// Step sequences may differ under the solvers' tie-break rules.
//
// Errors: those of Solve, and ErrScoreMismatch.
func Compare(g *grid.Grid, logger *zerolog.Logger) (exhaustive, dynprog Result, err error) {
	exhaustive, err = Solve(g, Options{Algo: ExhaustiveSearch, Logger: logger})
	if err != nil {
		return Result{}, Result{}, err
	}
	dynprog, err = Solve(g, Options{Algo: DynamicProgramming, Logger: logger})
	if err != nil {
		return Result{}, Result{}, err
	}
	if e, d := exhaustive.Path.TotalCranes(), dynprog.Path.TotalCranes(); e != d {
		return exhaustive, dynprog, fmt.Errorf("exhaustive=%d dynprog=%d: %w", e, d, ErrScoreMismatch)
	}
	return exhaustive, dynprog, nil
}

// MustExhaustive is like Exhaustive but panics on a precondition violation.
func MustExhaustive(g *grid.Grid) path.Path {
	p, err := Exhaustive(g)
	if err != nil {
		panic(err)
	}
	return p
}

// MustDynProg is like DynProg but panics on a precondition violation.
func MustDynProg(g *grid.Grid) path.Path {
	p, err := DynProg(g)
	if err != nil {
		panic(err)
	}
	return p
}

func loggerOrNop(l *zerolog.Logger) *zerolog.Logger {
	if l == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return l
}
