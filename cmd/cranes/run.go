package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/cranes/config"
	"github.com/katalvlaran/cranes/grid"
	"github.com/katalvlaran/cranes/solver"
)

// run builds the grid described by cfg, solves it and prints the result.
func run(cfg *config.Config, out io.Writer, logger *zerolog.Logger) error {
	g, err := loadGrid(cfg)
	if err != nil {
		return err
	}
	logger.Info().
		Int("rows", g.Rows()).
		Int("columns", g.Columns()).
		Int("cranes", g.CraneCount()).
		Msg("grid ready")

	if cfg.Compare {
		ex, dp, err := solver.Compare(g, logger)
		if err != nil {
			return err
		}
		report(out, ex)
		report(out, dp)
		return nil
	}

	res, err := solver.Solve(g, solver.Options{Algo: cfg.Algorithm, Logger: logger})
	if err != nil {
		return err
	}
	report(out, res)
	return nil
}

func loadGrid(cfg *config.Config) (*grid.Grid, error) {
	if cfg.GridFile != "" {
		return grid.Load(cfg.GridFile)
	}
	return grid.Random(cfg.Rows, cfg.Columns, grid.RandomOptions{
		Seed:                cfg.Seed,
		BuildingProbability: cfg.BuildingProbability,
		CraneProbability:    cfg.CraneProbability,
	})
}

func report(out io.Writer, res solver.Result) {
	fmt.Fprintf(out, "%s:\n", res.Algorithm)
	fmt.Fprint(out, res.Path.Render())
	fmt.Fprintf(out, "steps: %s\n", res.Path)
	fmt.Fprintf(out, "total cranes: %d\n", res.Path.TotalCranes())
	fmt.Fprintf(out, "elapsed: %s\n\n", res.Elapsed)
}
