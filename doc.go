// Package cranes solves the crane unloading puzzle: on a rectangular grid,
// start in the top-left cell, step only East or South, never enter a
// building, and collect as many cranes as possible. The walk may stop
// anywhere.
//
// Packages:
//
//	grid/        cells, immutable Grid, text/YAML loading, seeded random grids
//	path/        East/South step sequences with position and running score
//	solver/      exhaustive bit-pattern search and dynamic programming
//	config/      flag, environment and file configuration for the CLI
//	cmd/cranes/  command-line entry point
//
// Quick ASCII example ('S' start, '@' collected crane, '*' visited):
//
//	S*@
//	.X*
//	c.@
//
//	go run ./cmd/cranes --rows 6 --columns 6 --compare
package cranes
