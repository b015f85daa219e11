// Package solver finds the crane unloading path that collects the most
// cranes on a grid.Grid, moving only East or South from the origin and
// stopping anywhere.
//
// 🚀 Algorithms:
//
//   - Exhaustive: enumerates every East/South sequence of length
//     rows+columns−2 as the bits of a uint64 counter, truncates each at its
//     first invalid step, and keeps the best prefix seen.
//   - DynProg: fills a rows×columns table with the best path ending at each
//     cell, in row-major order, then scans the table for the best entry.
//
// ⚙️ Usage:
//
//	g, _ := grid.Parse("..c\n.X.\nc..")
//	res, err := solver.Solve(g, solver.DefaultOptions())
//	fmt.Println(res.Path.TotalCranes(), res.Path)
//
// Tie-breaks (both deterministic):
//
//   - Exhaustive: a prefix whose score is ≥ the best so far replaces it,
//     so the last discovered candidate wins.
//   - DynProg: from-above wins ties when filling a cell; the scan keeps the
//     first maximum in row-major order.
//
// Performance:
//
//   - Exhaustive: O(2^S · S) time, O(S) memory, S = rows+columns−2 < 64.
//   - DynProg:    O(R·C·L) time including path copies, O(R·C·L) memory,
//     L = path length ≤ S.
//
// Errors:
//
//   - ErrEmptyGrid: nil grid.
//   - ErrTooManySteps: rows+columns−2 ≥ 64 for the exhaustive solver.
//   - ErrUnsupportedAlgorithm: unknown Options.Algo.
//   - ErrScoreMismatch: Compare found solvers disagreeing.
package solver
