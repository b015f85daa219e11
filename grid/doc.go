// Package grid models the crane unloading map: a rectangular board of cells
// where each cell is empty, holds a crane, or is blocked by a building.
//
// What:
//
//   - Grid wraps a rectangular [][]Cell. It is immutable once built.
//   - Cells are addressed as (row, column) with (0,0) in the top-left corner.
//   - Text format: one row per line, '.' empty, 'c' crane, 'X' building.
//   - YAML files carry the same rows under a "rows" key.
//   - Random builds a reproducible grid from a seed.
//
// Why:
//
//   - Solvers borrow a *Grid read-only for a whole solve, so a single grid
//     may be shared between independent solves.
//
// Complexity:
//
//   - New, Parse, Random: O(R×C) time and memory.
//   - Get, InBounds:      O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: text input contains an unknown cell rune.
//   - ErrBadProbability: random generation probabilities are out of range.
package grid
