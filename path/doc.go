// Package path represents a monotone walk over a grid.Grid: a sequence of
// East/South steps starting at the origin (0,0), together with the current
// position and the number of cranes collected so far.
//
// A Path borrows its grid read-only. Steps are applied with AddStep after
// checking IsStepValid; the score never decreases as steps are appended.
// Paths are values, but the step slice is shared by plain assignment, so
// use Clone to take an independent snapshot.
package path
