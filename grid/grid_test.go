package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cranes/grid"
)

//----------------------------------------------------------------------------//
// New and Filled
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]grid.Cell
		err   error
	}{
		{"NilRows", nil, grid.ErrEmptyGrid},
		{"EmptyRows", [][]grid.Cell{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]grid.Cell{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]grid.Cell{{grid.Empty, grid.Crane}, {grid.Empty}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.cells)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_DeepCopy ensures later changes to the input do not leak into the grid.
func TestNew_DeepCopy(t *testing.T) {
	cells := [][]grid.Cell{
		{grid.Empty, grid.Crane},
		{grid.Building, grid.Empty},
	}
	g, err := grid.New(cells)
	require.NoError(t, err)

	cells[0][1] = grid.Building
	assert.Equal(t, grid.Crane, g.Get(0, 1), "grid must not alias its input")
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 2, g.Columns())
}

// TestFilled checks dimensions, contents and the empty-size error.
func TestFilled(t *testing.T) {
	g, err := grid.Filled(3, 4, grid.Crane)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Columns())
	assert.Equal(t, 12, g.CraneCount())

	_, err = grid.Filled(0, 4, grid.Empty)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.Filled(2, 0, grid.Empty)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

//----------------------------------------------------------------------------//
// Accessors
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.Filled(2, 3, grid.Empty)
	require.NoError(t, err)

	for _, rc := range [][2]int{{0, 0}, {1, 2}, {0, 2}, {1, 0}} {
		assert.True(t, g.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
	}
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		assert.False(t, g.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
	}
}

// TestGet_OutOfBoundsPanics documents that Get behaves like a slice index.
func TestGet_OutOfBoundsPanics(t *testing.T) {
	g, err := grid.Filled(1, 1, grid.Empty)
	require.NoError(t, err)
	assert.Panics(t, func() { g.Get(1, 0) })
}

// TestCell covers passability, contributions and names.
func TestCell(t *testing.T) {
	assert.True(t, grid.Empty.Passable())
	assert.True(t, grid.Crane.Passable())
	assert.False(t, grid.Building.Passable())

	assert.Equal(t, 0, grid.Empty.Cranes())
	assert.Equal(t, 1, grid.Crane.Cranes())
	assert.Equal(t, 0, grid.Building.Cranes())

	assert.Equal(t, "empty", grid.Empty.String())
	assert.Equal(t, "crane", grid.Crane.String())
	assert.Equal(t, "building", grid.Building.String())
	assert.Equal(t, "unknown", grid.Cell(42).String())

	assert.Equal(t, 'X', grid.Building.Rune())
}
