package grid_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cranes/grid"
)

const harbor = `
..c.
.X.c
c..X
`

// TestParse reads a small grid and checks every cell kind.
func TestParse(t *testing.T) {
	g, err := grid.Parse(harbor)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Columns())
	assert.Equal(t, grid.Empty, g.Get(0, 0))
	assert.Equal(t, grid.Crane, g.Get(0, 2))
	assert.Equal(t, grid.Building, g.Get(1, 1))
	assert.Equal(t, grid.Building, g.Get(2, 3))
	assert.Equal(t, 3, g.CraneCount())
}

// TestParse_Errors covers the rejected inputs.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Blank", "\n  \n", grid.ErrEmptyGrid},
		{"Ragged", "..\n.", grid.ErrNonRectangular},
		{"BadRune", ".#\n..", grid.ErrBadCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(tc.text)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestString_RoundTrip checks that String output parses back to the same grid.
func TestString_RoundTrip(t *testing.T) {
	g, err := grid.Parse(harbor)
	require.NoError(t, err)
	assert.Equal(t, "..c.\n.X.c\nc..X\n", g.String())

	again, err := grid.Parse(g.String())
	require.NoError(t, err)
	assert.Equal(t, g, again)
}

// TestYAML_RoundTrip encodes and decodes a grid document.
func TestYAML_RoundTrip(t *testing.T) {
	g, err := grid.Parse(harbor)
	require.NoError(t, err)

	data, err := grid.Marshal(g, "harbor")
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: harbor")

	back, err := grid.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, g.String(), back.String())

	_, err = grid.Unmarshal([]byte("rows: [\"..\", \".\"]"))
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

// TestLoad reads both file flavours from disk.
func TestLoad(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "harbor.txt")
	require.NoError(t, os.WriteFile(txt, []byte(harbor), 0o600))
	fromText, err := grid.Load(txt)
	require.NoError(t, err)

	yml := filepath.Join(dir, "harbor.yaml")
	doc := "name: harbor\nrows:\n  - \"..c.\"\n  - \".X.c\"\n  - \"c..X\"\n"
	require.NoError(t, os.WriteFile(yml, []byte(doc), 0o600))
	fromYAML, err := grid.Load(yml)
	require.NoError(t, err)

	assert.Equal(t, fromText.String(), fromYAML.String())

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("..\n?."), 0o600))
	_, err = grid.Load(bad)
	assert.ErrorIs(t, err, grid.ErrBadCell)

	_, err = grid.Load(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
