package grid

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the YAML document layout read by Load.
//
//	name: harbor
//	rows:
//	  - "..c."
//	  - ".X.c"
type File struct {
	Name string   `yaml:"name,omitempty"`
	Rows []string `yaml:"rows"`
}

// Parse reads the text format: one row per non-blank line, '.' for an
// empty cell, 'c' for a crane and 'X' for a building. Surrounding
// whitespace on each line is ignored.
func Parse(text string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return fromRows(lines)
}

// fromRows converts text rows into a Grid.
func fromRows(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]Cell, len(lines))
	for r, line := range lines {
		row := make([]Cell, 0, len(line))
		for col, ch := range []rune(line) {
			c, ok := cellFromRune(ch)
			if !ok {
				return nil, fmt.Errorf("row %d, column %d: %q: %w", r, col, ch, ErrBadCell)
			}
			row = append(row, c)
		}
		cells[r] = row
	}
	return New(cells)
}

// Unmarshal decodes a YAML grid document.
func Unmarshal(data []byte) (*Grid, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("grid: decode yaml: %w", err)
	}
	return fromRows(f.Rows)
}

// Marshal encodes g as a YAML grid document with the given name.
func Marshal(g *Grid, name string) ([]byte, error) {
	if g == nil {
		return nil, ErrEmptyGrid
	}
	rows := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	return yaml.Marshal(File{Name: name, Rows: rows})
}

// Load reads a grid file. Files ending in .yaml or .yml are decoded as YAML
// documents; anything else is parsed as the text format.
func Load(filename string) (*Grid, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("grid: read %s: %w", filename, err)
	}
	var g *Grid
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		g, err = Unmarshal(data)
	default:
		g, err = Parse(string(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return g, nil
}
