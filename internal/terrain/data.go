package terrain

import (
	"encoding/json"
	"fmt"
	"os"

	"terrapath/internal/core"
)

// Data is the persisted map format: declared dimensions plus a row-major
// matrix of raw terrain kind values. Variation is cosmetic and deliberately
// not part of the format.
type Data struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Cells  [][]int `json:"cells"`
}

// ToData snapshots the grid into the persisted format.
func (g *Grid) ToData() Data {
	cells := make([][]int, g.height)
	for r := 0; r < g.height; r++ {
		row := make([]int, g.width)
		for c := 0; c < g.width; c++ {
			row[c] = int(g.cells[r*g.width+c].Kind)
		}
		cells[r] = row
	}
	return Data{Width: g.width, Height: g.height, Cells: cells}
}

// FromData rebuilds a grid from persisted data. Dimension mismatches between
// the declared width/height and the cell matrix shape are rejected; raw
// values outside the TerrainKind set are coerced to Flat rather than
// rejected (lenient-load policy).
func FromData(d Data) (*Grid, error) {
	if d.Width < 0 || d.Height < 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", d.Width, d.Height)
	}
	if len(d.Cells) != d.Height {
		return nil, fmt.Errorf("declared height %d but got %d rows", d.Height, len(d.Cells))
	}
	g := NewGrid(d.Width, d.Height)
	for r, row := range d.Cells {
		if len(row) != d.Width {
			return nil, fmt.Errorf("row %d: declared width %d but got %d cells", r, d.Width, len(row))
		}
		for c, raw := range row {
			g.Set(r, c, core.KindFromInt(raw), 0)
		}
	}
	return g, nil
}

// SaveFile writes the grid to a JSON map file.
func (g *Grid) SaveFile(path string) error {
	data, err := json.MarshalIndent(g.ToData(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding map: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing map file: %w", err)
	}
	return nil
}

// LoadFile reads a JSON map file from disk.
func LoadFile(path string) (*Grid, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map file: %w", err)
	}
	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parsing map file: %w", err)
	}
	g, err := FromData(d)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return g, nil
}
