package terrain

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"terrapath/internal/core"
)

// CellRecord is one terrain cell in CSV form, used by map tooling for
// spreadsheet inspection and bulk editing. Unlike the JSON format it carries
// the cosmetic variation.
type CellRecord struct {
	Row       int    `csv:"row"`
	Col       int    `csv:"col"`
	Kind      string `csv:"kind"`
	Variation uint8  `csv:"variation"`
}

// WriteCSV writes every cell of the grid as a CSV record, row-major.
func (g *Grid) WriteCSV(w io.Writer) error {
	records := make([]CellRecord, 0, g.width*g.height)
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			cell := g.cells[r*g.width+c]
			records = append(records, CellRecord{
				Row:       r,
				Col:       c,
				Kind:      cell.Kind.String(),
				Variation: cell.Variation,
			})
		}
	}
	if err := gocsv.Marshal(&records, w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// ReadCSV rebuilds a grid from CSV cell records. Dimensions are inferred
// from the largest row/col present; cells missing from the file stay Flat,
// and unknown kind names coerce to Flat like any out-of-enum value.
func ReadCSV(r io.Reader) (*Grid, error) {
	var records []CellRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv contains no cells")
	}

	width, height := 0, 0
	for _, rec := range records {
		if rec.Row < 0 || rec.Col < 0 {
			return nil, fmt.Errorf("negative cell coordinate (%d,%d)", rec.Row, rec.Col)
		}
		if rec.Row+1 > height {
			height = rec.Row + 1
		}
		if rec.Col+1 > width {
			width = rec.Col + 1
		}
	}

	g := NewGrid(width, height)
	for _, rec := range records {
		g.Set(rec.Row, rec.Col, core.ParseKind(rec.Kind), rec.Variation)
	}
	return g, nil
}
