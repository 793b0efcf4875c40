// Package terrain holds the authoritative per-cell terrain store and its
// on-disk formats. The grid owns terrain kind and cosmetic variation; the
// pathfinding package keeps its own mirror synchronized from it.
package terrain

import "terrapath/internal/core"

// Grid is a height x width array of terrain cells, row-major, origin
// top-left. Out-of-range queries resolve to defined fallbacks (Water for
// kind queries) so map edges behave like impassable water without callers
// needing bounds checks.
type Grid struct {
	width  int
	height int
	cells  []core.TerrainCell
}

// NewGrid creates a grid of the given dimensions with every cell Flat.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]core.TerrainCell, width*height),
	}
	for i := range g.cells {
		g.cells[i].Kind = core.Flat
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InRange reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InRange(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Get returns the cell at (row, col), or false when out of range.
func (g *Grid) Get(row, col int) (core.TerrainCell, bool) {
	if !g.InRange(row, col) {
		return core.TerrainCell{}, false
	}
	return g.cells[row*g.width+col], true
}

// Set writes kind and variation at (row, col). Out-of-range writes are
// silently ignored.
func (g *Grid) Set(row, col int, kind core.TerrainKind, variation uint8) {
	if !g.InRange(row, col) {
		return
	}
	g.cells[row*g.width+col] = core.TerrainCell{Kind: kind, Variation: variation}
}

// KindAt returns the terrain kind at (row, col), or Water when out of range.
func (g *Grid) KindAt(row, col int) core.TerrainKind {
	if !g.InRange(row, col) {
		return core.Water
	}
	return g.cells[row*g.width+col].Kind
}

// neighbor offsets clockwise from north; bit i of a NeighborMask corresponds
// to entry i.
var maskOffsets = [8][2]int{
	{-1, 0},  // N
	{-1, 1},  // NE
	{0, 1},   // E
	{1, 1},   // SE
	{1, 0},   // S
	{1, -1},  // SW
	{0, -1},  // W
	{-1, -1}, // NW
}

// NeighborMask returns an 8-bit adjacency mask for (row, col): bit i is set
// when the neighbor in the i-th clockwise direction from north has the given
// kind. Rendering uses this to pick edge/corner tile variants; pathfinding
// never reads it.
func (g *Grid) NeighborMask(row, col int, kind core.TerrainKind) uint8 {
	var mask uint8
	for i, off := range maskOffsets {
		if g.KindAt(row+off[0], col+off[1]) == kind {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// TouchesWater reports whether any of the 8 neighbors of (row, col) is
// water. Out-of-range neighbors count as water, matching KindAt.
func (g *Grid) TouchesWater(row, col int) bool {
	for _, off := range maskOffsets {
		if g.KindAt(row+off[0], col+off[1]) == core.Water {
			return true
		}
	}
	return false
}
