// Package pathfinding maintains the search grid mirroring the terrain and
// runs the elevation-aware A* over it.
package pathfinding

import (
	"math"

	"terrapath/internal/core"
)

// node is one search-grid cell. kind and walkable are persistent state kept
// in sync with the terrain; g/h/f/parent are scratch fields owned by the
// active search and carry no meaning between calls. visitedAt/closedAt tie
// the scratch fields to a search generation so a new search starts clean
// without sweeping the whole grid.
type node struct {
	col, row int
	kind     core.TerrainKind
	walkable bool

	g, h, f   float64
	parent    *node
	heapIndex int
	order     int
	visitedAt uint64
	closedAt  uint64
}

// Grid is the pathfinding engine's private mirror of the world: one node per
// cell, sized once from the world dimensions and never resized. A Grid
// supports one search at a time; callers must serialize FindPath calls and
// terrain mutations per instance.
type Grid struct {
	cols, rows int
	cellSize   float64
	nodes      []node
	search     uint64
	maxNodes   int
}

// NewGrid creates a search grid covering worldWidth x worldHeight world
// units at the given cell size. Every cell starts flat and walkable until
// terrain is applied.
func NewGrid(worldWidth, worldHeight, cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	cols := int(math.Ceil(worldWidth / cellSize))
	rows := int(math.Ceil(worldHeight / cellSize))
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}

	g := &Grid{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		nodes:    make([]node, cols*rows),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			n := &g.nodes[r*cols+c]
			n.col, n.row = c, r
			n.kind = core.Flat
			n.walkable = true
		}
	}
	return g
}

// Cols returns the grid width in cells.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height in cells.
func (g *Grid) Rows() int { return g.rows }

// CellSize returns the world-unit size of one cell.
func (g *Grid) CellSize() float64 { return g.cellSize }

// SetMaxNodes caps how many nodes one search may expand before giving up
// with an empty result. Zero means unbounded.
func (g *Grid) SetMaxNodes(n int) { g.maxNodes = n }

// InRange reports whether (col, row) addresses a cell of the grid.
func (g *Grid) InRange(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

func (g *Grid) at(col, row int) *node {
	return &g.nodes[row*g.cols+col]
}

// SetWalkable overrides a cell's walkable flag. No-op out of range.
func (g *Grid) SetWalkable(col, row int, walkable bool) {
	if !g.InRange(col, row) {
		return
	}
	g.at(col, row).walkable = walkable
}

// SetKind stores a cell's terrain kind for traversal gating and derives its
// walkable flag (everything but water is walkable). No-op out of range.
func (g *Grid) SetKind(col, row int, kind core.TerrainKind) {
	if !g.InRange(col, row) {
		return
	}
	n := g.at(col, row)
	n.kind = kind
	n.walkable = kind != core.Water
}

// Walkable reports whether a cell can be stood on; false out of range.
func (g *Grid) Walkable(col, row int) bool {
	if !g.InRange(col, row) {
		return false
	}
	return g.at(col, row).walkable
}

// KindAt returns a cell's terrain kind, or Water out of range.
func (g *Grid) KindAt(col, row int) core.TerrainKind {
	if !g.InRange(col, row) {
		return core.Water
	}
	return g.at(col, row).kind
}

// WorldToGrid maps a world position to its containing cell by floor
// division.
func (g *Grid) WorldToGrid(x, y float64) (col, row int) {
	return int(math.Floor(x / g.cellSize)), int(math.Floor(y / g.cellSize))
}

// GridToWorld returns the world-space center of a cell.
func (g *Grid) GridToWorld(col, row int) core.Vector2D {
	return core.Vector2D{
		X: (float64(col) + 0.5) * g.cellSize,
		Y: (float64(row) + 0.5) * g.cellSize,
	}
}

// MarkBlocked makes every cell covered by the world-space bounding box
// (centered at worldX, worldY) unwalkable. Blocking is cumulative and
// idempotent; there is no unmark short of replacing the grid.
func (g *Grid) MarkBlocked(worldX, worldY, width, height float64) {
	box := core.AABB{
		Min: core.Vector2D{X: worldX - width/2, Y: worldY - height/2},
		Max: core.Vector2D{X: worldX + width/2, Y: worldY + height/2},
	}
	minCol, minRow := g.WorldToGrid(box.Min.X, box.Min.Y)
	maxCol, maxRow := g.WorldToGrid(box.Max.X, box.Max.Y)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			g.SetWalkable(col, row, false)
		}
	}
}
