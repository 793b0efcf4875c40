// Package terrapath is the public facade over the terrain model, the
// procedural map generator and the elevation-aware pathfinding engine.
package terrapath

import (
	"terrapath/internal/core"
	"terrapath/internal/mapgen"
	"terrapath/internal/pathfinding"
	"terrapath/internal/terrain"
)

// Config holds configuration for the engine.
type Config struct {
	WorldWidth   float64 // world extent in world units (pixels)
	WorldHeight  float64
	CellSize     float64 // world units per grid cell
	MaxPathNodes int     // node-expansion cap per search, 0 = unbounded
}

// DefaultConfig returns a configuration for a small demo world.
func DefaultConfig() *Config {
	return &Config{
		WorldWidth:  640,
		WorldHeight: 640,
		CellSize:    32,
	}
}

// Engine owns one search grid sized from the world dimensions. The grid
// supports a single in-flight search: callers must serialize FindPath calls
// per engine and apply terrain mutations between searches, never during one.
type Engine struct {
	grid   *pathfinding.Grid
	config *Config
}

// NewEngine creates an engine with the given configuration. A nil config
// uses DefaultConfig. The grid starts all-flat and walkable until terrain
// is applied.
func NewEngine(config *Config) *Engine {
	if config == nil {
		config = DefaultConfig()
	}
	grid := pathfinding.NewGrid(config.WorldWidth, config.WorldHeight, config.CellSize)
	if config.MaxPathNodes > 0 {
		grid.SetMaxNodes(config.MaxPathNodes)
	}
	return &Engine{grid: grid, config: config}
}

// Terrain synchronization

// ApplyTerrain copies per-cell terrain kind from an authoritative terrain
// grid into the search grid. Cells outside the search grid are ignored.
func (e *Engine) ApplyTerrain(t *terrain.Grid) {
	for r := 0; r < t.Height(); r++ {
		for c := 0; c < t.Width(); c++ {
			e.grid.SetKind(c, r, t.KindAt(r, c))
		}
	}
}

// GenerateTerrain generates a terrain grid matching the engine's cell
// dimensions, applies it, and returns it for rendering and persistence.
func (e *Engine) GenerateTerrain(opts mapgen.Options) *terrain.Grid {
	t := mapgen.Generate(e.grid.Cols(), e.grid.Rows(), opts)
	e.ApplyTerrain(t)
	return t
}

// SetTerrainKind updates one cell's kind and derives its walkable flag.
// No-op outside the grid.
func (e *Engine) SetTerrainKind(col, row int, kind core.TerrainKind) {
	e.grid.SetKind(col, row, kind)
}

// SetWalkable overrides one cell's walkable flag. No-op outside the grid.
func (e *Engine) SetWalkable(col, row int, walkable bool) {
	e.grid.SetWalkable(col, row, walkable)
}

// Walkable reports whether a cell can be stood on; false outside the grid.
func (e *Engine) Walkable(col, row int) bool {
	return e.grid.Walkable(col, row)
}

// MarkBuildingBlocked makes every cell covered by a building footprint
// (world-space center plus pixel extent) unwalkable. Cumulative and
// idempotent; the only unmark is replacing the grid wholesale.
func (e *Engine) MarkBuildingBlocked(worldX, worldY, widthPx, heightPx float64) {
	e.grid.MarkBlocked(worldX, worldY, widthPx, heightPx)
}

// Path queries

// FindPath returns a waypoint route between two world positions, or an
// empty slice when no route exists. Callers own the returned slice.
func (e *Engine) FindPath(startX, startY, endX, endY float64) []core.Vector2D {
	return e.grid.FindPath(startX, startY, endX, endY)
}

// FindPathSmooth is FindPath with collinear interior waypoints removed.
func (e *Engine) FindPathSmooth(startX, startY, endX, endY float64) []core.Vector2D {
	return e.grid.FindPathSmooth(startX, startY, endX, endY)
}

// Coordinate conversion

// WorldToGrid maps a world position to its containing cell.
func (e *Engine) WorldToGrid(x, y float64) (col, row int) {
	return e.grid.WorldToGrid(x, y)
}

// GridToWorld returns the world-space center of a cell.
func (e *Engine) GridToWorld(col, row int) core.Vector2D {
	return e.grid.GridToWorld(col, row)
}

// CellSize returns the world-unit size of one grid cell.
func (e *Engine) CellSize() float64 {
	return e.grid.CellSize()
}

// GridSize returns the search grid dimensions in cells.
func (e *Engine) GridSize() (cols, rows int) {
	return e.grid.Cols(), e.grid.Rows()
}

// GetConfig returns the engine configuration.
func (e *Engine) GetConfig() *Config {
	return e.config
}

// Generate produces a standalone terrain grid without touching any engine.
// It is re-exported here so facade users need not import internal packages.
func Generate(cols, rows int, opts mapgen.Options) *terrain.Grid {
	return mapgen.Generate(cols, rows, opts)
}
