package terrapath

import (
	"testing"

	"terrapath/internal/core"
	"terrapath/internal/mapgen"
	"terrapath/internal/terrain"
)

func newTestEngine(cells int) *Engine {
	return NewEngine(&Config{
		WorldWidth:  float64(cells),
		WorldHeight: float64(cells),
		CellSize:    1,
	})
}

func TestEngineBlockedBuildingScenario(t *testing.T) {
	e := newTestEngine(10)
	if cols, rows := e.GridSize(); cols != 10 || rows != 10 {
		t.Fatalf("grid size = %dx%d, want 10x10", cols, rows)
	}

	// 3x3 building in the middle of an all-flat map.
	footprint := AABBFromCenterSize(NewVector2D(4.5, 4.5), 2.9, 2.9)
	e.MarkBuildingBlocked(4.5, 4.5, 2.9, 2.9)

	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			if AABBContains(footprint, e.GridToWorld(c, r)) && e.Walkable(c, r) {
				t.Fatalf("cell (%d,%d) under the building should be blocked", c, r)
			}
		}
	}

	path := e.FindPath(0.5, 0.5, 9.5, 9.5)
	if len(path) == 0 {
		t.Fatal("corner-to-corner route around the building should exist")
	}
	for _, p := range path {
		if AABBContains(footprint, p) {
			t.Fatalf("waypoint %v crosses the building footprint", p)
		}
	}

	if inside := e.FindPath(4.5, 4.5, 9.5, 9.5); len(inside) != 0 {
		t.Error("path starting inside the building should be empty")
	}
}

func TestEngineApplyTerrain(t *testing.T) {
	e := newTestEngine(6)

	m := terrain.NewGrid(6, 6)
	for r := 0; r < 6; r++ {
		m.Set(r, 3, core.Water, 0)
	}
	e.ApplyTerrain(m)

	if e.Walkable(3, 2) {
		t.Error("water column should be unwalkable after ApplyTerrain")
	}
	if path := e.FindPath(0.5, 0.5, 5.5, 0.5); len(path) != 0 {
		t.Error("route across a full water column should be empty")
	}
}

func TestEngineGenerateTerrainMatchesGrid(t *testing.T) {
	e := NewEngine(&Config{WorldWidth: 320, WorldHeight: 240, CellSize: 16})

	opts := mapgen.DefaultOptions()
	opts.Seed = 21
	m := e.GenerateTerrain(opts)

	cols, rows := e.GridSize()
	if m.Width() != cols || m.Height() != rows {
		t.Fatalf("terrain %dx%d does not match grid %dx%d", m.Width(), m.Height(), cols, rows)
	}

	// The engine mirror must agree with the generated terrain.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if got := e.Walkable(c, r); got != core.IsGround(m.KindAt(r, c)) {
				t.Fatalf("cell (%d,%d): walkable=%v disagrees with terrain %v", c, r, got, m.KindAt(r, c))
			}
		}
	}
}

func TestEngineSmoothPathNotLonger(t *testing.T) {
	e := newTestEngine(16)
	e.MarkBuildingBlocked(8, 8, 4, 4)

	raw := e.FindPath(0.5, 0.5, 15.5, 15.5)
	smooth := e.FindPathSmooth(0.5, 0.5, 15.5, 15.5)
	if len(raw) == 0 || len(smooth) == 0 {
		t.Fatal("expected routes around the obstacle")
	}
	if len(smooth) > len(raw) {
		t.Errorf("smoothed path longer than raw: %d > %d", len(smooth), len(raw))
	}
	if PathLength(smooth) > PathLength(raw)+1e-9 {
		t.Errorf("smoothing must not lengthen the route")
	}
}

func TestEngineDefaults(t *testing.T) {
	e := NewEngine(nil)
	if e.GetConfig().CellSize != DefaultConfig().CellSize {
		t.Error("nil config should fall back to defaults")
	}
	if e.CellSize() != DefaultConfig().CellSize {
		t.Error("CellSize accessor should reflect the config")
	}

	if c, r := e.WorldToGrid(33, 65); c != 1 || r != 2 {
		t.Errorf("WorldToGrid(33,65) = (%d,%d), want (1,2)", c, r)
	}
}
