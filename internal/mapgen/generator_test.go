package mapgen

import (
	"testing"

	opensimplex "github.com/ojrac/opensimplex-go"

	"terrapath/internal/core"
	"terrapath/internal/terrain"
)

func TestGenerateDeterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 42

	a := Generate(48, 36, opts)
	b := Generate(48, 36, opts)

	for r := 0; r < 36; r++ {
		for c := 0; c < 48; c++ {
			ca, _ := a.Get(r, c)
			cb, _ := b.Get(r, c)
			if ca != cb {
				t.Fatalf("cell (%d,%d) differs between identical seeds: %+v vs %+v", r, c, ca, cb)
			}
		}
	}
}

func TestGenerateSeedsDiverge(t *testing.T) {
	opts := DefaultOptions()

	opts.Seed = 1
	a := Generate(48, 36, opts)
	opts.Seed = 2
	b := Generate(48, 36, opts)

	diff := 0
	for r := 0; r < 36; r++ {
		for c := 0; c < 48; c++ {
			if a.KindAt(r, c) != b.KindAt(r, c) {
				diff++
			}
		}
	}
	if diff == 0 {
		t.Error("different seeds produced identical terrain")
	}
}

func TestGenerateDimensionsAndKinds(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 7

	g := Generate(30, 20, opts)
	if g.Width() != 30 || g.Height() != 20 {
		t.Fatalf("got %dx%d, want 30x20", g.Width(), g.Height())
	}
	for r := 0; r < 20; r++ {
		for c := 0; c < 30; c++ {
			cell, _ := g.Get(r, c)
			if !cell.Kind.Valid() {
				t.Fatalf("cell (%d,%d) has invalid kind %d", r, c, cell.Kind)
			}
			if cell.Variation > 3 {
				t.Fatalf("cell (%d,%d) has variation %d outside 0..3", r, c, cell.Variation)
			}
		}
	}
}

func TestGenerateNeverFailsOnExcessiveRegions(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 3
	opts.ElevatedRegionCount = 1000

	// Placement is best-effort; an impossible request under-delivers
	// instead of failing.
	g := Generate(20, 20, opts)
	if g == nil || g.Width() != 20 {
		t.Fatal("generator must always return a usable grid")
	}
}

func TestGenerateDegenerateSizes(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 5

	for _, dims := range [][2]int{{0, 0}, {1, 1}, {3, 2}} {
		g := Generate(dims[0], dims[1], opts)
		if g.Width() != dims[0] || g.Height() != dims[1] {
			t.Errorf("dims %v: got %dx%d", dims, g.Width(), g.Height())
		}
	}
}

func TestGenerateLakesProduceWater(t *testing.T) {
	opts := Options{
		WaterRatio:  0.5,
		CreateLakes: true,
		Seed:        11,
	}

	g := Generate(40, 40, opts)
	if g.Composition().Water == 0 {
		t.Error("lake generation with waterRatio 0.5 produced no water")
	}
}

func TestGenerateCoastErodesBorder(t *testing.T) {
	opts := Options{
		WaterRatio:  0.5,
		CreateCoast: true,
		Seed:        13,
	}

	g := Generate(40, 40, opts)
	border := 0
	for c := 0; c < 40; c++ {
		if g.KindAt(0, c) == core.Water {
			border++
		}
		if g.KindAt(39, c) == core.Water {
			border++
		}
	}
	if border == 0 {
		t.Error("coast generation left the map border dry")
	}
}

func newTestGenerator(grid *terrain.Grid, opts Options) *generator {
	return &generator{
		cols:  grid.Width(),
		rows:  grid.Height(),
		rng:   newLCG(1),
		noise: opensimplex.NewNormalized(1),
		grid:  grid,
		opts:  opts,
	}
}

func TestSmoothRemovesSingleTileNoise(t *testing.T) {
	grid := terrain.NewGrid(5, 5)
	grid.Set(2, 2, core.Water, 0)

	g := newTestGenerator(grid, DefaultOptions())
	g.smooth()

	if grid.KindAt(2, 2) != core.Flat {
		t.Errorf("isolated water cell should smooth to flat, got %v", grid.KindAt(2, 2))
	}
}

func TestSmoothKeepsTies(t *testing.T) {
	// Center cell has two water and two elevated neighbors: majority is
	// tied, so the cell keeps its kind.
	grid := terrain.NewGrid(3, 3)
	grid.Set(0, 1, core.Water, 0)
	grid.Set(2, 1, core.Water, 0)
	grid.Set(1, 0, core.Elevated1, 0)
	grid.Set(1, 2, core.Elevated1, 0)
	grid.Set(1, 1, core.Ramp, 0)

	g := newTestGenerator(grid, DefaultOptions())
	g.smooth()

	if grid.KindAt(1, 1) != core.Ramp {
		t.Errorf("tied majority should keep the current kind, got %v", grid.KindAt(1, 1))
	}
}

func TestSmoothKeepsSupportedCells(t *testing.T) {
	// A 2x2 elevated block: every block cell has 2 same-kind neighbors and
	// must survive smoothing.
	grid := terrain.NewGrid(6, 6)
	for r := 2; r <= 3; r++ {
		for c := 2; c <= 3; c++ {
			grid.Set(r, c, core.Elevated1, 0)
		}
	}

	g := newTestGenerator(grid, DefaultOptions())
	g.smooth()
	g.smooth()

	for r := 2; r <= 3; r++ {
		for c := 2; c <= 3; c++ {
			if grid.KindAt(r, c) != core.Elevated1 {
				t.Fatalf("supported elevated cell (%d,%d) was smoothed away", r, c)
			}
		}
	}
}

func TestCarveRampsConnectsPlateau(t *testing.T) {
	grid := terrain.NewGrid(8, 8)
	for r := 2; r <= 5; r++ {
		for c := 2; c <= 5; c++ {
			grid.Set(r, c, core.Elevated1, 0)
		}
	}

	opts := DefaultOptions()
	g := newTestGenerator(grid, opts)
	g.carveRamps()

	ramps := 0
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if grid.KindAt(r, c) != core.Ramp {
				continue
			}
			ramps++
			// Every carved ramp sits on the plateau perimeter next to
			// flat ground.
			bordersFlat := grid.KindAt(r-1, c) == core.Flat ||
				grid.KindAt(r+1, c) == core.Flat ||
				grid.KindAt(r, c-1) == core.Flat ||
				grid.KindAt(r, c+1) == core.Flat
			if !bordersFlat {
				t.Errorf("ramp at (%d,%d) does not border flat ground", r, c)
			}
		}
	}
	if ramps == 0 {
		t.Error("plateau bordering flat ground should receive at least one ramp")
	}
}

func TestLCG(t *testing.T) {
	a := newLCG(99)
	b := newLCG(99)
	for i := 0; i < 100; i++ {
		if a.next() != b.next() {
			t.Fatal("identical seeds must replay identical sequences")
		}
	}

	r := newLCG(5)
	for i := 0; i < 1000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
		n := r.Intn(10)
		if n < 0 || n >= 10 {
			t.Fatalf("Intn out of range: %v", n)
		}
		v := r.Range(3, 7)
		if v < 3 || v > 7 {
			t.Fatalf("Range out of range: %v", v)
		}
	}
	if r.Intn(0) != 0 || r.Range(5, 2) != 5 {
		t.Error("degenerate ranges should collapse to their lower bound")
	}
}
