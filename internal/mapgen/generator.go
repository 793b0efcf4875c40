// Package mapgen procedurally generates terrain grids: coastline erosion,
// lakes, elevated plateau regions, smoothing and ramp carving. Generation is
// deterministic for a given seed.
package mapgen

import (
	"math"
	"time"

	opensimplex "github.com/ojrac/opensimplex-go"

	"terrapath/internal/core"
	"terrapath/internal/terrain"
)

// Options controls a generation run. A zero Seed draws one from the clock;
// any other seed makes the output bit-identical across runs.
type Options struct {
	WaterRatio          float64 `yaml:"water_ratio"`
	ElevatedRegionCount int     `yaml:"elevated_regions"`
	CreateLakes         bool    `yaml:"lakes"`
	CreateCoast         bool    `yaml:"coast"`
	CarveRamps          bool    `yaml:"ramps"`
	RampSpacing         int     `yaml:"ramp_spacing"`
	Seed                int64   `yaml:"seed"`
}

// DefaultOptions returns the options used for a standard skirmish map.
func DefaultOptions() Options {
	return Options{
		WaterRatio:          0.2,
		ElevatedRegionCount: 3,
		CreateLakes:         true,
		CreateCoast:         true,
		CarveRamps:          true,
		RampSpacing:         4,
	}
}

// generator carries the working state of one generation run.
type generator struct {
	cols, rows int
	rng        *lcg
	noise      opensimplex.Noise
	grid       *terrain.Grid
	opts       Options
}

// Generate produces a cols x rows terrain grid. It never fails: when the
// requested elevated regions cannot all be placed the grid is simply
// under-delivered, and degenerate dimensions yield an empty grid.
func Generate(cols, rows int, opts Options) *terrain.Grid {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if opts.RampSpacing <= 0 {
		opts.RampSpacing = DefaultOptions().RampSpacing
	}

	g := &generator{
		cols:  cols,
		rows:  rows,
		rng:   newLCG(seed),
		noise: opensimplex.NewNormalized(seed),
		grid:  terrain.NewGrid(cols, rows),
		opts:  opts,
	}

	g.fillFlat()
	if opts.CreateCoast {
		g.carveCoast()
		g.carveBays()
	}
	if opts.CreateLakes {
		g.carveLakes()
	}
	g.placeElevatedRegions()
	g.smooth()
	g.smooth()
	if opts.CarveRamps {
		g.carveRamps()
	}
	return g.grid
}

func (g *generator) fillFlat() {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			g.grid.Set(r, c, core.Flat, uint8(g.rng.Intn(4)))
		}
	}
}

// carveCoast erodes a border band whose water probability rises toward the
// map edge. Band depth scales with the water ratio.
func (g *generator) carveCoast() {
	minDim := g.cols
	if g.rows < minDim {
		minDim = g.rows
	}
	depth := int(g.opts.WaterRatio * float64(minDim) / 2)
	if depth <= 0 {
		return
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			edgeDist := minInt(minInt(r, g.rows-1-r), minInt(c, g.cols-1-c))
			if edgeDist >= depth {
				continue
			}
			p := float64(depth-edgeDist) / float64(depth)
			if g.rng.Float64() < p {
				g.grid.Set(r, c, core.Water, 0)
			}
		}
	}
}

// carveBays cuts 2-4 inlets inward from random edge points, each a short
// directional random walk with lateral jitter and a circular water brush.
func (g *generator) carveBays() {
	count := 2 + g.rng.Intn(3)
	for i := 0; i < count; i++ {
		var x, y, dx, dy float64
		switch g.rng.Intn(4) {
		case 0: // top edge, heading down
			x, y, dx, dy = float64(g.rng.Intn(g.cols)), 0, 0, 1
		case 1: // bottom edge, heading up
			x, y, dx, dy = float64(g.rng.Intn(g.cols)), float64(g.rows-1), 0, -1
		case 2: // left edge, heading right
			x, y, dx, dy = 0, float64(g.rng.Intn(g.rows)), 1, 0
		default: // right edge, heading left
			x, y, dx, dy = float64(g.cols-1), float64(g.rng.Intn(g.rows)), -1, 0
		}
		steps := 3 + g.rng.Intn(6)
		radius := 1 + g.rng.Intn(2)
		for s := 0; s < steps; s++ {
			g.paintCircle(int(y), int(x), radius)
			jitter := g.rng.Float64()*2 - 1
			x += dx - dy*jitter
			y += dy + dx*jitter
		}
	}
}

// paintCircle floods a circular brush of water centered at (row, col).
func (g *generator) paintCircle(row, col, radius int) {
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if dr*dr+dc*dc <= radius*radius {
				g.grid.Set(row+dr, col+dc, core.Water, 0)
			}
		}
	}
}

// carveLakes places ceil(waterRatio*10) elliptical water blobs at random
// interior positions. A simplex-noise term perturbs each boundary so lake
// edges are not perfect ellipses.
func (g *generator) carveLakes() {
	count := int(math.Ceil(g.opts.WaterRatio * 10))
	for i := 0; i < count; i++ {
		cr := g.rng.Range(2, g.rows-3)
		cc := g.rng.Range(2, g.cols-3)
		ry := 2 + g.rng.Intn(maxInt(1, g.rows/8))
		rx := 2 + g.rng.Intn(maxInt(1, g.cols/8))
		for r := cr - ry - 1; r <= cr+ry+1; r++ {
			for c := cc - rx - 1; c <= cc+rx+1; c++ {
				dy := float64(r-cr) / float64(ry)
				dx := float64(c-cc) / float64(rx)
				d := dx*dx + dy*dy
				n := g.noise.Eval2(float64(c)*0.2, float64(r)*0.2)
				if d <= 1+(n-0.5)*0.5 {
					g.grid.Set(r, c, core.Water, 0)
				}
			}
		}
	}
}

// region is an inclusive cell rectangle.
type region struct {
	r0, c0, r1, c1 int
}

func (a region) overlaps(b region, margin int) bool {
	return a.r0-margin <= b.r1 && a.r1+margin >= b.r0 &&
		a.c0-margin <= b.c1 && a.c1+margin >= b.c0
}

// placeElevatedRegions drops non-overlapping rectangular plateaus, each at
// most ~15% of the map extent per axis. Placement is best-effort: a region
// that cannot find a spot within 50 attempts is skipped.
func (g *generator) placeElevatedRegions() {
	maxW := maxInt(3, g.cols*15/100)
	maxH := maxInt(3, g.rows*15/100)
	var placed []region

	for i := 0; i < g.opts.ElevatedRegionCount; i++ {
		for attempt := 0; attempt < 50; attempt++ {
			w := g.rng.Range(3, maxW)
			h := g.rng.Range(3, maxH)
			if w > g.cols || h > g.rows {
				continue
			}
			c0 := g.rng.Intn(g.cols - w + 1)
			r0 := g.rng.Intn(g.rows - h + 1)
			cand := region{r0: r0, c0: c0, r1: r0 + h - 1, c1: c0 + w - 1}

			rejected := false
			for _, p := range placed {
				if cand.overlaps(p, 2) {
					rejected = true
					break
				}
			}
			if rejected || g.waterFraction(cand) > 0.5 {
				continue
			}

			kind := core.Elevated1
			if g.rng.Float64() < 0.3 {
				kind = core.Elevated2
			}
			g.fillRegion(cand, kind)
			placed = append(placed, cand)
			break
		}
	}
}

func (g *generator) waterFraction(reg region) float64 {
	water, total := 0, 0
	for r := reg.r0; r <= reg.r1; r++ {
		for c := reg.c0; c <= reg.c1; c++ {
			total++
			if g.grid.KindAt(r, c) == core.Water {
				water++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(water) / float64(total)
}

// fillRegion raises a rectangle probabilistically; border cells fill with a
// lower chance than interior ones, producing irregular silhouettes. Water
// inside the rectangle is left untouched.
func (g *generator) fillRegion(reg region, kind core.TerrainKind) {
	for r := reg.r0; r <= reg.r1; r++ {
		for c := reg.c0; c <= reg.c1; c++ {
			if g.grid.KindAt(r, c) == core.Water {
				continue
			}
			chance := 0.9
			if r == reg.r0 || r == reg.r1 || c == reg.c0 || c == reg.c1 {
				chance = 0.55
			}
			if g.rng.Float64() < chance {
				g.grid.Set(r, c, kind, uint8(g.rng.Intn(4)))
			}
		}
	}
}

// orderedKinds fixes the evaluation order of majority voting so smoothing is
// deterministic.
var orderedKinds = [5]core.TerrainKind{
	core.Water, core.Flat, core.Elevated1, core.Elevated2, core.Ramp,
}

// smooth removes single-tile noise: a cell with at most one same-kind
// 4-neighbor adopts the unique majority kind among its 4 neighbors and rolls
// a fresh cosmetic variation. Majority ties keep the current kind. The pass
// reads from a snapshot so a change never feeds into its own pass.
func (g *generator) smooth() {
	prev := make([]core.TerrainKind, g.rows*g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			prev[r*g.cols+c] = g.grid.KindAt(r, c)
		}
	}
	kindAt := func(r, c int) core.TerrainKind {
		if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
			return core.Water
		}
		return prev[r*g.cols+c]
	}

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cur := kindAt(r, c)
			neighbors := [4]core.TerrainKind{
				kindAt(r-1, c),
				kindAt(r+1, c),
				kindAt(r, c-1),
				kindAt(r, c+1),
			}

			same := 0
			for _, nk := range neighbors {
				if nk == cur {
					same++
				}
			}
			if same > 1 {
				continue
			}

			best := cur
			bestCount := 0
			tie := false
			for _, kind := range orderedKinds {
				count := 0
				for _, nk := range neighbors {
					if nk == kind {
						count++
					}
				}
				if count > bestCount {
					best, bestCount, tie = kind, count, false
				} else if count == bestCount && count > 0 {
					tie = true
				}
			}
			if tie || best == cur {
				continue
			}
			g.grid.Set(r, c, best, uint8(g.rng.Intn(4)))
		}
	}
}

// carveRamps converts elevated perimeter cells that border flat ground into
// ramps at a fixed candidate spacing, so generated plateaus are reachable
// without hand editing. The first candidate always becomes a ramp.
func (g *generator) carveRamps() {
	candidate := 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if !core.IsElevated(g.grid.KindAt(r, c)) {
				continue
			}
			bordersFlat := g.grid.KindAt(r-1, c) == core.Flat ||
				g.grid.KindAt(r+1, c) == core.Flat ||
				g.grid.KindAt(r, c-1) == core.Flat ||
				g.grid.KindAt(r, c+1) == core.Flat
			if !bordersFlat {
				continue
			}
			if candidate%g.opts.RampSpacing == 0 {
				g.grid.Set(r, c, core.Ramp, uint8(g.rng.Intn(4)))
			}
			candidate++
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
