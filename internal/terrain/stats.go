package terrain

import (
	"gonum.org/v1/gonum/stat"

	"terrapath/internal/core"
)

// Composition is the fraction of the grid covered by each terrain kind.
type Composition struct {
	Water     float64
	Flat      float64
	Elevated1 float64
	Elevated2 float64
	Ramp      float64
}

// Composition tallies the per-kind coverage of the grid. All fractions are
// zero for an empty grid.
func (g *Grid) Composition() Composition {
	var comp Composition
	total := float64(len(g.cells))
	if total == 0 {
		return comp
	}
	for _, cell := range g.cells {
		switch cell.Kind {
		case core.Water:
			comp.Water++
		case core.Flat:
			comp.Flat++
		case core.Elevated1:
			comp.Elevated1++
		case core.Elevated2:
			comp.Elevated2++
		case core.Ramp:
			comp.Ramp++
		}
	}
	comp.Water /= total
	comp.Flat /= total
	comp.Elevated1 /= total
	comp.Elevated2 /= total
	comp.Ramp /= total
	return comp
}

// RegionStats summarizes the connected walkable regions of a grid.
type RegionStats struct {
	Count   int     // number of 4-connected ground regions
	Largest int     // cell count of the largest region
	Mean    float64 // mean region size in cells
	StdDev  float64 // standard deviation of region sizes
}

// WalkableRegions flood-fills the grid's ground cells (4-connected) and
// summarizes the resulting region sizes. Map tooling uses this to spot
// generations that fragment the playable area.
func (g *Grid) WalkableRegions() RegionStats {
	visited := make([]bool, len(g.cells))
	var sizes []float64

	for start := range g.cells {
		if visited[start] || !core.IsGround(g.cells[start].Kind) {
			continue
		}
		// Iterative flood fill; recursion would overflow on large maps.
		size := 0
		stack := []int{start}
		visited[start] = true
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++
			r, c := idx/g.width, idx%g.width
			for _, off := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				nr, nc := r+off[0], c+off[1]
				if !g.InRange(nr, nc) {
					continue
				}
				nidx := nr*g.width + nc
				if visited[nidx] || !core.IsGround(g.cells[nidx].Kind) {
					continue
				}
				visited[nidx] = true
				stack = append(stack, nidx)
			}
		}
		sizes = append(sizes, float64(size))
	}

	if len(sizes) == 0 {
		return RegionStats{}
	}
	stats := RegionStats{
		Count: len(sizes),
		Mean:  stat.Mean(sizes, nil),
	}
	if len(sizes) > 1 {
		stats.StdDev = stat.StdDev(sizes, nil)
	}
	for _, s := range sizes {
		if int(s) > stats.Largest {
			stats.Largest = int(s)
		}
	}
	return stats
}
