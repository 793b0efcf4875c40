package pathfinding

import (
	"math"

	"terrapath/internal/core"
)

// collinearEps bounds the cross product below which three consecutive
// waypoints count as collinear.
const collinearEps = 1e-6

// FindPathSmooth runs FindPath and drops interior waypoints that are
// collinear with their immediate neighbors, so a straight run of cells
// collapses to its two endpoints. The first and last waypoint are always
// preserved and the route topology is unchanged.
func (g *Grid) FindPathSmooth(startX, startY, endX, endY float64) []core.Vector2D {
	return simplifyCollinear(g.FindPath(startX, startY, endX, endY))
}

func simplifyCollinear(path []core.Vector2D) []core.Vector2D {
	if len(path) < 3 {
		return path
	}
	out := make([]core.Vector2D, 0, len(path))
	out = append(out, path[0])
	for i := 1; i < len(path)-1; i++ {
		prev, cur, next := path[i-1], path[i], path[i+1]
		cross := (cur.X-prev.X)*(next.Y-cur.Y) - (cur.Y-prev.Y)*(next.X-cur.X)
		if math.Abs(cross) > collinearEps {
			out = append(out, cur)
		}
	}
	return append(out, path[len(path)-1])
}
