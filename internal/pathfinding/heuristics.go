package pathfinding

import "math"

// octile returns the octile distance for a grid offset: the true cost of
// reaching the offset with cardinal steps of cost 1 and diagonal steps of
// cost sqrt(2). Used both as the step metric and the A* heuristic, which
// keeps the heuristic admissible.
func octile(dc, dr int) float64 {
	dx := math.Abs(float64(dc))
	dy := math.Abs(float64(dr))
	return dx + dy + (math.Sqrt2-2)*math.Min(dx, dy)
}
