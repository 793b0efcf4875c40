package terrapath

import (
	"math"

	"terrapath/internal/core"
)

// Vector2D utility functions

// NewVector2D creates a new 2D vector
func NewVector2D(x, y float64) core.Vector2D {
	return core.Vector2D{X: x, Y: y}
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b core.Vector2D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PathLength sums the segment lengths of a waypoint route
func PathLength(path []core.Vector2D) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += Distance(path[i-1], path[i])
	}
	return total
}

// AABB utility functions

// AABBFromCenterSize creates an AABB from center point and size
func AABBFromCenterSize(center core.Vector2D, width, height float64) core.AABB {
	halfWidth := width / 2
	halfHeight := height / 2
	return core.AABB{
		Min: core.Vector2D{X: center.X - halfWidth, Y: center.Y - halfHeight},
		Max: core.Vector2D{X: center.X + halfWidth, Y: center.Y + halfHeight},
	}
}

// AABBContains checks if an AABB contains a point
func AABBContains(bounds core.AABB, point core.Vector2D) bool {
	return point.X >= bounds.Min.X && point.X <= bounds.Max.X &&
		point.Y >= bounds.Min.Y && point.Y <= bounds.Max.Y
}
