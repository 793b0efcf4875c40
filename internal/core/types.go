package core

// Vector2D represents a 2D coordinate/vector
type Vector2D struct {
	X, Y float64
}

// AABB (Axis-Aligned Bounding Box) represents a rectangular boundary
type AABB struct {
	Min, Max Vector2D
}

// TerrainKind classifies a cell's height category. The raw ordinal carries
// no elevation order: Ramp sits after the elevated tiers but is a transition
// tile, not a higher level. Never compare kinds numerically; use IsElevated,
// IsGround and CanTraverse instead.
type TerrainKind uint8

const (
	Water TerrainKind = iota
	Flat
	Elevated1
	Elevated2
	Ramp

	numTerrainKinds
)

// kindNames maps each TerrainKind to its canonical name.
var kindNames = map[TerrainKind]string{
	Water:     "water",
	Flat:      "flat",
	Elevated1: "elevated1",
	Elevated2: "elevated2",
	Ramp:      "ramp",
}

// String returns the canonical lowercase name of the kind.
func (k TerrainKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether k is a member of the closed TerrainKind set.
func (k TerrainKind) Valid() bool {
	return k < numTerrainKinds
}

// ParseKind resolves a canonical kind name back to its TerrainKind.
// Unknown names resolve to Flat, matching the lenient-load policy for
// out-of-enum values in persisted data.
func ParseKind(name string) TerrainKind {
	for k, n := range kindNames {
		if n == name {
			return k
		}
	}
	return Flat
}

// KindFromInt converts a raw persisted value to a TerrainKind. Values
// outside the closed set coerce to Flat, matching ParseKind's handling of
// unknown names. The check happens on the int, before any narrowing, so
// large values cannot wrap back into the valid range.
func KindFromInt(raw int) TerrainKind {
	if raw < 0 || raw >= int(numTerrainKinds) {
		return Flat
	}
	return TerrainKind(raw)
}

// TerrainCell is one cell of the terrain grid. Variation (0..3) selects a
// cosmetic tile variant for rendering; pathfinding never reads it and it is
// not guaranteed to survive serialization.
type TerrainCell struct {
	Kind      TerrainKind
	Variation uint8
}
