package core

// IsElevated reports whether kind is one of the raised elevation tiers.
func IsElevated(kind TerrainKind) bool {
	return kind == Elevated1 || kind == Elevated2
}

// IsGround reports whether kind is standable terrain of any height.
func IsGround(kind TerrainKind) bool {
	return kind != Water
}

// CanTraverse is the sole traversal gate: it decides whether a unit may step
// between two adjacent cells of the given kinds. All elevation legality lives
// here so new tiers can be added without touching the search algorithm.
func CanTraverse(from, to TerrainKind) bool {
	// Water is impassable from either side.
	if from == Water || to == Water {
		return false
	}
	// Staying on the same kind is always legal.
	if from == to {
		return true
	}
	// A ramp bridges flat ground to either tier, and tier to tier through
	// two hops.
	if from == Ramp || to == Ramp {
		return true
	}
	// Flat ground and an elevated tier only connect through a ramp.
	if from == Flat && IsElevated(to) {
		return false
	}
	if to == Flat && IsElevated(from) {
		return false
	}
	// Two different elevated tiers never connect directly.
	if IsElevated(from) && IsElevated(to) {
		return false
	}
	return true
}
