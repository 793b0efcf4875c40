package pathfinding

import (
	"container/heap"
	"math"

	"terrapath/internal/core"
)

// directions enumerates the 8-connected neighborhood with octile step
// costs: 1 for cardinal moves, sqrt(2) for diagonals.
var directions = [8]struct {
	dc, dr   int
	cost     float64
	diagonal bool
}{
	{0, -1, 1, false},
	{1, 0, 1, false},
	{0, 1, 1, false},
	{-1, 0, 1, false},
	{1, -1, math.Sqrt2, true},
	{1, 1, math.Sqrt2, true},
	{-1, 1, math.Sqrt2, true},
	{-1, -1, math.Sqrt2, true},
}

// FindPath runs A* between two world positions and returns the route as
// world-space cell centers, start cell first. The result is empty when the
// start or end cell is out of range, the end cell is unwalkable, or no
// route exists. Callers treat empty as "could not path", never as a fault.
func (g *Grid) FindPath(startX, startY, endX, endY float64) []core.Vector2D {
	startCol, startRow := g.WorldToGrid(startX, startY)
	endCol, endRow := g.WorldToGrid(endX, endY)
	if !g.InRange(startCol, startRow) || !g.InRange(endCol, endRow) {
		return nil
	}
	goal := g.at(endCol, endRow)
	if !goal.walkable {
		return nil
	}

	// Bumping the generation invalidates every node's scratch fields from
	// previous searches, including stale parent chains.
	g.search++
	order := 0

	start := g.at(startCol, startRow)
	g.prepare(start)
	start.h = octile(startCol-endCol, startRow-endRow)
	start.f = start.h

	open := make(nodeHeap, 0, 64)
	heap.Push(&open, start)

	expanded := 0
	for open.Len() > 0 {
		current := heap.Pop(&open).(*node)
		current.closedAt = g.search

		if current == goal {
			return g.reconstruct(current)
		}
		expanded++
		if g.maxNodes > 0 && expanded >= g.maxNodes {
			return nil
		}

		for _, dir := range &directions {
			nc, nr := current.col+dir.dc, current.row+dir.dr
			if !g.InRange(nc, nr) {
				continue
			}
			neighbor := g.at(nc, nr)
			if !neighbor.walkable || !core.CanTraverse(current.kind, neighbor.kind) {
				continue
			}
			if dir.diagonal {
				// Corner-cutting prevention: both orthogonal cells
				// flanking the diagonal must be walkable and reachable
				// from the current cell.
				side1 := g.at(current.col+dir.dc, current.row)
				side2 := g.at(current.col, current.row+dir.dr)
				if !side1.walkable || !core.CanTraverse(current.kind, side1.kind) {
					continue
				}
				if !side2.walkable || !core.CanTraverse(current.kind, side2.kind) {
					continue
				}
			}

			tentative := current.g + dir.cost
			if neighbor.visitedAt != g.search {
				g.prepare(neighbor)
				neighbor.g = tentative
				neighbor.h = octile(nc-endCol, nr-endRow)
				neighbor.f = neighbor.g + neighbor.h
				neighbor.parent = current
				neighbor.order = order
				order++
				heap.Push(&open, neighbor)
			} else if neighbor.closedAt != g.search && tentative < neighbor.g {
				neighbor.g = tentative
				neighbor.f = tentative + neighbor.h
				neighbor.parent = current
				heap.Fix(&open, neighbor.heapIndex)
			}
		}
	}
	return nil
}

// prepare clears a node's scratch fields and stamps it into the current
// search generation.
func (g *Grid) prepare(n *node) {
	n.g, n.h, n.f = 0, 0, 0
	n.parent = nil
	n.heapIndex = -1
	n.order = 0
	n.visitedAt = g.search
	n.closedAt = 0
}

// reconstruct follows the parent chain from the goal back to the start and
// returns the reversed route as world-space cell centers.
func (g *Grid) reconstruct(goal *node) []core.Vector2D {
	var path []core.Vector2D
	for n := goal; n != nil; n = n.parent {
		path = append(path, g.GridToWorld(n.col, n.row))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
