// Package nav builds a navigation graph over a rasterized tile map and
// answers point-to-point path queries against it. The graph is read-only
// once built: queries allocate only local state and may run concurrently
// as long as nobody rebuilds the graph underneath them.
package nav

import (
	"deepdelve/pkg/engine/graph"
	"deepdelve/pkg/engine/world"
)

// BuildGraph derives a walkable node graph from the tile map. Floor and
// door tiles become nodes; edges connect cardinal neighbours plus the
// diagonal neighbours whose two flanking cardinal tiles are both open,
// so a path can never cut through a wall corner.
func BuildGraph(tiles *world.TileMap) *graph.Graph[world.Position] {
	g := graph.New[world.Position]()

	// Nodes first: AddEdge requires both endpoints to exist.
	tiles.ForEachTile(func(x, y, code int) {
		if tiles.Walkable(x, y) {
			g.AddNode(world.Position{X: x, Y: y})
		}
	})

	// East/South and the two downward diagonals cover every adjacent
	// pair exactly once, which matters because the graph keeps parallel
	// edges if a caller double-adds.
	tiles.ForEachTile(func(x, y, code int) {
		if !tiles.Walkable(x, y) {
			return
		}
		pos := world.Position{X: x, Y: y}

		for _, dir := range []world.Direction{world.East, world.South} {
			next := pos.Step(dir)
			if tiles.Walkable(next.X, next.Y) {
				g.AddEdge(pos, next)
			}
		}

		for _, dir := range []world.Direction{world.SouthEast, world.SouthWest} {
			next := pos.Step(dir)
			if !tiles.Walkable(next.X, next.Y) {
				continue
			}
			first, second := dir.Flanking()
			a := pos.Step(first)
			b := pos.Step(second)
			if tiles.Walkable(a.X, a.Y) && tiles.Walkable(b.X, b.Y) {
				g.AddEdge(pos, next)
			}
		}
	})

	return g
}

// NearestNode returns the graph node closest to pos by straight-line
// distance, via a linear scan over all nodes. Returns false only for an
// empty graph.
func NearestNode(g *graph.Graph[world.Position], pos world.Position) (world.Position, bool) {
	var nearest world.Position
	found := false
	best := 0.0

	for _, node := range g.Nodes() {
		dist := node.Dist(pos)
		if !found || dist < best {
			nearest = node
			best = dist
			found = true
		}
	}

	return nearest, found
}
