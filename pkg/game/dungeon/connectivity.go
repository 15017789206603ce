package dungeon

import (
	"math"
	"sort"

	"deepdelve/pkg/engine/geometry"
	"deepdelve/pkg/engine/graph"
)

// connect derives the room adjacency graph from geometric intersection.
// Two rooms are adjacent when they share interior area (their common
// wall strip) and the overlap is long enough in at least one dimension
// to fit a door with clearance. O(rooms²), which is fine at the room
// counts a bounded dungeon produces.
func (g *Generator) connect() {
	g.graph = graph.New[RoomID]()
	for _, id := range g.toDraw {
		g.graph.AddNode(id)
	}

	clearance := g.settings.clearance()
	for i := 0; i < len(g.toDraw); i++ {
		for j := i + 1; j < len(g.toDraw); j++ {
			a := g.arena.Room(g.toDraw[i]).Dimensions
			b := g.arena.Room(g.toDraw[j]).Dimensions
			if !geometry.Intersects(a, b) {
				continue
			}
			overlap := geometry.Intersect(a, b)
			if overlap.Width >= clearance || overlap.Height >= clearance {
				g.graph.AddEdge(g.toDraw[i], g.toDraw[j])
			}
		}
	}
}

// prune removes the smallest rooms first, but only while removal keeps
// the adjacency graph connected. Pruning stops at the first refused
// room rather than skipping it: the candidate list is a prefix, not a
// filter, so a small room that happens to be a cut vertex shields every
// larger candidate behind it.
func (g *Generator) prune() {
	if len(g.toDraw) < 2 {
		return
	}

	candidates := make([]RoomID, len(g.toDraw))
	copy(candidates, g.toDraw)
	sort.SliceStable(candidates, func(i, j int) bool {
		return g.arena.Room(candidates[i]).Dimensions.Area() < g.arena.Room(candidates[j]).Dimensions.Area()
	})

	// Anchor reachability checks at the largest room; it is never a
	// removal candidate, so it survives the whole pass.
	anchor := candidates[len(candidates)-1]
	limit := int(math.Ceil(float64(len(candidates)) * g.settings.PruneFraction))

	for i := 0; i < limit; i++ {
		target := candidates[i]
		if !g.graph.RemoveNodeIfConnected(target, anchor) {
			break
		}
		g.deleted = append(g.deleted, target)
		g.toDraw = withoutRoom(g.toDraw, target)
	}
}

func withoutRoom(rooms []RoomID, id RoomID) []RoomID {
	kept := rooms[:0]
	for _, candidate := range rooms {
		if candidate != id {
			kept = append(kept, candidate)
		}
	}
	return kept
}
