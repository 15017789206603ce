package dungeon

import (
	"deepdelve/pkg/engine/geometry"

	"github.com/zyedidia/generic/mapset"
)

// placeDoors walks the adjacency graph breadth-first from a random
// starting room and carves exactly one door per newly discovered room.
// Only BFS tree edges get doors, so the resulting room-door graph is a
// spanning tree even when the adjacency graph had cycles. The tree
// replaces the adjacency graph entirely; rooms the walk never reached
// are moved to the unreachable list and dropped from the final set.
func (g *Generator) placeDoors() {
	if len(g.toDraw) == 0 {
		return
	}

	start := g.toDraw[g.rng.Intn(len(g.toDraw))]
	g.arena.Room(start).StartingRoom = true
	g.start = start

	tree := newRoomGraph()
	tree.AddNode(start)

	visited := mapset.New[RoomID]()
	visited.Put(start)
	queue := []RoomID{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		neighbours, ok := g.graph.Neighbours(current)
		if !ok {
			continue
		}
		for _, neighbour := range neighbours {
			if visited.Has(neighbour) {
				continue
			}
			visited.Put(neighbour)

			door := g.carveDoor(current, neighbour)
			g.doors = append(g.doors, door)

			tree.AddNode(door)
			tree.AddNode(neighbour)
			tree.AddEdge(current, door)
			tree.AddEdge(door, neighbour)

			queue = append(queue, neighbour)
		}
	}

	reachable := make([]RoomID, 0, len(g.toDraw))
	for _, id := range g.toDraw {
		if visited.Has(id) {
			reachable = append(reachable, id)
		} else {
			g.unreachable = append(g.unreachable, id)
		}
	}
	g.toDraw = reachable
	g.graph = tree
}

// carveDoor allocates a door rectangle inside the overlap strip between
// two adjacent rooms. The door is DoorSize tiles long along the longer
// overlap dimension and covers the full shorter dimension (the wall
// thickness), placed uniformly at random inside the 1-tile clearance
// margin at each end.
func (g *Generator) carveDoor(a, b RoomID) RoomID {
	overlap := geometry.Intersect(g.arena.Room(a).Dimensions, g.arena.Room(b).Dimensions)
	size := g.settings.DoorSize

	var dim geometry.Rect
	if overlap.Width >= overlap.Height {
		offset := overlap.X + 1 + g.rng.Intn(overlap.Width-size-1)
		dim = geometry.NewRect(offset, overlap.Y, size, overlap.Height)
	} else {
		offset := overlap.Y + 1 + g.rng.Intn(overlap.Height-size-1)
		dim = geometry.NewRect(overlap.X, offset, overlap.Width, size)
	}

	return g.arena.NewDoor(dim)
}
