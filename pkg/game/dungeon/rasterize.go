package dungeon

import (
	"deepdelve/pkg/engine/world"

	"github.com/zyedidia/generic/mapset"
)

// rasterize paints the final room and door set into the tile map.
func (g *Generator) rasterize() {
	g.tiles = Rasterize(g.arena, g.toDraw, g.doors, g.settings.Width, g.settings.Height)
}

// Rasterize converts a room/door set into a tile grid. Rooms paint a
// floor interior with a wall border ring; doors paint last and overwrite
// whatever is underneath, so a door always punctures the wall it sits on.
func Rasterize(arena *RoomArena, rooms, doors []RoomID, width, height int) *world.TileMap {
	tiles := world.NewTileMap(width, height)

	for _, id := range rooms {
		dim := arena.Room(id).Dimensions
		tiles.Fill(dim, world.TileFloor)
		tiles.FillOutline(dim, world.TileWall)
	}

	for _, id := range doors {
		dim := arena.Room(id).Dimensions
		code := world.TileDoorV
		if dim.Width >= dim.Height {
			code = world.TileDoorH
		}
		tiles.Fill(dim, code)
	}

	return tiles
}

// placeMarkers picks the start tile (centre of the starting room) and
// the exit tile (the walkable tile furthest from the start by breadth-
// first path distance, so the exit is always reachable and far away).
func (g *Generator) placeMarkers() {
	room := g.arena.Room(g.start)
	if room == nil || g.tiles == nil {
		return
	}

	x, y := room.Dimensions.Center()
	g.startCell = world.Position{X: x, Y: y}
	g.exitCell = furthestWalkable(g.tiles, g.startCell)
}

// furthestWalkable runs a BFS over walkable tiles and returns the last
// tile to be assigned a distance, i.e. one with maximal path distance
// from start.
func furthestWalkable(tiles *world.TileMap, start world.Position) world.Position {
	type cellDist struct {
		pos  world.Position
		dist int
	}

	visited := mapset.New[world.Position]()
	visited.Put(start)
	queue := []cellDist{{pos: start}}

	furthest := start
	maxDist := 0

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.dist > maxDist {
			maxDist = current.dist
			furthest = current.pos
		}

		for _, dir := range world.Cardinals() {
			next := current.pos.Step(dir)
			if !tiles.Walkable(next.X, next.Y) || visited.Has(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, cellDist{pos: next, dist: current.dist + 1})
		}
	}

	return furthest
}
