package dungeon

import (
	"deepdelve/pkg/engine/geometry"
)

// partition drains the split worklist, cutting rectangles in two until
// every piece is too small to halve, and moves finished rooms to toDraw.
//
// Each cut produces children sharing a 1-tile boundary (the +1 on the
// first half): rooms deliberately overlap on their common wall tile,
// which is what the connectivity builder later detects as adjacency.
func (g *Generator) partition() {
	g.toSplit = append(g.toSplit, g.arena.NewRoom(geometry.NewRect(0, 0, g.settings.Width, g.settings.Height)))

	for len(g.toSplit) > 0 {
		id := g.toSplit[0]
		g.toSplit = g.toSplit[1:]
		dim := g.arena.Room(id).Dimensions

		// New uniform draw per attempt, so room sizes vary across the map.
		minSize := g.settings.MinRoomSize + g.rng.Intn(g.settings.MaxRoomSize-g.settings.MinRoomSize)

		if dim.Width/2 < minSize && dim.Height/2 < minSize {
			g.toDraw = append(g.toDraw, id)
			continue
		}

		// Split across the longer dimension, which biases toward squarer rooms.
		if dim.Height >= dim.Width {
			cut := g.cutOffset(dim.Height, minSize)
			g.pushSplit(
				geometry.NewRect(dim.X, dim.Y, dim.Width, cut+1),
				geometry.NewRect(dim.X, dim.Y+cut, dim.Width, dim.Height-cut),
			)
		} else {
			cut := g.cutOffset(dim.Width, minSize)
			g.pushSplit(
				geometry.NewRect(dim.X, dim.Y, cut+1, dim.Height),
				geometry.NewRect(dim.X+cut, dim.Y, dim.Width-cut, dim.Height),
			)
		}
	}
}

// cutOffset draws a uniform cut position in [minSize, length-minSize).
// The chosen dimension always satisfies length/2 >= minSize, so the
// range is never negative; when length == 2*minSize the cut is forced.
func (g *Generator) cutOffset(length, minSize int) int {
	cut := minSize
	if span := length - 2*minSize; span > 0 {
		cut += g.rng.Intn(span)
	}
	return cut
}

func (g *Generator) pushSplit(a, b geometry.Rect) {
	g.toSplit = append(g.toSplit, g.arena.NewRoom(a), g.arena.NewRoom(b))
}
