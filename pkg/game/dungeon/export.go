package dungeon

import (
	"bytes"
	"fmt"
	"os"

	"deepdelve/pkg/engine/world"
)

// tileSymbol returns the single-character symbol for a tile code.
func tileSymbol(code int) byte {
	switch code {
	case world.TileFloor:
		return '.'
	case world.TileWall:
		return '#'
	case world.TileDoorH, world.TileDoorV:
		return 'D'
	default:
		return ' '
	}
}

// DumpMap renders the rasterized tile grid as ASCII, one row per line.
// Start and exit tiles are overlaid as '@' and '>'.
func (d *Dungeon) DumpMap() string {
	if d.Tiles == nil {
		return ""
	}

	var buf bytes.Buffer
	for y := 0; y < d.Tiles.Height(); y++ {
		for x := 0; x < d.Tiles.Width(); x++ {
			switch (world.Position{X: x, Y: y}) {
			case d.StartCell:
				buf.WriteByte('@')
			case d.ExitCell:
				buf.WriteByte('>')
			default:
				buf.WriteByte(tileSymbol(d.Tiles.At(x, y)))
			}
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}

// WriteMapFile writes the ASCII map dump to a file for inspection.
func (d *Dungeon) WriteMapFile(path string) error {
	if err := os.WriteFile(path, []byte(d.DumpMap()), 0644); err != nil {
		return fmt.Errorf("write map dump %s: %w", path, err)
	}
	return nil
}

// ToDOT renders the room-door graph in Graphviz DOT format. Rooms are
// boxes labelled with their dimensions; doors are small circles. The
// output is plain text suitable for `dot -Tsvg`.
func (d *Dungeon) ToDOT() string {
	var buf bytes.Buffer
	buf.WriteString("graph dungeon {\n")
	buf.WriteString("  node [shape=box, style=filled, fillcolor=white];\n")
	buf.WriteString("\n")

	for _, id := range d.Graph.Nodes() {
		room := d.Room(id)
		if room == nil {
			continue
		}
		dim := room.Dimensions
		switch {
		case room.Door:
			fmt.Fprintf(&buf, "  %d [shape=circle, label=\"door\", fillcolor=lightgrey];\n", id)
		case room.StartingRoom:
			fmt.Fprintf(&buf, "  %d [label=\"start %dx%d\", fillcolor=palegreen];\n", id, dim.Width, dim.Height)
		default:
			fmt.Fprintf(&buf, "  %d [label=\"%dx%d @ (%d,%d)\"];\n", id, dim.Width, dim.Height, dim.X, dim.Y)
		}
	}

	buf.WriteString("\n")
	for _, id := range d.Graph.Nodes() {
		neighbours, ok := d.Graph.Neighbours(id)
		if !ok {
			continue
		}
		for _, neighbour := range neighbours {
			if id < neighbour { // each undirected edge once
				fmt.Fprintf(&buf, "  %d -- %d;\n", id, neighbour)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// WriteDOTFile writes the DOT rendering of the room-door graph to a file.
func (d *Dungeon) WriteDOTFile(path string) error {
	if err := os.WriteFile(path, []byte(d.ToDOT()), 0644); err != nil {
		return fmt.Errorf("write dot %s: %w", path, err)
	}
	return nil
}
