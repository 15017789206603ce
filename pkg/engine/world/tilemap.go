// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import (
	"deepdelve/pkg/engine/geometry"
)

// Tile codes stored in a TileMap.
const (
	TileEmpty = -1 // outside any room
	TileFloor = 0  // walkable room interior
	TileWall  = 1  // room border
	TileDoorH = 2  // door spanning horizontally (in a horizontal shared wall)
	TileDoorV = 3  // door spanning vertically (in a vertical shared wall)
)

// TileMap is a dense 2D buffer of tile codes with encapsulated storage.
type TileMap struct {
	tiles  [][]int // indexed [x][y]
	width  int
	height int
}

// NewTileMap creates a map of the given size with every tile set to TileEmpty.
func NewTileMap(width, height int) *TileMap {
	if width <= 0 || height <= 0 {
		panic("TileMap dimensions must be positive")
	}

	tiles := make([][]int, width)
	for x := range tiles {
		column := make([]int, height)
		for y := range column {
			column[y] = TileEmpty
		}
		tiles[x] = column
	}

	return &TileMap{tiles: tiles, width: width, height: height}
}

// Width returns the horizontal tile count.
func (t *TileMap) Width() int { return t.width }

// Height returns the vertical tile count.
func (t *TileMap) Height() int { return t.height }

// InBounds checks if a position is within the map.
func (t *TileMap) InBounds(x, y int) bool {
	return x >= 0 && x < t.width && y >= 0 && y < t.height
}

// At returns the tile code at (x,y), or TileEmpty if out of bounds.
func (t *TileMap) At(x, y int) int {
	if !t.InBounds(x, y) {
		return TileEmpty
	}
	return t.tiles[x][y]
}

// Set writes a tile code. Out-of-bounds writes are ignored.
func (t *TileMap) Set(x, y, code int) {
	if !t.InBounds(x, y) {
		return
	}
	t.tiles[x][y] = code
}

// Walkable reports whether the tile at (x,y) can be stood on.
// Floors and doors are walkable; walls and empty space are not.
func (t *TileMap) Walkable(x, y int) bool {
	switch t.At(x, y) {
	case TileFloor, TileDoorH, TileDoorV:
		return true
	}
	return false
}

// Fill writes code over the whole rectangle, clipped to the map.
func (t *TileMap) Fill(r geometry.Rect, code int) {
	for x := r.XMin(); x < r.XMax(); x++ {
		for y := r.YMin(); y < r.YMax(); y++ {
			t.Set(x, y, code)
		}
	}
}

// FillOutline writes code over the 1-tile border ring of the rectangle only.
func (t *TileMap) FillOutline(r geometry.Rect, code int) {
	for x := r.XMin(); x < r.XMax(); x++ {
		for y := r.YMin(); y < r.YMax(); y++ {
			if x == r.XMin() || x == r.XMax()-1 || y == r.YMin() || y == r.YMax()-1 {
				t.Set(x, y, code)
			}
		}
	}
}

// ForEachTile iterates over all tiles, calling fn for each.
func (t *TileMap) ForEachTile(fn func(x, y, code int)) {
	for x := 0; x < t.width; x++ {
		for y := 0; y < t.height; y++ {
			fn(x, y, t.tiles[x][y])
		}
	}
}
