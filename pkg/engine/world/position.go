package world

import "math"

// Position is a tile coordinate on a TileMap. Positions are value types
// and compare by coordinates, so they can key maps and graphs directly.
type Position struct {
	X int
	Y int
}

// Step returns the position one tile away in the given direction.
func (p Position) Step(dir Direction) Position {
	dx, dy := dir.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Dist returns the straight-line distance to other.
func (p Position) Dist(other Position) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
