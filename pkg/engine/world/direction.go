package world

// Direction represents a cardinal or diagonal direction on the grid.
type Direction int

// Direction constants. Cardinals first, then diagonals.
const (
	North Direction = iota
	East
	South
	West
	NorthEast
	SouthEast
	SouthWest
	NorthWest
)

// Cardinals returns the four cardinal directions for iteration.
func Cardinals() []Direction {
	return []Direction{North, East, South, West}
}

// Diagonals returns the four diagonal directions for iteration.
func Diagonals() []Direction {
	return []Direction{NorthEast, SouthEast, SouthWest, NorthWest}
}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	case NorthEast:
		return "NorthEast"
	case SouthEast:
		return "SouthEast"
	case SouthWest:
		return "SouthWest"
	case NorthWest:
		return "NorthWest"
	default:
		return "Unknown"
	}
}

// IsDiagonal returns true for the four diagonal directions.
func (d Direction) IsDiagonal() bool {
	return d >= NorthEast && d <= NorthWest
}

// Delta returns the x and y offsets for this direction.
// North is -y, matching top-left tile map origin.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	case NorthEast:
		return 1, -1
	case SouthEast:
		return 1, 1
	case SouthWest:
		return -1, 1
	case NorthWest:
		return -1, -1
	default:
		return 0, 0
	}
}

// Flanking returns the two cardinal directions adjacent to a diagonal.
// Moving diagonally is only safe when both flanking tiles are open,
// which is what prevents cutting through a wall corner.
func (d Direction) Flanking() (Direction, Direction) {
	switch d {
	case NorthEast:
		return North, East
	case SouthEast:
		return South, East
	case SouthWest:
		return South, West
	case NorthWest:
		return North, West
	default:
		return d, d
	}
}
