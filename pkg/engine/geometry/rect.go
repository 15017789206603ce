// Package geometry provides axis-aligned integer rectangle primitives.
// These are engine-level constructs usable by any tile-based game.
package geometry

// Rect is an axis-aligned rectangle on an integer grid.
// X,Y is the minimum corner; Width and Height extend towards +x/+y.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect creates a rectangle from its minimum corner and size.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// XMin returns the smallest x coordinate covered by the rectangle.
func (r Rect) XMin() int { return r.X }

// XMax returns the exclusive upper x bound of the rectangle.
func (r Rect) XMax() int { return r.X + r.Width }

// YMin returns the smallest y coordinate covered by the rectangle.
func (r Rect) YMin() int { return r.Y }

// YMax returns the exclusive upper y bound of the rectangle.
func (r Rect) YMax() int { return r.Y + r.Height }

// Center returns the integer centre of the rectangle.
func (r Rect) Center() (x, y int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Area returns width times height.
func (r Rect) Area() int { return r.Width * r.Height }

// Empty returns true for rectangles with no interior.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether the point (x,y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.XMin() && x < r.XMax() && y >= r.YMin() && y < r.YMax()
}

// Intersects reports whether a and b share interior area.
// Touching edges do not count as intersecting.
func Intersects(a, b Rect) bool {
	return a.XMin() < b.XMax() && a.XMax() > b.XMin() &&
		a.YMin() < b.YMax() && a.YMax() > b.YMin()
}

// Intersect returns the overlap rectangle of a and b.
// If the overlap has no interior the zero Rect is returned.
func Intersect(a, b Rect) Rect {
	xMin := max(a.XMin(), b.XMin())
	yMin := max(a.YMin(), b.YMin())
	xMax := min(a.XMax(), b.XMax())
	yMax := min(a.YMax(), b.YMax())

	if xMax-xMin <= 0 || yMax-yMin <= 0 {
		return Rect{}
	}

	return Rect{X: xMin, Y: yMin, Width: xMax - xMin, Height: yMax - yMin}
}
