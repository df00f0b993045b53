package geometry

// Point is a location in the host coordinate space
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle, edges inclusive for containment
type Rect struct {
	Left, Top, Right, Bottom int
}

// Width returns horizontal extent
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns vertical extent
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Center returns the midpoint, rounded toward the top-left
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Inset shrinks the rectangle by d on all four sides
func (r Rect) Inset(d int) Rect {
	return Rect{Left: r.Left + d, Top: r.Top + d, Right: r.Right - d, Bottom: r.Bottom - d}
}

// Contains checks if point is within rectangle, edges included
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// Overlaps reports whether two rectangles share interior area
func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Right && o.Left < r.Right && r.Top < o.Bottom && o.Top < r.Bottom
}
