package render

import "github.com/lixenwraith/patternlock/geometry"

// Bresenham returns the integer points from (x0, y0) to (x1, y1) inclusive
func Bresenham(x0, y0, x1, y1 int) []geometry.Point {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	points := make([]geometry.Point, 0, max(dx, -dy)+1)
	err := dx + dy
	for {
		points = append(points, geometry.Point{X: x0, Y: y0})
		if x0 == x1 && y0 == y1 {
			return points
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
