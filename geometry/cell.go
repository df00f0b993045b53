package geometry

import "github.com/lixenwraith/patternlock/parameter"

// Status is the visual state of a cell
type Status int

const (
	StatusNoFinger Status = iota
	StatusFingerOn
	StatusFingerUpFailed
	StatusFingerUpDone
)

func (s Status) String() string {
	switch s {
	case StatusNoFinger:
		return "NoFinger"
	case StatusFingerOn:
		return "FingerOn"
	case StatusFingerUpFailed:
		return "FingerUpFailed"
	case StatusFingerUpDone:
		return "FingerUpDone"
	default:
		return "Unknown"
	}
}

// Cell is one touchable grid node
// ID is 1-based and assigned row-major; it never changes for the grid's lifetime
type Cell struct {
	ID       int
	Row, Col int
	Bounds   Rect
	Status   Status
	Arrow    float64 // Degrees, parameter.ArrowNone when absent
}

// HasArrow reports whether a direction hint is set
func (c Cell) HasArrow() bool {
	return c.Arrow != parameter.ArrowNone
}

// Center returns the midpoint of the cell bounds
func (c Cell) Center() Point {
	return c.Bounds.Center()
}
