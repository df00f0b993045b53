package terminal

import (
	"github.com/lixenwraith/patternlock/geometry"
	"github.com/lixenwraith/patternlock/parameter"
)

// Viewport places the grid's square coordinate space on the screen
type Viewport struct {
	OriginX, OriginY int // Screen cell of grid coordinate (0, 0)
	Cols, Rows       int // Screen cells covered by the grid
	Width            int // Grid side in grid units
	ScaleX, ScaleY   int // Grid units per column and per row
}

// Fit computes the largest centered square viewport for a screen
// Width is zero when the screen has no room below the banner
func Fit(screenW, screenH int) Viewport {
	v := Viewport{ScaleX: parameter.TerminalScaleX, ScaleY: parameter.TerminalScaleY}

	rows := screenH - parameter.TopMargin - parameter.BottomMargin
	if screenW <= 0 || rows <= 0 {
		return v
	}

	v.Width = min(screenW*v.ScaleX, rows*v.ScaleY)
	v.Cols = v.Width / v.ScaleX
	v.Rows = v.Width / v.ScaleY
	v.OriginX = (screenW - v.Cols) / 2
	v.OriginY = parameter.TopMargin + (rows-v.Rows)/2
	return v
}

// ToGrid converts a screen cell to the grid point at its center
// ok is false outside the viewport
func (v Viewport) ToGrid(col, row int) (geometry.Point, bool) {
	dc, dr := col-v.OriginX, row-v.OriginY
	p := geometry.Point{X: dc*v.ScaleX + v.ScaleX/2, Y: dr*v.ScaleY + v.ScaleY/2}
	inside := v.Width > 0 && dc >= 0 && dr >= 0 && dc < v.Cols && dr < v.Rows
	return p, inside
}

// ToScreen converts a grid point to the screen cell containing it
func (v Viewport) ToScreen(p geometry.Point) (col, row int) {
	return v.OriginX + floorDiv(p.X, v.ScaleX), v.OriginY + floorDiv(p.Y, v.ScaleY)
}

// ScreenRect converts grid bounds to the inclusive screen cell range they cover
func (v Viewport) ScreenRect(r geometry.Rect) (left, top, right, bottom int) {
	left, top = v.ToScreen(geometry.Point{X: r.Left, Y: r.Top})
	right, bottom = v.ToScreen(geometry.Point{X: r.Right, Y: r.Bottom})
	return left, top, right, bottom
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
