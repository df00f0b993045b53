package geometry

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/patternlock/parameter"
)

var (
	ErrInvalidCount = errors.New("grid count must be at least 1")
	ErrInvalidWidth = errors.New("grid width must be positive")
	ErrNotLaidOut   = errors.New("grid has not been laid out")
)

// Grid owns the cell arena for an N×N pattern grid
// Cells are indexed by ID-1; lookups are O(1)
type Grid struct {
	count   int
	width   int
	side    int
	margin  int
	padding int
	cells   []Cell
}

// NewGrid creates a grid with count cells per side; cells exist after Layout
func NewGrid(count int) (*Grid, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	return &Grid{count: count}, nil
}

// Layout computes cell bounds for a square area of the given width
// Re-layout keeps status and arrow of existing cells
func (g *Grid) Layout(width int) error {
	if width <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWidth, width)
	}

	side := int(float64(parameter.CellSideNumerator*width) / float64(parameter.CellSideDenominatorPerCell*g.count+1))
	margin := int(float64(side) * parameter.MarginRatio)

	g.width = width
	g.side = side
	g.margin = margin
	g.padding = int(float64(side) * parameter.HitPaddingRatio)

	total := g.count * g.count
	fresh := len(g.cells) != total
	if fresh {
		g.cells = make([]Cell, total)
	}

	for i := 0; i < total; i++ {
		row, col := i/g.count, i%g.count
		left := margin + col*(side+margin)
		top := margin + row*(side+margin)

		c := &g.cells[i]
		c.ID = i + 1
		c.Row = row
		c.Col = col
		c.Bounds = Rect{Left: left, Top: top, Right: left + side, Bottom: top + side}
		if fresh {
			c.Status = StatusNoFinger
			c.Arrow = parameter.ArrowNone
		}
	}
	return nil
}

// LaidOut reports whether cells have bounds
func (g *Grid) LaidOut() bool {
	return len(g.cells) > 0
}

// Count returns cells per side
func (g *Grid) Count() int { return g.count }

// Width returns the laid out square size
func (g *Grid) Width() int { return g.width }

// Side returns the cell side length
func (g *Grid) Side() int { return g.side }

// Margin returns the inter-cell margin
func (g *Grid) Margin() int { return g.margin }

// Padding returns the hit-test inset
func (g *Grid) Padding() int { return g.padding }

// Len returns total number of cells
func (g *Grid) Len() int { return len(g.cells) }

// Locate returns the ID of the first cell, in row-major order, whose inset bounds contain the point
func (g *Grid) Locate(x, y int) (int, bool) {
	for i := range g.cells {
		if g.cells[i].Bounds.Inset(g.padding).Contains(x, y) {
			return g.cells[i].ID, true
		}
	}
	return 0, false
}

// Valid reports whether id names a cell of this grid
func (g *Grid) Valid(id int) bool {
	return id >= 1 && id <= len(g.cells)
}

// Cell returns a copy of the cell with the given id
func (g *Grid) Cell(id int) (Cell, bool) {
	if !g.Valid(id) {
		return Cell{}, false
	}
	return g.cells[id-1], true
}

// Center returns the center of the cell with the given id
// Panics on unknown id; callers only pass ids produced by Locate
func (g *Grid) Center(id int) Point {
	if !g.Valid(id) {
		panic(fmt.Sprintf("geometry: center of unknown cell %d", id))
	}
	return g.cells[id-1].Bounds.Center()
}

// Cells returns a snapshot of all cells in id order
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// SetStatus updates a cell's status, unknown ids are ignored
func (g *Grid) SetStatus(id int, status Status) {
	if g.Valid(id) {
		g.cells[id-1].Status = status
	}
}

// SetStatusAll applies status to every listed id
func (g *Grid) SetStatusAll(ids []int, status Status) {
	for _, id := range ids {
		g.SetStatus(id, status)
	}
}

// SetArrow updates a cell's arrow angle, unknown ids are ignored
func (g *Grid) SetArrow(id int, degrees float64) {
	if g.Valid(id) {
		g.cells[id-1].Arrow = degrees
	}
}

// Reset returns every cell to NoFinger without an arrow
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].Status = StatusNoFinger
		g.cells[i].Arrow = parameter.ArrowNone
	}
}
