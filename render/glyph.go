package render

import (
	"math"

	"github.com/lixenwraith/patternlock/geometry"
)

// Status glyphs drawn at a cell's center when it has no arrow
const (
	GlyphIdle   = '○'
	GlyphActive = '●'
	GlyphDone   = '◉'
	GlyphFailed = '⊗'
	GlyphLine   = '·'
)

// Box drawing for cell rings
const (
	BoxHorizontal  = '─'
	BoxVertical    = '│'
	BoxTopLeft     = '╭'
	BoxTopRight    = '╮'
	BoxBottomLeft  = '╰'
	BoxBottomRight = '╯'
)

// arrowGlyphs is indexed by direction octant, clockwise from up
var arrowGlyphs = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// ArrowGlyph returns the 8-way arrow nearest to degrees, 0 pointing up
func ArrowGlyph(degrees float64) rune {
	octant := int(math.Round(degrees/45)) % 8
	if octant < 0 {
		octant += 8
	}
	return arrowGlyphs[octant]
}

// statusGlyph returns the center glyph for a cell without an arrow
func statusGlyph(s geometry.Status) rune {
	switch s {
	case geometry.StatusFingerOn:
		return GlyphActive
	case geometry.StatusFingerUpDone:
		return GlyphDone
	case geometry.StatusFingerUpFailed:
		return GlyphFailed
	default:
		return GlyphIdle
	}
}

// cellGlyph returns the arrow when set, otherwise the status glyph
func cellGlyph(c geometry.Cell) rune {
	if c.HasArrow() {
		return ArrowGlyph(c.Arrow)
	}
	return statusGlyph(c.Status)
}
