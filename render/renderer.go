// Package render draws the pattern grid on a tcell screen.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/patternlock/geometry"
	"github.com/lixenwraith/patternlock/parameter"
	"github.com/lixenwraith/patternlock/session"
	"github.com/lixenwraith/patternlock/terminal"
)

// Frame is everything drawn in one pass, snapshotted from the session on the event thread
type Frame struct {
	Viewport  terminal.Viewport
	Cells     []geometry.Cell
	Line      []geometry.Point // Centers of chosen cells in order
	Guide     Segment
	Mode      session.Mode
	Phase     session.Phase
	State     string
	Remaining int
	Message   string
	Audio     bool // Audio available
	Muted     bool
}

// Segment is the live guide from the last chosen center to the pointer
type Segment struct {
	From, To geometry.Point
	Visible  bool
}

// Snapshot builds a frame from the session's rendering outputs
func Snapshot(s *session.Session, v terminal.Viewport) Frame {
	from, to, ok := s.Guide()
	return Frame{
		Viewport:  v,
		Cells:     s.Cells(),
		Line:      s.LinePoints(),
		Guide:     Segment{From: from, To: to, Visible: ok},
		Mode:      s.Mode(),
		Phase:     s.Phase(),
		State:     s.State(),
		Remaining: s.Remaining(),
	}
}

// Renderer draws frames onto a screen
type Renderer struct {
	screen tcell.Screen
	base   tcell.Style
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		base:   tcell.StyleDefault.Background(RgbBackground),
	}
}

// Draw clears the screen, draws f and shows it
func (r *Renderer) Draw(f Frame) {
	r.screen.Fill(' ', r.base)

	width, height := r.screen.Size()
	r.drawBanner(f, width)
	if f.Viewport.Width > 0 {
		r.drawLine(f)
		r.drawGuide(f)
		for _, c := range f.Cells {
			r.drawCell(f.Viewport, c)
		}
	}
	r.drawStatusBar(f, width, height-1)

	r.screen.Show()
}

// drawBanner fills the top row with the mode indicator, phase and message
func (r *Renderer) drawBanner(f Frame, width int) {
	text, bg := modeBanner(f.Mode)
	x := r.text(0, 0, text, r.base.Foreground(RgbStatusText).Background(bg))
	x = r.text(x+1, 0, phasePrompt(f.Phase), r.base.Foreground(tcell.ColorWhite))
	if f.Message != "" && x+2 < width {
		r.text(x+2, 0, f.Message, r.base.Foreground(RgbGuide))
	}
}

// drawStatusBar fills the bottom row with audio, attempts and state
func (r *Renderer) drawStatusBar(f Frame, width, y int) {
	if y < parameter.TopMargin {
		return
	}
	x := 0
	if f.Audio {
		bg := RgbAudioUnmuted
		if f.Muted {
			bg = RgbAudioMuted
		}
		x = r.text(x, y, parameter.AudioStr, r.base.Foreground(RgbStatusText).Background(bg))
	}

	attempts := fmt.Sprintf(" attempts %d ", f.Remaining)
	style := r.base.Foreground(tcell.ColorWhite)
	if f.Remaining == 0 {
		style = r.base.Foreground(tcell.ColorWhite).Background(RgbLockedOutBg)
	}
	x = r.text(x, y, attempts, style)

	state := " " + f.State + " "
	if right := width - len([]rune(state)); right > x {
		r.text(right, y, state, r.base.Foreground(RgbGuide))
	}
}

// drawCell draws the ring of the hit area and the center glyph
func (r *Renderer) drawCell(v terminal.Viewport, c geometry.Cell) {
	style := r.base.Foreground(statusColor(c.Status))
	padding := int(float64(c.Bounds.Width()) * parameter.HitPaddingRatio)
	left, top, right, bottom := v.ScreenRect(c.Bounds.Inset(padding))

	if right-left >= 2 && bottom-top >= 2 {
		for x := left + 1; x < right; x++ {
			r.screen.SetContent(x, top, BoxHorizontal, nil, style)
			r.screen.SetContent(x, bottom, BoxHorizontal, nil, style)
		}
		for y := top + 1; y < bottom; y++ {
			r.screen.SetContent(left, y, BoxVertical, nil, style)
			r.screen.SetContent(right, y, BoxVertical, nil, style)
		}
		r.screen.SetContent(left, top, BoxTopLeft, nil, style)
		r.screen.SetContent(right, top, BoxTopRight, nil, style)
		r.screen.SetContent(left, bottom, BoxBottomLeft, nil, style)
		r.screen.SetContent(right, bottom, BoxBottomRight, nil, style)
	}

	col, row := v.ToScreen(c.Center())
	r.screen.SetContent(col, row, cellGlyph(c), nil, style.Bold(true))
}

// drawLine connects chosen centers in order, colored by the first chosen cell's status
func (r *Renderer) drawLine(f Frame) {
	if len(f.Line) < 2 {
		return
	}
	style := r.base.Foreground(r.lineColor(f))
	for i := 0; i+1 < len(f.Line); i++ {
		r.segment(f.Viewport, f.Line[i], f.Line[i+1], style)
	}
}

func (r *Renderer) lineColor(f Frame) tcell.Color {
	for _, c := range f.Cells {
		if c.Status != geometry.StatusNoFinger {
			return statusColor(c.Status)
		}
	}
	return RgbCellActive
}

// drawGuide draws the live segment while it leaves the last center
func (r *Renderer) drawGuide(f Frame) {
	if !f.Guide.Visible || f.Guide.From == f.Guide.To {
		return
	}
	r.segment(f.Viewport, f.Guide.From, f.Guide.To, r.base.Foreground(RgbGuide).Dim(true))
}

// segment plots a line between two grid points in screen space
func (r *Renderer) segment(v terminal.Viewport, a, b geometry.Point, style tcell.Style) {
	x0, y0 := v.ToScreen(a)
	x1, y1 := v.ToScreen(b)
	for _, p := range Bresenham(x0, y0, x1, y1) {
		r.screen.SetContent(p.X, p.Y, GlyphLine, nil, style)
	}
}

// text writes s at (x, y) and returns the column after it
func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func modeBanner(m session.Mode) (string, tcell.Color) {
	switch m {
	case session.ModeLock:
		return parameter.ModeTextLock, RgbModeLockBg
	case session.ModeUnlock:
		return parameter.ModeTextUnlock, RgbModeUnlockBg
	case session.ModeModify:
		return parameter.ModeTextModify, RgbModeModifyBg
	default:
		return parameter.ModeTextNone, RgbModeNoneBg
	}
}

// phasePrompt is the instruction shown next to the mode
func phasePrompt(p session.Phase) string {
	switch p {
	case session.PhaseVerifying:
		return "Draw your pattern"
	case session.PhaseVerifyingOld:
		return "Draw your current pattern"
	case session.PhaseAwaitingFirstCapture, session.PhaseAwaitingNewCapture:
		return "Draw a new pattern"
	case session.PhaseAwaitingConfirm, session.PhaseAwaitingNewConfirm:
		return "Draw the pattern again to confirm"
	case session.PhaseComplete:
		return "Done"
	default:
		return "Choose a mode: l lock, u unlock, m modify"
	}
}
