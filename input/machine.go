package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/patternlock/event"
	"github.com/lixenwraith/patternlock/terminal"
)

// Machine tracks the primary mouse button across events
// Terminals report drag as repeated button-held events, so press and release are inferred from transitions
type Machine struct {
	viewport terminal.Viewport
	pressed  bool
}

// NewMachine creates a translator for viewport
func NewMachine(v terminal.Viewport) *Machine {
	return &Machine{viewport: v}
}

// SetViewport updates the screen mapping after a resize
func (m *Machine) SetViewport(v terminal.Viewport) {
	m.viewport = v
}

// Pressed reports whether a drag is in progress
func (m *Machine) Pressed() bool {
	return m.pressed
}

// Translate converts one tcell event
func (m *Machine) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return m.mouse(ev)
	case *tcell.EventKey:
		return m.key(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return Intent{Type: IntentResize, Width: w, Height: h}
	}
	return Intent{}
}

func (m *Machine) mouse(ev *tcell.EventMouse) Intent {
	col, row := ev.Position()
	p, _ := m.viewport.ToGrid(col, row)
	held := ev.Buttons()&tcell.Button1 != 0

	switch {
	case held && !m.pressed:
		m.pressed = true
		// A click without motion still selects the cell under the pointer
		return Intent{Type: IntentPointer, Events: []event.Event{
			{Type: event.EventPointerDown, X: p.X, Y: p.Y},
			{Type: event.EventPointerMove, X: p.X, Y: p.Y},
		}}
	case held:
		return Intent{Type: IntentPointer, Events: []event.Event{
			{Type: event.EventPointerMove, X: p.X, Y: p.Y},
		}}
	case m.pressed:
		m.pressed = false
		return Intent{Type: IntentPointer, Events: []event.Event{
			{Type: event.EventPointerUp, X: p.X, Y: p.Y},
		}}
	}
	return Intent{}
}

func (m *Machine) key(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Intent{Type: IntentQuit}
	case tcell.KeyRune:
	default:
		return Intent{}
	}

	r := ev.Rune()
	if mode, ok := modeKeys[r]; ok {
		return Intent{Type: IntentSetMode, Mode: mode}
	}
	switch r {
	case 'q':
		return Intent{Type: IntentQuit}
	case 'r':
		return Intent{Type: IntentRearm}
	case 's':
		return Intent{Type: IntentToggleMute}
	}
	return Intent{}
}
