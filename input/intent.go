// Package input translates tcell events into pointer events and host intents.
package input

import (
	"github.com/lixenwraith/patternlock/event"
	"github.com/lixenwraith/patternlock/session"
)

// IntentType discriminates host actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit       // Esc, Ctrl+C, q
	IntentPointer    // Mouse press, drag or release; Events holds pointer events
	IntentResize     // Terminal resize; Width and Height hold the new size
	IntentSetMode    // l, u, m; Mode holds the requested mode
	IntentRearm      // r: restore the retry budget
	IntentToggleMute // s: toggle audio cues
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "Quit"
	case IntentPointer:
		return "Pointer"
	case IntentResize:
		return "Resize"
	case IntentSetMode:
		return "SetMode"
	case IntentRearm:
		return "Rearm"
	case IntentToggleMute:
		return "ToggleMute"
	default:
		return "None"
	}
}

// Intent is the result of one translated terminal event
type Intent struct {
	Type          IntentType
	Events        []event.Event
	Mode          session.Mode
	Width, Height int
}

// modeKeys maps runes to session modes
var modeKeys = map[rune]session.Mode{
	'l': session.ModeLock,
	'u': session.ModeUnlock,
	'm': session.ModeModify,
}
