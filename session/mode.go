package session

import (
	"fmt"
	"strings"
)

// Mode selects which evaluation branch runs on pointer release
type Mode int

const (
	ModeUndefined Mode = iota
	ModeLock           // Set a new pattern: capture then confirm
	ModeUnlock         // Verify against the stored answer
	ModeModify         // Verify the stored answer, then set a new one
)

func (m Mode) String() string {
	switch m {
	case ModeLock:
		return "lock"
	case ModeUnlock:
		return "unlock"
	case ModeModify:
		return "modify"
	default:
		return "undefined"
	}
}

// ParseMode resolves a mode name, case-insensitive
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lock":
		return ModeLock, nil
	case "unlock":
		return ModeUnlock, nil
	case "modify":
		return ModeModify, nil
	case "", "undefined":
		return ModeUndefined, nil
	default:
		return ModeUndefined, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Phase is the workflow position within the current mode
type Phase int

const (
	PhaseNone                 Phase = iota // Mode undefined
	PhaseVerifying                         // Unlock: compare to stored answer
	PhaseVerifyingOld                      // Modify: compare to stored answer before setting a new one
	PhaseAwaitingFirstCapture              // Lock: first drawing
	PhaseAwaitingConfirm                   // Lock: confirm drawing
	PhaseAwaitingNewCapture                // Modify: first drawing of the new answer
	PhaseAwaitingNewConfirm                // Modify: confirm drawing of the new answer
	PhaseComplete                          // Terminal success
)

func (p Phase) String() string {
	switch p {
	case PhaseVerifying:
		return "Verifying"
	case PhaseVerifyingOld:
		return "VerifyingOld"
	case PhaseAwaitingFirstCapture:
		return "AwaitingFirstCapture"
	case PhaseAwaitingConfirm:
		return "AwaitingConfirm"
	case PhaseAwaitingNewCapture:
		return "AwaitingNewCapture"
	case PhaseAwaitingNewConfirm:
		return "AwaitingNewConfirm"
	case PhaseComplete:
		return "Complete"
	default:
		return "None"
	}
}

// initialPhase is where each mode starts
func initialPhase(m Mode) Phase {
	switch m {
	case ModeLock:
		return PhaseAwaitingFirstCapture
	case ModeUnlock:
		return PhaseVerifying
	case ModeModify:
		return PhaseVerifyingOld
	default:
		return PhaseNone
	}
}
