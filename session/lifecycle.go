package session

import (
	"fmt"

	"github.com/lixenwraith/patternlock/asset"
	"github.com/lixenwraith/patternlock/fsm"
)

// Lifecycle state names
const (
	StateIdle        = "Idle"
	StateTracking    = "Tracking"
	StateEvaluating  = "Evaluating"
	StateResultShown = "ResultShown"
	StateLockedOut   = "LockedOut"
	StateDetached    = "Detached"
)

// Lifecycle triggers
const (
	triggerPointerDown fsm.Trigger = iota + 1
	triggerPointerMove
	triggerPointerUp
	triggerResetFired
	triggerDetach
)

// newLifecycle loads the lifecycle graph and binds guards and actions to the session
func newLifecycle(s *Session) (*fsm.Machine[*Session], error) {
	m := fsm.NewMachine[*Session]()

	m.RegisterTrigger("PointerDown", triggerPointerDown)
	m.RegisterTrigger("PointerMove", triggerPointerMove)
	m.RegisterTrigger("PointerUp", triggerPointerUp)
	m.RegisterTrigger("ResetFired", triggerResetFired)
	m.RegisterTrigger("Detach", triggerDetach)

	m.RegisterGuard("PathChosen", func(s *Session) bool { return !s.path.Empty() })
	m.RegisterGuard("Exhausted", func(s *Session) bool { return s.retry.Exhausted() })
	m.RegisterGuard("CanReset", func(s *Session) bool { return !s.retry.Exhausted() && s.phase != PhaseComplete })

	m.RegisterAction("Evaluate", (*Session).evaluate)
	m.RegisterAction("PinGuide", func(s *Session) { s.path.PinTrail() })
	m.RegisterAction("CancelReset", func(s *Session) { s.resets.Cancel() })
	m.RegisterAction("ClearGrid", (*Session).clearGrid)
	m.RegisterAction("AnnounceLockout", (*Session).announceLockout)

	if err := m.LoadConfig([]byte(asset.DefaultLifecycleConfig)); err != nil {
		return nil, fmt.Errorf("lifecycle graph: %w", err)
	}

	m.OnChange(func(from, to fsm.StateID) {
		s.logger.Debug().Str("from", m.Name(from)).Str("to", m.Name(to)).Msg("state change")
		s.publish()
	})
	return m, nil
}
