package event

// EventType represents the type of session event
type EventType int

const (
	// EventPointerDown starts a capture
	// Trigger: host input translator | Consumer: session
	EventPointerDown EventType = iota + 1

	// EventPointerMove updates the pointer location while tracking
	// Trigger: host input translator | Consumer: session
	EventPointerMove

	// EventPointerUp ends a capture and requests evaluation
	// Trigger: host input translator | Consumer: session
	EventPointerUp

	// EventCallback runs Fn on the loop goroutine
	// Trigger: scheduler timer goroutines | Consumer: Loop itself
	EventCallback

	// EventResize carries a new host area in X (width) and Y (height)
	// Trigger: host | Consumer: host handler
	EventResize
)

func (t EventType) String() string {
	switch t {
	case EventPointerDown:
		return "PointerDown"
	case EventPointerMove:
		return "PointerMove"
	case EventPointerUp:
		return "PointerUp"
	case EventCallback:
		return "Callback"
	case EventResize:
		return "Resize"
	default:
		return "Unknown"
	}
}

// Event is one unit of work for the loop
type Event struct {
	Type EventType
	X, Y int
	Fn   func() // EventCallback only
}

// IsPointer reports whether the event carries pointer coordinates
func (e Event) IsPointer() bool {
	return e.Type == EventPointerDown || e.Type == EventPointerMove || e.Type == EventPointerUp
}
