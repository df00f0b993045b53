package fsm

import "errors"

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// Trigger identifies an external event; TriggerAuto marks transitions evaluated on settle
type Trigger int

const TriggerAuto Trigger = 0

// TriggerAutoName is the config name of TriggerAuto
const TriggerAutoName = "Auto"

// RootName is the implicit root state
const RootName = "Root"

// maxSettleSteps bounds chained automatic transitions
const maxSettleSteps = 16

var (
	ErrNoInitial      = errors.New("fsm: initial state not defined")
	ErrUnknownState   = errors.New("fsm: unknown state")
	ErrUnknownGuard   = errors.New("fsm: unknown guard")
	ErrUnknownAction  = errors.New("fsm: unknown action")
	ErrUnknownTrigger = errors.New("fsm: unknown trigger")
	ErrParentCycle    = errors.New("fsm: parent cycle")
	ErrNotInitialized = errors.New("fsm: machine not initialized")
)

// Machine is a hierarchical finite state machine runtime
// T is the context type passed to actions and guards
type Machine[T any] struct {
	// Graph Data (Immutable after load)
	nodes map[StateID]*Node[T]
	names map[string]StateID

	// Configuration
	InitialStateID StateID

	// Runtime State
	activeStateID StateID   // The current leaf node
	activePath    []StateID // Root -> Leaf

	// Dependency Injection
	triggerReg map[string]Trigger
	guardReg   map[string]GuardFunc[T]
	actionReg  map[string]ActionFunc[T]

	// Observer for state changes, called after enter actions
	onChange func(from, to StateID)
}

// Node represents a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Pre-calculated path from Root to this node for LCA lookup
	Path []StateID

	OnEnter []Action[T]
	OnExit  []Action[T]

	// Transitions in evaluation priority order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Trigger  Trigger
	Guard    GuardFunc[T] // nil = Always true
}

// Action represents a named side effect
type Action[T any] struct {
	Name string
	Func ActionFunc[T]
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
