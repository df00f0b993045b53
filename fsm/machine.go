package fsm

import "fmt"

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:      make(map[StateID]*Node[T]),
		names:      make(map[string]StateID),
		triggerReg: map[string]Trigger{TriggerAutoName: TriggerAuto},
		guardReg:   make(map[string]GuardFunc[T]),
		actionReg:  make(map[string]ActionFunc[T]),
	}
}

// RegisterTrigger names an event trigger for config loading
func (m *Machine[T]) RegisterTrigger(name string, t Trigger) {
	m.triggerReg[name] = t
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// OnChange sets an observer called after every completed transition
func (m *Machine[T]) OnChange(fn func(from, to StateID)) {
	m.onChange = fn
}

// Init enters the initial state, running OnEnter from Root down, then settles automatic transitions
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrNoInitial, m.InitialStateID)
	}

	m.activeStateID = node.ID
	m.activePath = append(m.activePath[:0], node.Path...)

	for _, id := range m.activePath {
		if n, exists := m.nodes[id]; exists {
			runActions(ctx, n.OnEnter)
		}
	}
	if m.onChange != nil {
		m.onChange(StateNone, node.ID)
	}

	m.settle(ctx)
	return nil
}

// Fire routes a trigger from the active leaf up to the root
// Returns true if a transition was taken
func (m *Machine[T]) Fire(ctx T, trigger Trigger) bool {
	if m.activeStateID == StateNone {
		return false
	}
	if !m.fireOnce(ctx, trigger) {
		return false
	}
	m.settle(ctx)
	return true
}

// fireOnce takes the first matching transition, bubbling Leaf -> Parent -> Root
func (m *Machine[T]) fireOnce(ctx T, trigger Trigger) bool {
	currID := m.activeStateID
	for currID != StateNone {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Trigger != trigger {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx) {
				m.transition(ctx, trans.TargetID)
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// settle follows automatic transitions until none apply
func (m *Machine[T]) settle(ctx T) {
	for i := 0; i < maxSettleSteps; i++ {
		if !m.fireOnce(ctx, TriggerAuto) {
			return
		}
	}
	panic(fmt.Sprintf("fsm: automatic transitions did not settle at state %q", m.StateName()))
}

// transition performs the state change, exiting up to the LCA and entering down to target
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	if m.activeStateID == targetID {
		return
	}

	targetNode, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("fsm: transition to unknown state ID %d", targetID))
	}

	// Find LCA
	lcaIndex := -1
	currentPath := m.activePath
	targetPath := targetNode.Path

	minLen := min(len(currentPath), len(targetPath))
	for i := 0; i < minLen; i++ {
		if currentPath[i] != targetPath[i] {
			break
		}
		lcaIndex = i
	}

	// Exit Phase: walk UP from current leaf to LCA (exclusive)
	for i := len(currentPath) - 1; i > lcaIndex; i-- {
		if node, exists := m.nodes[currentPath[i]]; exists {
			runActions(ctx, node.OnExit)
		}
	}

	// Enter Phase: walk DOWN from LCA (exclusive) to target leaf
	for i := lcaIndex + 1; i < len(targetPath); i++ {
		if node, exists := m.nodes[targetPath[i]]; exists {
			runActions(ctx, node.OnEnter)
		}
	}

	from := m.activeStateID
	m.activeStateID = targetID
	m.activePath = append(m.activePath[:0], targetPath...)

	if m.onChange != nil {
		m.onChange(from, targetID)
	}
}

// Reset exits the active path and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	if m.activeStateID == StateNone {
		return ErrNotInitialized
	}
	for i := len(m.activePath) - 1; i >= 0; i-- {
		if node, ok := m.nodes[m.activePath[i]]; ok {
			runActions(ctx, node.OnExit)
		}
	}
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]
	return m.Init(ctx)
}

func runActions[T any](ctx T, actions []Action[T]) {
	for _, action := range actions {
		action.Func(ctx)
	}
}

// State returns the active leaf state
func (m *Machine[T]) State() StateID {
	return m.activeStateID
}

// StateName returns the active leaf state name
func (m *Machine[T]) StateName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// Lookup resolves a state name
func (m *Machine[T]) Lookup(name string) (StateID, bool) {
	id, ok := m.names[name]
	return id, ok
}

// Name returns the name of a state id
func (m *Machine[T]) Name(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return ""
}

// In reports whether the named state is on the active path
func (m *Machine[T]) In(name string) bool {
	id, ok := m.names[name]
	if !ok {
		return false
	}
	for _, p := range m.activePath {
		if p == id {
			return true
		}
	}
	return false
}
