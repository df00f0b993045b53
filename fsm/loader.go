package fsm

import (
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// LoadConfig parses a TOML graph and populates the Machine
// Validates all references (states, guards, actions, triggers)
// Clears existing graph data before loading
func (m *Machine[T]) LoadConfig(data []byte) error {
	var config RootConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to unmarshal FSM config: %w", err)
	}
	return m.Load(config)
}

// Load builds the graph from a decoded config
func (m *Machine[T]) Load(config RootConfig) error {
	m.nodes = make(map[StateID]*Node[T])
	m.names = make(map[string]StateID)
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]

	if config.States == nil {
		config.States = make(map[string]*StateConfig)
	}
	if _, ok := config.States[RootName]; !ok {
		config.States[RootName] = &StateConfig{}
	}

	// First pass: IDs, sorted for determinism, Root reserved
	nameToID := map[string]StateID{RootName: StateRoot}
	stateNames := make([]string, 0, len(config.States))
	for name := range config.States {
		if name != RootName {
			stateNames = append(stateNames, name)
		}
	}
	sort.Strings(stateNames)

	nextID := StateRoot + 1
	for _, name := range stateNames {
		nameToID[name] = nextID
		nextID++
	}

	// Second pass: nodes and parents
	m.addNode(StateRoot, RootName, StateNone)
	for _, name := range stateNames {
		cfg := config.States[name]
		pName := cfg.Parent
		if pName == "" {
			pName = RootName
		}
		parentID, ok := nameToID[pName]
		if !ok {
			return fmt.Errorf("%w: state %q references unknown parent %q", ErrUnknownState, name, pName)
		}
		m.addNode(nameToID[name], name, parentID)
	}

	// Third pass: actions and transitions
	for name, cfg := range config.States {
		node := m.nodes[nameToID[name]]

		var err error
		if node.OnEnter, err = m.resolveActions(name, cfg.OnEnter); err != nil {
			return err
		}
		if node.OnExit, err = m.resolveActions(name, cfg.OnExit); err != nil {
			return err
		}

		for _, tc := range cfg.Transitions {
			trigger, ok := m.triggerReg[tc.Trigger]
			if !ok {
				return fmt.Errorf("%w: %q in state %q", ErrUnknownTrigger, tc.Trigger, name)
			}
			targetID, ok := nameToID[tc.Target]
			if !ok {
				return fmt.Errorf("%w: state %q targets %q", ErrUnknownState, name, tc.Target)
			}
			var guard GuardFunc[T]
			if tc.Guard != "" {
				guard, ok = m.guardReg[tc.Guard]
				if !ok {
					return fmt.Errorf("%w: %q in state %q", ErrUnknownGuard, tc.Guard, name)
				}
			}
			node.Transitions = append(node.Transitions, Transition[T]{TargetID: targetID, Trigger: trigger, Guard: guard})
		}
	}

	initialID, ok := nameToID[config.InitialState]
	if !ok || config.InitialState == "" {
		return fmt.Errorf("%w: %q", ErrNoInitial, config.InitialState)
	}
	m.InitialStateID = initialID

	return m.resolvePaths()
}

func (m *Machine[T]) resolveActions(state string, names []string) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(names))
	for _, name := range names {
		fn, ok := m.actionReg[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q in state %q", ErrUnknownAction, name, state)
		}
		actions = append(actions, Action[T]{Name: name, Func: fn})
	}
	return actions, nil
}
