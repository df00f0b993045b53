package fsm

import (
	"fmt"
	"slices"
)

func (m *Machine[T]) addNode(id StateID, name string, parent StateID) {
	m.nodes[id] = &Node[T]{ID: id, Name: name, ParentID: parent}
	m.names[name] = id
}

// resolvePaths fills every node's Root-to-leaf ancestry
func (m *Machine[T]) resolvePaths() error {
	for _, node := range m.nodes {
		var chain []StateID
		for id := node.ID; id != StateNone; {
			if len(chain) == len(m.nodes) {
				return fmt.Errorf("%w: at state %q", ErrParentCycle, node.Name)
			}
			n, ok := m.nodes[id]
			if !ok {
				return fmt.Errorf("%w: state %q has missing ancestor %d", ErrUnknownState, node.Name, id)
			}
			chain = append(chain, id)
			id = n.ParentID
		}
		slices.Reverse(chain)
		node.Path = chain
	}
	return nil
}
