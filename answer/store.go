// Package answer holds the authoritative pattern and the pending first capture
// of a set-then-confirm flow.
package answer

import "slices"

// Store keeps the stored answer and the first-phase capture
// Both sequences are owned copies; callers never share backing arrays with it
type Store struct {
	stored   []int
	first    []int
	hasFirst bool
}

// New creates an empty store
func New() *Store {
	return &Store{}
}

// SetStored replaces the authoritative answer
// Empty or nil input is ignored and the previous answer is kept
func (s *Store) SetStored(seq []int) {
	if len(seq) == 0 {
		return
	}
	s.stored = slices.Clone(seq)
}

// Stored returns a copy of the authoritative answer
func (s *Store) Stored() []int {
	return slices.Clone(s.stored)
}

// HasStored reports whether an answer has been configured
func (s *Store) HasStored() bool {
	return len(s.stored) > 0
}

// MatchesStored compares path to the stored answer, same ids in same order
func (s *Store) MatchesStored(path []int) bool {
	return Equal(s.stored, path)
}

// BeginFirstCapture snapshots path as the pending first answer
func (s *Store) BeginFirstCapture(path []int) {
	s.first = slices.Clone(path)
	s.hasFirst = true
}

// HasFirstCapture reports whether a first capture awaits confirmation
func (s *Store) HasFirstCapture() bool {
	return s.hasFirst
}

// FirstCapture returns a copy of the pending first answer
func (s *Store) FirstCapture() []int {
	return slices.Clone(s.first)
}

// MatchesFirstCapture compares path to the pending first answer
// Panics when called before BeginFirstCapture; the session's phase ordering makes that unreachable
func (s *Store) MatchesFirstCapture(path []int) bool {
	if !s.hasFirst {
		panic("answer: confirm comparison without a first capture")
	}
	return Equal(s.first, path)
}

// ClearFirstCapture drops the pending first answer
func (s *Store) ClearFirstCapture() {
	s.first = nil
	s.hasFirst = false
}

// Equal reports ordered equality of two id sequences
func Equal(a, b []int) bool {
	return slices.Equal(a, b)
}
