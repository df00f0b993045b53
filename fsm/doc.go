// Package fsm is a small hierarchical state machine driven by named triggers.
//
// Graphs are loaded from TOML:
//
//	initial = "Idle"
//
//	[states.Idle]
//	transitions = [{ trigger = "Start", target = "Busy" }]
//
//	[states.Busy]
//	on_enter = ["Work"]
//	transitions = [{ trigger = "Auto", target = "Idle", guard = "Finished" }]
//
// Triggers bubble from the active leaf to Root; the first transition whose
// guard passes is taken. Transitions with the "Auto" trigger are evaluated
// after every state change until none apply. The machine is not safe for
// concurrent use; it runs on the owner's event thread.
package fsm
