// Package game provides the interactive shell around the simulation: the
// terminal event loop, key bindings and pause handling.
package game

import "github.com/samdwyer/fortress/internal/sim"

// State represents whether the simulation clock is running.
type State int

const (
	// StateRunning means ticks are being delivered.
	StateRunning State = iota
	// StatePaused means the player paused the simulation.
	StatePaused
	// StateSuspended means the host paused it, e.g. the terminal lost focus.
	StateSuspended
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateSuspended:
		return "suspended"
	default:
		return "unknown"
	}
}

// stateOf reads the scheduler's pause gates. The player's pause wins when
// both are set.
func stateOf(s *sim.Scheduler) State {
	switch {
	case s.UserPaused():
		return StatePaused
	case s.Paused():
		return StateSuspended
	default:
		return StateRunning
	}
}
