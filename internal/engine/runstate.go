package engine

import "sync/atomic"

// RunState is the shared paused flag. The input controller is its only
// writer and the scheduler its only reader. It starts unpaused.
type RunState struct {
	paused atomic.Bool
}

// NewRunState returns an unpaused run state.
func NewRunState() *RunState {
	return &RunState{}
}

// Paused reports whether the simulation is paused.
func (s *RunState) Paused() bool {
	return s.paused.Load()
}

// Toggle inverts the flag and returns the new value.
func (s *RunState) Toggle() bool {
	for {
		old := s.paused.Load()
		if s.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
