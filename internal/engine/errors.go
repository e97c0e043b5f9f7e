package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSimulation is returned when a gateway is built without a simulation.
	ErrNoSimulation = errors.New("engine: simulation is missing")
	// ErrNoSurface is returned when a gateway is built without a surface.
	ErrNoSurface = errors.New("engine: surface is missing")
	// ErrLoad wraps any failure reported by Simulation.Load.
	ErrLoad = errors.New("engine: load failed")
	// ErrAlreadyLoaded is returned when Load is called a second time.
	ErrAlreadyLoaded = errors.New("engine: simulation already loaded")
	// ErrNotLoaded is returned when Initialize runs before Load has resolved.
	ErrNotLoaded = errors.New("engine: simulation not loaded")
	// ErrAlreadyInitialized is returned when Initialize is called a second time.
	ErrAlreadyInitialized = errors.New("engine: simulation already initialized")
	// ErrNotInitialized is returned when Advance or Draw runs before Initialize.
	ErrNotInitialized = errors.New("engine: simulation not initialized")
	// ErrGatewayClosed is returned once the gateway failed or was disposed.
	ErrGatewayClosed = errors.New("engine: gateway closed")
	// ErrNotRunning is returned when a frame is requested outside the running phase.
	ErrNotRunning = errors.New("engine: scheduler not running")
)

// FrameError reports a failure inside a frame body.
// The scheduler stops after returning one.
type FrameError struct {
	Frame uint64 // 1-based index of the failing frame
	Op    string // "advance" or "draw"
	Err   error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("engine: frame %d: %s: %v", e.Frame, e.Op, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}
