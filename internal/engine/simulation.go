// Package engine drives an opaque simulation frame by frame.
//
// A session is: size the surface, Load the simulation, Initialize it once,
// then on every frame Advance it (unless paused) and Draw it. The package
// has no terminal dependencies; the platform layer supplies key events and
// frame ticks.
package engine

import (
	"context"

	"github.com/vovakirdan/tui-smoke/internal/core"
)

// Simulation is the capability set the driver needs from a simulation.
// Implementations own their state entirely; the driver never inspects it.
type Simulation interface {
	// ID returns a unique identifier (e.g., "smoke"). Used by the CLI.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Load performs any one-time preparation. It may block and should
	// honour ctx. Called exactly once, before Initialize.
	Load(ctx context.Context) error

	// Initialize establishes the starting state and binds the surface
	// that Draw renders into. Called exactly once, after Load.
	Initialize(dst *core.Surface) error

	// Advance moves the simulation forward by exactly one tick.
	Advance() error

	// Draw renders the current state onto the bound surface.
	// It must not mutate simulation state and must accept a freshly
	// initialized state that has never been advanced.
	Draw() error
}

// Disposer is implemented by simulations that hold resources to release
// at session end.
type Disposer interface {
	Dispose() error
}
