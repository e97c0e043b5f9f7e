package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-smoke/internal/core"
)

// stage tracks where the gateway is in the load/initialize sequence.
type stage int

const (
	stageNew stage = iota
	stageLoading
	stageLoaded
	stageReady
	stageFailed
	stageDisposed
)

// Gateway wraps a Simulation and enforces its call order:
// Load, then Initialize, then any number of Advance/Draw calls.
// It is the only component that touches the simulation.
type Gateway struct {
	mu      sync.Mutex
	sim     Simulation
	surface *core.Surface
	stage   stage
}

// NewGateway binds a simulation to the surface it will draw into.
func NewGateway(sim Simulation, surface *core.Surface) (*Gateway, error) {
	if sim == nil {
		return nil, ErrNoSimulation
	}
	if surface == nil {
		return nil, ErrNoSurface
	}
	return &Gateway{sim: sim, surface: surface}, nil
}

// Simulation returns the wrapped simulation's ID and title.
func (g *Gateway) Simulation() (id, title string) {
	return g.sim.ID(), g.sim.Title()
}

// Load runs the simulation's one-time load step. The lock is released
// while the simulation loads, so Load may run on its own goroutine;
// every other call is rejected until it resolves.
func (g *Gateway) Load(ctx context.Context) error {
	g.mu.Lock()
	switch g.stage {
	case stageNew:
		g.stage = stageLoading
	case stageFailed, stageDisposed:
		g.mu.Unlock()
		return ErrGatewayClosed
	default:
		g.mu.Unlock()
		return ErrAlreadyLoaded
	}
	g.mu.Unlock()

	err := g.sim.Load(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.stage != stageLoading {
		// Disposed while loading.
		return ErrGatewayClosed
	}
	if err != nil {
		g.stage = stageFailed
		return fmt.Errorf("%w: %s: %w", ErrLoad, g.sim.ID(), err)
	}
	g.stage = stageLoaded
	return nil
}

// Initialize establishes the starting simulation state.
func (g *Gateway) Initialize() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.stage {
	case stageNew, stageLoading:
		return ErrNotLoaded
	case stageReady:
		return ErrAlreadyInitialized
	case stageFailed, stageDisposed:
		return ErrGatewayClosed
	}

	if err := g.sim.Initialize(g.surface); err != nil {
		g.stage = stageFailed
		return fmt.Errorf("engine: initialize %s: %w", g.sim.ID(), err)
	}
	g.stage = stageReady
	return nil
}

// Advance moves the simulation forward one tick.
func (g *Gateway) Advance() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.readyLocked(); err != nil {
		return err
	}
	return g.sim.Advance()
}

// Draw renders the current simulation state onto the surface.
func (g *Gateway) Draw() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.readyLocked(); err != nil {
		return err
	}
	return g.sim.Draw()
}

func (g *Gateway) readyLocked() error {
	switch g.stage {
	case stageReady:
		return nil
	case stageFailed, stageDisposed:
		return ErrGatewayClosed
	default:
		return ErrNotInitialized
	}
}

// Dispose ends the session. The simulation's Dispose runs at most once,
// and only if the simulation was initialized. Safe to call repeatedly.
func (g *Gateway) Dispose() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stage == stageDisposed {
		return nil
	}
	wasReady := g.stage == stageReady
	g.stage = stageDisposed

	if d, ok := g.sim.(Disposer); ok && wasReady {
		if err := d.Dispose(); err != nil {
			return fmt.Errorf("engine: dispose %s: %w", g.sim.ID(), err)
		}
	}
	return nil
}
