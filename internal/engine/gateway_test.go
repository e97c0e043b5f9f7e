package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/tui-smoke/internal/core"
)

func TestNewGatewayPreconditions(t *testing.T) {
	if _, err := NewGateway(nil, core.NewSurface(1, 1)); !errors.Is(err, ErrNoSimulation) {
		t.Errorf("NewGateway(nil sim) error = %v, expected %v", err, ErrNoSimulation)
	}
	if _, err := NewGateway(&recordingSim{}, nil); !errors.Is(err, ErrNoSurface) {
		t.Errorf("NewGateway(nil surface) error = %v, expected %v", err, ErrNoSurface)
	}
}

func TestGatewayOrdering(t *testing.T) {
	sim := &recordingSim{}
	gw := newTestGateway(t, sim)

	if err := gw.Initialize(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Initialize() before Load error = %v, expected %v", err, ErrNotLoaded)
	}
	if err := gw.Advance(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Advance() before Initialize error = %v, expected %v", err, ErrNotInitialized)
	}
	if err := gw.Draw(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Draw() before Initialize error = %v, expected %v", err, ErrNotInitialized)
	}

	if err := gw.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := gw.Load(context.Background()); !errors.Is(err, ErrAlreadyLoaded) {
		t.Errorf("second Load() error = %v, expected %v", err, ErrAlreadyLoaded)
	}
	if err := gw.Advance(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Advance() before Initialize error = %v, expected %v", err, ErrNotInitialized)
	}

	if err := gw.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if err := gw.Initialize(); !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("second Initialize() error = %v, expected %v", err, ErrAlreadyInitialized)
	}

	if err := gw.Draw(); err != nil {
		t.Errorf("Draw() on fresh state error = %v", err)
	}
	if err := gw.Advance(); err != nil {
		t.Errorf("Advance() error = %v", err)
	}

	expected := []string{"load", "initialize", "draw", "advance"}
	if got := sim.Calls(); !equalCalls(got, expected) {
		t.Errorf("calls = %v, expected %v", got, expected)
	}
	if sim.surface == nil {
		t.Error("Initialize should bind the surface")
	}
}

func TestGatewayLoadFailure(t *testing.T) {
	sim := &recordingSim{loadErr: errBoom}
	gw := newTestGateway(t, sim)

	err := gw.Load(context.Background())
	if !errors.Is(err, ErrLoad) || !errors.Is(err, errBoom) {
		t.Fatalf("Load() error = %v, expected ErrLoad wrapping boom", err)
	}

	if err := gw.Initialize(); !errors.Is(err, ErrGatewayClosed) {
		t.Errorf("Initialize() after failed load error = %v, expected %v", err, ErrGatewayClosed)
	}
	if err := gw.Load(context.Background()); !errors.Is(err, ErrGatewayClosed) {
		t.Errorf("Load() after failed load error = %v, expected %v", err, ErrGatewayClosed)
	}
	if got := sim.Calls(); !equalCalls(got, []string{"load"}) {
		t.Errorf("calls = %v, expected only load", got)
	}
}

func TestGatewayInitializeFailure(t *testing.T) {
	sim := &recordingSim{initErr: errBoom}
	gw := newTestGateway(t, sim)

	if err := gw.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := gw.Initialize(); !errors.Is(err, errBoom) {
		t.Fatalf("Initialize() error = %v, expected boom", err)
	}
	if err := gw.Draw(); !errors.Is(err, ErrGatewayClosed) {
		t.Errorf("Draw() after failed initialize error = %v, expected %v", err, ErrGatewayClosed)
	}
}

func TestGatewayDispose(t *testing.T) {
	sim := &disposableSim{}
	gw := newTestGateway(t, sim)

	if err := gw.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := gw.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := gw.Dispose(); err != nil {
			t.Fatalf("Dispose() error = %v", err)
		}
	}
	if sim.disposed != 1 {
		t.Errorf("Dispose forwarded %d times, expected 1", sim.disposed)
	}
	if err := gw.Draw(); !errors.Is(err, ErrGatewayClosed) {
		t.Errorf("Draw() after Dispose error = %v, expected %v", err, ErrGatewayClosed)
	}
}

func TestGatewayDisposeBeforeInitialize(t *testing.T) {
	sim := &disposableSim{}
	gw := newTestGateway(t, sim)

	if err := gw.Dispose(); err != nil {
		t.Fatalf("Dispose() error = %v", err)
	}
	if sim.disposed != 0 {
		t.Errorf("Dispose should not reach an uninitialized simulation, got %d calls", sim.disposed)
	}
	if err := gw.Load(context.Background()); !errors.Is(err, ErrGatewayClosed) {
		t.Errorf("Load() after Dispose error = %v, expected %v", err, ErrGatewayClosed)
	}
}
