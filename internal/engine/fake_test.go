package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vovakirdan/tui-smoke/internal/core"
)

var errBoom = errors.New("boom")

// recordingSim is a deterministic Simulation that records call order.
type recordingSim struct {
	mu    sync.Mutex
	calls []string

	loadDelay time.Duration
	loadErr   error
	initErr   error
	drawErr   error
	// failAdvanceAt makes the n-th Advance call fail (1-based, 0 = never).
	failAdvanceAt int

	loadResolved time.Time
	initCalled   time.Time
	advances     int
	surface      *core.Surface
}

func (s *recordingSim) ID() string    { return "recording" }
func (s *recordingSim) Title() string { return "Recording" }

func (s *recordingSim) Load(ctx context.Context) error {
	s.record("load")
	if s.loadDelay > 0 {
		select {
		case <-time.After(s.loadDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	s.mu.Lock()
	s.loadResolved = time.Now()
	s.mu.Unlock()
	return s.loadErr
}

func (s *recordingSim) Initialize(dst *core.Surface) error {
	s.mu.Lock()
	s.initCalled = time.Now()
	s.surface = dst
	s.mu.Unlock()
	s.record("initialize")
	return s.initErr
}

func (s *recordingSim) Advance() error {
	s.record("advance")
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advances++
	if s.failAdvanceAt > 0 && s.advances == s.failAdvanceAt {
		return errBoom
	}
	return nil
}

func (s *recordingSim) Draw() error {
	s.record("draw")
	return s.drawErr
}

func (s *recordingSim) record(call string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
}

func (s *recordingSim) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *recordingSim) count(call string) int {
	n := 0
	for _, c := range s.Calls() {
		if c == call {
			n++
		}
	}
	return n
}

// disposableSim adds Dispose to recordingSim.
type disposableSim struct {
	recordingSim
	disposed int
}

func (s *disposableSim) Dispose() error {
	s.record("dispose")
	s.disposed++
	return nil
}

// manualClock hands out ticks only when the test sends them.
type manualClock struct {
	ch      chan time.Time
	stopped atomic.Bool
}

func newManualClock() *manualClock {
	return &manualClock{ch: make(chan time.Time)}
}

func (c *manualClock) Ticks() <-chan time.Time { return c.ch }
func (c *manualClock) Stop()                   { c.stopped.Store(true) }

func (c *manualClock) tick(t *testing.T) {
	t.Helper()
	select {
	case c.ch <- time.Now():
	case <-time.After(2 * time.Second):
		t.Fatal("tick was not consumed")
	}
}

func newTestGateway(t *testing.T, sim Simulation) *Gateway {
	t.Helper()
	gw, err := NewGateway(sim, core.NewSurface(8, 4))
	if err != nil {
		t.Fatalf("NewGateway() error = %v", err)
	}
	return gw
}

func equalCalls(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
