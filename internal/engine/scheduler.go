package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Phase is the scheduler's lifecycle state.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseLoading
	PhaseRunning
	PhaseStopped // setup failure, frame failure or cancellation
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseLoading:
		return "loading"
	case PhaseRunning:
		return "running"
	case PhaseStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// durationHistory is how many frame durations Stats keeps.
const durationHistory = 600

// FrameReport describes one completed frame.
type FrameReport struct {
	Index    uint64 // 1-based
	Advanced bool   // false when the frame was paused
	Duration time.Duration
}

// Stats are cumulative counters for a session.
type Stats struct {
	Frames       uint64
	Advances     uint64
	Draws        uint64
	PausedFrames uint64
	Durations    []time.Duration // most recent frames, oldest first
}

// SchedulerConfig holds optional scheduler settings.
type SchedulerConfig struct {
	// Logger receives phase transitions and failures. Nil discards.
	Logger *log.Logger

	// MaxFrames makes Run return after that many frames. Zero means unbounded.
	MaxFrames uint64

	// OnFrame is called after every completed frame, outside the lock.
	OnFrame func(FrameReport)
}

// Scheduler runs the frame loop: once the gateway has loaded and
// initialized, each frame advances the simulation unless paused and
// always draws it. Pausing skips only the advance step; frames keep
// coming at the same cadence.
type Scheduler struct {
	gateway *Gateway
	state   *RunState
	logger  *log.Logger
	cfg     SchedulerConfig

	mu         sync.Mutex
	phase      Phase
	loaded     bool
	err        error
	stats      Stats
	lastPaused bool
}

// NewScheduler creates a scheduler reading pause state from state.
func NewScheduler(gw *Gateway, state *RunState, cfg SchedulerConfig) *Scheduler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scheduler{
		gateway: gw,
		state:   state,
		logger:  logger,
		cfg:     cfg,
	}
}

// Phase returns the current lifecycle phase.
func (s *Scheduler) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Err returns the error that stopped the scheduler, if any.
func (s *Scheduler) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Stats returns a snapshot of the session counters.
func (s *Scheduler) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.stats
	out.Durations = append([]time.Duration(nil), s.stats.Durations...)
	return out
}

// Load moves from uninitialized to loading and runs the gateway's load
// step. It blocks until the load resolves; frames and initialization are
// rejected meanwhile.
func (s *Scheduler) Load(ctx context.Context) error {
	s.mu.Lock()
	switch s.phase {
	case PhaseUninitialized:
	case PhaseStopped:
		err := s.err
		s.mu.Unlock()
		if err != nil {
			return err
		}
		return ErrGatewayClosed
	default:
		phase := s.phase
		s.mu.Unlock()
		return fmt.Errorf("engine: load requested while %s: %w", phase, ErrAlreadyLoaded)
	}
	s.phase = PhaseLoading
	s.mu.Unlock()

	id, _ := s.gateway.Simulation()
	s.logger.Info("loading simulation", "sim", id)
	start := time.Now()

	err := s.gateway.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.stopLocked(err)
		s.logger.Error("load failed", "sim", id, "error", err)
		return err
	}
	s.loaded = true
	s.logger.Info("simulation loaded", "sim", id, "elapsed", time.Since(start))
	return nil
}

// Initialize runs the gateway's initialize step and enters the running
// phase. It must follow a successful Load.
func (s *Scheduler) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.phase == PhaseRunning:
		return ErrAlreadyInitialized
	case s.phase == PhaseStopped:
		if s.err != nil {
			return s.err
		}
		return ErrGatewayClosed
	case !s.loaded:
		return ErrNotLoaded
	}

	if err := s.gateway.Initialize(); err != nil {
		s.stopLocked(err)
		s.logger.Error("initialize failed", "error", err)
		return err
	}
	s.phase = PhaseRunning
	s.lastPaused = s.state.Paused()
	s.logger.Info("frame loop running", "paused", s.lastPaused)
	return nil
}

// Start loads and initializes in one call.
func (s *Scheduler) Start(ctx context.Context) error {
	if err := s.Load(ctx); err != nil {
		return err
	}
	return s.Initialize()
}

// Frame executes one frame body. A failing advance or draw stops the
// scheduler for good and is returned as a *FrameError.
func (s *Scheduler) Frame() (FrameReport, error) {
	s.mu.Lock()

	if s.phase != PhaseRunning {
		s.mu.Unlock()
		return FrameReport{}, ErrNotRunning
	}

	start := time.Now()
	index := s.stats.Frames + 1
	paused := s.state.Paused()
	if paused != s.lastPaused {
		s.lastPaused = paused
		s.logger.Debug("run state changed", "paused", paused, "frame", index)
	}

	if paused {
		s.stats.PausedFrames++
	} else {
		if err := s.gateway.Advance(); err != nil {
			return FrameReport{}, s.failFrameLocked(index, "advance", err)
		}
		s.stats.Advances++
	}

	if err := s.gateway.Draw(); err != nil {
		return FrameReport{}, s.failFrameLocked(index, "draw", err)
	}
	s.stats.Draws++
	s.stats.Frames = index

	report := FrameReport{Index: index, Advanced: !paused, Duration: time.Since(start)}
	s.recordDurationLocked(report.Duration)
	onFrame := s.cfg.OnFrame
	s.mu.Unlock()

	if onFrame != nil {
		onFrame(report)
	}
	return report, nil
}

// failFrameLocked stops the scheduler and releases the lock.
func (s *Scheduler) failFrameLocked(index uint64, op string, err error) error {
	fe := &FrameError{Frame: index, Op: op, Err: err}
	s.stopLocked(fe)
	s.mu.Unlock()
	s.logger.Error("frame failed, loop stopped", "frame", index, "op", op, "error", err)
	return fe
}

func (s *Scheduler) recordDurationLocked(d time.Duration) {
	s.stats.Durations = append(s.stats.Durations, d)
	if n := len(s.stats.Durations); n > durationHistory {
		s.stats.Durations = append(s.stats.Durations[:0], s.stats.Durations[n-durationHistory:]...)
	}
}

func (s *Scheduler) stopLocked(err error) {
	s.phase = PhaseStopped
	if s.err == nil {
		s.err = err
	}
}

// Stop moves the scheduler to the stopped phase without an error.
// Further frames are rejected.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseStopped {
		s.phase = PhaseStopped
		s.logger.Info("frame loop stopped", "frames", s.stats.Frames)
	}
}

// Close stops the scheduler and disposes the gateway.
func (s *Scheduler) Close() error {
	s.Stop()
	return s.gateway.Dispose()
}

// Run drives the whole session: Start, then one frame per clock tick
// until it is cancelled or stopped, MaxFrames is reached, or a frame fails.
// Cancellation, Stop and the frame limit return nil. The gateway is disposed
// and the clock stopped before Run returns.
func (s *Scheduler) Run(ctx context.Context, clock Clock) (err error) {
	defer clock.Stop()
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := s.Start(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-clock.Ticks():
			if ctx.Err() != nil {
				return nil
			}
			report, err := s.Frame()
			if errors.Is(err, ErrNotRunning) {
				// Stopped from outside the loop.
				return s.Err()
			}
			if err != nil {
				return err
			}
			if s.cfg.MaxFrames > 0 && report.Index >= s.cfg.MaxFrames {
				return nil
			}
		}
	}
}
