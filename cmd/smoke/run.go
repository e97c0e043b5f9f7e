package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-smoke/internal/config"
	"github.com/vovakirdan/tui-smoke/internal/core"
	"github.com/vovakirdan/tui-smoke/internal/engine"
	"github.com/vovakirdan/tui-smoke/internal/platform/tui"
	"github.com/vovakirdan/tui-smoke/internal/registry"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation full screen",
	Long: `Start the configured simulation in the terminal's alternate screen.
The drawing surface is sized to the terminal once, at startup.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

// session bundles the engine pieces wired for one simulation.
type session struct {
	title   string
	surface *core.Surface
	input   *engine.InputController
	sched   *engine.Scheduler
}

// loadConfig resolves the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagFPS > 0 {
		cfg.FPS = flagFPS
	}
	if flagSim != "" {
		cfg.Simulation = flagSim
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds the diagnostics logger. fallback receives output when
// no log file is configured. The returned closer releases the file.
func newLogger(cfg config.LogConfig, fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: log level %q", config.ErrInvalid, cfg.Level)
	}

	out := fallback
	closer := func() error { return nil }
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          "smoke",
		ReportTimestamp: true,
	})
	return logger, closer, nil
}

// newSession sizes the surface from vp and wires gateway, run state,
// input controller and scheduler around the configured simulation.
func newSession(cfg config.Config, vp core.Viewport, schedCfg engine.SchedulerConfig) (*session, error) {
	if !registry.Exists(cfg.Simulation) {
		return nil, fmt.Errorf("unknown simulation %q (run 'smoke list' to see available ones)", cfg.Simulation)
	}

	surface := core.NewSurface(0, 0)
	if err := core.SizeToViewport(surface, vp); err != nil {
		return nil, err
	}

	sim, err := registry.Create(cfg.Simulation, cfg)
	if err != nil {
		return nil, err
	}
	gw, err := engine.NewGateway(sim, surface)
	if err != nil {
		return nil, err
	}

	state := engine.NewRunState()
	_, title := gw.Simulation()
	return &session{
		title:   title,
		surface: surface,
		input:   engine.NewInputController(state, cfg.PauseKey),
		sched:   engine.NewScheduler(gw, state, schedCfg),
	}, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so diagnostics go to the log file or nowhere.
	logger, closeLog, err := newLogger(cfg.Log, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := newSession(cfg, tui.NewTerminalViewport(os.Stdout), engine.SchedulerConfig{Logger: logger})
	if err != nil {
		return err
	}
	logger.Info("session created", "sim", cfg.Simulation, "width", s.surface.Width(), "height", s.surface.Height(), "fps", cfg.FPS)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tui.Run(ctx, s.sched, s.input, s.surface, tui.Options{
		FPS:    cfg.FPS,
		HUD:    cfg.HUD,
		Title:  s.title,
		Logger: logger,
	}); err != nil {
		logger.Error("session ended with error", "error", err)
		return fmt.Errorf("running %s: %w", cfg.Simulation, err)
	}

	stats := s.sched.Stats()
	logger.Info("session ended", "frames", stats.Frames, "advances", stats.Advances, "paused_frames", stats.PausedFrames)
	return nil
}
