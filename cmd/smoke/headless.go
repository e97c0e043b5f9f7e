package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-smoke/internal/core"
	"github.com/vovakirdan/tui-smoke/internal/engine"
)

var (
	flagFrames int
	flagWidth  int
	flagHeight int
	flagGraph  bool
	flagPaused bool
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run a fixed number of frames without a TUI",
	Long: `Drive the simulation on a ticker clock with no terminal UI, then print
the final surface. Useful for profiling and for checking a config.

Examples:
  smoke headless --frames 600
  smoke headless --frames 300 --width 120 --height 40 --graph`,
	Args: cobra.NoArgs,
	RunE: runHeadless,
}

func init() {
	headlessCmd.Flags().IntVar(&flagFrames, "frames", 300, "Number of frames to run (0 = until interrupted)")
	headlessCmd.Flags().IntVar(&flagWidth, "width", 80, "Surface width in cells")
	headlessCmd.Flags().IntVar(&flagHeight, "height", 24, "Surface height in cells")
	headlessCmd.Flags().BoolVar(&flagGraph, "graph", false, "Plot frame durations after the run")
	headlessCmd.Flags().BoolVar(&flagPaused, "paused", false, "Start paused (frames draw without advancing)")
}

func runHeadless(cmd *cobra.Command, args []string) error {
	if flagFrames < 0 {
		return fmt.Errorf("--frames must not be negative, got %d", flagFrames)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := newSession(cfg, core.FixedViewport{W: flagWidth, H: flagHeight}, engine.SchedulerConfig{
		Logger:    logger,
		MaxFrames: uint64(flagFrames),
		OnFrame: func(r engine.FrameReport) {
			// Once per simulated second.
			if r.Index%uint64(cfg.FPS) == 0 {
				logger.Debug("frame", "index", r.Index, "advanced", r.Advanced, "took", r.Duration)
			}
		},
	})
	if err != nil {
		return err
	}
	if flagPaused {
		// Same path as a key press, so the input controller stays the only writer.
		s.input.HandleKey(s.input.PauseKey())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	if err := s.sched.Run(ctx, engine.NewTickerClock(cfg.FPS)); err != nil {
		return fmt.Errorf("running %s: %w", cfg.Simulation, err)
	}
	elapsed := time.Since(start)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, s.surface.String())

	stats := s.sched.Stats()
	fmt.Fprintf(out, "%s: %d frames (%d advanced, %d paused) in %s\n",
		s.title, stats.Frames, stats.Advances, stats.PausedFrames, elapsed.Round(time.Millisecond))

	if flagGraph && len(stats.Durations) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, plotDurations(stats.Durations))
	}
	return nil
}

// plotDurations renders frame durations in milliseconds.
func plotDurations(durations []time.Duration) string {
	ms := make([]float64, len(durations))
	for i, d := range durations {
		ms[i] = float64(d.Microseconds()) / 1000
	}
	return asciigraph.Plot(ms,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("frame duration (ms)"),
	)
}
