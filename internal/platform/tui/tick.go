// Package tui hosts the frame loop inside a Bubble Tea program.
// It maps terminal events to the engine: frame ticks to Scheduler.Frame
// and key presses to InputController.HandleKey.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-smoke/internal/engine"
)

// FrameMsg is sent to trigger one frame.
type FrameMsg time.Time

// loadedMsg reports the outcome of the asynchronous load step.
type loadedMsg struct {
	err error
}

// frameCmd schedules the next frame at the given rate.
// Each frame schedules exactly one successor, so one frame is pending at a time.
func frameCmd(fps int) tea.Cmd {
	return tea.Tick(engine.FrameInterval(fps), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// loadCmd runs the scheduler's load step off the update loop.
func loadCmd(ctx context.Context, sched *engine.Scheduler) tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{err: sched.Load(ctx)}
	}
}
