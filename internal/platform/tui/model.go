package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-smoke/internal/core"
	"github.com/vovakirdan/tui-smoke/internal/engine"
)

// Options configures the Bubble Tea host.
type Options struct {
	FPS    int         // Frame rate; non-positive selects engine.DefaultFPS
	HUD    bool        // Draw the status/help line over the last surface row
	Title  string      // Simulation title for the HUD
	Logger *log.Logger // Nil discards
}

// Model is the Bubble Tea model hosting one session.
// Frames and key events both arrive through Update, so a frame body never
// interleaves with a key toggle.
type Model struct {
	ctx     context.Context
	sched   *engine.Scheduler
	input   *engine.InputController
	surface *core.Surface
	opts    Options
	logger  *log.Logger
	keys    KeyMap
	help    help.Model

	running  bool
	last     engine.FrameReport
	err      error
	quitting bool
}

// NewModel creates a model driving sched. The surface must already be
// sized; the model never resizes it.
func NewModel(ctx context.Context, sched *engine.Scheduler, input *engine.InputController, surface *core.Surface, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = engine.DefaultFPS
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = surface.Width()

	return Model{
		ctx:     ctx,
		sched:   sched,
		input:   input,
		surface: surface,
		opts:    opts,
		logger:  logger,
		keys:    NewKeyMap(input.PauseKey()),
		help:    h,
	}
}

// Init starts the asynchronous load. No frame is scheduled until it resolves.
func (m Model) Init() tea.Cmd {
	return loadCmd(m.ctx, m.sched)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		return m.handleLoaded(msg)

	case FrameMsg:
		return m.handleFrame()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The surface is sized once at startup; only the help line follows the window.
		m.help.Width = msg.Width
		m.logger.Debug("window resized, surface kept", "width", msg.Width, "height", msg.Height)
		return m, nil
	}

	return m, nil
}

// handleLoaded initializes the simulation and schedules the first frame.
func (m Model) handleLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = msg.err
		return m, tea.Quit
	}
	if err := m.sched.Initialize(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.running = true
	return m, frameCmd(m.opts.FPS)
}

// handleFrame runs one frame and schedules the next one, unless it failed.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	report, err := m.sched.Frame()
	if err != nil {
		if errors.Is(err, engine.ErrNotRunning) {
			// Stopped in the meantime (quit); let the tick chain end.
			return m, nil
		}
		m.err = err
		m.running = false
		return m, tea.Quit
	}
	m.last = report
	return m, frameCmd(m.opts.FPS)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		m.sched.Stop()
		return m, tea.Quit
	}

	// A consumed pause key goes nowhere else.
	m.input.HandleKey(msg.String())
	return m, nil
}

// Err returns the setup or frame failure that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the surface, with the HUD over its last row when enabled.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	lines := RenderSurface(m.surface)
	if m.opts.HUD && len(lines) > 0 {
		lines[len(lines)-1] = m.hudLine()
	}
	return strings.Join(lines, "\n")
}

// hudLine renders the status and help line, clipped to the surface width.
func (m Model) hudLine() string {
	var status string
	switch {
	case m.err != nil:
		status = styleFor(core.ColorWarning).Render("stopped: " + m.err.Error())
	case !m.running:
		status = styleFor(core.ColorText).Render("loading " + m.opts.Title + "...")
	case !m.last.Advanced && m.last.Index > 0:
		status = styleFor(core.ColorAccent).Render("PAUSED") +
			styleFor(core.ColorText).Render(fmt.Sprintf("  %s  frame %d", m.opts.Title, m.last.Index))
	default:
		status = styleFor(core.ColorText).Render(fmt.Sprintf("%s  frame %d", m.opts.Title, m.last.Index))
	}

	line := status + "  " + m.help.View(m.keys)
	return lipgloss.NewStyle().MaxWidth(m.surface.Width()).Render(line)
}

// Run starts the Bubble Tea program and blocks until the session ends.
// It returns the setup or frame failure that stopped the loop, if any.
// Cancelling ctx ends the session cleanly.
func Run(ctx context.Context, sched *engine.Scheduler, input *engine.InputController, surface *core.Surface, opts Options) error {
	model := NewModel(ctx, sched, input, surface, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, runErr := p.Run()
	closeErr := sched.Close()

	if runErr != nil {
		if errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil {
			return closeErr
		}
		return runErr
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return closeErr
}
