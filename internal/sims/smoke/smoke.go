// Package smoke is a small wind tunnel: smoke streaks enter at the left
// edge, drift right and part around a circular obstacle. It is the
// simulation bundled with the driver and is registered as "smoke".
package smoke

import (
	"context"
	"errors"

	"github.com/vovakirdan/tui-smoke/internal/config"
	"github.com/vovakirdan/tui-smoke/internal/core"
	"github.com/vovakirdan/tui-smoke/internal/engine"
	"github.com/vovakirdan/tui-smoke/internal/registry"
)

// ID is the registry identifier.
const ID = "smoke"

// ramp maps density to glyphs, faint to dense.
const ramp = " .:-=+*#%@"

const obstacleRune = '█'

var (
	errNotLoaded      = errors.New("smoke: initialize before load")
	errNotInitialized = errors.New("smoke: tunnel not initialized")
)

func init() {
	registry.Register(ID, func(cfg config.Config) engine.Simulation {
		return New(cfg.Smoke)
	})
}

// Sim is the wind tunnel state.
type Sim struct {
	cfg config.SmokeConfig

	solid   []bool // obstacle mask, built by Load
	density []float64
	next    []float64
	dst     *core.Surface
	ticks   uint64
}

// New creates an unloaded wind tunnel.
func New(cfg config.SmokeConfig) *Sim {
	return &Sim{cfg: cfg}
}

// ID returns the registry identifier.
func (s *Sim) ID() string { return ID }

// Title returns a human-readable name.
func (s *Sim) Title() string { return "Smoke Tunnel" }

// Load validates the configuration and builds the obstacle mask.
func (s *Sim) Load(ctx context.Context) error {
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	w, h := s.cfg.CellsX, s.cfg.CellsY
	o := s.cfg.Obstacle
	solid := make([]bool, w*h)
	for y := 0; y < h; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := 0; x < w; x++ {
			dx, dy := x-o.X, y-o.Y
			solid[y*w+x] = dx*dx+dy*dy < o.Radius*o.Radius
		}
	}
	s.solid = solid
	return nil
}

// Initialize allocates an empty tunnel and binds the surface.
func (s *Sim) Initialize(dst *core.Surface) error {
	if s.solid == nil {
		return errNotLoaded
	}
	if dst == nil {
		return core.ErrNoSurface
	}
	n := s.cfg.CellsX * s.cfg.CellsY
	s.density = make([]float64, n)
	s.next = make([]float64, n)
	s.dst = dst
	s.ticks = 0
	return nil
}

// Advance transports density one tick downwind.
func (s *Sim) Advance() error {
	if s.density == nil {
		return errNotInitialized
	}

	w, h := s.cfg.CellsX, s.cfg.CellsY
	c := s.cfg.Wind * s.cfg.Dt

	for y := 0; y < h; y++ {
		inflow := s.inflow(y)
		for x := 0; x < w; x++ {
			i := y*w + x
			if s.solid[i] {
				s.next[i] = 0
				continue
			}

			cur := s.density[i]
			upwind := inflow
			if x > 0 {
				upwind = s.density[i-1]
			}
			v := (1-c)*cur + c*upwind

			// Vertical diffusion; walls and the obstacle are no-flux.
			if s.cfg.Spread > 0 {
				above, below := cur, cur
				if y > 0 && !s.solid[i-w] {
					above = s.density[i-w]
				}
				if y < h-1 && !s.solid[i+w] {
					below = s.density[i+w]
				}
				v += s.cfg.Spread * (above + below - 2*cur)
			}

			s.next[i] = core.ClampF(v*s.cfg.Decay, 0, 1)
		}
	}

	s.density, s.next = s.next, s.density
	s.ticks++
	return nil
}

// inflow returns the density entering row y at the left edge.
func (s *Sim) inflow(y int) float64 {
	in := s.cfg.Inflow
	if in.Streaks == 0 || in.Width == 0 {
		return 0
	}
	spacing := s.cfg.CellsY / (in.Streaks + 1)
	if spacing == 0 {
		return in.Density
	}
	for k := 1; k <= in.Streaks; k++ {
		if 2*core.Abs(y-k*spacing) < in.Width {
			return in.Density
		}
	}
	return 0
}

// Draw samples the tunnel onto the surface, nearest cell per glyph.
func (s *Sim) Draw() error {
	if s.dst == nil || s.density == nil {
		return errNotInitialized
	}

	sw, sh := s.dst.Width(), s.dst.Height()
	w, h := s.cfg.CellsX, s.cfg.CellsY

	for sy := 0; sy < sh; sy++ {
		gy := sy * h / sh
		for sx := 0; sx < sw; sx++ {
			gx := sx * w / sw
			i := gy*w + gx
			if s.solid[i] {
				s.dst.SetCell(sx, sy, core.Cell{Rune: obstacleRune, Color: core.ColorObstacle})
				continue
			}
			s.dst.SetCell(sx, sy, glyph(s.density[i]))
		}
	}
	return nil
}

func glyph(d float64) core.Cell {
	idx := int(d * float64(len(ramp)))
	idx = core.Clamp(idx, 0, len(ramp)-1)
	if idx == 0 {
		return core.Cell{Rune: ' ', Color: core.ColorDefault}
	}
	return core.Cell{Rune: rune(ramp[idx]), Color: core.Shade(d)}
}

// Dispose releases the field buffers.
func (s *Sim) Dispose() error {
	s.density, s.next, s.solid = nil, nil, nil
	s.dst = nil
	return nil
}

// Density returns the total smoke in the tunnel.
func (s *Sim) Density() float64 {
	total := 0.0
	for _, d := range s.density {
		total += d
	}
	return total
}

// Ticks returns how many times Advance has run since Initialize.
func (s *Sim) Ticks() uint64 {
	return s.ticks
}
