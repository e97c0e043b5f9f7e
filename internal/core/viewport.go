package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSurface is returned when sizing or drawing is attempted without a surface.
	ErrNoSurface = errors.New("core: surface is missing")
	// ErrNoViewport is returned when no viewport is available to size from.
	ErrNoViewport = errors.New("core: viewport is missing")
	// ErrInvalidViewport is returned when the viewport reports a non-positive size.
	ErrInvalidViewport = errors.New("core: viewport size must be positive")
)

// Viewport reports the host's current drawable size in cells.
type Viewport interface {
	Size() (width, height int, err error)
}

// FixedViewport is a Viewport with a constant size.
type FixedViewport struct {
	W, H int
}

// Size returns the fixed dimensions.
func (v FixedViewport) Size() (int, int, error) {
	return v.W, v.H, nil
}

// SizeToViewport resizes the surface to exactly match the viewport.
// It is meant to run once at startup, before anything is drawn.
func SizeToViewport(s *Surface, vp Viewport) error {
	if s == nil {
		return ErrNoSurface
	}
	if vp == nil {
		return ErrNoViewport
	}

	w, h, err := vp.Size()
	if err != nil {
		return fmt.Errorf("core: read viewport size: %w", err)
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidViewport, w, h)
	}

	s.Resize(w, h)
	return nil
}
