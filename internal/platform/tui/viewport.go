package tui

import (
	"os"

	"golang.org/x/term"
)

// Fallback size used when the output is not a terminal.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// TerminalViewport reports the size of a terminal file descriptor.
type TerminalViewport struct {
	fd int
}

// NewTerminalViewport returns a viewport for f, usually os.Stdout.
func NewTerminalViewport(f *os.File) TerminalViewport {
	return TerminalViewport{fd: int(f.Fd())}
}

// Size returns the terminal size, or 80x24 when it cannot be read.
func (v TerminalViewport) Size() (int, int, error) {
	w, h, err := term.GetSize(v.fd)
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight, nil
	}
	return w, h, nil
}
