package core

import (
	"strings"
	"testing"
)

func TestNewSurface(t *testing.T) {
	s := NewSurface(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New surface should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestNewSurfaceNegative(t *testing.T) {
	s := NewSurface(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("NewSurface(-3, -1) = %dx%d, expected 0x0", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("String() = %q, expected empty", s.String())
	}
}

func TestSurfaceSetGet(t *testing.T) {
	s := NewSurface(10, 10)

	s.SetCell(5, 5, Cell{Rune: 'X', Color: ColorObstacle})
	if got := s.GetCell(5, 5); got.Rune != 'X' || got.Color != ColorObstacle {
		t.Errorf("GetCell(5, 5) = %+v, expected X/obstacle", got)
	}

	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if c := s.GetCell(0, 100); c.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell color = %v, expected default", c.Color)
	}
}

func TestSurfaceClear(t *testing.T) {
	s := NewSurface(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			s.SetCell(x, y, Cell{Rune: '#', Color: ColorSmoke5})
		}
	}

	s.Clear()

	if s.String() != "    \n    \n    " {
		t.Errorf("After Clear, String() = %q", s.String())
	}
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestSurfaceDrawText(t *testing.T) {
	s := NewSurface(20, 5)
	s.DrawText(2, 1, "Hello", ColorText)

	for i, ch := range "Hello" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorText {
			t.Errorf("DrawText: expected %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	s.DrawText(18, 0, "Hello", ColorText)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestSurfaceResize(t *testing.T) {
	s := NewSurface(10, 10)
	s.DrawText(0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.Row(0)) != "" {
		t.Errorf("Resize should blank the surface, row 0 = %q", s.Row(0))
	}

	s.DrawText(0, 0, "Hi", ColorDefault)
	s.Resize(8, 4)
	if !strings.HasPrefix(s.Row(0), "Hi") {
		t.Errorf("Resize to same size should keep content, row 0 = %q", s.Row(0))
	}
}

func TestSurfaceString(t *testing.T) {
	s := NewSurface(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorDefault)

	expected := "AAAAA\nBBBBB\nCCCCC"
	if result := s.String(); result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestSurfaceRow(t *testing.T) {
	s := NewSurface(10, 5)
	s.DrawText(0, 2, "Test", ColorDefault)

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}
	if s.Row(-1) != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", s.Row(-1))
	}
}

func TestShade(t *testing.T) {
	tests := []struct {
		level    float64
		expected Color
	}{
		{-1, ColorSmoke0},
		{0, ColorSmoke0},
		{0.5, ColorSmoke3},
		{0.99, ColorSmoke5},
		{1, ColorSmoke5},
		{7, ColorSmoke5},
	}

	for _, tc := range tests {
		if got := Shade(tc.level); got != tc.expected {
			t.Errorf("Shade(%v) = %v, expected %v", tc.level, got, tc.expected)
		}
	}
}
