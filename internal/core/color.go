package core

// Color represents a foreground color for a surface cell.
// The platform layer maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors. The Smoke* shades run from faint to dense and are
// meant to be indexed by quantized density.
const (
	ColorDefault Color = iota
	ColorSmoke0
	ColorSmoke1
	ColorSmoke2
	ColorSmoke3
	ColorSmoke4
	ColorSmoke5
	ColorObstacle
	ColorText
	ColorAccent
	ColorWarning
)

// SmokeShades lists the density colors in ascending order.
var SmokeShades = []Color{
	ColorSmoke0,
	ColorSmoke1,
	ColorSmoke2,
	ColorSmoke3,
	ColorSmoke4,
	ColorSmoke5,
}

// Shade returns the smoke color for a density level in [0, 1].
// Values outside the range are clamped.
func Shade(level float64) Color {
	if level <= 0 {
		return SmokeShades[0]
	}
	if level >= 1 {
		return SmokeShades[len(SmokeShades)-1]
	}
	return SmokeShades[int(level*float64(len(SmokeShades)))]
}
