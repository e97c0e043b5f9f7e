package config

import (
	_ "embed"
)

//go:embed defaults/smoke.yaml
var defaultYAML []byte

// Default returns the built-in configuration. The smoke grid, time step
// and obstacle describe the classic tunnel: 200x100 cells at 60 Hz
// with a radius 10 disc centred at (50, 50).
func Default() Config {
	return Config{
		FPS:        60,
		PauseKey:   " ",
		Simulation: "smoke",
		HUD:        true,
		Log: LogConfig{
			Level: "info",
		},
		Smoke: SmokeConfig{
			CellsX: 200,
			CellsY: 100,
			Dt:     1.0 / 60.0,
			Wind:   30,
			Decay:  0.998,
			Spread: 0.05,
			Obstacle: ObstacleConfig{
				X:      50,
				Y:      50,
				Radius: 10,
			},
			Inflow: InflowConfig{
				Streaks: 9,
				Width:   3,
				Density: 1.0,
			},
		},
	}
}
