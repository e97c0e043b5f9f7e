// Package config provides YAML-based configuration loading for the
// animation driver and its bundled simulations.
package config

import (
	"errors"
	"fmt"
)

// Config is the complete driver configuration.
type Config struct {
	FPS        int         `yaml:"fps"`         // Frames per second
	PauseKey   string      `yaml:"pause_key"`   // Key identifier that toggles pause (" " = space)
	Simulation string      `yaml:"simulation"`  // Registry ID of the simulation to run
	HUD        bool        `yaml:"hud"`         // Show the status/help line over the last row
	Log        LogConfig   `yaml:"log"`
	Smoke      SmokeConfig `yaml:"smoke"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty: stderr in headless mode, discarded in the TUI
}

// SmokeConfig defines the smoke wind tunnel.
type SmokeConfig struct {
	CellsX   int            `yaml:"cells_x"`
	CellsY   int            `yaml:"cells_y"`
	Dt       float64        `yaml:"dt"`     // Seconds per tick
	Wind     float64        `yaml:"wind"`   // Cells per second, left to right
	Decay    float64        `yaml:"decay"`  // Density retained per tick, (0, 1]
	Spread   float64        `yaml:"spread"` // Vertical diffusion per tick, [0, 0.5]
	Obstacle ObstacleConfig `yaml:"obstacle"`
	Inflow   InflowConfig   `yaml:"inflow"`
}

// ObstacleConfig places a circular solid in the tunnel, in grid cells.
type ObstacleConfig struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Radius int `yaml:"radius"`
}

// InflowConfig defines the smoke injected at the left edge.
type InflowConfig struct {
	Streaks int     `yaml:"streaks"` // Number of evenly spaced smoke streaks
	Width   int     `yaml:"width"`   // Rows per streak
	Density float64 `yaml:"density"` // Injected density, (0, 1]
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks that the configuration can drive a session.
func (c Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.FPS)
	}
	if c.PauseKey == "" {
		return fmt.Errorf("%w: pause_key must not be empty", ErrInvalid)
	}
	if c.PauseKey == "q" || c.PauseKey == "ctrl+c" {
		return fmt.Errorf("%w: pause_key %q is reserved for quit", ErrInvalid, c.PauseKey)
	}
	if c.Simulation == "" {
		return fmt.Errorf("%w: simulation must not be empty", ErrInvalid)
	}
	return c.Smoke.Validate()
}

// Validate checks the smoke parameters.
func (c SmokeConfig) Validate() error {
	switch {
	case c.CellsX <= 0 || c.CellsY <= 0:
		return fmt.Errorf("%w: smoke grid must be positive, got %dx%d", ErrInvalid, c.CellsX, c.CellsY)
	case c.Dt <= 0:
		return fmt.Errorf("%w: smoke dt must be positive, got %v", ErrInvalid, c.Dt)
	case c.Wind < 0 || c.Wind*c.Dt > 1:
		return fmt.Errorf("%w: smoke wind*dt must be within [0, 1], got %v", ErrInvalid, c.Wind*c.Dt)
	case c.Decay <= 0 || c.Decay > 1:
		return fmt.Errorf("%w: smoke decay must be within (0, 1], got %v", ErrInvalid, c.Decay)
	case c.Spread < 0 || c.Spread > 0.5:
		return fmt.Errorf("%w: smoke spread must be within [0, 0.5], got %v", ErrInvalid, c.Spread)
	case c.Obstacle.Radius < 0:
		return fmt.Errorf("%w: smoke obstacle radius must not be negative", ErrInvalid)
	case c.Inflow.Streaks < 0 || c.Inflow.Width < 0:
		return fmt.Errorf("%w: smoke inflow streaks and width must not be negative", ErrInvalid)
	case c.Inflow.Density < 0 || c.Inflow.Density > 1:
		return fmt.Errorf("%w: smoke inflow density must be within [0, 1], got %v", ErrInvalid, c.Inflow.Density)
	}
	return nil
}
