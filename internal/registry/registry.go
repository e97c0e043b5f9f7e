// Package registry maps simulation IDs to factories. Simulation packages
// register from init(), so the CLI only needs a blank import per package.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-smoke/internal/config"
	"github.com/vovakirdan/tui-smoke/internal/engine"
)

// Info describes a registered simulation.
type Info struct {
	ID    string
	Title string
}

// Factory builds a fresh, unloaded simulation from the driver configuration.
type Factory func(cfg config.Config) engine.Simulation

type entry struct {
	info    Info
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a factory under id. The title is taken from an instance
// built with config.Default(). Registering an id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: simulation %q already registered", id))
	}
	entries[id] = entry{
		info:    Info{ID: id, Title: f(config.Default()).Title()},
		factory: f,
	}
}

// List returns every registered simulation ordered by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Info, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b Info) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Create builds the simulation registered under id.
func Create(id string, cfg config.Config) (engine.Simulation, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown simulation %q", id)
	}
	return e.factory(cfg), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
