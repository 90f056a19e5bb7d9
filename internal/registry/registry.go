// Package registry maps variant IDs to game factories.
// Game packages register themselves in init() so the CLI, menu and SSH host
// can list and create variants without importing them by name.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-catcher/internal/core"
)

// Game is what the terminal host drives. Implementations hold pure game
// logic; the host owns input mapping, timing, audio and rendering.
type Game interface {
	// ID is the variant identifier used by the CLI and the score ledger
	// (e.g. "catcher", "catcher_rush").
	ID() string

	// Title is the human-readable name shown in menus.
	Title() string

	// Reset returns the game to its title screen for the given screen size
	// and seed. Called once at start. Games that also implement
	// Resize(w, h int) keep their session across terminal resizes.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one host tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-sized screen buffer.
	Render(dst *core.Screen)

	// State reports score, pause and game-over status.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory to the registry.
// Panics if the ID is empty or already registered.
func Register(id string, f Factory) {
	if id == "" || f == nil {
		panic("registry: empty id or nil factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(factories))
	for id := range factories {
		out = append(out, GameInfo{ID: id, Title: titles[id]})
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// TitleOf returns the registered title for id, or id itself when unknown.
func TitleOf(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}
