// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/akarpov/topic-arcade/internal/core"
)

// Game is the interface every arcade game implements. Games contain pure
// simulation logic with no platform dependencies; the platform owns timing,
// input normalization, persistence and terminal output.
type Game interface {
	// ID returns a unique identifier (e.g. "dodge", "collector"), used for
	// CLI commands and high-score namespacing.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Clock describes how the platform should drive Step: a continuous
	// frame clock carrying real elapsed time, or a fixed-period ticker.
	Clock() core.ClockSpec

	// Reset initializes or restarts the game state. Called once at start
	// and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation. dt is the clamped elapsed time in
	// seconds for frame-clock games; fixed-clock games ignore it and
	// perform one discrete step. Once the game is over, Step must leave
	// score and positions untouched until a restart.
	Step(dt float64, in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
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
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
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
