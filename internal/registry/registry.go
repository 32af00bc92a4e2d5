// Package registry maps game IDs to factories. Games register themselves
// in init() functions so the CLI can list and start them by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/ascii-trials/internal/core"
	"github.com/vovakirdan/ascii-trials/internal/engine"
)

// Game is a scene that can be created by name. Games hold their rules and
// sprites; the engine package owns timing, input and rendering.
type Game interface {
	engine.Scene

	// ID returns a unique identifier (e.g. "dodger"), used by the CLI and
	// for result history.
	ID() string

	// Title returns a human-readable name for listings.
	Title() string

	// Reset builds a fresh session. Errors mean the scene's assets could
	// not be loaded and the session must not start.
	Reset(cfg core.RuntimeConfig) error

	// State returns the current game state.
	State() core.GameState
}

// Narrator is implemented by story scenes. They have no score and are
// left out of result history.
type Narrator interface {
	Narrative() bool
}

// IsNarrative reports whether g is a story scene.
func IsNarrative(g Game) bool {
	n, ok := g.(Narrator)
	return ok && n.Narrative()
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID        string
	Title     string
	Narrative bool
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	narrative = make(map[string]bool)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	g := f()
	titles[id] = g.Title()
	narrative[id] = IsNarrative(g)
}

// List returns information about all registered games in campaign order,
// then by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:        id,
			Title:     titles[id],
			Narrative: narrative[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		oi, oj := orderOf(result[i].ID), orderOf(result[j].ID)
		if oi != oj {
			return oi < oj
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
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

// order fixes where games appear in listings; unlisted IDs sort last.
var order = map[string]int{}

// SetOrder records the listing position of a game.
func SetOrder(id string, pos int) {
	mu.Lock()
	defer mu.Unlock()
	order[id] = pos
}

func orderOf(id string) int {
	if pos, ok := order[id]; ok {
		return pos
	}
	return len(order) + 1
}

// Campaign returns every registered ID in listing order, which is the
// order a full playthrough visits them.
func Campaign() []string {
	infos := List()
	ids := make([]string, len(infos))
	for i, info := range infos {
		ids[i] = info.ID
	}
	return ids
}

// Games lists the scored games, leaving out story scenes.
func Games() []GameInfo {
	var out []GameInfo
	for _, info := range List() {
		if !info.Narrative {
			out = append(out, info)
		}
	}
	return out
}
