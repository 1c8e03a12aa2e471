// Package registry provides a global registry for robot logic.
// Bots register themselves in init() functions, allowing the CLI and the
// spectator UI to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/robot-arena/internal/arena"
)

// Bot is a named robot logic a player can field.
type Bot interface {
	arena.Provider

	// ID returns a unique identifier for this bot (e.g., "rush", "guard").
	// Used for CLI arguments.
	ID() string

	// Title returns a one-line description for display.
	Title() string
}

// BotInfo contains metadata about a registered bot.
type BotInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a bot. Bots that roll dice draw from a
// source seeded with seed so matches can be replayed.
type Factory func(seed int64) Bot

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a bot factory to the registry.
// Typically called from a bot's init() function.
// Panics if a bot with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: bot %q already registered", id))
	}

	factories[id] = f
	titles[id] = f(0).Title()
}

// List returns information about all registered bots, sorted by ID.
func List() []BotInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BotInfo, 0, len(factories))
	for id := range factories {
		result = append(result, BotInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new bot by its ID.
// Returns an error if the bot ID is not registered.
func Create(id string, seed int64) (Bot, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown bot %q", id)
	}

	return f(seed), nil
}

// Exists checks if a bot with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
