// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/sim"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "asteroids", "tank").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Space Invaders").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input carries one frame per local player.
	Step(in core.MultiInputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// SoundUser is implemented by games that emit sound effects.
type SoundUser interface {
	SetSounds(s sim.SoundSink)
}

// MusicUser is implemented by games that want background music.
type MusicUser interface {
	Music() bool
}

// HighScorer is implemented by games that show the stored best score.
type HighScorer interface {
	SetHighScore(score int)
}

// Multiplayer is implemented by games with more than one local player.
type Multiplayer interface {
	Players() int
}

// Versus is implemented by games that end with a winning player.
type Versus interface {
	Winner() core.PlayerID // 0 for a draw
	Ticks() int
}

// RoundEnder is implemented by games that restart themselves on a loss
// instead of stopping at game over. TakeFinishedScore returns the score of
// a game that ended since the last call.
type RoundEnder interface {
	TakeFinishedScore() (score int, ok bool)
}

// Leveled is implemented by games with a choice of starting level.
type Leveled interface {
	LevelNames() []string
}

// PlayerCount returns how many local players g reads input for.
func PlayerCount(g Game) int {
	if m, ok := g.(Multiplayer); ok {
		return m.Players()
	}
	return 1
}

// Options are passed to a factory when a game is created.
type Options struct {
	ConfigPath string                  // Explicit config file; empty uses the search path
	Difficulty config.DifficultyPreset // Empty leaves the config untouched
	Level      int                     // Starting level for games with levels (0-based)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID      string
	Title   string
	Players int  // Local players sharing the keyboard
	Versus  bool // Rounds end with a winner instead of a score
}

// Factory is a function that creates a new instance of a game.
type Factory func(opts Options) Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
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

	// Probe a temporary instance for its metadata
	g := f(Options{})
	_, versus := g.(Versus)
	infos[id] = GameInfo{
		ID:      id,
		Title:   g.Title(),
		Players: PlayerCount(g),
		Versus:  versus,
	}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, infos[id])
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(opts), nil
}

// Info returns the metadata of a registered game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
