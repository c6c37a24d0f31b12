package core

import "time"

// DefaultTickRate is the simulation rate every game is tuned for.
const DefaultTickRate = 60

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; zero picks one from the clock
}

// DefaultConfig returns an 80x24 terminal at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: DefaultTickRate}
}

// WithDefaults fills in a missing tick rate and seed. A zero seed becomes
// now's nanoseconds so every unseeded session plays differently.
func (c RuntimeConfig) WithDefaults(now time.Time) RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Seed == 0 {
		c.Seed = now.UnixNano()
	}
	return c
}

// TickInterval is the wall-clock time between two simulation steps.
func (c RuntimeConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(max(c.TickRate, 1))
}

// GameState is what a game reports to the platform after each step.
type GameState struct {
	Score    int  // Player 1 score in versus games
	GameOver bool // Round ended, won or lost
	Won      bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
