package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the output device and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Output width (characters or pixels, backend dependent)
	ScreenH  int   // Output height
	TickRate int   // Frames per second requested from the platform (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// Clock supplies the wall-clock time for frame deltas.
	// Nil means time.Now; tests inject a stepping clock.
	Clock func() time.Time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Now returns the configured clock reading.
func (c RuntimeConfig) Now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock()
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Wave     int  // Current wave number, starting at 1
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	DT    float64 // Simulated seconds advanced this frame (0 for the baseline frame)
}

// Display describes how a platform should present a game.
type Display struct {
	Title      string
	Background Color

	// HoldWindow is how long a terminal key press counts as held
	// when no repeat follows.
	HoldWindow time.Duration
}
