package core

// DefaultTickRate drives the elapsed timer in 20ms steps.
const DefaultTickRate = 50

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Timer ticks per second (default 50)
	Seed     int64 // RNG seed for deterministic mine placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickSeconds returns the duration of one tick in seconds.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / DefaultTickRate
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Safe cells opened so far
	Started  bool    // Whether the first move has been made
	GameOver bool    // Whether the game has ended (won or lost)
	Won      bool    // Whether the game ended in victory
	Elapsed  float64 // Seconds on the game clock
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
