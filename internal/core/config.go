package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultTickRate gives roughly a 30ms tick, the pace the board is tuned for.
const DefaultTickRate = 33

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickMillis returns the simulated duration of one tick.
func (c RuntimeConfig) TickMillis() int64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return int64(max(1000/rate, 1))
}

// GameState represents the current state of a game as seen by the platform.
type GameState struct {
	Score     int    // Current score
	Lives     int    // Remaining lives (0 when the variant has none)
	Collected int    // Bonus frogs collected this round
	GameOver  bool   // Whether the game has ended (win or loss)
	Won       bool   // Whether the game ended in a win
	Paused    bool   // Whether the game is paused
	Message   string // Status line shown to the player
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the sounds raised during the tick.
type StepResult struct {
	State  GameState
	Sounds []Sound
}
