package core

// RuntimeConfig contains host settings passed to the game.
// The game uses this to size its render output and seed obstacle placement.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the host (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// GameState is the coarse status the host needs after each frame.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score across runs
	Started  bool // Whether the first flap has happened
	Paused   bool // Whether the run is paused
	GameOver bool // Whether the run has ended
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	// NewBest is set on the frame where the run ended with a new best score.
	NewBest bool
}
