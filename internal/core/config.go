package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60, the display refresh)
	Seed     int64 // RNG seed for the starfield layout
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// FlightStats summarizes the current flight for the platform's flight log.
type FlightStats struct {
	Ticks        int    // Simulated ticks, pauses excluded
	ShotsFired   int    // Accepted fire requests
	ShotsDropped int    // Fire requests lost to an occupied slot
	Distance     int    // Logical pixels flown, scrolled distance included
	Boundary     string // "scroll" or "wrap"
}
