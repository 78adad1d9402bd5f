package core

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the platform hands a game on Reset: the screen it
// draws into, how often Step is called and the seed for piece generation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Step calls per second
	Seed     int64 // 0 asks the platform for a time-based seed
}

// DefaultConfig returns the runtime used when the terminal cannot be queried.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// WithDefaults returns c with a non-positive TickRate replaced by
// DefaultTickRate.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}

// GameState is the summary a game reports to the platform after each Step.
type GameState struct {
	Score    int
	Lines    int  // Rows cleared so far
	Level    int  // Speed level, 1-based
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState

	// Cleared is the number of rows removed by a lock during this tick.
	Cleared int
	// Locked reports whether the active piece came to rest this tick.
	Locked bool
}
