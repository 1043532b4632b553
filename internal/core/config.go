package core

// RuntimeConfig is what the platform hands a game when it (re)starts it.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means the platform picks one from the clock
}

// GameState is the externally visible status of a running game.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState

	// Ended is true only on the tick that moved the game into game over.
	Ended bool

	// NewBest is true when the ending score replaced the stored best.
	NewBest bool
}
