package core

// RuntimeConfig is passed to games on Reset.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // ticks per second
	Seed     int64 // 0 means the platform picks one from the clock
}

// DefaultConfig returns an 80x24 screen at 30 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is what a game reports to the platform.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
	// Message is a short status line for the platform, such as a rejected move.
	Message string
}

// RunSummary describes a finished game for score storage.
type RunSummary struct {
	RunID         string
	Score         int
	Placements    int
	LinesCleared  int
	BombsDefused  int
	BombsExploded int
}
