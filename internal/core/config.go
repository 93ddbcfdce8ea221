package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
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

// GameState is the summary a game reports to the platform after each step.
type GameState struct {
	Score    int  // Current score
	Started  bool // Whether a session has been started (false on a title screen)
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// HighScoreStore persists a short ordered list of best scores under a key.
// Implementations may fail; callers treat failures as "no scores".
type HighScoreStore interface {
	LoadHighScores(key string) ([]int, error)
	SaveHighScores(key string, scores []int) error
}

// HighScoreMerger is implemented by stores that can insert one score into the
// stored list as a single read-merge-write, so concurrent sessions sharing
// the store do not overwrite each other.
type HighScoreMerger interface {
	MergeHighScore(key string, score, limit int) ([]int, error)
}
