package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW   int    // Screen width in characters
	ScreenH   int    // Screen height in characters
	TickRate  int    // Simulation ticks per second (default 10)
	Seed      int64  // RNG seed for deterministic gameplay
	AssetsDir string // Optional directory overriding the embedded bitmaps

	// Effects receives sound effects; nil means silent.
	Effects EffectPlayer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Play forwards an effect to the configured player, if any.
func (c RuntimeConfig) Play(e Effect) {
	if c.Effects != nil {
		c.Effects.Play(e)
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the scene has ended
	Won      bool // Whether it ended in the player's favour
	Paused   bool // Whether the simulation clock is stopped
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
	// Freeze skips sprite motion and player movement for this tick while
	// still compositing and rendering.
	Freeze bool
}

// Tick is the per-frame input handed to a game.
type Tick struct {
	Now    float64 // Seconds on the session clock, excluding paused time
	Frame  int     // Tick counter, starting at zero
	Action Action  // Control action consumed this tick
	Moved  bool    // Whether a movement vector was consumed this tick
}

// Effect names a sound cue.
type Effect int

const (
	EffectNone Effect = iota
	EffectHit
	EffectScore
	EffectThrow
	EffectWin
	EffectGameOver
)

// EffectPlayer plays sound cues without blocking the caller.
type EffectPlayer interface {
	Play(e Effect)
}
