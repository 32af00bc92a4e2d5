// Package config provides YAML game configuration with embedded defaults
// and time-based difficulty progression.
package config

// Cell is a row/column pair in configuration files.
type Cell struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Range is an inclusive numeric interval that random values are drawn from.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// DodgerConfig contains all configuration for the dodging game.
type DodgerConfig struct {
	Duration    float64          `yaml:"duration"` // seconds to survive
	Player      DodgerPlayer     `yaml:"player"`
	Spawn       DodgerSpawn      `yaml:"spawn"`
	Projectiles DodgerMissiles   `yaml:"projectiles"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// DodgerPlayer defines the player sprite.
type DodgerPlayer struct {
	Health int  `yaml:"health"`
	Start  Cell `yaml:"start"`
}

// DodgerSpawn defines when and how many projectiles and shields appear.
type DodgerSpawn struct {
	Interval        float64 `yaml:"interval"`          // seconds per wave
	MinDistance     int     `yaml:"min_distance"`      // from the player
	StartingShields int     `yaml:"starting_shields"`  // one fewer every wave
	Diagonals       int     `yaml:"diagonals"`         // from wave 2
	Arrows          int     `yaml:"arrows"`            // from wave 4
	Balls           int     `yaml:"balls"`             // from wave 6
	FinalStretch    float64 `yaml:"final_stretch"`     // seconds left when colours flash
	FinalBonus      int     `yaml:"final_bonus"`       // extra of each type in the final stretch
	FastArrowsAfter int     `yaml:"fast_arrows_after"` // wave
}

// DodgerMissiles defines projectile motion ranges.
type DodgerMissiles struct {
	DiagonalGradient     Range `yaml:"diagonal_gradient"`
	FastDiagonalGradient Range `yaml:"fast_diagonal_gradient"`
	ArrowSpeed           Range `yaml:"arrow_speed"`
	FastArrowSpeed       Range `yaml:"fast_arrow_speed"`
	BallVelocity         Range `yaml:"ball_velocity"`
	BallAngle            Range `yaml:"ball_angle"`
	BallGravity          Range `yaml:"ball_gravity"`
}

// BasketballConfig contains all configuration for the shooting game.
type BasketballConfig struct {
	Shooter    Cell        `yaml:"shooter"`
	Hoop       Cell        `yaml:"hoop"`
	BallOffset Cell        `yaml:"ball_offset"` // ball cell inside the shooter
	Throw      ThrowConfig `yaml:"throw"`
	Baskets    int         `yaml:"baskets"`   // baskets needed to win
	EndDelay   float64     `yaml:"end_delay"` // seconds shown after the final basket
}

// ThrowConfig defines how a charged throw becomes a projectile.
type ThrowConfig struct {
	AngleLimit      float64 `yaml:"angle_limit"`      // degrees approached while charging
	VelocityDivisor float64 `yaml:"velocity_divisor"` // velocity = angle div this
	Gravity         float64 `yaml:"gravity"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "time" or "none"
	MaxAt int    `yaml:"max_at"` // Seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to projectile speed at max difficulty
	SpawnBonus      int     `yaml:"spawn_bonus"`      // Extra projectiles per type at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
