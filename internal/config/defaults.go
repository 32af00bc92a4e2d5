package config

import (
	_ "embed"
)

//go:embed defaults/dodger.yaml
var defaultDodgerYAML []byte

//go:embed defaults/basketball.yaml
var defaultBasketballYAML []byte

// DefaultDodgerConfig returns the built-in dodger configuration.
func DefaultDodgerConfig() DodgerConfig {
	return DodgerConfig{
		Duration: 45,
		Player: DodgerPlayer{
			Health: 6,
			Start:  Cell{Row: 11, Col: 20},
		},
		Spawn: DodgerSpawn{
			Interval:        5,
			MinDistance:     7,
			StartingShields: 6,
			Diagonals:       3,
			Arrows:          4,
			Balls:           5,
			FinalStretch:    10,
			FinalBonus:      2,
			FastArrowsAfter: 7,
		},
		Projectiles: DodgerMissiles{
			DiagonalGradient:     Range{Min: 1, Max: 3},
			FastDiagonalGradient: Range{Min: 3, Max: 5},
			ArrowSpeed:           Range{Min: 50, Max: 54},
			FastArrowSpeed:       Range{Min: 60, Max: 75},
			BallVelocity:         Range{Min: 3, Max: 10},
			BallAngle:            Range{Min: 1, Max: 45},
			BallGravity:          Range{Min: 1, Max: 3},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 45,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				SpawnBonus:      2,
			},
		},
	}
}

// DefaultBasketballConfig returns the built-in basketball configuration.
func DefaultBasketballConfig() BasketballConfig {
	return BasketballConfig{
		Shooter:    Cell{Row: 14, Col: 0},
		Hoop:       Cell{Row: 11, Col: 47},
		BallOffset: Cell{Row: 1, Col: 3},
		Throw: ThrowConfig{
			AngleLimit:      45,
			VelocityDivisor: 6,
			Gravity:         1,
		},
		Baskets:  1,
		EndDelay: 2,
	}
}
