package config

// DifficultyManager ramps projectile speed and spawn limits with the
// seconds a game has been running.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled turns progression on or off.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled reports whether the level moves at all.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type == "time"
}

// Level is the difficulty after elapsed seconds, from InitialLevel up to
// 1 once Progression.MaxAt is reached.
func (d *DifficultyManager) Level(elapsed int) float64 {
	start := clampF(d.cfg.InitialLevel, 0, 1)
	if !d.IsEnabled() {
		return start
	}
	span := float64(max(d.cfg.Progression.MaxAt, 1))
	progress := clampF(float64(elapsed)/span, 0, 1)
	return start + progress*(1-start)
}

// Speed scales a projectile speed or gradient; at level 1 it is
// base*(1+SpeedMultiplier).
func (d *DifficultyManager) Speed(base float64, elapsed int) float64 {
	return base * (1 + d.Level(elapsed)*d.cfg.Scaling.SpeedMultiplier)
}

// Quantity is how many projectiles of one kind may be alive at once.
func (d *DifficultyManager) Quantity(base int, elapsed int) int {
	if !d.IsEnabled() {
		return base
	}
	return base + int(d.Level(elapsed)*float64(d.cfg.Scaling.SpawnBonus))
}

func clampF(v, lo, hi float64) float64 {
	return min(hi, max(lo, v))
}
