package dodger

import (
	"github.com/vovakirdan/ascii-trials/internal/config"
	"github.com/vovakirdan/ascii-trials/internal/core"
	"github.com/vovakirdan/ascii-trials/internal/geom"
	"github.com/vovakirdan/ascii-trials/internal/sprite"
)

// wave is the schedule of one projectile kind: it joins at wave `from`
// and keeps `limit` alive at a time.
type wave struct {
	from  int
	limit int
}

// spawnOrder fixes the iteration order over projectile kinds.
var spawnOrder = []sprite.Kind{sprite.KindDiagonal, sprite.KindArrow, sprite.KindBall}

func newWaves(cfg config.DodgerSpawn) map[sprite.Kind]wave {
	return map[sprite.Kind]wave{
		sprite.KindDiagonal: {from: 2, limit: cfg.Diagonals},
		sprite.KindArrow:    {from: 4, limit: cfg.Arrows},
		sprite.KindBall:     {from: 6, limit: cfg.Balls},
	}
}

var shieldRunes = []rune("━║☲☷☵☰")

// flashColours are picked from during the final stretch.
var flashColours = []core.Color{
	core.ColorRed, core.ColorGreen, core.ColorYellow, core.ColorBlue,
	core.ColorMagenta, core.ColorCyan, core.ColorWhite, core.ColorBrightRed,
	core.ColorBrightGreen, core.ColorBrightYellow, core.ColorBrightBlue,
	core.ColorBrightMagenta, core.ColorBrightCyan, core.ColorBrightWhite,
	core.ColorBlack,
}

// advanceWaves starts the next wave once its interval has passed: the
// wave's own kind gets a full batch, shields are replaced and limits grow.
func (g *Game) advanceWaves(now float64, elapsed int) {
	interval := g.cfg.Spawn.Interval
	if interval <= 0 || float64(elapsed) < interval*float64(g.intervals) {
		return
	}
	for _, kind := range spawnOrder {
		if w := g.waves[kind]; w.from == g.intervals {
			g.spawn(now, elapsed, kind, g.limit(w, elapsed))
		}
	}
	g.spawnShields(g.cfg.Spawn.StartingShields - g.intervals + 1)
	g.grow(sprite.KindArrow, 4, 1)
	g.grow(sprite.KindDiagonal, 2, 1)
	if g.intervals > 6 {
		g.grow(sprite.KindBall, 0, 2)
	}
	g.intervals++
}

// grow raises a kind's limit by n from wave `after` onwards.
func (g *Game) grow(kind sprite.Kind, after, n int) {
	if g.intervals < after {
		return
	}
	w := g.waves[kind]
	w.limit += n
	g.waves[kind] = w
}

// topUp replaces destroyed projectiles of every kind already in play.
func (g *Game) topUp(now float64, elapsed int) {
	for _, kind := range spawnOrder {
		w := g.waves[kind]
		if g.intervals < w.from {
			continue
		}
		if missing := g.limit(w, elapsed) - g.terrain.Count(kind); missing > 0 {
			g.spawn(now, elapsed, kind, missing)
		}
	}
}

func (g *Game) limit(w wave, elapsed int) int {
	return g.difficulty.Quantity(w.limit, elapsed)
}

// spawn adds n projectiles of kind. In the final stretch it also flashes
// the arena corners and the health bar, and raises every limit once.
func (g *Game) spawn(now float64, elapsed int, kind sprite.Kind, n int) {
	for range n {
		var colour core.Color
		if g.cfg.Duration-float64(elapsed) <= g.cfg.Spawn.FinalStretch {
			g.terrain.Paint(core.ForeOnly(g.randomColour(), cornerRunes...))
			g.healthBar.Paint(core.Palette{Back: map[rune]core.Color{' ': g.randomColour()}})
			colour = g.randomColour()
			if !g.finalPhase {
				for _, k := range spawnOrder {
					g.grow(k, 0, g.cfg.Spawn.FinalBonus)
				}
				g.finalPhase = true
			}
		}
		if s := g.projectile(now, elapsed, kind, colour); s != nil {
			g.terrain.AddSprite(s)
		}
	}
}

// projectile builds one randomly aimed projectile of kind.
func (g *Game) projectile(now float64, elapsed int, kind sprite.Kind, colour core.Color) *sprite.Sprite {
	p := g.cfg.Projectiles
	var (
		s   *sprite.Sprite
		def core.Color
	)
	switch kind {
	case sprite.KindDiagonal:
		gradRange := p.DiagonalGradient
		if g.intervals >= 4 {
			gradRange = p.FastDiagonalGradient
		}
		gradient := g.difficulty.Speed(g.randTenths(gradRange), elapsed)
		if g.rng.Intn(2) == 0 {
			gradient = -gradient
		}
		q := geom.Quadrant(g.rng.Intn(4) + 1)
		s = sprite.NewDiagonal(core.GridFromStrings("✯"),
			sprite.Linear(q, gradient, g.randomPosition(), now))
		def = core.ColorBrightYellow
	case sprite.KindArrow:
		speedRange := p.ArrowSpeed
		if g.intervals >= g.cfg.Spawn.FastArrowsAfter {
			speedRange = p.FastArrowSpeed
		}
		speed := g.difficulty.Speed(g.randTenths(speedRange), elapsed)
		q := geom.Quadrant(g.rng.Intn(2) + 1)
		bitmap := "⇇⇇"
		if q == geom.TopLeft {
			bitmap = "⇉⇉"
		}
		s = sprite.NewArrow(core.GridFromStrings(bitmap),
			sprite.StraightLine(q, speed, g.edgePosition(), now))
		def = core.ColorGreen
	case sprite.KindBall:
		q := geom.Quadrant(g.rng.Intn(2) + 1)
		s = sprite.NewBall('●', sprite.NewProjectile(
			float64(g.randInt(p.BallVelocity)),
			float64(g.randInt(p.BallAngle)),
			float64(g.randInt(p.BallGravity)),
			q, g.edgePosition(), now))
		def = core.ColorRed
	default:
		return nil
	}
	if colour == core.ColorDefault {
		colour = def
	}
	s.Paint(core.Palette{ForeAll: colour})
	return s
}

// spawnShields replaces every shield with n new ones.
func (g *Game) spawnShields(n int) {
	g.terrain.RemoveKind(sprite.KindShield)
	for range max(n, 0) {
		r := shieldRunes[g.rng.Intn(len(shieldRunes))]
		g.terrain.AddSprite(sprite.NewShield(r, g.randomPosition()))
	}
}

// spawnBounds returns the inclusive rows and columns projectiles appear in.
func (g *Game) spawnBounds() (minRow, maxRow, minCol, maxCol int) {
	return minSpawnRow, g.terrain.Height() - 2, minSpawnCol, g.terrain.Width() - 2
}

// maxPlacementTries bounds the search for a free cell away from the player.
const maxPlacementTries = 100

// randomPosition picks a free cell at least the spawn distance from the
// player. After maxPlacementTries it settles for the last candidate.
func (g *Game) randomPosition() geom.Position {
	minRow, maxRow, minCol, maxCol := g.spawnBounds()
	taken := g.terrain.SpriteCoverage(nil)
	var p geom.Position
	for range maxPlacementTries {
		p = geom.P(minRow+g.rng.Intn(maxRow-minRow+1), minCol+g.rng.Intn(maxCol-minCol+1))
		_, occupied := taken[p]
		far := g.player.Position().VectorTo(p).Magnitude() > g.cfg.Spawn.MinDistance
		if !occupied && far {
			break
		}
	}
	return p
}

// edgePosition picks a random row on the left or right spawn column.
func (g *Game) edgePosition() geom.Position {
	minRow, maxRow, minCol, maxCol := g.spawnBounds()
	col := minCol
	if g.rng.Intn(2) == 1 {
		col = maxCol
	}
	return geom.P(minRow+g.rng.Intn(maxRow-minRow+1), col)
}

func (g *Game) randInt(r config.Range) int {
	lo, hi := int(r.Min), int(r.Max)
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// randTenths draws a value from r in steps of 0.1.
func (g *Game) randTenths(r config.Range) float64 {
	lo, hi := int(r.Min*10), int(r.Max*10)
	if hi <= lo {
		return float64(lo) / 10
	}
	return float64(lo+g.rng.Intn(hi-lo+1)) / 10
}

func (g *Game) randomColour() core.Color {
	return flashColours[g.rng.Intn(len(flashColours))]
}
