package sprite

import (
	"strings"

	"github.com/vovakirdan/ascii-trials/internal/anim"
	"github.com/vovakirdan/ascii-trials/internal/core"
	"github.com/vovakirdan/ascii-trials/internal/geom"
)

// Sprite kinds used by the stock prefabs.
const (
	KindPlayer     Kind = "player"
	KindStatic     Kind = "static"
	KindShield     Kind = "shield"
	KindSpinner    Kind = "spinner"
	KindEllipsis   Kind = "ellipsis"
	KindText       Kind = "text"
	KindTimer      Kind = "timer"
	KindHealthBar  Kind = "healthbar"
	KindBasketball Kind = "basketball"
	KindDiagonal   Kind = "diagonal"
	KindArrow      Kind = "arrow"
	KindBall       Kind = "ball"
)

const playerCaps = PositionAddressable | VectorAddressable

// NewPlayer creates a movable player sprite.
func NewPlayer(g core.Grid, pos geom.Position) *Sprite {
	return New(KindPlayer, g, pos, playerCaps)
}

// NewHealthPlayer creates a player that projectiles can hurt.
func NewHealthPlayer(g core.Grid, pos geom.Position, health int) *Sprite {
	return New(KindPlayer, g, pos, playerCaps, WithHealth(health))
}

// NewJumpablePlayer creates a player that can jump while grounded.
func NewJumpablePlayer(g core.Grid, pos geom.Position, maxHeight, timeOfFlight float64) *Sprite {
	return New(KindPlayer, g, pos, playerCaps, WithJump(maxHeight, timeOfFlight))
}

// NewStatic creates an immovable sprite whose cells block movement.
func NewStatic(g core.Grid, pos geom.Position, opts ...Option) *Sprite {
	return New(KindStatic, g, pos, Uncollidable, opts...)
}

// NewShield creates a one-cell blocking sprite.
func NewShield(r rune, pos geom.Position) *Sprite {
	return New(KindShield, core.Grid{{core.G(r)}}, pos, Uncollidable)
}

var spinnerFrames = []rune{'|', '/', '—', '\\'}

// NewLoadingSpinner cycles through spinnerFrames every interval seconds.
func NewLoadingSpinner(pos geom.Position, interval float64) *Sprite {
	frames := make([]core.Grid, len(spinnerFrames))
	for i, r := range spinnerFrames {
		frames[i] = core.Grid{{core.G(r)}}
	}
	cycle := anim.NewCycle(frames...)
	return New(KindSpinner, cycle.Current(), pos, Uncollidable, WithAnimation(cycle, interval))
}

// NewEllipsis grows a row of dots up to length, then starts over.
func NewEllipsis(pos geom.Position, length int, interval float64, reverse bool) *Sprite {
	length = max(length, 1)
	frames := make([]core.Grid, 0, length)
	for n := 1; n <= length; n++ {
		row := make([]core.Glyph, length)
		for i := range row {
			if i < n {
				row[i] = core.G('.')
			} else {
				row[i] = core.Blank()
			}
		}
		frames = append(frames, core.Grid{row})
	}
	if reverse {
		for i, j := 0, len(frames)-1; i < j; i, j = i+1, j-1 {
			frames[i], frames[j] = frames[j], frames[i]
		}
	}
	cycle := anim.NewCycle(frames...)
	return New(KindEllipsis, cycle.Current(), pos, Uncollidable, WithAnimation(cycle, interval))
}

// CharacterInterval is the default delay between revealed characters.
const CharacterInterval = 0.05

// NewCharacterStream reveals text one character at a time. The returned
// stream reports when the text is exhausted.
func NewCharacterStream(text string, pos geom.Position, opts anim.StreamOptions) (*Sprite, *anim.Stream) {
	stream := anim.NewStream(text, opts)
	s := New(KindText, stream.Current(), pos, 0, WithAnimation(stream, CharacterInterval))
	return s, stream
}

const timerTemplate = "———————\n│{}:{}│\n———————"

// NewTimerSprite shows an MM:SS countdown of seconds starting at now.
func NewTimerSprite(pos geom.Position, now, seconds float64) (*Sprite, *anim.Timer) {
	timer := anim.NewTimer(now, seconds)
	tpl := anim.NewTemplate(timerTemplate, timer.Source())
	return New(KindTimer, tpl.Current(), pos, Uncollidable, WithAnimation(tpl, 0)), timer
}

// healthBar redraws a frame with one filled cell per point of the
// player's health.
type healthBar struct {
	player *Sprite
	max    int
	shown  int
	grid   core.Grid
}

func (b *healthBar) Next(float64) core.Grid {
	health := core.Clamp(b.player.Health(), 0, b.max)
	if health == b.shown {
		return nil
	}
	b.shown = health
	for i := 1; i <= b.max; i++ {
		if i > health {
			b.grid[1][i] = core.Blank()
		} else {
			b.grid[1][i] = core.Glyph{Rune: ' ', Back: core.ColorBrightGreen}
		}
	}
	return b.grid
}

// NewHealthBar tracks player's health. The starting health sets the bar's
// length; filled cells get a light green background.
func NewHealthBar(pos geom.Position, player *Sprite) *Sprite {
	n := max(player.Health(), 0)
	edge := strings.Repeat("—", n+2)
	g := core.GridFromStrings(edge, "│"+strings.Repeat(" ", n)+"│", edge)
	core.Palette{Back: map[rune]core.Color{' ': core.ColorBrightGreen}}.ApplyGrid(g)
	bar := &healthBar{player: player, max: n, shown: n, grid: g.Clone()}
	return New(KindHealthBar, g, pos, Uncollidable, WithAnimation(bar, 0))
}

// NewBasketball is a gravity projectile that is removed when blocked or
// off the terrain.
func NewBasketball(r rune, m *Projectile) *Sprite {
	return New(KindBasketball, core.Grid{{core.G(r)}}, m.Origin(0, 0),
		DestroyOnCollision|DestroyOnTerrainExit, WithMotion(m))
}

// NewDiagonal is a harmful sprite moving along a straight diagonal.
func NewDiagonal(g core.Grid, m *Equation) *Sprite {
	return New(KindDiagonal, g, m.Start, DamagesPlayer, WithMotion(m))
}

// NewArrow is a harmful sprite moving horizontally.
func NewArrow(g core.Grid, m *Equation) *Sprite {
	return New(KindArrow, g, m.Start, DamagesPlayer, WithMotion(m))
}

// NewBall is a harmful gravity projectile.
func NewBall(r rune, m *Projectile) *Sprite {
	return New(KindBall, core.Grid{{core.G(r)}}, m.Origin(0, 0), DamagesPlayer, WithMotion(m))
}
