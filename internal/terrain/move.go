package terrain

import (
	"fmt"

	"github.com/vovakirdan/ascii-trials/internal/geom"
	"github.com/vovakirdan/ascii-trials/internal/sprite"
)

// Verdict is the outcome of a move check.
type Verdict int

const (
	// Permitted moves may be committed.
	Permitted Verdict = iota
	// Collision means a target cell is blocked.
	Collision
	// Exit means the sprite would leave a non-wrapping grid.
	Exit
)

func (v Verdict) String() string {
	switch v {
	case Permitted:
		return "permitted"
	case Collision:
		return "collision"
	case Exit:
		return "exit"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// SpriteCoverage returns every cell covered by a live sprite or the player,
// except those of exclude.
func (t *Terrain) SpriteCoverage(exclude *sprite.Sprite) map[geom.Position]struct{} {
	cover := make(map[geom.Position]struct{})
	add := func(s *sprite.Sprite) {
		if s == nil || s == exclude || !s.Alive() {
			return
		}
		for _, c := range s.CoveredCells() {
			if t.wrap {
				c = c.Wrap(t.height, t.width)
			}
			cover[c] = struct{}{}
		}
	}
	for _, s := range t.sprites {
		add(s)
	}
	add(t.player)
	return cover
}

// Movable checks a move of s to target. On a permitted move it returns the
// position to commit, which differs from target only after a wrap. Blocked
// and exiting moves run the sprite's collision or exit handling.
func (t *Terrain) Movable(s *sprite.Sprite, target geom.Position) (Verdict, geom.Position) {
	cover := t.SpriteCoverage(s)
	var hitbox map[geom.Position]struct{}
	if s != t.player && t.player != nil && t.player.Alive() {
		hitbox = make(map[geom.Position]struct{})
		for _, c := range t.player.CoveredCells() {
			hitbox[c] = struct{}{}
		}
	}

	for _, c := range s.CoveredCellsAt(target) {
		if !c.In(t.height, t.width) {
			if !t.wrap {
				t.onExit(s)
				return Exit, s.Position()
			}
			c = c.Wrap(t.height, t.width)
		}
		_, covered := cover[c]
		if !covered && !t.blocked(c) {
			continue
		}
		if _, hit := hitbox[c]; hit && s.Has(sprite.DamagesPlayer) && t.player.Has(sprite.HasHealth) {
			t.player.Damage(1)
		}
		t.onCollision(s)
		return Collision, s.Position()
	}
	if t.wrap {
		target = target.Wrap(t.height, t.width)
	}
	return Permitted, target
}

// blocked reports whether the background cell at c is impassable.
func (t *Terrain) blocked(c geom.Position) bool {
	_, ok := t.uncollidable[t.background[c.Row][c.Col].Rune]
	return ok
}

// MoveSpriteTo moves a position-addressable or time-parameterized sprite.
func (t *Terrain) MoveSpriteTo(s *sprite.Sprite, target geom.Position) Verdict {
	if !s.Has(sprite.Movable) || !s.Alive() {
		return Collision
	}
	verdict, at := t.Movable(s, target)
	if verdict == Permitted && (s.Has(sprite.PositionAddressable) || s.Has(sprite.TimeParameterized)) {
		s.SetPosition(at)
	}
	return verdict
}

// MoveSpriteBy displaces a vector-addressable sprite.
func (t *Terrain) MoveSpriteBy(s *sprite.Sprite, v geom.Vector) Verdict {
	if !s.Has(sprite.Movable) || !s.Alive() {
		return Collision
	}
	if v.IsZero() {
		return Permitted
	}
	verdict, at := t.Movable(s, s.Position().Move(v))
	if verdict == Permitted && s.Has(sprite.VectorAddressable) {
		s.SetPosition(at)
	}
	return verdict
}

// MovePlayerBy displaces the player.
func (t *Terrain) MovePlayerBy(v geom.Vector) Verdict {
	if t.player == nil {
		return Collision
	}
	return t.MoveSpriteBy(t.player, v)
}

// MoveTimedSprites moves every time-parameterized sprite to where its
// motion puts it at now.
func (t *Terrain) MoveTimedSprites(now float64) error {
	for _, s := range t.Sprites() {
		if !s.Alive() || !s.Has(sprite.TimeParameterized) || s.Motion() == nil {
			continue
		}
		at, err := s.Motion().PositionAt(now, t.height, t.width)
		if err != nil {
			return fmt.Errorf("terrain: move %s: %w", s, err)
		}
		if at == s.Position() {
			continue
		}
		t.MoveSpriteTo(s, at)
	}
	return nil
}

func (t *Terrain) onCollision(s *sprite.Sprite) {
	if s.Has(sprite.DestroyOnCollision) {
		t.RemoveSprite(s)
	}
}

func (t *Terrain) onExit(s *sprite.Sprite) {
	if s.Has(sprite.DestroyOnTerrainExit) {
		t.RemoveSprite(s)
	}
}
