package terrain

import (
	"fmt"

	"github.com/vovakirdan/ascii-trials/internal/geom"
	"github.com/vovakirdan/ascii-trials/internal/sprite"
)

// AddSprite appends s to the drawing order. Time-parameterized sprites are
// placed at their launch position.
func (t *Terrain) AddSprite(s *sprite.Sprite) {
	if s.Has(sprite.TimeParameterized) && s.Motion() != nil {
		s.SetPosition(s.Motion().Origin(t.height, t.width))
	}
	t.sprites = append(t.sprites, s)
}

// Offsets places a sprite next to another. Each non-zero field is the gap
// in cells on that side.
type Offsets struct {
	Above, Below, Left, Right int
}

// AddSpriteRelative places s next to the most recently added sprite and
// appends it.
func (t *Terrain) AddSpriteRelative(s *sprite.Sprite, off Offsets) error {
	if len(t.sprites) == 0 {
		return fmt.Errorf("terrain: no sprite to place %s against", s)
	}
	if off.Above < 0 || off.Below < 0 || off.Left < 0 || off.Right < 0 {
		return fmt.Errorf("terrain: negative offset %+v", off)
	}
	prev := t.sprites[len(t.sprites)-1]
	p := prev.Position()
	top, left := p.Row, p.Col
	bottom, right := top+prev.Height(), left+prev.Width()

	at := geom.Origin
	sides := []struct {
		gap    int
		anchor geom.Position
		dir    geom.Vector
	}{
		{off.Above, geom.P(top-1, left), geom.Up},
		{off.Below, geom.P(bottom, left), geom.Down},
		{off.Left, geom.P(top, left-1), geom.Left},
		{off.Right, geom.P(top, right), geom.Right},
	}
	for _, side := range sides {
		if side.gap != 0 {
			at = at.Add(side.anchor).Move(side.dir.Scale(side.gap))
		}
	}
	s.SetPosition(at)
	t.sprites = append(t.sprites, s)
	return nil
}

// RemoveSprite kills s and unlinks it.
func (t *Terrain) RemoveSprite(s *sprite.Sprite) {
	s.Kill()
	for i, o := range t.sprites {
		if o == s {
			t.sprites = append(t.sprites[:i], t.sprites[i+1:]...)
			return
		}
	}
}

// RemoveKind removes every sprite of the given kind.
func (t *Terrain) RemoveKind(kind sprite.Kind) {
	for _, s := range t.Sprites() {
		if s.Kind() == kind {
			t.RemoveSprite(s)
		}
	}
}

// UpdateSprites advances every animated sprite whose interval elapsed.
func (t *Terrain) UpdateSprites(now float64) {
	for _, s := range t.sprites {
		s.Update(now)
	}
	if t.player != nil {
		t.player.Update(now)
	}
}

// ExpireSprites removes sprites whose lifetime ran out.
func (t *Terrain) ExpireSprites(now float64) {
	for _, s := range t.Sprites() {
		if s.Expired(now) {
			t.RemoveSprite(s)
		}
	}
}

// DrawSprite stamps the sprite's non-blank glyphs onto the working grid.
func (t *Terrain) DrawSprite(s *sprite.Sprite) {
	pos := s.Position()
	blocks := s.Has(sprite.Uncollidable)
	solid := s.Has(sprite.SolidBounds)
	for y, row := range s.Grid() {
		for x, g := range row {
			c := geom.P(pos.Row+y, pos.Col+x)
			if !c.In(t.height, t.width) {
				if !t.wrap {
					continue
				}
				c = c.Wrap(t.height, t.width)
			}
			cell := &t.work[c.Row][c.Col]
			switch {
			case !g.IsBlank():
				cell.Glyph = g
				cell.Uncollidable = blocks
			case solid:
				cell.Uncollidable = true
			}
		}
	}
}

// DrawSprites stamps every live sprite in order.
func (t *Terrain) DrawSprites() {
	for _, s := range t.sprites {
		t.DrawSprite(s)
	}
}

// DrawPlayer stamps the player on top of everything else.
func (t *Terrain) DrawPlayer() {
	if t.player != nil && t.player.Alive() {
		t.DrawSprite(t.player)
	}
}
