package terrain

import (
	"fmt"

	"github.com/vovakirdan/ascii-trials/internal/geom"
	"github.com/vovakirdan/ascii-trials/internal/sprite"
)

// jumpers returns the player and every sprite that can jump.
func (t *Terrain) jumpers() []*sprite.Sprite {
	var out []*sprite.Sprite
	for _, s := range append(t.Sprites(), t.player) {
		if s != nil && s.Alive() && s.Has(sprite.Jumpable) {
			out = append(out, s)
		}
	}
	return out
}

// CheckJumpable recomputes the grounded flag of every jumpable sprite. A
// sprite is grounded when its bottom row is the terrain's last row, or when
// every non-blank cell of its bottom row sits above a ground cell.
func (t *Terrain) CheckJumpable() {
	for _, s := range t.jumpers() {
		s.SetJumpable(!s.Jumping() && t.grounded(s))
	}
}

func (t *Terrain) grounded(s *sprite.Sprite) bool {
	pos := s.Position()
	bottom := pos.Row + s.Height() - 1
	if bottom == t.height-1 {
		return true
	}
	below := bottom + 1
	if below < 0 || below >= t.height {
		return false
	}
	found := false
	for x, g := range s.Grid()[s.Height()-1] {
		if g.IsBlank() {
			continue
		}
		col := pos.Col + x
		if col < 0 || col >= t.width {
			return false
		}
		if _, ok := t.ground[t.background[below][col].Rune]; !ok {
			return false
		}
		found = true
	}
	return found
}

// Jump starts a jump for s if it is grounded.
func (t *Terrain) Jump(s *sprite.Sprite, now float64) bool {
	return s.StartJump(now)
}

// AdvanceJumps moves jumping sprites along their jump arc. A blocked jump
// ends where it was stopped.
func (t *Terrain) AdvanceJumps(now float64) error {
	for _, s := range t.jumpers() {
		if !s.Jumping() {
			continue
		}
		row, landed, err := s.JumpRow(now)
		if err != nil {
			return fmt.Errorf("terrain: jump %s: %w", s, err)
		}
		target := geom.P(row, s.Position().Col)
		if target != s.Position() {
			verdict, at := t.Movable(s, target)
			if verdict != Permitted {
				s.EndJump()
				continue
			}
			s.SetPosition(at)
		}
		if landed {
			s.EndJump()
		}
	}
	return nil
}
