package sprite

// Jumping reports whether a jump is in progress.
func (s *Sprite) Jumping() bool { return s.jumping }

// Jumpable reports whether the sprite is grounded and may jump.
func (s *Sprite) Jumpable() bool { return s.jumpable }

// SetJumpable records the grounded flag computed by the terrain.
func (s *Sprite) SetJumpable(v bool) { s.jumpable = v }

// StartJump begins a jump at now if the sprite is grounded.
func (s *Sprite) StartJump(now float64) bool {
	if !s.Has(Jumpable) || s.jump == nil || s.jumping || !s.jumpable {
		return false
	}
	s.jumping = true
	s.jumpable = false
	s.takeoff = s.pos.Row
	s.jumpStart = now
	return true
}

// JumpRow returns the row the sprite should occupy at now and whether the
// jump has landed.
func (s *Sprite) JumpRow(now float64) (row int, landed bool, err error) {
	if !s.jumping {
		return s.pos.Row, true, nil
	}
	elapsed := now - s.jumpStart
	offset, err := s.jump.OffsetAt(elapsed)
	if err != nil {
		return s.pos.Row, false, err
	}
	return s.takeoff + offset.DY, s.jump.Done(elapsed), nil
}

// EndJump stops the jump.
func (s *Sprite) EndJump() {
	s.jumping = false
}
