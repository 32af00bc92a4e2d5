package sprite

import (
	"fmt"

	"github.com/vovakirdan/ascii-trials/internal/anim"
	"github.com/vovakirdan/ascii-trials/internal/core"
	"github.com/vovakirdan/ascii-trials/internal/geom"
	"github.com/vovakirdan/ascii-trials/internal/kinematics"
)

// Kind tags sprites so games can count and find them.
type Kind string

// Sprite is a bitmap at a position with a set of capabilities.
type Sprite struct {
	kind  Kind
	grid  core.Grid
	pos   geom.Position
	caps  Capability
	alive bool

	health int

	motion Motion

	animation anim.Animation
	gate      *anim.Gate
	palette   *core.Palette

	jump      *kinematics.JumpMovement
	jumping   bool
	jumpable  bool
	takeoff   int
	jumpStart float64

	expiresAt float64 // zero means never
}

// Option configures a sprite at construction.
type Option func(*Sprite)

// WithHealth sets the starting health and adds HasHealth.
func WithHealth(health int) Option {
	return func(s *Sprite) {
		s.health = health
		s.caps |= HasHealth
	}
}

// WithMotion makes the sprite follow m and adds TimeParameterized.
func WithMotion(m Motion) Option {
	return func(s *Sprite) {
		s.motion = m
		s.caps |= TimeParameterized
	}
}

// WithAnimation replaces the bitmap from a on every update. A positive
// interval limits updates to one per interval seconds.
func WithAnimation(a anim.Animation, interval float64) Option {
	return func(s *Sprite) {
		s.animation = a
		if interval > 0 {
			s.gate = anim.NewGate(interval)
		}
	}
}

// WithJump gives the sprite a jump peaking at maxHeight rows and lasting
// timeOfFlight seconds.
func WithJump(maxHeight, timeOfFlight float64) Option {
	return func(s *Sprite) {
		s.jump = kinematics.NewJumpMovement(maxHeight, timeOfFlight, geom.BottomLeft)
		s.caps |= Jumpable
	}
}

// WithLifetime removes the sprite once now reaches expiresAt.
func WithLifetime(expiresAt float64) Option {
	return func(s *Sprite) {
		s.expiresAt = expiresAt
	}
}

// New creates a live sprite. The grid is copied.
func New(kind Kind, g core.Grid, pos geom.Position, caps Capability, opts ...Option) *Sprite {
	s := &Sprite{
		kind:  kind,
		grid:  g.Clone(),
		pos:   pos,
		caps:  caps,
		alive: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.caps = s.caps.normalize()
	return s
}

func (s *Sprite) String() string {
	return fmt.Sprintf("%s@%v[%s]", s.kind, s.pos, s.caps)
}

// Kind returns the sprite's tag.
func (s *Sprite) Kind() Kind { return s.kind }

// Grid returns the current bitmap. Callers must not modify it.
func (s *Sprite) Grid() core.Grid { return s.grid }

// Position returns the top-left cell.
func (s *Sprite) Position() geom.Position { return s.pos }

// SetPosition moves the sprite unconditionally.
func (s *Sprite) SetPosition(p geom.Position) { s.pos = p }

// Height returns the number of bitmap rows.
func (s *Sprite) Height() int { return s.grid.Height() }

// Width returns the number of bitmap columns.
func (s *Sprite) Width() int { return s.grid.Width() }

// Bounds returns the bounding box on the terrain.
func (s *Sprite) Bounds() core.Rect {
	return core.NewRect(s.pos.Row, s.pos.Col, s.Height(), s.Width())
}

// Caps returns the capability set.
func (s *Sprite) Caps() Capability { return s.caps }

// Has reports whether the sprite has every flag in c.
func (s *Sprite) Has(c Capability) bool { return s.caps.Has(c) }

// Alive reports whether the sprite is still on a terrain.
func (s *Sprite) Alive() bool { return s.alive }

// Kill marks the sprite as removed.
func (s *Sprite) Kill() { s.alive = false }

// Motion returns the motion function, if any.
func (s *Sprite) Motion() Motion { return s.motion }

// Health returns the remaining health.
func (s *Sprite) Health() int { return s.health }

// Damage removes n health points.
func (s *Sprite) Damage(n int) { s.health -= n }

// Defeated reports whether a sprite with health has none left.
func (s *Sprite) Defeated() bool {
	return s.Has(HasHealth) && s.health <= 0
}

// Expired reports whether a lifetime has run out at now.
func (s *Sprite) Expired(now float64) bool {
	return s.expiresAt > 0 && now >= s.expiresAt
}

// Glyph returns the bitmap cell at (row, col) relative to the sprite.
func (s *Sprite) Glyph(row, col int) core.Glyph {
	return s.grid[row][col]
}

// SetGlyph replaces one bitmap cell.
func (s *Sprite) SetGlyph(row, col int, g core.Glyph) {
	if row < 0 || row >= s.Height() || col < 0 || col >= s.Width() {
		return
	}
	s.grid[row][col] = g
}

// CoveredCells returns the absolute cells the sprite occupies: every
// non-blank glyph, or the whole bounding box for SolidBounds sprites.
func (s *Sprite) CoveredCells() []geom.Position {
	return s.CoveredCellsAt(s.pos)
}

// CoveredCellsAt is CoveredCells as if the sprite were at p.
func (s *Sprite) CoveredCellsAt(p geom.Position) []geom.Position {
	solid := s.Has(SolidBounds)
	cells := make([]geom.Position, 0, s.Height()*s.Width())
	for y, row := range s.grid {
		for x, g := range row {
			if solid || !g.IsBlank() {
				cells = append(cells, geom.P(p.Row+y, p.Col+x))
			}
		}
	}
	return cells
}

// Collide returns the cells both sprites cover.
func (s *Sprite) Collide(o *Sprite) []geom.Position {
	if !s.Bounds().Intersects(o.Bounds()) {
		return nil
	}
	mine := make(map[geom.Position]struct{})
	for _, c := range s.CoveredCells() {
		mine[c] = struct{}{}
	}
	var shared []geom.Position
	for _, c := range o.CoveredCells() {
		if _, ok := mine[c]; ok {
			shared = append(shared, c)
		}
	}
	return shared
}

// Paint recolours the bitmap. The palette is kept and reapplied to every
// animation frame.
func (s *Sprite) Paint(p core.Palette) {
	s.palette = &p
	p.ApplyGrid(s.grid)
}

// Transpose swaps rows and columns.
func (s *Sprite) Transpose() {
	h, w := s.Height(), s.Width()
	t := make(core.Grid, w)
	for x := range w {
		t[x] = make([]core.Glyph, h)
		for y := range h {
			t[x][y] = s.grid[y][x]
		}
	}
	s.grid = t
}

// Animated reports whether the sprite has an animation.
func (s *Sprite) Animated() bool {
	return s.animation != nil
}

// Update pulls the next animation frame if the update interval allows.
// It reports whether the bitmap changed.
func (s *Sprite) Update(now float64) bool {
	if s.animation == nil {
		return false
	}
	if s.gate != nil && !s.gate.Pass(now) {
		return false
	}
	next := s.animation.Next(now)
	if next == nil {
		return false
	}
	s.grid = next.Clone()
	if s.palette != nil {
		s.palette.ApplyGrid(s.grid)
	}
	return true
}
