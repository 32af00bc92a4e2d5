// Package terrain owns the playfield grid. It composites sprites onto a
// working copy of the static background every frame and decides whether
// moves are permitted, blocked or leave the grid.
package terrain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/ascii-trials/internal/core"
	"github.com/vovakirdan/ascii-trials/internal/geom"
	"github.com/vovakirdan/ascii-trials/internal/sprite"
)

// ErrEmptyBackground is returned for a background without cells.
var ErrEmptyBackground = errors.New("terrain: empty background")

// Fragment is one working-grid cell: its glyph and whether it blocks
// movement.
type Fragment struct {
	Glyph        core.Glyph
	Uncollidable bool
}

// Option configures a terrain.
type Option func(*Terrain)

// WithGround tags the runes in chars as ground for jump detection.
func WithGround(chars string) Option {
	return func(t *Terrain) {
		for _, r := range chars {
			t.ground[r] = struct{}{}
		}
	}
}

// WithUncollidable makes background cells holding any rune in chars block
// movement.
func WithUncollidable(chars string) Option {
	return func(t *Terrain) {
		for _, r := range chars {
			t.uncollidable[r] = struct{}{}
		}
	}
}

// WithWrapAround lets every sprite pass through the edges and reappear on
// the opposite side.
func WithWrapAround() Option {
	return func(t *Terrain) {
		t.wrap = true
	}
}

// Terrain is the authoritative collision and compositing engine. It is
// owned by a single simulation goroutine.
type Terrain struct {
	background core.Grid
	work       [][]Fragment
	height     int
	width      int

	player  *sprite.Sprite
	sprites []*sprite.Sprite

	ground       map[rune]struct{}
	uncollidable map[rune]struct{}
	wrap         bool
}

// New builds a terrain over a copy of bg. The background must be a
// non-empty rectangle.
func New(bg core.Grid, player *sprite.Sprite, opts ...Option) (*Terrain, error) {
	if bg.Height() == 0 || bg.Width() == 0 {
		return nil, ErrEmptyBackground
	}
	for y, row := range bg {
		if len(row) != bg.Width() {
			return nil, fmt.Errorf("terrain: row %d has %d cells, want %d", y, len(row), bg.Width())
		}
	}
	t := &Terrain{
		background:   bg.Clone(),
		height:       bg.Height(),
		width:        bg.Width(),
		player:       player,
		ground:       make(map[rune]struct{}),
		uncollidable: make(map[rune]struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.Reset()
	return t, nil
}

// Height returns the number of rows.
func (t *Terrain) Height() int { return t.height }

// Width returns the number of columns.
func (t *Terrain) Width() int { return t.width }

// Player returns the player sprite.
func (t *Terrain) Player() *sprite.Sprite { return t.player }

// Sprites returns the live non-player sprites in drawing order.
func (t *Terrain) Sprites() []*sprite.Sprite {
	return append([]*sprite.Sprite(nil), t.sprites...)
}

// Count returns how many live sprites have the given kind.
func (t *Terrain) Count(kind sprite.Kind) int {
	n := 0
	for _, s := range t.sprites {
		if s.Kind() == kind {
			n++
		}
	}
	return n
}

// WrapAround reports whether edges wrap.
func (t *Terrain) WrapAround() bool { return t.wrap }

// Reset rebuilds the working grid from the background.
func (t *Terrain) Reset() {
	if len(t.work) != t.height {
		t.work = make([][]Fragment, t.height)
		for y := range t.work {
			t.work[y] = make([]Fragment, t.width)
		}
	}
	for y, row := range t.background {
		for x, g := range row {
			_, blocks := t.uncollidable[g.Rune]
			t.work[y][x] = Fragment{Glyph: g, Uncollidable: blocks}
		}
	}
}

// Paint recolours the background and resets the working grid.
func (t *Terrain) Paint(p core.Palette) {
	p.ApplyGrid(t.background)
	t.Reset()
}

// SetCell replaces one background glyph and resets the working grid.
func (t *Terrain) SetCell(p geom.Position, r rune) {
	if !p.In(t.height, t.width) {
		return
	}
	t.background[p.Row][p.Col] = core.G(r)
	t.Reset()
}

// Fragment returns the working-grid cell at p.
func (t *Terrain) Fragment(p geom.Position) (Fragment, bool) {
	if !p.In(t.height, t.width) {
		return Fragment{}, false
	}
	return t.work[p.Row][p.Col], true
}

// Background returns the background glyph at p.
func (t *Terrain) Background(p geom.Position) core.Glyph {
	return t.background[p.Row][p.Col]
}

// Rows returns the working grid as glyphs.
func (t *Terrain) Rows() core.Grid {
	g := make(core.Grid, t.height)
	for y, row := range t.work {
		g[y] = make([]core.Glyph, t.width)
		for x, f := range row {
			g[y][x] = f.Glyph
		}
	}
	return g
}

// Render copies the working grid onto a screen, clearing it first.
func (t *Terrain) Render(s *core.Screen) {
	s.Clear()
	s.DrawGrid(0, 0, t.Rows())
}

func (t *Terrain) String() string {
	var sb strings.Builder
	for y, row := range t.work {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, f := range row {
			sb.WriteRune(f.Glyph.Display())
		}
	}
	return sb.String()
}
