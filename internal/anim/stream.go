package anim

import (
	"strings"

	"github.com/vovakirdan/ascii-trials/internal/core"
)

// StreamOptions configures a Stream. Zero durations disable a pause.
type StreamOptions struct {
	NewlinePause     float64 // after revealing a line break
	PunctuationPause float64 // after ":", ".", "?" or "!" followed by a space
	DisappearAfter   float64 // blank the whole text this long after exhaustion
}

// DefaultStreamOptions are the pauses used for narrative text.
var DefaultStreamOptions = StreamOptions{
	NewlinePause:     2,
	PunctuationPause: 0.75,
	DisappearAfter:   1.5,
}

// Cursor walks a laid-out text in reading order.
type Cursor struct {
	grid      core.Grid
	started   bool
	row, col  int
	exhausted bool
}

// NewCursor walks g, which must come from Layout with a sentinel.
func NewCursor(g core.Grid) *Cursor {
	return &Cursor{grid: g}
}

// Exhausted reports whether the sentinel has been reached.
func (c *Cursor) Exhausted() bool {
	return c.exhausted
}

// Reset rewinds to before the first character.
func (c *Cursor) Reset() {
	c.started, c.exhausted = false, false
	c.row, c.col = 0, 0
}

// Next moves one cell: along the row after a character, to the start of
// the next row after a line break. Landing on the sentinel exhausts it.
func (c *Cursor) Next() (row, col int, exhausted bool) {
	switch {
	case c.exhausted:
	case !c.started:
		c.started = true
	case c.grid[c.row][c.col].Rune == core.BlankRune:
		c.row++
		c.col = 0
	default:
		c.col++
	}
	if c.grid[c.row][c.col].Rune == core.SentinelRune {
		c.exhausted = true
	}
	return c.row, c.col, c.exhausted
}

// Stream reveals text one character per update, pausing at line breaks
// and sentence punctuation.
type Stream struct {
	full       core.Grid
	shown      core.Grid
	cursor     *Cursor
	opts       StreamOptions
	pauseUntil float64
	blankAt    float64
	blanked    bool
}

// NewStream lays out text and starts fully blank.
func NewStream(text string, opts StreamOptions) *Stream {
	full := Layout(text, true)
	return &Stream{
		full:    full,
		shown:   BlankGrid(full),
		cursor:  NewCursor(full),
		opts:    opts,
		blankAt: -1,
	}
}

// Exhausted reports whether every character has been revealed.
func (s *Stream) Exhausted() bool {
	return s.cursor.Exhausted()
}

// Paused reports whether a pause is holding the reveal at now.
func (s *Stream) Paused(now float64) bool {
	return now < s.pauseUntil
}

// Current returns the revealed text without advancing.
func (s *Stream) Current() core.Grid {
	return s.shown
}

// Next reveals one more character unless paused.
func (s *Stream) Next(now float64) core.Grid {
	if s.cursor.Exhausted() {
		if s.blankAt >= 0 && now >= s.blankAt && !s.blanked {
			s.shown = BlankGrid(s.full)
			s.blanked = true
		}
		return s.shown
	}
	if s.Paused(now) {
		return s.shown
	}

	row, col, exhausted := s.cursor.Next()
	if exhausted {
		if s.opts.DisappearAfter > 0 {
			s.blankAt = now + s.opts.DisappearAfter
		}
		return s.shown
	}
	s.reveal(row, col)

	switch {
	case s.full[row][col].Rune == core.BlankRune && s.opts.NewlinePause > 0:
		s.pauseUntil = now + s.opts.NewlinePause
	case s.opts.PunctuationPause > 0 && endsSentence(s.shown[row][:col+1]):
		s.pauseUntil = now + s.opts.PunctuationPause
	}
	return s.shown
}

// reveal shows every cell up to (row, col) in reading order.
func (s *Stream) reveal(row, col int) {
	shown := BlankGrid(s.full)
	for y := 0; y <= row; y++ {
		end := s.full.Width()
		if y == row {
			end = col + 1
		}
		copy(shown[y][:end], s.full[y][:end])
	}
	s.shown = shown
}

// endsSentence reports whether the revealed cells end in punctuation
// followed by a space.
func endsSentence(cells []core.Glyph) bool {
	var sb strings.Builder
	for _, c := range cells {
		if !c.IsBlank() {
			sb.WriteRune(c.Rune)
		}
	}
	text := []rune(sb.String())
	n := len(text)
	return n >= 2 && text[n-1] == ' ' && strings.ContainsRune(":.?!", text[n-2])
}
