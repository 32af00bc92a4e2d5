package core

import "strings"

// Placeholder runes. Blank cells are transparent when a grid is stamped
// onto another; the stream-end sentinel marks the last cell of revealed text.
const (
	SentinelRune = '\x1e'
	BlankRune    = '\x1f'
	// NoDataRune is what a placeholder renders as.
	NoDataRune = ' '
)

// IsBlank reports whether r is one of the placeholder runes.
func IsBlank(r rune) bool {
	return r == BlankRune || r == SentinelRune
}

// Glyph is a single character with optional colors.
type Glyph struct {
	Rune rune
	Fore Color
	Back Color
}

// G builds an uncolored glyph.
func G(r rune) Glyph {
	return Glyph{Rune: r}
}

// Blank returns the transparent placeholder glyph.
func Blank() Glyph {
	return Glyph{Rune: BlankRune}
}

// IsBlank reports whether the glyph is a placeholder.
func (g Glyph) IsBlank() bool {
	return IsBlank(g.Rune)
}

// Display returns the rune to print for this glyph.
func (g Glyph) Display() rune {
	if g.IsBlank() {
		return NoDataRune
	}
	return g.Rune
}

// Grid is a rectangular, row-major block of glyphs.
type Grid [][]Glyph

// NewGrid allocates a grid filled with fill.
func NewGrid(height, width int, fill Glyph) Grid {
	g := make(Grid, height)
	for y := range g {
		g[y] = make([]Glyph, width)
		for x := range g[y] {
			g[y][x] = fill
		}
	}
	return g
}

// GridFromStrings builds a grid with one row per string.
// Short rows are padded with blanks so the result is rectangular.
func GridFromStrings(rows ...string) Grid {
	width := 0
	runes := make([][]rune, len(rows))
	for i, row := range rows {
		runes[i] = []rune(row)
		width = max(width, len(runes[i]))
	}
	g := NewGrid(len(rows), width, Blank())
	for y, row := range runes {
		for x, r := range row {
			g[y][x] = G(r)
		}
	}
	return g
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Width returns the number of columns (zero for an empty grid).
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for y := range g {
		c[y] = append([]Glyph(nil), g[y]...)
	}
	return c
}

// String renders the grid with placeholders shown as spaces.
func (g Grid) String() string {
	var sb strings.Builder
	for y, row := range g {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteRune(c.Display())
		}
	}
	return sb.String()
}
