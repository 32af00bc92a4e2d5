package anim

import (
	"strings"

	"github.com/vovakirdan/ascii-trials/internal/core"
)

// Layout splits text into rows padded with blanks into a rectangle.
//
// With sentinel set, every row gets at least one trailing blank, so each
// newline occupies one cell, and the cell after the last character holds
// the stream-end sentinel.
func Layout(text string, sentinel bool) core.Grid {
	lines := strings.Split(text, "\n")
	rows := make([][]rune, len(lines))
	width := 0
	for i, line := range lines {
		rows[i] = []rune(line)
		width = max(width, len(rows[i]))
	}
	if sentinel {
		width++
	}

	g := core.NewGrid(len(rows), width, core.Blank())
	for y, row := range rows {
		for x, r := range row {
			g[y][x] = core.G(r)
		}
	}
	if sentinel {
		last := len(rows) - 1
		g[last][len(rows[last])] = core.G(core.SentinelRune)
	}
	return g
}

// BlankGrid returns a fully transparent grid of the same size as g.
func BlankGrid(g core.Grid) core.Grid {
	return core.NewGrid(g.Height(), g.Width(), core.Blank())
}
