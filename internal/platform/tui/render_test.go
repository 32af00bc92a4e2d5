package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/ascii-trials/internal/core"
)

func TestRenderGridPlain(t *testing.T) {
	g := core.GridFromStrings("ab", "cd")
	g[0][1] = core.Blank()
	if got := RenderGrid(g); got != "a \ncd" {
		t.Errorf("RenderGrid() = %q, want %q", got, "a \ncd")
	}
}

func TestRenderScreenKeepsColouredText(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawGrid(0, 0, core.Grid{{
		{Rune: '(', Fore: core.ColorCyan},
		{Rune: 'O', Fore: core.ColorRed},
		{Rune: ')', Fore: core.ColorCyan},
		{Rune: ' ', Back: core.ColorMagenta},
	}})
	out := RenderScreen(s)
	for _, r := range "(O)" {
		if !strings.ContainsRune(out, r) {
			t.Errorf("rendered output %q lost %q", out, r)
		}
	}
	if strings.Count(out, "\n") != 0 {
		t.Errorf("single-row screen rendered %d line breaks", strings.Count(out, "\n"))
	}
}

func TestStyleForDefaultIsUnstyled(t *testing.T) {
	st := styleFor(colorPair{})
	if got := st.Render("x"); got != "x" {
		t.Errorf("default style rendered %q", got)
	}
}
