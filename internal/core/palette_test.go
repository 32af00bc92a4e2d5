package core

import "testing"

func TestPaletteApply(t *testing.T) {
	p := Palette{
		Fore:    map[rune]Color{'(': ColorCyan},
		Back:    map[rune]Color{' ': ColorBrightGreen},
		ForeAll: ColorRed,
	}
	tests := []struct {
		in       Glyph
		expected Glyph
	}{
		{G('('), Glyph{Rune: '(', Fore: ColorCyan}},
		{G('x'), Glyph{Rune: 'x', Fore: ColorRed}},
		{G(' '), Glyph{Rune: ' ', Fore: ColorRed, Back: ColorBrightGreen}},
		{Blank(), Blank()},
	}
	for _, tc := range tests {
		if got := p.Apply(tc.in); got != tc.expected {
			t.Errorf("Apply(%q) = %+v, expected %+v", tc.in.Rune, got, tc.expected)
		}
	}
}

func TestPaintSpec(t *testing.T) {
	spec := PaintSpec{
		Fore:    map[string]string{"magenta": "∆•", "lightblack": "│—"},
		BackAll: "blue",
	}
	p, err := spec.Palette()
	if err != nil {
		t.Fatalf("Palette: %v", err)
	}
	if p.Fore['∆'] != ColorMagenta || p.Fore['—'] != ColorGray || p.BackAll != ColorBlue {
		t.Errorf("unexpected palette %+v", p)
	}

	if _, err := (PaintSpec{Fore: map[string]string{"nope": "x"}}).Palette(); err == nil {
		t.Error("expected an error for an unknown colour")
	}
}

func TestForeOnly(t *testing.T) {
	g := GridFromStrings("ab")
	ForeOnly(ColorRed, 'a').ApplyGrid(g)
	if g[0][0].Fore != ColorRed || g[0][1].Fore != ColorDefault {
		t.Errorf("ApplyGrid = %+v", g)
	}
}
