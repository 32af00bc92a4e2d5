package core

import "testing"

func TestGridFromStringsPadsRows(t *testing.T) {
	g := GridFromStrings("abc", "d")
	if g.Height() != 2 || g.Width() != 3 {
		t.Fatalf("grid size = %dx%d, expected 2x3", g.Height(), g.Width())
	}
	if !g[1][1].IsBlank() || !g[1][2].IsBlank() {
		t.Error("short row should be padded with blanks")
	}
	if got := g.String(); got != "abc\nd  " {
		t.Errorf("String() = %q", got)
	}
}

func TestGridClone(t *testing.T) {
	g := GridFromStrings("ab")
	c := g.Clone()
	c[0][0] = G('z')
	if g[0][0].Rune != 'a' {
		t.Error("Clone should not share rows")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
		wantErr  bool
	}{
		{"red", ColorRed, false},
		{"LightGreen", ColorBrightGreen, false},
		{"lightblack", ColorGray, false},
		{"", ColorDefault, false},
		{"mauve", ColorDefault, true},
	}
	for _, tc := range tests {
		got, err := ParseColor(tc.name)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseColor(%q) error = %v", tc.name, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseColor(%q) = %v, expected %v", tc.name, got, tc.expected)
		}
	}
	for _, name := range PaletteNames() {
		if _, err := ParseColor(name); err != nil {
			t.Errorf("palette name %q does not parse", name)
		}
	}
}
