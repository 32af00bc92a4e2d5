package core

import "fmt"

// Palette recolours glyphs by rune. The *All colours apply to every
// glyph without a specific entry.
type Palette struct {
	Fore    map[rune]Color
	Back    map[rune]Color
	ForeAll Color
	BackAll Color
}

// Apply returns g with the palette's colours. Placeholders are untouched.
func (p Palette) Apply(g Glyph) Glyph {
	if g.IsBlank() {
		return g
	}
	if c, ok := p.Fore[g.Rune]; ok {
		g.Fore = c
	} else if p.ForeAll != ColorDefault {
		g.Fore = p.ForeAll
	}
	if c, ok := p.Back[g.Rune]; ok {
		g.Back = c
	} else if p.BackAll != ColorDefault {
		g.Back = p.BackAll
	}
	return g
}

// ApplyGrid recolours every cell of g in place.
func (p Palette) ApplyGrid(g Grid) {
	for y := range g {
		for x := range g[y] {
			g[y][x] = p.Apply(g[y][x])
		}
	}
}

// ForeOnly builds a palette giving each listed rune a foreground colour.
func ForeOnly(c Color, runes ...rune) Palette {
	p := Palette{Fore: make(map[rune]Color, len(runes))}
	for _, r := range runes {
		p.Fore[r] = c
	}
	return p
}

// PaintSpec is the configuration form of a palette: colour names mapped to
// the glyphs they apply to.
type PaintSpec struct {
	Fore    map[string]string `yaml:"fore"`
	Back    map[string]string `yaml:"back"`
	ForeAll string            `yaml:"fore_all"`
	BackAll string            `yaml:"back_all"`
}

// Palette resolves colour names.
func (s PaintSpec) Palette() (Palette, error) {
	p := Palette{Fore: map[rune]Color{}, Back: map[rune]Color{}}
	for _, layer := range []struct {
		spec map[string]string
		dst  map[rune]Color
	}{{s.Fore, p.Fore}, {s.Back, p.Back}} {
		for name, glyphs := range layer.spec {
			c, err := ParseColor(name)
			if err != nil {
				return Palette{}, fmt.Errorf("core: paint: %w", err)
			}
			for _, r := range glyphs {
				layer.dst[r] = c
			}
		}
	}
	var err error
	if p.ForeAll, err = ParseColor(s.ForeAll); err != nil {
		return Palette{}, fmt.Errorf("core: paint: %w", err)
	}
	if p.BackAll, err = ParseColor(s.BackAll); err != nil {
		return Palette{}, fmt.Errorf("core: paint: %w", err)
	}
	return p, nil
}
