package core

import (
	"fmt"
	"strings"
)

// Color represents a foreground or background color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
)

// colorNames maps paint names to colors. The "light" names follow the
// usual terminal naming where light black is gray.
var colorNames = map[string]Color{
	"":             ColorDefault,
	"reset":        ColorDefault,
	"black":        ColorBlack,
	"red":          ColorRed,
	"green":        ColorGreen,
	"yellow":       ColorYellow,
	"blue":         ColorBlue,
	"magenta":      ColorMagenta,
	"cyan":         ColorCyan,
	"white":        ColorWhite,
	"orange":       ColorOrange,
	"gray":         ColorGray,
	"lightblack":   ColorGray,
	"lightred":     ColorBrightRed,
	"lightgreen":   ColorBrightGreen,
	"lightyellow":  ColorBrightYellow,
	"lightblue":    ColorBrightBlue,
	"lightmagenta": ColorBrightMagenta,
	"lightcyan":    ColorBrightCyan,
	"lightwhite":   ColorBrightWhite,
}

// ParseColor resolves a color name (case-insensitive).
func ParseColor(name string) (Color, error) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ColorDefault, fmt.Errorf("core: unknown color %q", name)
	}
	return c, nil
}

// PaletteNames returns every paintable color name except the reset alias
// and light black, sorted for deterministic random picks.
func PaletteNames() []string {
	return []string{
		"blue", "cyan", "green", "lightblue", "lightcyan", "lightgreen",
		"lightmagenta", "lightred", "lightwhite", "lightyellow", "magenta",
		"orange", "red", "white", "yellow",
	}
}
