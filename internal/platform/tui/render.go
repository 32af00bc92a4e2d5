package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ascii-trials/internal/core"
)

// colorCodes maps core.Color to terminal colours. ColorDefault is absent
// so the terminal's own colour shows through.
var colorCodes = map[core.Color]lipgloss.Color{
	core.ColorBlack:         lipgloss.Color("0"),
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
}

type colorPair struct {
	fore, back core.Color
}

// styleFor builds the style for a fore/back pair.
func styleFor(p colorPair) lipgloss.Style {
	s := lipgloss.NewStyle()
	if c, ok := colorCodes[p.fore]; ok {
		s = s.Foreground(c)
	}
	if c, ok := colorCodes[p.back]; ok {
		s = s.Background(c)
	}
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing both colours are rendered as one run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())
	styles := make(map[colorPair]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			pair := colorPair{start.Fore, start.Back}

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fore != pair.fore || cell.Back != pair.back {
					break
				}
				run.WriteRune(cell.Display())
				x++
			}

			style, ok := styles[pair]
			if !ok {
				style = styleFor(pair)
				styles[pair] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// RenderGrid renders a composed frame.
func RenderGrid(g core.Grid) string {
	s := core.NewScreen(g.Width(), g.Height())
	s.DrawGrid(0, 0, g)
	return RenderScreen(s)
}
