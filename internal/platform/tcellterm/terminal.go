// Package tcellterm is the tcell frontend: it shows frames on a tcell
// screen and reads keys from its event queue.
package tcellterm

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/ascii-trials/internal/core"
)

// palette maps core colours to the 256-colour palette. ColorDefault is
// absent so the terminal's own colour is kept.
var palette = map[core.Color]tcell.Color{
	core.ColorBlack:         tcell.PaletteColor(0),
	core.ColorRed:           tcell.PaletteColor(1),
	core.ColorGreen:         tcell.PaletteColor(2),
	core.ColorYellow:        tcell.PaletteColor(3),
	core.ColorBlue:          tcell.PaletteColor(4),
	core.ColorMagenta:       tcell.PaletteColor(5),
	core.ColorCyan:          tcell.PaletteColor(6),
	core.ColorWhite:         tcell.PaletteColor(7),
	core.ColorBrightRed:     tcell.PaletteColor(9),
	core.ColorBrightGreen:   tcell.PaletteColor(10),
	core.ColorBrightYellow:  tcell.PaletteColor(11),
	core.ColorBrightBlue:    tcell.PaletteColor(12),
	core.ColorBrightMagenta: tcell.PaletteColor(13),
	core.ColorBrightCyan:    tcell.PaletteColor(14),
	core.ColorBrightWhite:   tcell.PaletteColor(15),
	core.ColorOrange:        tcell.PaletteColor(208),
	core.ColorGray:          tcell.PaletteColor(245),
}

func styleOf(g core.Glyph) tcell.Style {
	st := tcell.StyleDefault
	if c, ok := palette[g.Fore]; ok {
		st = st.Foreground(c)
	}
	if c, ok := palette[g.Back]; ok {
		st = st.Background(c)
	}
	return st
}

// Terminal is both the display and the key source of a session.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event

	mu     sync.Mutex
	closed bool

	// sized is set once the start-up resize event has been consumed.
	sized bool
}

// Open initialises the controlling terminal.
func Open() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcellterm: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tcellterm: %w", err)
	}
	return New(screen), nil
}

// New wraps an initialised screen and starts polling it for events.
func New(screen tcell.Screen) *Terminal {
	screen.HideCursor()
	t := &Terminal{screen: screen, events: make(chan tcell.Event, 100)}
	go t.poll()
	return t
}

// poll feeds the event channel until the screen is finalised.
func (t *Terminal) poll() {
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		t.events <- ev
	}
}

// Show draws frame at the top-left corner and flushes it.
func (t *Terminal) Show(frame core.Grid) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return io.ErrClosedPipe
	}
	t.screen.Clear()
	for y, row := range frame {
		for x, g := range row {
			t.screen.SetContent(x, y, g.Display(), nil, styleOf(g))
		}
	}
	t.screen.Show()
	return nil
}

// ReadKey blocks until a key is pressed or ctx is done. Resizes are
// reported as core.KeyResize after the screen has been redrawn, except the
// one tcell posts when the screen starts.
func (t *Terminal) ReadKey(ctx context.Context) (core.Key, error) {
	for {
		select {
		case <-ctx.Done():
			return core.Key{}, ctx.Err()
		case ev, ok := <-t.events:
			if !ok {
				return core.Key{}, io.EOF
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				t.mu.Lock()
				t.screen.Sync()
				t.mu.Unlock()
				if !t.sized {
					t.sized = true
					continue
				}
				return core.Key{Code: core.KeyResize}, nil
			case *tcell.EventKey:
				if k, ok := KeyFromEvent(ev); ok {
					return k, nil
				}
			}
		}
	}
}

// Size returns the screen size in cells.
func (t *Terminal) Size() (w, h int) {
	return t.screen.Size()
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.closed {
		t.closed = true
		t.screen.Fini()
	}
	return nil
}

var specialKeys = map[tcell.Key]core.KeyCode{
	tcell.KeyUp:         core.KeyUp,
	tcell.KeyDown:       core.KeyDown,
	tcell.KeyLeft:       core.KeyLeft,
	tcell.KeyRight:      core.KeyRight,
	tcell.KeyEnter:      core.KeyEnter,
	tcell.KeyEscape:     core.KeyEscape,
	tcell.KeyBackspace:  core.KeyBackspace,
	tcell.KeyBackspace2: core.KeyBackspace,
	tcell.KeyCtrlC:      core.KeyCtrlC,
}

// KeyFromEvent translates a tcell key event.
func KeyFromEvent(ev *tcell.EventKey) (core.Key, bool) {
	var k core.Key
	if ev.Key() == tcell.KeyRune {
		if ev.Rune() == ' ' {
			k = core.Key{Code: core.KeySpace}
		} else {
			k = core.RuneKey(ev.Rune())
		}
	} else {
		code, ok := specialKeys[ev.Key()]
		if !ok {
			return core.Key{}, false
		}
		k = core.Key{Code: code}
	}

	mods := ev.Modifiers()
	if mods&tcell.ModAlt != 0 {
		k.Mods |= core.ModAlt
	}
	if mods&tcell.ModShift != 0 && k.Code != core.KeyRune {
		k.Mods |= core.ModShift
	}
	return k, true
}
