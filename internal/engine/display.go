package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/vovakirdan/ascii-trials/internal/core"
)

var (
	// ErrNoTerminal is returned before any loop starts when input is not
	// an interactive terminal.
	ErrNoTerminal = errors.New("engine: not running in an interactive terminal")
	// ErrStopped is returned when the player quits a session early.
	ErrStopped = errors.New("engine: session stopped")
)

// Display shows one composed frame. Each call replaces the whole picture.
type Display interface {
	Show(frame core.Grid) error
}

// KeySource blocks until the next keypress or until ctx is done.
type KeySource interface {
	ReadKey(ctx context.Context) (core.Key, error)
}

// RequireTerminal fails with ErrNoTerminal unless f is a terminal.
func RequireTerminal(f *os.File) error {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return ErrNoTerminal
	}
	return nil
}

// TerminalSize returns the size of the terminal behind f, or the fallback
// size when it cannot be queried.
func TerminalSize(f *os.File, fallbackW, fallbackH int) (w, h int) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return fallbackW, fallbackH
	}
	return w, h
}

const (
	clearScreen = "\x1b[H\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// WriterDisplay prints uncoloured frames to a writer, clearing the screen
// before each one. It backs the plain frontend.
type WriterDisplay struct {
	mu     sync.Mutex
	w      io.Writer
	ansi   bool
	hidden bool
}

// NewWriterDisplay writes frames to w. With ansi unset, frames are
// separated by a blank line instead of a screen clear.
func NewWriterDisplay(w io.Writer, ansi bool) *WriterDisplay {
	return &WriterDisplay{w: w, ansi: ansi}
}

func (d *WriterDisplay) Show(frame core.Grid) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var sb strings.Builder
	if d.ansi {
		if !d.hidden {
			sb.WriteString(hideCursor)
			d.hidden = true
		}
		sb.WriteString(clearScreen)
	} else {
		sb.WriteByte('\n')
	}
	sb.WriteString(frame.String())
	sb.WriteByte('\n')
	out := sb.String()
	if d.ansi {
		// Raw terminals do not translate newlines.
		out = strings.ReplaceAll(out, "\n", "\r\n")
	}
	if _, err := io.WriteString(d.w, out); err != nil {
		return fmt.Errorf("engine: write frame: %w", err)
	}
	return nil
}

// Close shows the cursor again.
func (d *WriterDisplay) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.hidden {
		return nil
	}
	d.hidden = false
	_, err := io.WriteString(d.w, showCursor)
	return err
}

// ChanKeys is a KeySource fed from a channel, used by frontends that
// receive keys as events.
type ChanKeys struct {
	C chan core.Key
}

// NewChanKeys creates a buffered key channel.
func NewChanKeys(buffer int) *ChanKeys {
	return &ChanKeys{C: make(chan core.Key, buffer)}
}

// Push queues k, dropping it if the buffer is full.
func (k *ChanKeys) Push(key core.Key) {
	select {
	case k.C <- key:
	default:
	}
}

func (k *ChanKeys) ReadKey(ctx context.Context) (core.Key, error) {
	select {
	case <-ctx.Done():
		return core.Key{}, ctx.Err()
	case key, ok := <-k.C:
		if !ok {
			return core.Key{}, io.EOF
		}
		return key, nil
	}
}
