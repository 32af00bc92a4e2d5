package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/vovakirdan/ascii-trials/internal/core"
)

// RawMode puts the terminal behind f into raw mode. The returned function
// restores the previous state.
func RawMode(f *os.File) (restore func() error, err error) {
	fd := int(f.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("engine: raw mode: %w", err)
	}
	return func() error { return term.Restore(fd, old) }, nil
}

// ReaderKeys decodes keypresses from a raw terminal byte stream.
type ReaderKeys struct {
	keys *ChanKeys
}

// NewReaderKeys starts decoding r in the background. The reader goroutine
// ends when r returns an error.
func NewReaderKeys(r io.Reader) *ReaderKeys {
	k := &ReaderKeys{keys: NewChanKeys(16)}
	go k.pump(r)
	return k
}

func (k *ReaderKeys) pump(r io.Reader) {
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for _, key := range DecodeKeys(buf[:n]) {
			k.keys.Push(key)
		}
		if err != nil {
			close(k.keys.C)
			return
		}
	}
}

func (k *ReaderKeys) ReadKey(ctx context.Context) (core.Key, error) {
	return k.keys.ReadKey(ctx)
}

var csiArrows = map[byte]core.KeyCode{
	'A': core.KeyUp,
	'B': core.KeyDown,
	'C': core.KeyRight,
	'D': core.KeyLeft,
}

// DecodeKeys splits one read from a raw terminal into keys. Unknown
// escape sequences are dropped.
func DecodeKeys(b []byte) []core.Key {
	var keys []core.Key
	for len(b) > 0 {
		switch c := b[0]; {
		case c == 0x1b:
			key, n := decodeEscape(b)
			if key.Code != core.KeyRune || key.Rune != 0 {
				keys = append(keys, key)
			}
			b = b[n:]
		case c == 0x03:
			keys = append(keys, core.Key{Code: core.KeyCtrlC})
			b = b[1:]
		case c == '\r' || c == '\n':
			keys = append(keys, core.Key{Code: core.KeyEnter})
			b = b[1:]
		case c == 0x7f || c == 0x08:
			keys = append(keys, core.Key{Code: core.KeyBackspace})
			b = b[1:]
		case c == ' ':
			keys = append(keys, core.Key{Code: core.KeySpace})
			b = b[1:]
		case c < 0x20:
			b = b[1:]
		default:
			r, n := utf8.DecodeRune(b)
			keys = append(keys, core.RuneKey(r))
			b = b[n:]
		}
	}
	return keys
}

// decodeEscape reads a sequence starting with ESC and returns the key and
// the bytes consumed. A zero Key with n > 0 means the sequence is skipped.
func decodeEscape(b []byte) (core.Key, int) {
	if len(b) == 1 {
		return core.Key{Code: core.KeyEscape}, 1
	}
	if b[1] != '[' && b[1] != 'O' {
		key := decodeRune(b[1:])
		if key.Rune == 0 {
			return core.Key{Code: core.KeyEscape}, 1
		}
		key.Mods |= core.ModAlt
		return key, 1 + utf8.RuneLen(key.Rune)
	}
	// CSI: parameters end at the first byte in 0x40..0x7e.
	end := 2
	for end < len(b) && (b[end] < 0x40 || b[end] > 0x7e) {
		end++
	}
	if end == len(b) {
		return core.Key{}, len(b)
	}
	code, ok := csiArrows[b[end]]
	if !ok {
		return core.Key{}, end + 1
	}
	key := core.Key{Code: code}
	if string(b[2:end]) == "1;2" {
		key.Mods |= core.ModShift
	}
	return key, end + 1
}

// decodeRune decodes the printable rune at the start of b, or returns a
// zero Key.
func decodeRune(b []byte) core.Key {
	r, _ := utf8.DecodeRune(b)
	if r < 0x20 || r == utf8.RuneError {
		return core.Key{}
	}
	return core.RuneKey(r)
}
