// Package assets loads terrain and sprite bitmaps stored as JSON arrays of
// rows, each row an array of single-character strings.
package assets

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vovakirdan/ascii-trials/internal/core"
)

//go:embed data/*.json
var embedded embed.FS

// Bitmap load errors.
var (
	ErrEmptyGrid   = errors.New("assets: empty grid")
	ErrRaggedRows  = errors.New("assets: rows differ in length")
	ErrNotGlyph    = errors.New("assets: cell is not a single character")
	ErrUnknownName = errors.New("assets: unknown bitmap")
)

// Stock bitmap names.
const (
	Court       = "court.json"
	Arena       = "arena.json"
	LineTerrain = "line_terrain.json"
	Shooter     = "shooter.json"
	Hoop        = "hoop.json"
)

// Decode parses a bitmap. Every row must have the same number of cells and
// every cell must hold exactly one character.
func Decode(r io.Reader) (core.Grid, error) {
	var rows [][]string
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("assets: decode: %w", err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(rows[0])
	g := make(core.Grid, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, y, len(row), width)
		}
		g[y] = make([]core.Glyph, width)
		for x, cell := range row {
			runes := []rune(cell)
			if len(runes) != 1 {
				return nil, fmt.Errorf("%w: %q at (%d, %d)", ErrNotGlyph, cell, y, x)
			}
			g[y][x] = core.G(runes[0])
		}
	}
	return g, nil
}

// Loader resolves bitmaps from an optional directory before falling back
// to the embedded defaults.
type Loader struct {
	Dir string
}

// NewLoader creates a loader. An empty dir uses only embedded bitmaps.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// Load reads the named bitmap.
func (l *Loader) Load(name string) (core.Grid, error) {
	if l != nil && l.Dir != "" {
		f, err := os.Open(filepath.Join(l.Dir, name))
		switch {
		case err == nil:
			defer f.Close()
			g, err := Decode(f)
			if err != nil {
				return nil, fmt.Errorf("assets: %s: %w", name, err)
			}
			return g, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("assets: open %s: %w", name, err)
		}
	}

	f, err := embedded.Open("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownName, name)
	}
	defer f.Close()
	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", name, err)
	}
	return g, nil
}

// Names lists the embedded bitmaps.
func Names() []string {
	entries, err := embedded.ReadDir("data")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
