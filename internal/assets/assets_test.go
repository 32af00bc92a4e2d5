package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"ok", `[["a","b"],["c","\u001f"]]`, nil},
		{"ragged", `[["a","b"],["c"]]`, ErrRaggedRows},
		{"empty", `[]`, ErrEmptyGrid},
		{"empty row", `[[]]`, ErrEmptyGrid},
		{"multi char", `[["ab"]]`, ErrNotGlyph},
		{"no char", `[[""]]`, ErrNotGlyph},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Decode(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if g.Height() != 2 || g.Width() != 2 {
				t.Errorf("size = %dx%d", g.Height(), g.Width())
			}
			if !g[1][1].IsBlank() {
				t.Error("blank placeholder not decoded")
			}
		})
	}
}

func TestDecodeMalformedJSON(t *testing.T) {
	if _, err := Decode(strings.NewReader(`[["a"`)); err == nil {
		t.Error("malformed JSON accepted")
	}
}

func TestEmbeddedBitmaps(t *testing.T) {
	l := NewLoader("")
	tests := []struct {
		name          string
		height, width int
	}{
		{Court, 19, 60},
		{Arena, 24, 42},
		{LineTerrain, 25, 72},
		{Shooter, 4, 4},
		{Hoop, 7, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := l.Load(tt.name)
			if err != nil {
				t.Fatal(err)
			}
			if g.Height() != tt.height || g.Width() != tt.width {
				t.Errorf("size = %dx%d, want %dx%d", g.Height(), g.Width(), tt.height, tt.width)
			}
		})
	}
	if len(Names()) != len(tests) {
		t.Errorf("Names() = %v", Names())
	}
}

func TestLoaderPrefersDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, Hoop), []byte(`[["x"]]`), 0o644); err != nil {
		t.Fatal(err)
	}
	l := NewLoader(dir)

	g, err := l.Load(Hoop)
	if err != nil {
		t.Fatal(err)
	}
	if g.Height() != 1 || g[0][0].Rune != 'x' {
		t.Errorf("override not used: %v", g)
	}

	// falls through to embedded data
	if _, err := l.Load(Court); err != nil {
		t.Errorf("embedded fallback: %v", err)
	}
	if _, err := l.Load("missing.json"); !errors.Is(err, ErrUnknownName) {
		t.Errorf("err = %v, want ErrUnknownName", err)
	}
}

func TestLoaderRejectsBadOverride(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, Arena), []byte(`[["a","b"],["c"]]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewLoader(dir).Load(Arena); !errors.Is(err, ErrRaggedRows) {
		t.Errorf("err = %v, want ErrRaggedRows", err)
	}
}
