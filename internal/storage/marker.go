package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMarkerPath is where the intro-seen flag lives.
const DefaultMarkerPath = "~/.trials/intro_seen"

// Marker is a one-flag file recording whether the intro has been seen.
type Marker struct {
	path string
}

// NewMarker uses the file at path, which may start with ~.
func NewMarker(path string) (*Marker, error) {
	p, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &Marker{path: p}, nil
}

// Path returns the file location.
func (m *Marker) Path() string { return m.path }

// Seen reports the stored flag. A missing or empty file means false.
func (m *Marker) Seen() (bool, error) {
	data, err := os.ReadFile(m.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("storage: read marker: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(string(data))) {
	case "true", "1", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Set stores the flag.
func (m *Marker) Set(seen bool) error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("storage: create marker directory: %w", err)
	}
	value := "False"
	if seen {
		value = "True"
	}
	if err := os.WriteFile(m.path, []byte(value), 0o644); err != nil {
		return fmt.Errorf("storage: write marker: %w", err)
	}
	return nil
}
