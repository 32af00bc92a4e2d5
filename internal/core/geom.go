// Package core provides the cell, input and session vocabulary shared by the
// engine, the games and the terminal frontends. It has no third-party
// dependencies so that game logic stays pure and testable.
package core

// Rect is an axis-aligned block of cells addressed by row and column.
type Rect struct {
	Row, Col      int // Top-left corner
	Height, Width int
}

// NewRect creates a rectangle anchored at (row, col).
func NewRect(row, col, height, width int) Rect {
	return Rect{Row: row, Col: col, Height: height, Width: width}
}

// Bottom returns the row just below the rectangle.
func (r Rect) Bottom() int {
	return r.Row + r.Height
}

// Right returns the column just right of the rectangle.
func (r Rect) Right() int {
	return r.Col + r.Width
}

// Intersects reports whether two rectangles share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	if r.Col >= other.Right() || other.Col >= r.Right() {
		return false
	}
	if r.Row >= other.Bottom() || other.Row >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the cell (row, col) lies inside the rectangle.
func (r Rect) Contains(row, col int) bool {
	return row >= r.Row && row < r.Bottom() && col >= r.Col && col < r.Right()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
