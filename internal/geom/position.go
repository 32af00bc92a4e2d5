// Package geom holds the integer and float coordinate value types used by
// sprites and the terrain. Rows grow downwards and columns grow rightwards.
package geom

import (
	"fmt"
	"math"
)

// Position is an absolute (row, col) cell coordinate.
type Position struct {
	Row, Col int
}

// Origin is the top-left cell.
var Origin = Position{}

// P is shorthand for Position{Row: row, Col: col}.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns p + q.
func (p Position) Add(q Position) Position {
	return Position{p.Row + q.Row, p.Col + q.Col}
}

// Sub returns p - q.
func (p Position) Sub(q Position) Position {
	return Position{p.Row - q.Row, p.Col - q.Col}
}

// Mul scales both components by k.
func (p Position) Mul(k int) Position {
	return Position{p.Row * k, p.Col * k}
}

// FloorDiv divides component-wise, rounding towards negative infinity.
func (p Position) FloorDiv(q Position) Position {
	return Position{floorDiv(p.Row, q.Row), floorDiv(p.Col, q.Col)}
}

// Div divides component-wise without truncation.
func (p Position) Div(q Position) Pointf {
	return Pointf{float64(p.Row) / float64(q.Row), float64(p.Col) / float64(q.Col)}
}

// Move returns p displaced by v.
func (p Position) Move(v Vector) Position {
	return Position{p.Row + v.DY, p.Col + v.DX}
}

// VectorTo returns the displacement from p to q.
func (p Position) VectorTo(q Position) Vector {
	return Vector{DY: q.Row - p.Row, DX: q.Col - p.Col}
}

// Wrap folds p into a height x width grid.
func (p Position) Wrap(height, width int) Position {
	return Position{mod(p.Row, height), mod(p.Col, width)}
}

// In reports whether p lies within a height x width grid.
func (p Position) In(height, width int) bool {
	return p.Row >= 0 && p.Row < height && p.Col >= 0 && p.Col < width
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Pointf is a (row, col) pair with float components, as produced by
// evaluating equations of motion.
type Pointf struct {
	Row, Col float64
}

// Trunc converts to a cell position, truncating towards zero.
func (p Pointf) Trunc() Position {
	return Position{int(p.Row), int(p.Col)}
}

// Round converts to the nearest cell position.
func (p Pointf) Round() Position {
	return Position{int(math.Round(p.Row)), int(math.Round(p.Col))}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}
