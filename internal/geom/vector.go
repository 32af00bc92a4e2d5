package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Vector is a displacement between two cells.
type Vector struct {
	DY, DX int
}

// Unit vectors.
var (
	Zero  = Vector{}
	Up    = Vector{DY: -1}
	Down  = Vector{DY: 1}
	Left  = Vector{DX: -1}
	Right = Vector{DX: 1}
)

// V is shorthand for Vector{DY: dy, DX: dx}.
func V(dy, dx int) Vector {
	return Vector{DY: dy, DX: dx}
}

// UnitVector resolves "up", "down", "left" or "right".
func UnitVector(name string) (Vector, error) {
	switch strings.ToLower(name) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Zero, fmt.Errorf("geom: unknown unit vector %q", name)
}

// IsZero reports whether v is the null displacement.
func (v Vector) IsZero() bool {
	return v == Zero
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector{v.DY + w.DY, v.DX + w.DX}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{-v.DY, -v.DX}
}

// Scale multiplies both components by k.
func (v Vector) Scale(k int) Vector {
	return Vector{v.DY * k, v.DX * k}
}

// Magnitude is the Euclidean length rounded to the nearest integer.
func (v Vector) Magnitude() int {
	return int(math.Round(math.Hypot(float64(v.DY), float64(v.DX))))
}

// String renders the vector in i/j notation, columns first: "3i - 2j".
func (v Vector) String() string {
	var sb strings.Builder
	if v.DX != 0 {
		sb.WriteString(unitCoefficient(v.DX))
		sb.WriteByte('i')
	}
	if v.DY != 0 {
		dy := v.DY
		if sb.Len() > 0 {
			if dy < 0 {
				sb.WriteString(" - ")
				dy = -dy
			} else {
				sb.WriteString(" + ")
			}
		}
		sb.WriteString(unitCoefficient(dy))
		sb.WriteByte('j')
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

func unitCoefficient(n int) string {
	switch n {
	case 1:
		return ""
	case -1:
		return "-"
	}
	return strconv.Itoa(n)
}
