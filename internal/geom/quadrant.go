package geom

import "fmt"

// Quadrant selects which terrain corner a relative position is measured from.
// It lets one motion formula be reused by sprites launched from any edge.
type Quadrant int

const (
	TopRight    Quadrant = 1
	TopLeft     Quadrant = 2
	BottomLeft  Quadrant = 3
	BottomRight Quadrant = 4
)

// Valid reports whether q is one of the four quadrants.
func (q Quadrant) Valid() bool {
	return q >= TopRight && q <= BottomRight
}

func (q Quadrant) String() string {
	switch q {
	case TopRight:
		return "top-right"
	case TopLeft:
		return "top-left"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	}
	return fmt.Sprintf("Quadrant(%d)", int(q))
}

// Normalize converts rel, measured from the quadrant's corner with rows
// increasing away from that corner's horizontal edge, into an absolute
// position on a height x width terrain.
func (q Quadrant) Normalize(rel Position, height, width int) Position {
	switch q {
	case TopRight:
		return Position{rel.Row, width - 1 - rel.Col}
	case BottomLeft:
		return Position{height - 1 - rel.Row, rel.Col}
	case BottomRight:
		return Position{height - 1 - rel.Row, width - 1 - rel.Col}
	default:
		return rel
	}
}

// Orient maps a displacement measured in the quadrant's frame onto screen
// axes. Unlike Normalize it does not anchor to the terrain edges, so it is
// used for offsets added to a sprite's launch position.
func (q Quadrant) Orient(rel Vector) Vector {
	switch q {
	case TopRight:
		return Vector{rel.DY, -rel.DX}
	case BottomLeft:
		return Vector{-rel.DY, rel.DX}
	case BottomRight:
		return Vector{-rel.DY, -rel.DX}
	default:
		return rel
	}
}

// RelativeTo places rel with respect to a sprite's top-left cell.
func RelativeTo(rel, sprite Position) Position {
	return rel.Add(sprite)
}
