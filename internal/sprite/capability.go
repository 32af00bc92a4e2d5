// Package sprite defines the renderable, movable unit of the engine. A
// sprite is plain data plus a set of capability flags; the terrain engine
// decides how to treat it by checking those flags.
package sprite

import "strings"

// Capability is a bitset of orthogonal behaviours.
type Capability uint16

const (
	// Movable sprites may be moved by the terrain.
	Movable Capability = 1 << iota
	// PositionAddressable sprites accept an absolute target cell.
	PositionAddressable
	// VectorAddressable sprites accept a displacement.
	VectorAddressable
	// Uncollidable sprites stamp impassable cells that never count as ground.
	Uncollidable
	// HasHealth sprites lose health when hit by a DamagesPlayer sprite.
	HasHealth
	// Jumpable sprites carry a jump motion and a grounded flag.
	Jumpable
	// DestroyOnCollision sprites are removed when a move is blocked.
	DestroyOnCollision
	// DestroyOnTerrainExit sprites are removed when a move leaves the grid.
	DestroyOnTerrainExit
	// DamagesPlayer sprites hurt the player on contact. Implies both
	// destruction flags.
	DamagesPlayer
	// TimeParameterized sprites follow a motion function of elapsed time.
	TimeParameterized
	// SolidBounds sprites cover their whole bounding box, blanks included.
	SolidBounds
)

var capabilityNames = []string{
	"Movable", "PositionAddressable", "VectorAddressable", "Uncollidable",
	"HasHealth", "Jumpable", "DestroyOnCollision", "DestroyOnTerrainExit",
	"DamagesPlayer", "TimeParameterized", "SolidBounds",
}

// normalize adds the flags implied by others.
func (c Capability) normalize() Capability {
	if c&DamagesPlayer != 0 {
		c |= DestroyOnCollision | DestroyOnTerrainExit
	}
	if c&(PositionAddressable|VectorAddressable|TimeParameterized|Jumpable) != 0 {
		c |= Movable
	}
	return c
}

// Has reports whether every flag in f is set.
func (c Capability) Has(f Capability) bool {
	return c&f == f
}

func (c Capability) String() string {
	var names []string
	for i, name := range capabilityNames {
		if c&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "|")
}
