package voxel

import "fmt"

// SimpleType is the reduction of a full block id that all locomotion logic
// operates on. No move-generation code ever sees a richer block type.
type SimpleType uint8

const (
	// WalkThrough is an empty or otherwise passable cell (air, grass, signs...).
	WalkThrough SimpleType = iota
	// Solid is a cell an agent can stand on.
	Solid
	// Water is swimmable and causes no fall damage.
	Water
	// Avoid is a hazard cell (lava, cactus...) that must never be stepped into
	// or used as a floor.
	Avoid
)

// String renders a SimpleType for diagnostics and test failure messages.
func (s SimpleType) String() string {
	switch s {
	case WalkThrough:
		return "WalkThrough"
	case Solid:
		return "Solid"
	case Water:
		return "Water"
	case Avoid:
		return "Avoid"
	default:
		return fmt.Sprintf("SimpleType(%d)", uint8(s))
	}
}

// BlockLocation is an integer voxel coordinate. Equality is componentwise, so
// BlockLocation is safe to use as a map key and in closed-set comparisons.
type BlockLocation struct {
	X int32
	Y int16
	Z int32
}

// NewBlockLocation constructs a BlockLocation from its components.
func NewBlockLocation(x int32, y int16, z int32) BlockLocation {
	return BlockLocation{X: x, Y: y, Z: z}
}

// Add returns the location reached by applying Change c to loc.
func (loc BlockLocation) Add(c Change) BlockLocation {
	return BlockLocation{X: loc.X + c.DX, Y: loc.Y + c.DY, Z: loc.Z + c.DZ}
}

// Change is an integer displacement with the same component widths as
// BlockLocation.
type Change struct {
	DX int32
	DY int16
	DZ int32
}

// NewChange constructs a Change from its components.
func NewChange(dx int32, dy int16, dz int32) Change {
	return Change{DX: dx, DY: dy, DZ: dz}
}

// CardinalDirection is one of the four horizontal movement directions. The
// displacement table below is the source's convention and is preserved
// bit-exactly: downstream consumers (the locomotion follower) rely on it.
type CardinalDirection uint8

const (
	North CardinalDirection = iota
	South
	West
	East
)

// Cardinals lists the four directions in the emission order the move
// generator and A* determinism guarantee depend on: North, South, West, East.
var Cardinals = [4]CardinalDirection{North, South, West, East}

// UnitChange returns the single-block horizontal displacement for d.
func (d CardinalDirection) UnitChange() Change {
	switch d {
	case North:
		return Change{DX: 1, DY: 0, DZ: 0}
	case South:
		return Change{DX: -1, DY: 0, DZ: 0}
	case West:
		return Change{DX: 0, DY: 0, DZ: 1}
	case East:
		return Change{DX: 0, DY: 0, DZ: -1}
	default:
		panic(fmt.Sprintf("voxel: unknown CardinalDirection(%d)", uint8(d)))
	}
}

// String renders a CardinalDirection for diagnostics.
func (d CardinalDirection) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case West:
		return "West"
	case East:
		return "East"
	default:
		return fmt.Sprintf("CardinalDirection(%d)", uint8(d))
	}
}
