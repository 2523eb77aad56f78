package movement

import (
	"errors"

	"github.com/katalvlaran/voxelpath/search"
	"github.com/katalvlaran/voxelpath/voxel"
)

// MaxFall is the greatest number of blocks the agent may drop onto solid
// ground before the descend move is excluded. Landing in water has no such
// bound.
const MaxFall = 3

// parkourRadius is the lateral reach, in blocks, of a multi-block jump.
const parkourRadius = 4

// ParkourMinReach and ParkourMaxReach bound the lateral distance, in
// blocks, a multi-block parkour hop may cover. Exported so a heuristic
// (package navigate) can account for parkour's cost-per-unit-distance when
// bounding its estimate.
const (
	ParkourMinReach = 1.1
	ParkourMaxReach = 4.5
)

const (
	parkourMinRadius2 = ParkourMinReach * ParkourMinReach
	parkourMaxRadius2 = ParkourMaxReach * ParkourMaxReach
)

// MoveNode is the search-state carrier: just the agent's location. Two
// MoveNodes are equal, for closed-set purposes, iff their Location is equal
// — any parent/back-pointer bookkeeping lives in the A* engine's arena, not
// here (see package astar).
type MoveNode struct {
	Location voxel.BlockLocation
}

// errEdge is the internal sentinel a block lookup returns when it touches an
// unloaded region. ObtainAll translates it into search.EdgeOf and never lets
// it escape.
var errEdge = errors.New("movement: block lookup touched an unloaded region")

// Generator computes all neighbors reachable from a single MoveNode in one
// locomotion step against a GlobalContext.
type Generator struct {
	on         MoveNode
	ctx        GlobalContext
	multiplier float64
}

// NewGenerator builds a Generator for node on, evaluated against ctx.
func NewGenerator(on MoveNode, ctx GlobalContext) *Generator {
	return &Generator{on: on, ctx: ctx, multiplier: 1.0}
}

// ObtainAll computes every neighbor reachable from the generator's node in
// one locomotion step: same-level walks, descents, water movement,
// micro-jumps, and (if enabled) multi-block parkour. Any block lookup that
// touches an unloaded region short-circuits the whole call to
// search.EdgeOf.
func (g *Generator) ObtainAll() search.Progression[MoveNode] {
	ns, err := g.obtainAllInternal()
	if err != nil {
		return search.EdgeOf[MoveNode]()
	}
	return search.Moved(ns)
}

func (g *Generator) costs() Costs {
	return g.ctx.PathConfig.Costs
}

// costOf applies the generator's current multiplier (scaled by
// NoBreatheMult once the agent's head is in water) to the named cost.
func (g *Generator) costOf(pick func(Costs) float64) float64 {
	return pick(g.costs()) * g.multiplier
}

func (g *Generator) loc(dx int32, dy int16, dz int32) voxel.BlockLocation {
	base := g.on.Location
	return voxel.BlockLocation{X: base.X + dx, Y: base.Y + dy, Z: base.Z + dz}
}

func (g *Generator) wrap(dx int32, dy int16, dz int32) MoveNode {
	return MoveNode{Location: g.loc(dx, dy, dz)}
}

func (g *Generator) getBlock(dx int32, dy int16, dz int32) (voxel.SimpleType, error) {
	kind, ok := g.ctx.World.GetSimple(g.loc(dx, dy, dz))
	if !ok {
		return 0, errEdge
	}
	return kind, nil
}

// dropY simulates a vertical drop starting two blocks below start, returning
// the landing y. It lands on a Solid floor only within MaxFall blocks, on a
// Water floor at any distance, and never lands on Avoid or past the void
// (start.Y < 2, or the column runs out before landing).
func dropY(world voxel.WorldView, start voxel.BlockLocation) (int16, bool, error) {
	if start.Y < 2 {
		return 0, false, nil
	}

	travelled := 1
	for y := start.Y - 2; y >= 0; y-- {
		kind, ok := world.GetSimple(voxel.BlockLocation{X: start.X, Y: y, Z: start.Z})
		if !ok {
			return 0, false, errEdge
		}
		switch kind {
		case voxel.Solid:
			if travelled <= MaxFall {
				return y, true, nil
			}
			return 0, false, nil
		case voxel.Water:
			return y, true, nil
		case voxel.Avoid:
			return 0, false, nil
		case voxel.WalkThrough:
			// keep descending
		}
		travelled++
	}
	return 0, false, nil
}

// checkHead reads the agent's head block and, if it is Water, multiplies all
// further costs by NoBreatheMult.
func (g *Generator) checkHead() (voxel.SimpleType, error) {
	head, err := g.getBlock(0, 1, 0)
	if err != nil {
		return 0, err
	}
	if head == voxel.Water {
		g.multiplier *= g.costs().NoBreatheMult
	}
	return head, nil
}

func (g *Generator) obtainAllInternal() ([]search.Neighbor[MoveNode], error) {
	head, err := g.checkHead()
	if err != nil {
		return nil, err
	}

	var canMoveNoPlace, traverseNoPlace [4]bool
	var adjLegs, adjHead [4]voxel.SimpleType

	// Step B: adjacent precomputation.
	for _, dir := range voxel.Cardinals {
		c := dir.UnitChange()
		legs, err := g.getBlock(c.DX, 0, c.DZ)
		if err != nil {
			return nil, err
		}
		adjLegs[dir] = legs

		adjH, err := g.getBlock(c.DX, 1, c.DZ)
		if err != nil {
			return nil, err
		}
		adjHead[dir] = adjH

		canMoveNoPlace[dir] = isPassable(legs) && isPassable(adjH)
	}

	var res []search.Neighbor[MoveNode]

	// Step C: same-level traversal.
	for _, dir := range voxel.Cardinals {
		if !canMoveNoPlace[dir] {
			continue
		}
		c := dir.UnitChange()
		floorD, err := g.getBlock(c.DX, -1, c.DZ)
		if err != nil {
			return nil, err
		}
		walkable := floorD == voxel.Solid || adjLegs[dir] == voxel.Water || adjHead[dir] == voxel.Water
		traverseNoPlace[dir] = walkable
		if walkable {
			res = append(res, search.Neighbor[MoveNode]{
				Value: g.wrap(c.DX, 0, c.DZ),
				Cost:  g.costOf(func(c Costs) float64 { return c.BlockWalk }),
			})
		}
	}

	// Step D: descend.
	for _, dir := range voxel.Cardinals {
		if !canMoveNoPlace[dir] || traverseNoPlace[dir] {
			continue
		}
		c := dir.UnitChange()
		floorD, err := g.getBlock(c.DX, -1, c.DZ)
		if err != nil {
			return nil, err
		}
		if floorD == voxel.Avoid {
			continue
		}
		start := g.loc(c.DX, 0, c.DZ)
		landY, ok, err := dropY(g.ctx.World, start)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, search.Neighbor[MoveNode]{
				Value: MoveNode{Location: voxel.BlockLocation{X: start.X, Y: landY + 1, Z: start.Z}},
				Cost:  g.costOf(func(c Costs) float64 { return c.Fall }),
			})
		}
	}

	above, err := g.getBlock(0, 2, 0)
	if err != nil {
		return nil, err
	}
	floor, err := g.getBlock(0, -1, 0)
	if err != nil {
		return nil, err
	}
	feet, err := g.getBlock(0, 0, 0)
	if err != nil {
		return nil, err
	}

	// Step E: vertical movement in water. Swimming up requires water above,
	// or a water head with open air above that; swimming/sinking down is
	// the mirror image.
	if above == voxel.Water || (head == voxel.Water && above == voxel.WalkThrough) {
		res = append(res, search.Neighbor[MoveNode]{
			Value: g.wrap(0, 1, 0),
			Cost:  g.costOf(func(c Costs) float64 { return c.Ascend }),
		})
	}
	if floor == voxel.Water || (floor == voxel.WalkThrough && head == voxel.Water) {
		res = append(res, search.Neighbor[MoveNode]{
			Value: g.wrap(0, -1, 0),
			Cost:  g.costOf(func(c Costs) float64 { return c.Ascend }),
		})
	}

	// Step F: micro-jump.
	canMicroJump := above == voxel.WalkThrough && (floor == voxel.Solid || feet == voxel.Water)
	if canMicroJump {
		for _, dir := range voxel.Cardinals {
			if canMoveNoPlace[dir] {
				continue
			}
			c := dir.UnitChange()
			adjAbove, err := g.getBlock(c.DX, 2, c.DZ)
			if err != nil {
				return nil, err
			}
			canJump := isPassable(adjAbove) && adjLegs[dir] == voxel.Solid && isPassable(adjHead[dir])
			if canJump {
				res = append(res, search.Neighbor[MoveNode]{
					Value: g.wrap(c.DX, 1, c.DZ),
					Cost:  g.costOf(func(c Costs) float64 { return c.Ascend }),
				})
			}
		}
	}

	// Step G: multi-block parkour.
	if g.ctx.PathConfig.Parkour && above == voxel.WalkThrough && floor != voxel.Water {
		parkourNeighbors, err := g.parkourNeighbors()
		if err != nil {
			return nil, err
		}
		res = append(res, parkourNeighbors...)
	}

	return res, nil
}

// isPassable reports whether a leg/head cell permits moving through it
// without placing a block: WalkThrough or Water.
func isPassable(kind voxel.SimpleType) bool {
	return kind == voxel.WalkThrough || kind == voxel.Water
}
