package movement

import (
	"github.com/katalvlaran/voxelpath/search"
	"github.com/katalvlaran/voxelpath/voxel"
)

// parkourState tags a cell in the radius-4 disk around the agent as
// reachable by a leap (Open, the zero value) or shadowed by an
// intervening column the agent cannot see or jump through (Closed).
type parkourState uint8

const (
	parkourOpen parkourState = iota
	parkourClosed
)

type cell struct{ dx, dz int }

// parkourNeighbors computes a multi-block lateral hop across a radius-4
// disk, minus cells occluded by an intervening column.
func (g *Generator) parkourNeighbors() ([]search.Neighbor[MoveNode], error) {
	const r = parkourRadius

	var blockers []cell
	for dx := -r; dx <= r; dx++ {
		for dz := -r; dz <= r; dz++ {
			above, err := g.getBlock(int32(dx), 2, int32(dz))
			if err != nil {
				return nil, err
			}
			headAt, err := g.getBlock(int32(dx), 1, int32(dz))
			if err != nil {
				return nil, err
			}
			feetAt, err := g.getBlock(int32(dx), 0, int32(dz))
			if err != nil {
				return nil, err
			}
			columnClear := above == voxel.WalkThrough && headAt == voxel.WalkThrough && feetAt == voxel.WalkThrough
			if !columnClear {
				blockers = append(blockers, cell{dx, dz})
			}
		}
	}

	open := voxel.NewCenteredArray[parkourState](r)
	open.Set(0, 0, parkourClosed)

	for _, b := range blockers {
		occludeBehind(open, b, r)
	}

	var res []search.Neighbor[MoveNode]
	for dx := -r; dx <= r; dx++ {
		for dz := -r; dz <= r; dz++ {
			if open.Get(dx, dz) != parkourOpen {
				continue
			}
			rad2 := float64(dx*dx + dz*dz)
			if rad2 < parkourMinRadius2 || rad2 > parkourMaxRadius2 {
				continue
			}
			floorAt, err := g.getBlock(int32(dx), -1, int32(dz))
			if err != nil {
				return nil, err
			}
			if floorAt != voxel.Solid {
				continue
			}
			res = append(res, search.Neighbor[MoveNode]{
				Value: g.wrap(int32(dx), 0, int32(dz)),
				Cost:  g.costOf(func(c Costs) float64 { return c.BlockParkour }),
			})
		}
	}

	return res, nil
}

// occludeBehind closes every cell "behind" blocker b, as seen from the
// origin: axis-aligned blockers shadow a widening 1-cell corridor along
// both adjacent diagonals as well as the axis itself; diagonal blockers
// shadow only their own ray.
func occludeBehind(open *voxel.CenteredArray[parkourState], b cell, r int) {
	sx := sign(b.dx)
	sz := sign(b.dz)

	update := func(ax, az int) {
		maxAbs := abs(b.dx)
		if abs(b.dz) > maxAbs {
			maxAbs = abs(b.dz)
		}
		increments := r - maxAbs + 1

		for inc := 0; inc < increments; inc++ {
			dx := b.dx + inc*ax
			dz := b.dz + inc*az
			open.Set(dx, dz, parkourClosed)
			if abs(dx) < r {
				open.Set(dx+ax, dz, parkourClosed)
			}
			if abs(dz) < r {
				open.Set(dx, dz+az, parkourClosed)
			}
		}
	}

	switch {
	case b.dx == 0:
		update(-1, sz)
		update(0, sz)
		update(1, sz)
	case b.dz == 0:
		update(sx, -1)
		update(sx, 0)
		update(sx, 1)
	default:
		update(sx, sz)
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
