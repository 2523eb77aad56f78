package movement_test

import (
	"testing"

	"github.com/katalvlaran/voxelpath/movement"
	"github.com/katalvlaran/voxelpath/voxel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 5 (parkour gap): the agent stands on an isolated Solid block with
// open air in every direction, and a single Solid landing two blocks North
// (dx=2,dz=0, r^2=4). Every other column in the radius-4 disk stays
// WalkThrough, so nothing occludes the leap and only the one Solid landing
// qualifies.
func TestObtainAll_ParkourAcrossGap(t *testing.T) {
	w := newFakeWorld(voxel.WalkThrough)
	w.set(voxel.NewBlockLocation(0, 63, 0), voxel.Solid)
	w.set(voxel.NewBlockLocation(2, 63, 0), voxel.Solid)

	start := movement.MoveNode{Location: voxel.NewBlockLocation(0, 64, 0)}
	gen := movement.NewGenerator(start, defaultCtx(w))
	p := gen.ObtainAll()

	require.False(t, p.IsEdge())
	var found bool
	for _, n := range p.Movements {
		if n.Value.Location == voxel.NewBlockLocation(2, 64, 0) {
			found = true
			assert.Equal(t, movement.DefaultCosts().BlockParkour, n.Cost)
		}
	}
	assert.True(t, found, "expected a parkour neighbor to (2,64,0)")
}

// Parkour is disabled entirely when PathConfig.Parkour is false.
func TestObtainAll_ParkourDisabled(t *testing.T) {
	w := newFakeWorld(voxel.WalkThrough)
	w.set(voxel.NewBlockLocation(0, 63, 0), voxel.Solid)
	w.set(voxel.NewBlockLocation(2, 63, 0), voxel.Solid)

	start := movement.MoveNode{Location: voxel.NewBlockLocation(0, 64, 0)}
	ctx := movement.GlobalContext{
		PathConfig: movement.PathConfig{Costs: movement.DefaultCosts(), Parkour: false},
		World:      w,
	}
	gen := movement.NewGenerator(start, ctx)
	p := gen.ObtainAll()

	require.False(t, p.IsEdge())
	for _, n := range p.Movements {
		assert.NotEqual(t, voxel.NewBlockLocation(2, 64, 0), n.Value.Location)
	}
}
