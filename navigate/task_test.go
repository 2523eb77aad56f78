package navigate_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/voxelpath/astar"
	"github.com/katalvlaran/voxelpath/movement"
	"github.com/katalvlaran/voxelpath/navigate"
	"github.com/katalvlaran/voxelpath/voxel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatWorld is loaded for X and Z in [-1,6], with a Solid floor at floorY
// and WalkThrough above. With parkour off, the move generator reads at most
// one block sideways, so expanding any position with X and Z in [0,5] emits
// plain same-level walks without touching an unloaded region.
type flatWorld struct{ floorY int16 }

func (w flatWorld) GetSimple(loc voxel.BlockLocation) (voxel.SimpleType, bool) {
	if loc.X < -1 || loc.X > 6 || loc.Z < -1 || loc.Z > 6 {
		return 0, false
	}
	if loc.Y == w.floorY {
		return voxel.Solid, true
	}
	return voxel.WalkThrough, true
}

// fakeFollower is an in-memory Follower: it starts at `at`, records every
// installed path, and reports recalc/discontinuity via simple flags the
// test can flip and inspect.
type fakeFollower struct {
	at             voxel.BlockLocation
	recalculate    bool
	installedPaths [][]voxel.BlockLocation
	discontinuous  int
}

func (f *fakeFollower) CurrentRecord() voxel.BlockLocation    { return f.at }
func (f *fakeFollower) ShouldRecalculate() bool               { return f.recalculate }
func (f *fakeFollower) Discontinuity()                        { f.discontinuous++ }
func (f *fakeFollower) SetPath(path []voxel.BlockLocation) {
	cp := make([]voxel.BlockLocation, len(path))
	copy(cp, path)
	f.installedPaths = append(f.installedPaths, cp)
}

func newTask(start, goal voxel.BlockLocation, follower navigate.Follower) *navigate.Task {
	cfg := movement.DefaultPathConfig()
	cfg.Parkour = false // the parkour scan reaches 4 blocks, past flatWorld's loaded edge
	world := flatWorld{floorY: 63}
	def := astar.ProblemDefinition[movement.MoveNode, voxel.BlockLocation]{
		Start:     movement.MoveNode{Location: start},
		Heuristic: navigate.ManhattanHeuristic(goal, cfg),
		GoalCheck: navigate.BlockGoal(goal),
		Expander:  navigate.NewExpander(cfg, world),
		ToRecord:  navigate.ToRecord,
	}
	return navigate.NewTask(def, follower)
}

func TestTask_FirstCompletionInstallsWholesaleWithoutDiscontinuity(t *testing.T) {
	start := voxel.BlockLocation{X: 0, Y: 64, Z: 0}
	goal := voxel.BlockLocation{X: 3, Y: 64, Z: 0}
	follower := &fakeFollower{at: start}
	task := newTask(start, goal, follower)

	inc := task.Tick(time.Now().Add(time.Hour))
	require.True(t, inc.Done)
	assert.True(t, inc.Result.Complete)

	require.Len(t, follower.installedPaths, 1)
	assert.Equal(t, goal, follower.installedPaths[0][len(follower.installedPaths[0])-1])
	assert.Zero(t, follower.discontinuous)
}

func TestTask_RecalculateRestartsFromFollowerPosition(t *testing.T) {
	start := voxel.BlockLocation{X: 0, Y: 64, Z: 0}
	goal := voxel.BlockLocation{X: 3, Y: 64, Z: 0}
	follower := &fakeFollower{at: start}
	task := newTask(start, goal, follower)

	inc := task.Tick(time.Now().Add(time.Hour))
	require.True(t, inc.Done)

	// The follower walked to (1,64,0) and now wants a recompute from there.
	follower.at = voxel.BlockLocation{X: 1, Y: 64, Z: 0}
	follower.recalculate = true

	inc = task.Tick(time.Now().Add(time.Hour))
	require.True(t, inc.Done)
	require.Len(t, follower.installedPaths, 2)
	second := follower.installedPaths[1]
	assert.Equal(t, follower.at, second[0], "recomputed path starts at the follower's new position")
}

func TestTask_OverlapMergesSuffixWithoutDiscontinuity(t *testing.T) {
	start := voxel.BlockLocation{X: 0, Y: 64, Z: 0}
	goal := voxel.BlockLocation{X: 3, Y: 64, Z: 0}
	follower := &fakeFollower{at: start}
	task := newTask(start, goal, follower)

	inc := task.Tick(time.Now().Add(time.Hour))
	require.True(t, inc.Done)

	// Follower is still somewhere on its already-installed path; recompute
	// from there — the fresh path necessarily overlaps at `anchor` itself.
	anchor := voxel.BlockLocation{X: 1, Y: 64, Z: 0}
	follower.at = anchor
	follower.recalculate = true

	inc = task.Tick(time.Now().Add(time.Hour))
	require.True(t, inc.Done)
	assert.Zero(t, follower.discontinuous, "recomputing onto a position on the new path is a merge, not a discontinuity")
}

// TestTask_NoOverlapSignalsDiscontinuity exercises the realistic way a
// discontinuity arises: a recalculation starts from the follower's
// position at that instant, but the search is time-sliced and may take
// several ticks; if the follower moves off the recalculated search's
// eventual path before it finishes, the finished path won't contain the
// follower's now-current position and the merge fails.
func TestTask_NoOverlapSignalsDiscontinuity(t *testing.T) {
	start := voxel.BlockLocation{X: 0, Y: 64, Z: 0}
	goal := voxel.BlockLocation{X: 3, Y: 64, Z: 0}
	follower := &fakeFollower{at: start}
	task := newTask(start, goal, follower)

	inc := task.Tick(time.Now().Add(time.Hour))
	require.True(t, inc.Done)
	require.Len(t, follower.installedPaths, 1)

	// Recalculate from the follower's current spot, but hand the engine an
	// already-expired deadline: the recalc happens, yet nothing is expanded
	// this tick.
	follower.recalculate = true
	inc = task.Tick(time.Now().Add(-time.Second))
	assert.False(t, inc.Done)

	// Between this tick and the next, the follower ends up somewhere the
	// recalculated search (still rooted at `start`, toward `goal`) never
	// visits on its way there.
	follower.recalculate = false
	follower.at = voxel.BlockLocation{X: 0, Y: 64, Z: 6}

	inc = task.Tick(time.Now().Add(time.Hour))
	require.True(t, inc.Done)
	require.Len(t, follower.installedPaths, 2)
	assert.Equal(t, 1, follower.discontinuous)
	assert.Equal(t, start, follower.installedPaths[1][0], "wholesale replacement keeps the search's own path, not a merge")
}
