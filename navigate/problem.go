package navigate

import (
	"github.com/katalvlaran/voxelpath/astar"
	"github.com/katalvlaran/voxelpath/movement"
	"github.com/katalvlaran/voxelpath/search"
	"github.com/katalvlaran/voxelpath/voxel"
)

// ToRecord projects a movement.MoveNode down to the bare BlockLocation a
// Follower deals in, stripping whatever search bookkeeping the node
// carries (MoveNode equality is location-only).
func ToRecord(n movement.MoveNode) voxel.BlockLocation {
	return n.Location
}

// NewExpander adapts package movement's move generator into an
// astar.Expander: each call builds a fresh Generator over n and cfg/world
// and runs it to completion. cfg and world are captured by the closure, so
// a recalculation under a different world snapshot just needs a new
// Expander built from the updated WorldView.
func NewExpander(cfg movement.PathConfig, world voxel.WorldView) astar.Expander[movement.MoveNode] {
	return func(n movement.MoveNode) search.Progression[movement.MoveNode] {
		ctx := movement.GlobalContext{PathConfig: cfg, World: world}
		return movement.NewGenerator(n, ctx).ObtainAll()
	}
}

// BlockGoal builds the simplest possible GoalCheck: "reached this exact
// block." Richer host goal predicates (e.g. "within chunk," "within
// interaction range") are the host's responsibility; this is the one case
// simple enough not to need inventing anything.
func BlockGoal(target voxel.BlockLocation) astar.GoalCheck[movement.MoveNode] {
	return func(n movement.MoveNode) bool {
		return n.Location == target
	}
}

// ManhattanHeuristic returns a distance estimate to target: the Manhattan
// displacement scaled by the cheapest of BlockWalk, Ascend and Fall and, when
// parkour is enabled, BlockParkour divided by movement.ParkourMaxReach.
// The estimate is not admissible for every path: a diagonal parkour hop
// covers up to 6 blocks of Manhattan distance for one BlockParkour, and a
// single fall move descends several blocks for one Fall, so paths using
// such moves can cost less than the estimate.
func ManhattanHeuristic(target voxel.BlockLocation, cfg movement.PathConfig) astar.Heuristic[movement.MoveNode] {
	perUnit := cfg.Costs.BlockWalk
	if cfg.Costs.Ascend < perUnit {
		perUnit = cfg.Costs.Ascend
	}
	if cfg.Costs.Fall < perUnit {
		perUnit = cfg.Costs.Fall
	}
	if cfg.Parkour {
		parkourPerUnit := cfg.Costs.BlockParkour / movement.ParkourMaxReach
		if parkourPerUnit < perUnit {
			perUnit = parkourPerUnit
		}
	}

	return func(n movement.MoveNode) float64 {
		dx := abs32(n.Location.X - target.X)
		dz := abs32(n.Location.Z - target.Z)
		dy := abs16(n.Location.Y - target.Y)
		return float64(dx+dz+int32(dy)) * perUnit
	}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
