package navigate

import (
	"time"

	"github.com/benbjohnson/clock"

	"github.com/katalvlaran/voxelpath/astar"
	"github.com/katalvlaran/voxelpath/movement"
	"github.com/katalvlaran/voxelpath/search"
	"github.com/katalvlaran/voxelpath/voxel"
)

// Task is the per-tick driver: it owns one astar.SearchProblem over
// movement.MoveNode/voxel.BlockLocation and a Follower, and on every Tick
// either recalculates (if the follower asks for it), advances the search by
// one tick-budgeted slice, or — once that slice finishes — hands the result
// to the follower via merge or wholesale replacement.
type Task struct {
	problem  *astar.SearchProblem[movement.MoveNode, voxel.BlockLocation]
	follower Follower
	// hasPath is false until the first search this Task runs completes.
	// Before that point there is nothing to merge onto, so the first
	// Finished result is always installed wholesale, without signaling a
	// discontinuity — a discontinuity only means "we had a plan and had to
	// abandon it," which isn't true yet.
	hasPath bool
}

// NewTask builds a Task over def (see NewExpander/BlockGoal/ManhattanHeuristic
// for the building blocks that typically populate a ProblemDefinition) and
// follower.
func NewTask(def astar.ProblemDefinition[movement.MoveNode, voxel.BlockLocation], follower Follower) *Task {
	return &Task{
		problem:  astar.NewSearchProblem(def),
		follower: follower,
	}
}

// SetMaxMillis forwards to the owned SearchProblem's engine.
func (t *Task) SetMaxMillis(ms int64) { t.problem.SetMaxMillis(ms) }

// SetClock overrides the owned engine's time source, for deterministic
// tests.
func (t *Task) SetClock(c clock.Clock) { t.problem.SetClock(c) }

// SetObserver installs a visit observer on the owned engine — the wiring
// point a bidirectional.Coordinator would use if this Task's search were
// one half of a bidirectional pair instead of a standalone recompute loop.
func (t *Task) SetObserver(o astar.VisitObserver[movement.MoveNode]) {
	t.problem.SetObserver(o)
}

// Tick advances the task by one tick-budgeted slice, honoring the
// follower's recalculate signal first. It returns the raw Increment so a
// caller can observe InProgress vs Finished without re-deriving it; the
// follower has already been updated by the time Tick returns for a
// Finished result.
func (t *Task) Tick(deadline time.Time) search.Increment[voxel.BlockLocation] {
	if t.follower.ShouldRecalculate() {
		t.problem.Recalc(movement.MoveNode{Location: t.follower.CurrentRecord()})
	}

	inc := t.problem.IterateUntil(deadline)
	if inc.Done {
		t.apply(inc.Result)
	}
	return inc
}

// apply hands a finished search's result to the follower: the first
// completion (or any recomputation with no overlap) replaces the
// follower's path wholesale; a recomputation that does overlap the
// follower's current position grafts the suffix onto it instead.
func (t *Task) apply(result search.PathResult[voxel.BlockLocation]) {
	if !t.hasPath {
		t.follower.SetPath(result.Path)
		t.hasPath = true
		return
	}

	anchor := t.follower.CurrentRecord()
	if suffix, ok := search.MergeInto(anchor, result); ok {
		t.follower.SetPath(suffix)
		return
	}

	t.follower.SetPath(result.Path)
	t.follower.Discontinuity()
}
