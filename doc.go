// Package voxelpath is the movement-aware pathfinding core of an
// autonomous voxel-world agent: given a position, a goal predicate and a
// read-only world snapshot, it computes a sequence of positions a
// locomotion follower can execute.
//
// The module has no code at its root; it is organized entirely as
// subpackages, each owning one piece of the pipeline:
//
//	voxel/         — the read-only world view, block classification, and
//	                 the CenteredArray parkour reachability uses
//	search/        — the generic Neighbor/Progression/PathResult "traits"
//	                 shared by the move generator and the A* engine
//	movement/      — the move generator: walking, falling, climbing,
//	                 micro-jumps and multi-block parkour against voxel.WorldView
//	astar/         — the time-sliced, interruptible A* engine and the
//	                 ProblemDefinition/SearchProblem abstraction over it
//	bidirectional/ — the concurrent meeting-point coordinator: two opposing
//	                 searches and the Middleman that detects their first
//	                 shared node
//	navigate/      — the per-tick driver wiring movement+astar+voxel into
//	                 the concrete voxel-agent task, including the
//	                 merge-vs-replace recomputation handoff
//
// See DESIGN.md for how each package is grounded against its reference
// implementation and SPEC_FULL.md for the expanded requirements this
// module implements.
package voxelpath
