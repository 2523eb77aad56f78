// Package navigate wires package movement's move generator and package
// astar's time-sliced engine together into the concrete voxel-agent
// pathfinding task: a per-tick driver and the merge-vs-replace
// recomputation handoff.
//
// Task is the block-discrete variant of the original source's
// client/tasks/navigate/block_discrete.rs: it calls Recalc when the
// follower asks to recalculate and hands each finished search to the
// follower either as a merge onto the existing trail or, on first
// completion or when no overlap exists, as a wholesale replacement.
//
// The gametick-discretized sibling (client/tasks/navigate/gametick_discete.rs)
// stays out of scope.
package navigate
