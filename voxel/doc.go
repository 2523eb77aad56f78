// Package voxel defines the read-only voxel-world surface the pathfinding
// core is built against: a reduced block classification, integer block
// coordinates, the four cardinal directions in the agent's convention, and a
// small fixed-radius grid used transiently by parkour reachability analysis.
//
// Nothing in this package mutates the world. WorldView is a read-only borrow
// supplied by the host; callers may swap the data it serves between search
// slices, but must not mutate it concurrently with an in-progress
// Engine.IterateUntil call (see package astar).
package voxel
