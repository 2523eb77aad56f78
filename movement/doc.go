// Package movement implements the move generator: from a single agent
// position, it enumerates every physically reachable neighbor position and
// its traversal cost against a voxel.WorldView snapshot.
//
// It encodes walking, falling, climbing, micro-jumps, and multi-block
// parkour as a deterministic, side-effect-free expansion. ObtainAll's
// contract is total: an unloaded block anywhere in the scan short-circuits
// the whole call to search.EdgeOf, never a panic or an error return.
//
// Emission order (same-level, descend, vertical-water, micro-jump, parkour;
// cardinals in voxel.Cardinals order, parkour in lexicographic (dx,dz)
// order) is part of the contract: callers may rely on it for reproducible
// tie-breaking in package astar.
package movement
