package voxel

// WorldView is the read-only voxel classification surface the move generator
// consumes. The host owns the real chunk storage; this is the only way the
// core ever touches it.
//
// GetSimple returns (kind, true) for a loaded cell, or (_, false) when loc
// falls outside the currently loaded region. A false result must propagate
// as search.EdgeOf at the move-generator boundary — it is not an error, and
// the core must tolerate it without crashing.
//
// Implementations must be safe for concurrent reads during a single
// Engine.IterateUntil slice; the core never mutates through this interface.
// Between slices the host may mutate freely: a search holds no lock across
// calls, so stale closed-set entries from a since-changed world are an
// accepted consequence, not a bug.
type WorldView interface {
	GetSimple(loc BlockLocation) (SimpleType, bool)
}
