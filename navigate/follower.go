package navigate

import "github.com/katalvlaran/voxelpath/voxel"

// Follower is the locomotion follower's consumption contract: the only
// surface the pathfinding core needs from the component that physically
// walks a computed path. The follower's own execution logic is out of
// scope; this interface is its entire intersection with the core.
type Follower interface {
	// CurrentRecord returns the position the follower currently considers
	// itself at. Task uses it both as the new start when recalculating and
	// as the merge anchor when splicing a freshly finished path onto the
	// follower's remaining trail.
	CurrentRecord() voxel.BlockLocation

	// ShouldRecalculate reports whether the follower wants Task to discard
	// its in-flight search state and restart from CurrentRecord on the next
	// Tick — e.g. because the world changed out from under the follower's
	// current plan, or it was pushed off its path.
	ShouldRecalculate() bool

	// SetPath installs path as the follower's remaining trail. Task calls
	// this on every finished search: either the full path (first
	// completion, or a recomputation with no overlap) or the merged suffix
	// (a recomputation that does overlap the follower's current position).
	SetPath(path []voxel.BlockLocation)

	// Discontinuity notifies the follower that the path just installed via
	// SetPath did not overlap its previous trail and was therefore a
	// wholesale replacement rather than a graft.
	Discontinuity()
}
