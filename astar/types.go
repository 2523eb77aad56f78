package astar

import "github.com/katalvlaran/voxelpath/search"

// Heuristic estimates the remaining true cost from n to a goal. The engine
// assumes it is admissible (never overestimates); violations weaken
// optimality but must not make the engine crash or loop.
type Heuristic[N any] func(n N) float64

// GoalCheck reports whether n satisfies a search's goal predicate.
type GoalCheck[N any] func(n N) bool

// Expander produces every node reachable from n and its cost, or reports
// that n borders an unloaded region of the world (search.EdgeOf). Edge is
// not an error: the engine marks n closed and seeds no further work from it.
type Expander[N any] func(n N) search.Progression[N]

// RecordFunc projects a search node into the record type a PathResult
// carries — typically a coarser, externally meaningful view of N such as a
// bare location, stripped of whatever bookkeeping N itself carries.
type RecordFunc[N any, R any] func(n N) R

// VisitObserver is notified every time the engine dequeues and expands a
// node. It is optional (nil is a valid, no-op observer) and exists so a
// bidirectional coordinator can detect the first node two opposing engines
// have both visited without this package importing that one: the
// coordinator supplies an observer backed by its own middleman.
type VisitObserver[N any] interface {
	Observe(n N)
}

// handle addresses one arenaEntry. Entries are appended starting at index 0,
// so the zero handle is the root entry; a field of type handle that means
// "no parent" uses noParent, not the zero handle.
type handle int

const noParent handle = -1

// arenaEntry is one record in the parent arena: the node it was reached at,
// the cost to reach it from the root, and the handle of the entry it was
// relaxed from. Entries are never mutated after creation — relaxing a node
// again appends a new entry rather than rewriting an old one, mirroring the
// lazy-decrease-key approach used for the open set itself.
type arenaEntry[N any] struct {
	node   N
	parent handle
	g      float64
}
