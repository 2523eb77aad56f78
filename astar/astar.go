// Package astar implements the time-sliced, best-first search engine.
package astar

import (
	"container/heap"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/katalvlaran/voxelpath/search"
)

// Engine runs a time-sliced A* search over node type N, producing records of
// type R. A zero Engine is not usable; construct one with New.
//
// N must be comparable so the closed map can key directly on it (mirroring
// MoveNode's location-equality invariant). The engine never expands a node
// twice: once popped and closed, later relaxations that reach the same node
// are skipped, and duplicate open-set entries pushed for it before it closed
// are discarded, unexamined, the moment they are popped.
type Engine[N comparable, R any] struct {
	clock     clock.Clock
	maxMillis int64

	toRecord RecordFunc[N, R]
	observer VisitObserver[N]

	arena  []arenaEntry[N]
	open   openHeap
	closed map[N]float64
	nextSeq int64

	started    bool
	bestSoFar  handle
	bestSoFarH float64
}

// New constructs an Engine rooted at start. toRecord projects a node into
// the externally-visible record type carried by PathResult.
func New[N comparable, R any](start N, toRecord RecordFunc[N, R]) *Engine[N, R] {
	e := &Engine[N, R]{
		clock:    clock.New(),
		toRecord: toRecord,
	}
	e.reset(start)
	return e
}

// SetMaxMillis records a per-iteration soft budget. It is informational
// only in this implementation: the authoritative stop condition is always
// the deadline passed to IterateUntil.
func (e *Engine[N, R]) SetMaxMillis(ms int64) {
	e.maxMillis = ms
}

// SetClock overrides the engine's time source, for deterministic tests.
func (e *Engine[N, R]) SetClock(c clock.Clock) {
	e.clock = c
}

// SetObserver installs a hook notified on every node visit (dequeue +
// expand). Passing nil disables observation.
func (e *Engine[N, R]) SetObserver(o VisitObserver[N]) {
	e.observer = o
}

// Recalc discards all search state and starts over from a new root. It is
// the only mutation permitted once iteration has begun.
func (e *Engine[N, R]) Recalc(start N) {
	e.reset(start)
}

func (e *Engine[N, R]) reset(start N) {
	e.arena = []arenaEntry[N]{{node: start, parent: noParent, g: 0}}
	e.open = e.open[:0]
	e.closed = make(map[N]float64)
	e.nextSeq = 0
	e.started = false
	e.bestSoFar = 0
	e.bestSoFarH = 0
}

// IterateUntil advances the search, expanding nodes until the open set is
// exhausted, a goal is reached, or now() reaches deadline. heuristic, goal
// and expand are supplied on every call rather than bound at New time so a
// caller (package navigate) can recalc cheaply without reconstructing these
// closures; they must be the same functions across the life of one run.
func (e *Engine[N, R]) IterateUntil(
	deadline time.Time,
	heuristic Heuristic[N],
	goal GoalCheck[N],
	expand Expander[N],
) search.Increment[R] {
	if !e.started {
		e.seed(heuristic)
		e.started = true
	}

	for e.open.Len() > 0 {
		if !e.clock.Now().Before(deadline) {
			return search.InProgress[R]()
		}

		item := heap.Pop(&e.open).(openItem)
		entry := e.arena[item.h]

		if _, done := e.closed[entry.node]; done {
			continue // stale duplicate: a better (or equal) path already closed this node
		}

		if e.observer != nil {
			e.observer.Observe(entry.node)
		}

		if item.hCost < e.bestSoFarH {
			e.bestSoFarH = item.hCost
			e.bestSoFar = item.h
		}

		if goal(entry.node) {
			e.closed[entry.node] = entry.g
			return search.Finished(e.reconstruct(item.h, true))
		}

		e.closed[entry.node] = entry.g

		prog := expand(entry.node)
		if prog.IsEdge() {
			continue
		}

		for _, nb := range prog.Movements {
			if _, done := e.closed[nb.Value]; done {
				continue
			}
			if nb.Cost <= 0 {
				panic("astar: expander produced a non-positive edge cost")
			}

			newG := entry.g + nb.Cost
			childHandle := handle(len(e.arena))
			e.arena = append(e.arena, arenaEntry[N]{node: nb.Value, parent: item.h, g: newG})

			hv := heuristic(nb.Value)
			heap.Push(&e.open, openItem{h: childHandle, f: newG + hv, hCost: hv, seq: e.nextSeq})
			e.nextSeq++
		}
	}

	return search.Finished(e.reconstruct(e.bestSoFar, false))
}

// seed pushes the root entry (handle 0) onto the open set with its
// heuristic value, establishing the initial best-so-far.
func (e *Engine[N, R]) seed(heuristic Heuristic[N]) {
	root := e.arena[0]
	hv := heuristic(root.node)
	e.bestSoFarH = hv
	e.bestSoFar = 0
	heap.Push(&e.open, openItem{h: 0, f: root.g + hv, hCost: hv, seq: e.nextSeq})
	e.nextSeq++
}

// reconstruct walks the parent chain from h back to the root, producing a
// start-to-end ordered PathResult.
func (e *Engine[N, R]) reconstruct(h handle, complete bool) search.PathResult[R] {
	var records []R
	for cur := h; cur != noParent; cur = e.arena[cur].parent {
		records = append(records, e.toRecord(e.arena[cur].node))
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return search.PathResult[R]{Complete: complete, Path: records}
}
