// Package astar implements a time-sliced, best-first A* search over a
// generic node type N, driven by a pluggable admissible Heuristic, GoalCheck
// and Expander.
//
// The engine is reentrant: IterateUntil does a bounded amount of work and
// returns search.InProgress when it hits its deadline, preserving all state
// so the next call resumes exactly where the last one left off. This is the
// only suspension point — the engine never blocks or spawns a goroutine
// itself.
//
// Parent back-pointers are kept in an arena of records addressed by integer
// handles rather than as owned pointers on each node, so path reconstruction
// is a simple walk of handles back to the root (see the astar section of
// DESIGN.md).
package astar
