package astar

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/katalvlaran/voxelpath/search"
)

// ProblemDefinition bundles everything one A* run needs: the start node and
// the three pluggables the engine calls back into. It is the generic form
// of a concrete search — package navigate builds one from a movement
// generator and a goal location.
type ProblemDefinition[N comparable, R any] struct {
	Start     N
	Heuristic Heuristic[N]
	GoalCheck GoalCheck[N]
	Expander  Expander[N]
	ToRecord  RecordFunc[N, R]
}

// SearchProblem owns an Engine together with the pluggables of a
// ProblemDefinition, so a caller drives IterateUntil(deadline) without
// re-threading heuristic/goal/expander through every call.
type SearchProblem[N comparable, R any] struct {
	engine *Engine[N, R]
	def    ProblemDefinition[N, R]
}

// NewSearchProblem constructs a SearchProblem ready to iterate from
// def.Start.
func NewSearchProblem[N comparable, R any](def ProblemDefinition[N, R]) *SearchProblem[N, R] {
	return &SearchProblem[N, R]{
		engine: New(def.Start, def.ToRecord),
		def:    def,
	}
}

// SetMaxMillis forwards to the owned Engine.
func (p *SearchProblem[N, R]) SetMaxMillis(ms int64) { p.engine.SetMaxMillis(ms) }

// SetClock forwards to the owned Engine.
func (p *SearchProblem[N, R]) SetClock(c clock.Clock) { p.engine.SetClock(c) }

// SetObserver forwards to the owned Engine.
func (p *SearchProblem[N, R]) SetObserver(o VisitObserver[N]) { p.engine.SetObserver(o) }

// IterateUntil advances the owned engine using this problem's heuristic,
// goal check and expander.
func (p *SearchProblem[N, R]) IterateUntil(deadline time.Time) search.Increment[R] {
	return p.engine.IterateUntil(deadline, p.def.Heuristic, p.def.GoalCheck, p.def.Expander)
}

// Recalc resets the owned engine to a new start node, updating the problem
// definition to match.
func (p *SearchProblem[N, R]) Recalc(start N) {
	p.def.Start = start
	p.engine.Recalc(start)
}

// Start returns the problem's current start node.
func (p *SearchProblem[N, R]) Start() N {
	return p.def.Start
}
