package bidirectional

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/voxelpath/astar"
)

// observerFunc adapts a plain function to astar.VisitObserver without
// requiring callers of this package to declare their own named type.
type observerFunc[N any] func(n N)

func (f observerFunc[N]) Observe(n N) { f(n) }

// Coordinator runs two astar.SearchProblem instances — forward (start to
// goal) and backward (goal to start) — concurrently and detects their
// first common node via a Middleman.
//
// N must be comparable: it is both the engines' node type and the type the
// Middleman's visited-set keys on.
type Coordinator[N comparable, R any] struct {
	// RunID tags this coordinator's run so that overlapping Middleman
	// instances are distinguishable in traces; the core produces this
	// identifier rather than consuming one, mirroring viamrobotics-rdk's use
	// of uuid.UUID for component/request identifiers.
	RunID uuid.UUID

	forward  *astar.SearchProblem[N, R]
	backward *astar.SearchProblem[N, R]

	// tickBudget bounds how much work each direction's IterateUntil call is
	// given per loop iteration before the coordinator re-checks for
	// cancellation. It does not bound the total search time.
	tickBudget time.Duration
}

// defaultTickBudget is the per-iteration slice handed to each direction's
// engine between cancellation checks.
const defaultTickBudget = 20 * time.Millisecond

// NewCoordinator builds a Coordinator over two already-constructed search
// problems. forward should search start -> goal; backward should search
// goal -> start (the caller is responsible for constructing backward with
// swapped start/goal and an expander that walks the reverse locomotion
// graph, if one is required by the domain).
func NewCoordinator[N comparable, R any](forward, backward *astar.SearchProblem[N, R]) *Coordinator[N, R] {
	return &Coordinator[N, R]{
		RunID:      uuid.New(),
		forward:    forward,
		backward:   backward,
		tickBudget: defaultTickBudget,
	}
}

// SetTickBudget overrides the per-iteration slice each direction's engine
// receives before the coordinator rechecks for cancellation or completion.
func (c *Coordinator[N, R]) SetTickBudget(d time.Duration) {
	c.tickBudget = d
}

// Run drives both searches to completion (or until ctx is cancelled) and
// returns the meeting node. found is false if the two searches never
// observed a common node — either because the forward search's open set
// emptied first, or because ctx was cancelled before either side converged.
//
// Once the Middleman reports a verdict, Run cancels the shared context so
// whichever direction is still iterating stops at its next deadline check
// instead of running to exhaustion for no further benefit.
func (c *Coordinator[N, R]) Run(ctx context.Context) (meet N, found bool) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	mm := NewMiddleman[N]()

	group, groupCtx := errgroup.WithContext(runCtx)
	group.Go(c.driveDirection(groupCtx, c.forward, mm, true))
	group.Go(c.driveDirection(groupCtx, c.backward, mm, false))

	type verdict struct {
		node  N
		found bool
	}
	verdictCh := make(chan verdict, 1)
	go func() {
		n, ok := mm.GetSplit()
		// Cancel unconditionally once the Middleman has a verdict: the
		// Middleman's consumer goroutine has already returned either way
		// (found or exhausted), so any direction still blocked trying to
		// send into its now-unread inbox must be released via ctx.Done(),
		// not left to block forever.
		cancel()
		verdictCh <- verdict{node: n, found: ok}
	}()

	_ = group.Wait()
	v := <-verdictCh
	return v.node, v.found
}

// driveDirection returns the errgroup worker for one direction: it wires
// the problem's visited-node callback to the Middleman's inbox, then loops
// IterateUntil calls (each bounded by tickBudget) until the search finishes
// naturally (reporting a Finished message) or ctx is cancelled first (in
// which case it returns without sending anything further).
func (c *Coordinator[N, R]) driveDirection(
	ctx context.Context,
	problem *astar.SearchProblem[N, R],
	mm *Middleman[N],
	forward bool,
) func() error {
	return func() error {
		problem.SetObserver(observerFunc[N](func(n N) {
			send(ctx, mm.NodeSender(), NodeMsg(n))
		}))
		defer problem.SetObserver(nil)

		for {
			select {
			case <-ctx.Done():
				// Cancelled mid-search (either the caller's context expired
				// or the other direction already found the meeting point).
				// No one benefits from a Finished message past this point,
				// and the Middleman's inbox may already be unread, so do
				// not risk blocking this goroutine trying to send one.
				return nil
			default:
			}

			inc := problem.IterateUntil(time.Now().Add(c.tickBudget))
			if inc.Done {
				send(ctx, mm.NodeSender(), FinishedMsg[N](forward))
				return nil
			}
		}
	}
}

// send writes msg to ch, but gives up the moment ctx is cancelled so a
// worker can never block forever feeding a Middleman that has already
// returned its verdict and stopped caring.
func send[T any](ctx context.Context, ch chan<- Msg[T], msg Msg[T]) {
	select {
	case ch <- msg:
	case <-ctx.Done():
	}
}
