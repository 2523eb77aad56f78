// Package bidirectional implements the concurrent meeting-point protocol:
// two opposing A* searches run on separate goroutines, each reporting the
// nodes it visits to a shared Middleman, which detects the first node
// observed from both sides and emits it as the meeting point.
//
// The protocol never shares the visited-set across goroutines directly —
// Middleman owns it exclusively and is driven by a single consumer
// goroutine reading off an MPSC channel. Coordinator wires two astar.SearchProblem
// instances to one Middleman using golang.org/x/sync/errgroup, the same
// fan-out-and-join idiom niceyeti-tabular's fastview.client uses to join a
// websocket client's read/ping/publish goroutines under one cancellation
// context.
package bidirectional
