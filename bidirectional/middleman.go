package bidirectional

// msgKind tags which variant a Msg carries, mirroring search.Progression's
// Kind/Movements split.
type msgKind uint8

const (
	msgNode msgKind = iota
	msgFinished
)

// Msg is one message a search sends to the Middleman: either "I visited
// this node" or "I finished without reaching the other side," tagged with
// which direction sent it.
type Msg[T any] struct {
	kind    msgKind
	node    T
	forward bool
}

// NodeMsg builds the message a search sends each time it dequeues and
// expands a node.
func NodeMsg[T any](n T) Msg[T] {
	return Msg[T]{kind: msgNode, node: n}
}

// FinishedMsg builds the message a search sends once its open set empties
// (or it reaches the opposing endpoint) without the Middleman having
// already reported a meeting point. forward distinguishes which search
// exhausted: only the forward search's exhaustion is treated as conclusive.
func FinishedMsg[T any](forward bool) Msg[T] {
	return Msg[T]{kind: msgFinished, forward: forward}
}

// Middleman is the single-consumer coordinator task that owns a set of
// traversed nodes exclusively (never shared across goroutines) and emits at
// most one meeting point across the lifetime of one bidirectional search.
//
// Construct with NewMiddleman, feed it via NodeSender, and read its single
// result with GetSplit. A Middleman is used exactly once; it is not
// reusable across searches.
type Middleman[T comparable] struct {
	in  chan Msg[T]
	out chan splitResult[T]
}

type splitResult[T any] struct {
	node  T
	found bool
}

// inboxCapacity is the MPSC inbox's buffer size.
const inboxCapacity = 32

// NewMiddleman constructs a Middleman and starts its consumer goroutine.
func NewMiddleman[T comparable]() *Middleman[T] {
	m := &Middleman[T]{
		in:  make(chan Msg[T], inboxCapacity),
		out: make(chan splitResult[T], 1),
	}
	go m.run()
	return m
}

// NodeSender returns the send-only end of the Middleman's inbox. Both
// searches' observers write to this channel; Coordinator is the only
// caller that needs it directly.
func (m *Middleman[T]) NodeSender() chan<- Msg[T] {
	return m.in
}

// GetSplit blocks until the Middleman has a verdict: Some(n) (found==true)
// is the meeting point; found==false means both sides exhausted (or the
// forward side did) without ever observing the same node twice, or the
// inbox closed before either happened.
func (m *Middleman[T]) GetSplit() (node T, found bool) {
	res, ok := <-m.out
	if !ok {
		var zero T
		return zero, false
	}
	return res.node, res.found
}

// run is the sole owner of traversed; it never escapes this goroutine.
func (m *Middleman[T]) run() {
	defer close(m.out)
	traversed := make(map[T]struct{})

	for msg := range m.in {
		switch msg.kind {
		case msgNode:
			if _, seen := traversed[msg.node]; seen {
				m.out <- splitResult[T]{node: msg.node, found: true}
				return
			}
			traversed[msg.node] = struct{}{}
		case msgFinished:
			if msg.forward {
				m.out <- splitResult[T]{found: false}
				return
			}
			// The backward search exhausting alone is not fatal: overlap
			// may still arrive from the forward side.
		}
	}
	// Inbox closed before either terminal condition: treat as cancellation.
	m.out <- splitResult[T]{found: false}
}
