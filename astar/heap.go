package astar

// openItem is one entry in the engine's open set: a handle into the parent
// arena plus the ordering fields (f, h, seq) the heap compares on. f and h
// are snapshotted at push time, so a stale duplicate for an already-closed
// node simply carries outdated values — it is discarded when popped, never
// acted on.
type openItem struct {
	h      handle
	f      float64
	hCost  float64
	seq    int64
}

// openHeap is a container/heap.Interface ordered by f ascending, tied
// broken by hCost ascending (preferring states closer to goal), tied broken
// by insertion order (seq ascending, i.e. FIFO among otherwise-equal items).
type openHeap []openItem

func (h openHeap) Len() int { return len(h) }

func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	if h[i].hCost != h[j].hCost {
		return h[i].hCost < h[j].hCost
	}
	return h[i].seq < h[j].seq
}

func (h openHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *openHeap) Push(x interface{}) {
	*h = append(*h, x.(openItem))
}

func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
