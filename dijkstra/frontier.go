package dijkstra

import (
	"container/heap"
	"math"
)

// frontier yields not-yet-finalized nodes in (distance, ID) order.
//
// push announces a strictly improved tentative distance; pop returns the
// closest non-finalized node, or ok == false when none is left.
type frontier interface {
	push(id string, dist float64)
	pop() (id string, dist float64, ok bool)
}

// scanFrontier re-scans every node each round and skips finalized ones.
// nodes must be sorted so the first minimum seen is the lexically smallest.
type scanFrontier struct {
	nodes []string
	dist  map[string]float64
	done  map[string]bool
}

// push is a no-op: the scan reads dist directly.
func (f *scanFrontier) push(string, float64) {}

func (f *scanFrontier) pop() (string, float64, bool) {
	var (
		best     string
		bestDist = math.Inf(1)
		found    bool
	)
	for _, id := range f.nodes {
		if f.done[id] {
			continue
		}
		if d := f.dist[id]; !found || d < bestDist {
			best, bestDist, found = id, d, true
		}
	}

	return best, bestDist, found
}

// heapFrontier is a lazy decrease-key min-heap: improved distances are
// pushed as new entries and stale ones are dropped when popped.
type heapFrontier struct {
	pq   nodePQ
	done map[string]bool
}

func newHeapFrontier(capacity int, done map[string]bool) *heapFrontier {
	f := &heapFrontier{pq: make(nodePQ, 0, capacity), done: done}
	heap.Init(&f.pq)

	return f
}

func (f *heapFrontier) push(id string, dist float64) {
	heap.Push(&f.pq, &nodeItem{id: id, dist: dist})
}

func (f *heapFrontier) pop() (string, float64, bool) {
	for f.pq.Len() > 0 {
		item := heap.Pop(&f.pq).(*nodeItem)
		// A finalized node's older, larger entries are stale.
		if f.done[item.id] {
			continue
		}

		return item.id, item.dist, true
	}

	return "", math.Inf(1), false
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string  // vertex ID
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id) ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by ID so ties resolve like the linear scan.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
