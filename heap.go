package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// minHeap is a priority queue of tree nodes: the lowest-weight node is
// always at index 0.  Weight ties resolve by Node.seq, so the extraction
// order over any fixed input is deterministic.
//
// The usual implicit binary tree layout applies: the parent of index i
// lives at (i-1)/2 and its children at 2i+1 and 2i+2.
type minHeap struct {
	nodes []*Node
}

func newMinHeap(capacity int) *minHeap {
	return &minHeap{nodes: make([]*Node, 0, capacity)}
}

// buildHeap makes one leaf node per table entry, in input order, then
// restores the heap property bottom-up.  Duplicate symbols are kept as
// independent leaves.
func buildHeap(symbols []Symbol, frequencies []uint32) *minHeap {
	h := newMinHeap(len(symbols))
	for i, symbol := range symbols {
		h.nodes = append(h.nodes, &Node{
			symbol: symbol,
			weight: frequencies[i],
			seq:    uint32(i),
		})
	}
	h.init()
	return h
}

func (h *minHeap) len() int {
	return len(h.nodes)
}

// less orders by weight, then by creation sequence.
func (h *minHeap) less(i, j int) bool {
	a, b := h.nodes[i], h.nodes[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

// push appends the node and sifts it up until its parent is no longer
// heavier.  The backing slice grows as needed, so there is no capacity
// precondition to violate.
func (h *minHeap) push(n *Node) {
	h.nodes = append(h.nodes, n)
	h.siftUp(len(h.nodes) - 1)
}

// extractMin removes and returns the lowest-weight node: the root slot is
// refilled with the last element, which then sinks until both children are
// at least as heavy.  Calling extractMin on an empty heap is an internal
// logic error.
func (h *minHeap) extractMin() *Node {
	assert.Assertf(len(h.nodes) > 0, "extractMin on empty heap")

	min := h.nodes[0]
	last := len(h.nodes) - 1
	h.nodes[0] = h.nodes[last]
	h.nodes[last] = nil
	h.nodes = h.nodes[:last]
	if last > 0 {
		h.siftDown(0)
	}
	return min
}

// peek returns the lowest-weight node without removing it.
func (h *minHeap) peek() *Node {
	assert.Assertf(len(h.nodes) > 0, "peek on empty heap")
	return h.nodes[0]
}

// init restores the heap property bottom-up, sinking every parent index
// from the last one down to the root.  Linear time.
func (h *minHeap) init() {
	for i := (len(h.nodes) - 2) / 2; i >= 0; i-- {
		h.siftDown(i)
	}
}

func (h *minHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			break
		}
		h.nodes[i], h.nodes[parent] = h.nodes[parent], h.nodes[i]
		i = parent
	}
}

func (h *minHeap) siftDown(i int) {
	n := len(h.nodes)
	for {
		min := i
		if left := 2*i + 1; left < n && h.less(left, min) {
			min = left
		}
		if right := 2*i + 2; right < n && h.less(right, min) {
			min = right
		}
		if min == i {
			return
		}
		h.nodes[i], h.nodes[min] = h.nodes[min], h.nodes[i]
		i = min
	}
}
