package huffman

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkHeapProperty verifies that no node orders before its parent.
func checkHeapProperty(t *testing.T, h *minHeap) {
	t.Helper()
	for i := 1; i < len(h.nodes); i++ {
		require.False(t, h.less(i, (i-1)/2), "heap property violated at index %d", i)
	}
}

func TestMinHeapPushExtract(t *testing.T) {
	weights := []uint32{13, 5, 45, 9, 16, 12}
	h := newMinHeap(len(weights))
	for i, w := range weights {
		h.push(&Node{symbol: Symbol(i), weight: w, seq: uint32(i)})
		checkHeapProperty(t, h)
	}

	var extracted []uint32
	for h.len() > 0 {
		extracted = append(extracted, h.extractMin().weight)
		checkHeapProperty(t, h)
	}
	require.Equal(t, []uint32{5, 9, 12, 13, 16, 45}, extracted)
}

func TestMinHeapInit(t *testing.T) {
	weights := []uint32{45, 16, 13, 12, 9, 5}
	h := newMinHeap(len(weights))
	for i, w := range weights {
		h.nodes = append(h.nodes, &Node{weight: w, seq: uint32(i)})
	}
	h.init()

	checkHeapProperty(t, h)
	require.Equal(t, uint32(5), h.peek().weight)
	require.Equal(t, len(weights), h.len())
}

func TestBuildHeapFromTable(t *testing.T) {
	h := buildHeap(
		[]Symbol{'a', 'b', 'c', 'd', 'e', 'f'},
		[]uint32{5, 9, 12, 13, 16, 45},
	)

	checkHeapProperty(t, h)
	require.Equal(t, 6, h.len())
	require.Equal(t, Symbol('a'), h.peek().symbol)
}

func TestMinHeapTieBreak(t *testing.T) {
	h := newMinHeap(4)
	for i := 0; i < 4; i++ {
		h.push(&Node{symbol: Symbol(i), weight: 7, seq: uint32(i)})
	}

	for i := 0; i < 4; i++ {
		require.Equal(t, Symbol(i), h.extractMin().symbol,
			"equal weights must extract in insertion order")
	}
}

func TestMinHeapRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	h := newMinHeap(0)
	var seq uint32
	for i := 0; i < 500; i++ {
		if h.len() == 0 || rng.Intn(3) != 0 {
			h.push(&Node{weight: uint32(rng.Intn(1000)), seq: seq})
			seq++
		} else {
			h.extractMin()
		}
		checkHeapProperty(t, h)
	}

	// Draining must produce nondecreasing weights.
	var prev uint32
	for h.len() > 0 {
		w := h.extractMin().weight
		require.GreaterOrEqual(t, w, prev)
		prev = w
	}
}
