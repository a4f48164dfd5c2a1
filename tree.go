package huffman

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Tree is an immutable Huffman tree built from a symbol/frequency table.
type Tree struct {
	root      *Node
	numLeaves int
}

// SymbolCode pairs a leaf symbol with its assigned code.
type SymbolCode struct {
	Symbol Symbol
	Code   Code
}

// New builds a Huffman tree for the given symbols and their frequencies.
// The two slices must have the same nonzero length.  Duplicate symbols are
// permitted and kept as independent leaves.
//
// Construction is the classic greedy merge: the two lowest-weight nodes are
// extracted from a min-heap and combined under a new internal node (the
// first one extracted becomes the left child) until a single root remains,
// after exactly len(symbols)-1 merges.  Weight ties resolve by creation
// order, so the result is deterministic for a fixed input.
func New(symbols []Symbol, frequencies []uint32) (*Tree, error) {
	if len(symbols) != len(frequencies) {
		return nil, fmt.Errorf("mismatched input lengths: %d symbols, %d frequencies", len(symbols), len(frequencies))
	}
	if len(symbols) == 0 {
		return nil, fmt.Errorf("cannot build a Huffman tree for an empty alphabet")
	}
	assert.Assertf(len(symbols) <= int(MaxSymbol), "len(symbols) %d > MaxSymbol %d", len(symbols), int(MaxSymbol))

	h := buildHeap(symbols, frequencies)

	seq := uint32(len(symbols))
	for h.len() > 1 {
		a := h.extractMin()
		b := h.extractMin()

		// Compute the merged weight using saturating addition.
		weight := a.weight + b.weight
		if weight < a.weight {
			weight = math.MaxUint32
		}

		h.push(&Node{
			symbol: InvalidSymbol,
			weight: weight,
			left:   a,
			right:  b,
			seq:    seq,
		})
		seq++
	}

	return &Tree{root: h.extractMin(), numLeaves: len(symbols)}, nil
}

// Codes is a convenience function that builds the tree for the given table
// and returns the resulting codes.
func Codes(symbols []Symbol, frequencies []uint32) ([]SymbolCode, error) {
	t, err := New(symbols, frequencies)
	if err != nil {
		return nil, err
	}
	return t.Codes(), nil
}

// Codes returns the (symbol, code) pair for every leaf, in tree pre-order:
// descending a left branch appends a 0 bit, a right branch a 1 bit, and
// the accumulated path at each leaf is that leaf's code.  No two codes
// share a prefix.
//
// A one-leaf tree is a special case: its sole symbol receives the
// single-bit code "0" rather than an empty code, since a zero-length
// codeword cannot be written to a bitstream.
func (t *Tree) Codes() []SymbolCode {
	out := make([]SymbolCode, 0, t.numLeaves)
	if t.root.IsLeaf() {
		return append(out, SymbolCode{t.root.symbol, MakeCode(1, 0)})
	}
	return appendCodes(out, t.root, Code{})
}

func appendCodes(out []SymbolCode, n *Node, path Code) []SymbolCode {
	if n.IsLeaf() {
		return append(out, SymbolCode{n.symbol, path})
	}
	out = appendCodes(out, n.left, path.appendBit(0))
	return appendCodes(out, n.right, path.appendBit(1))
}

// Root returns the root node of the tree.
func (t *Tree) Root() *Node {
	return t.root
}

// NumLeaves returns the number of leaves, one per input table entry.
func (t *Tree) NumLeaves() int {
	return t.numLeaves
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	return height(t.root)
}

// MinSize is the bit length of the shortest assigned code.
func (t *Tree) MinSize() byte {
	minSize, _ := t.sizeRange()
	return minSize
}

// MaxSize is the bit length of the longest assigned code.
func (t *Tree) MaxSize() byte {
	_, maxSize := t.sizeRange()
	return maxSize
}

func (t *Tree) sizeRange() (minSize byte, maxSize byte) {
	codes := t.Codes()
	minSize = codes[0].Code.Size
	maxSize = minSize
	for _, sc := range codes[1:] {
		if size := sc.Code.Size; size < minSize {
			minSize = size
		} else if size > maxSize {
			maxSize = size
		}
	}
	return minSize, maxSize
}

// WeightedLength returns the sum over all leaves of weight times code
// length, the quantity a Huffman code minimizes.
func (t *Tree) WeightedLength() uint64 {
	if t.root.IsLeaf() {
		// The sole leaf holds the 1-bit code "0".
		return uint64(t.root.weight)
	}
	return weightedLength(t.root, 0)
}

func weightedLength(n *Node, depth uint64) uint64 {
	if n.IsLeaf() {
		return uint64(n.weight) * depth
	}
	return weightedLength(n.left, depth+1) + weightedLength(n.right, depth+1)
}

// Dump writes a programmer-readable debugging dump of the tree's code
// assignments to the given writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.MaxSize())
	for _, sc := range t.Codes() {
		fmt.Fprintf(&buf, "\tCode(%d) = %s\n", sc.Symbol, sc.Code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
