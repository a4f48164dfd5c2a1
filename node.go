package huffman

// Node is a single node of a Huffman tree: either a leaf carrying one
// alphabet symbol, or an internal node synthesized by merging the two
// lowest-weight subtrees.  Internal nodes always have exactly two children;
// leaves have none.
type Node struct {
	symbol Symbol
	weight uint32
	left   *Node
	right  *Node

	// seq is the node's creation order: leaves in input order first, then
	// internal nodes in merge order.  It breaks weight ties in the heap,
	// making construction deterministic for a fixed input.
	seq uint32
}

// Symbol returns the leaf's symbol.  Internal nodes return InvalidSymbol.
func (n *Node) Symbol() Symbol {
	return n.symbol
}

// Weight returns the node's weight: the leaf's input frequency, or the sum
// of both children's weights on internal nodes.
func (n *Node) Weight() uint32 {
	return n.weight
}

// Left returns the left (0-branch) child, or nil on leaves.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right (1-branch) child, or nil on leaves.
func (n *Node) Right() *Node {
	return n.right
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// height returns the number of nodes on the longest path from n down to a
// leaf, or 0 for a nil subtree.
func height(n *Node) int {
	if n == nil {
		return 0
	}
	h := height(n.left)
	if hr := height(n.right); hr > h {
		h = hr
	}
	return 1 + h
}
