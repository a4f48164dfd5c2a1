// Package huffman builds static Huffman codes from symbol frequencies.
//
// The code is defined by the shape of the merge tree itself: the two
// lowest-weight nodes are merged repeatedly until a single root remains,
// and each leaf's code is the sequence of 0 (left) and 1 (right)
// branches taken from the root to reach it.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
