package huffman

import (
	"math"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol marks a node that carries no symbol of its own.  Internal
// (merge) nodes report it from their Symbol accessor.
const InvalidSymbol = Symbol(-1)
