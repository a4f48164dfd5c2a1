package huffman

import (
	"fmt"
	"strconv"
)

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit of the
	// sequence is the most significant of the Size valid bits, so the
	// string form reads in root-to-leaf order.
	Bits uint32
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint32) Code {
	return Code{Size: size, Bits: bits}
}

// Bit returns the i'th bit of the sequence, counting from 0 at the first
// branch taken from the root.
func (hc Code) Bit(i byte) byte {
	return byte(hc.Bits>>(hc.Size-1-i)) & 1
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}

// appendBit returns the Code extended by one branch bit.  The receiver is
// not modified, so sibling branches of a tree walk never observe each
// other's bits.
func (hc Code) appendBit(bit byte) Code {
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | uint32(bit&1)}
}
