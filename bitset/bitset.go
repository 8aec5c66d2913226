// Package bitset provides a 64-bit square-set type used throughout the
// engine to represent boards, attack masks, and occupancy without letting
// the raw integer leak across component boundaries.
package bitset

import "math/bits"

// BitSet is a set of squares 0..63, one bit per square.
type BitSet uint64

// Empty is the empty set.
const Empty BitSet = 0

// Full is the set containing every square.
const Full BitSet = ^BitSet(0)

// Bit returns the singleton set containing sq. sq must be in 0..63.
func Bit(sq int) BitSet {
	return BitSet(1) << uint(sq)
}

// Set returns b with sq added.
func (b BitSet) Set(sq int) BitSet {
	return b | Bit(sq)
}

// Clear returns b with sq removed.
func (b BitSet) Clear(sq int) BitSet {
	return b &^ Bit(sq)
}

// Test reports whether sq is a member of b.
func (b BitSet) Test(sq int) bool {
	return b&Bit(sq) != 0
}

// Popcount returns the number of set squares.
func (b BitSet) Popcount() int {
	return bits.OnesCount64(uint64(b))
}

// LowestSetIndex returns the index of the least significant set bit, or 64
// if b is empty.
func (b BitSet) LowestSetIndex() int {
	return bits.TrailingZeros64(uint64(b))
}

// PopLowest removes and returns the index of the least significant set bit.
// Calling PopLowest on an empty set returns 64 and leaves b unchanged.
func (b *BitSet) PopLowest() int {
	idx := b.LowestSetIndex()
	*b &= *b - 1
	return idx
}

// Any reports whether b has at least one set square.
func (b BitSet) Any() bool { return b != 0 }

// None reports whether b is empty.
func (b BitSet) None() bool { return b == 0 }

// Union returns the set union of b and other.
func (b BitSet) Union(other BitSet) BitSet { return b | other }

// Intersect returns the set intersection of b and other.
func (b BitSet) Intersect(other BitSet) BitSet { return b & other }

// Without returns b with every square of other removed.
func (b BitSet) Without(other BitSet) BitSet { return b &^ other }

// Xor returns the symmetric difference of b and other.
func (b BitSet) Xor(other BitSet) BitSet { return b ^ other }
