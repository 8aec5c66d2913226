package goosemg

import (
	"testing"

	"chessgoose/bitset"
)

// TestMagicTablesMatchClassical verifies every magic-indexed attack lookup
// against the reference ray-walk generator, for every square and a spread
// of representative occupancy subsets, per spec.md §9's "verified against a
// reference ray-walk generator" requirement.
func TestMagicTablesMatchClassical(t *testing.T) {
	occupancies := []bitset.BitSet{
		bitset.Empty,
		bitset.Full,
		bitset.Bit(0) | bitset.Bit(63) | bitset.Bit(27),
		bitset.Bit(35) | bitset.Bit(20) | bitset.Bit(12) | bitset.Bit(50),
	}
	for sq := 0; sq < 64; sq++ {
		for _, occ := range occupancies {
			gotRook := RookAttacks(sq, occ)
			wantRook := classicalRookAttacks(sq, occ)
			if gotRook != wantRook {
				t.Fatalf("RookAttacks(%d, %#x) = %#x, want %#x", sq, uint64(occ), uint64(gotRook), uint64(wantRook))
			}
			gotBishop := BishopAttacks(sq, occ)
			wantBishop := classicalBishopAttacks(sq, occ)
			if gotBishop != wantBishop {
				t.Fatalf("BishopAttacks(%d, %#x) = %#x, want %#x", sq, uint64(occ), uint64(gotBishop), uint64(wantBishop))
			}
		}
	}
}

func TestBetweenSharedRankFileDiagonal(t *testing.T) {
	if got := Between(0, 7); got != (bitset.Bit(1) | bitset.Bit(2) | bitset.Bit(3) | bitset.Bit(4) | bitset.Bit(5) | bitset.Bit(6)) {
		t.Fatalf("Between(a1,h1) = %#x, want the six squares in between", uint64(got))
	}
	if got := Between(0, 17); got != bitset.Empty {
		t.Fatalf("Between(a1,b3) should be empty (not on a shared line), got %#x", uint64(got))
	}
}
