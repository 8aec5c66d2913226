package bitset_test

import (
	"testing"

	"chessgoose/bitset"
)

func TestSetClearTest(t *testing.T) {
	b := bitset.Empty
	b = b.Set(5)
	if !b.Test(5) {
		t.Fatalf("expected bit 5 set")
	}
	b = b.Clear(5)
	if b.Test(5) {
		t.Fatalf("expected bit 5 clear")
	}
}

func TestPopcount(t *testing.T) {
	var b bitset.BitSet
	for _, sq := range []int{0, 7, 15, 63} {
		b = b.Set(sq)
	}
	if got := b.Popcount(); got != 4 {
		t.Fatalf("Popcount() = %d, want 4", got)
	}
}

func TestLowestSetIndexAndPopLowest(t *testing.T) {
	b := bitset.Bit(3) | bitset.Bit(10) | bitset.Bit(40)
	if got := b.LowestSetIndex(); got != 3 {
		t.Fatalf("LowestSetIndex() = %d, want 3", got)
	}
	first := b.PopLowest()
	if first != 3 {
		t.Fatalf("PopLowest() = %d, want 3", first)
	}
	if b.Test(3) {
		t.Fatalf("bit 3 should have been removed")
	}
	if !b.Test(10) || !b.Test(40) {
		t.Fatalf("remaining bits lost after PopLowest")
	}
}

func TestSetOps(t *testing.T) {
	a := bitset.Bit(1) | bitset.Bit(2)
	b := bitset.Bit(2) | bitset.Bit(3)
	if got := a.Union(b); got != bitset.Bit(1)|bitset.Bit(2)|bitset.Bit(3) {
		t.Fatalf("Union mismatch: %v", got)
	}
	if got := a.Intersect(b); got != bitset.Bit(2) {
		t.Fatalf("Intersect mismatch: %v", got)
	}
	if got := a.Without(b); got != bitset.Bit(1) {
		t.Fatalf("Without mismatch: %v", got)
	}
}

func TestAnyNone(t *testing.T) {
	if !bitset.Empty.None() || bitset.Empty.Any() {
		t.Fatalf("Empty should be None and not Any")
	}
	if bitset.Full.None() || !bitset.Full.Any() {
		t.Fatalf("Full should be Any and not None")
	}
}
