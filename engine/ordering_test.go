package engine

import (
	"testing"

	gm "chessgoose/goosemg"
)

func move(from, to int) gm.Move {
	return gm.NewMove(gm.Square(from), gm.Square(to), gm.WhitePawn, gm.NoPiece, gm.NoPiece, gm.FlagNone)
}

func TestPreviousBestRingDedupOnInsert(t *testing.T) {
	var ring PreviousBestRing
	a, b, c := move(8, 16), move(9, 17), move(10, 18)

	ring.Push(a)
	ring.Push(b)
	ring.Push(a) // re-push: should move to front, not duplicate

	if len(ring.moves) != 2 {
		t.Fatalf("expected 2 distinct entries after re-push, got %d", len(ring.moves))
	}
	if ring.moves[0] != a {
		t.Fatalf("expected re-pushed move to be at the front")
	}
	if !ring.Contains(b) {
		t.Fatalf("expected b to still be present")
	}
	_ = c
}

func TestPreviousBestRingCapacity(t *testing.T) {
	var ring PreviousBestRing
	moves := make([]gm.Move, 0, 9)
	for i := 0; i < 9; i++ {
		moves = append(moves, move(i, i+8))
	}
	for _, m := range moves {
		ring.Push(m)
	}
	if len(ring.moves) != previousBestRingSize {
		t.Fatalf("expected ring capped at %d, got %d", previousBestRingSize, len(ring.moves))
	}
	// The seven most recently pushed moves fit; the oldest (moves[0]) must
	// have been evicted, and the very last push must be at the front.
	if ring.Contains(moves[0]) {
		t.Fatalf("expected the oldest push to have been evicted")
	}
	if ring.moves[0] != moves[len(moves)-1] {
		t.Fatalf("expected the most recent push at the front")
	}
}

func TestKillerTableSetGetClear(t *testing.T) {
	var kt KillerTable
	m := move(1, 9)
	kt.Set(3, m)
	if got := kt.Get(3); got != m {
		t.Fatalf("Get(3) = %v, want %v", got, m)
	}
	if got := kt.Get(4); got != gm.NoMove {
		t.Fatalf("Get(4) should be unset, got %v", got)
	}
	kt.Clear()
	if got := kt.Get(3); got != gm.NoMove {
		t.Fatalf("Get(3) after Clear should be unset, got %v", got)
	}
}

func TestReorderMovesPrioritizesRingThenKiller(t *testing.T) {
	a, b, c, k := move(0, 8), move(1, 9), move(2, 10), move(3, 11)
	var ring PreviousBestRing
	ring.Push(a)
	ring.Push(b) // ring order, most recent first: [b, a]

	moves := []gm.Move{c, a, k, b}
	reorderMoves(moves, &ring, k)

	if moves[0] != k {
		t.Fatalf("expected killer move first, got %v", moves[0])
	}
	if moves[1] != b || moves[2] != a {
		t.Fatalf("expected ring order [b, a] after the killer, got [%v, %v]", moves[1], moves[2])
	}
}
