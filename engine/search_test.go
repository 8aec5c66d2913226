package engine_test

import (
	"testing"

	"chessgoose/engine"
	gm "chessgoose/goosemg"
)

func TestSearchFindsBackRankMateInOne(t *testing.T) {
	b, err := gm.ParseFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	eng := engine.NewEngine()
	result := eng.IterativeDeepening(b, 2)
	if result.Best.String() != "a1a8" {
		t.Fatalf("expected the back-rank mate a1a8, got %v", result.Best)
	}
	if result.Score != engine.Infinity {
		t.Fatalf("expected a mate score of +Infinity, got %d", result.Score)
	}
}

func TestSearchAvoidsStalemateWhenWinning(t *testing.T) {
	// Qf7/Kg6 vs Kh8: Qg7 is mate (g7 is defended by Kg6, and the queen
	// covers g8/h7), so that is the move the engine should actually find.
	// Leaving the queen on f7 and shuffling the king instead stalemates
	// black, so the search must not settle for a non-mating score here.
	b, err := gm.ParseFEN("7k/5Q2/6K1/8/8/8/8/8 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	eng := engine.NewEngine()
	result := eng.IterativeDeepening(b, 3)
	if result.Score != engine.Infinity {
		t.Fatalf("expected search to find forced mate (+Infinity) at depth 3, got %d", result.Score)
	}
}

func TestIterativeDeepeningReturnsNoMoveWhenRootIsAlreadyRepeated(t *testing.T) {
	b, err := gm.ParseFEN("4k3/8/8/8/8/8/8/4K2N w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	shuffle := []string{"h1g3", "e8d8", "g3h1", "d8e8", "h1g3", "e8d8", "g3h1", "d8e8"}
	for _, s := range shuffle {
		m, err := gm.ParseMoveString(b, s)
		if err != nil {
			t.Fatalf("ParseMoveString(%q) error: %v", s, err)
		}
		if !b.PushMove(m) {
			t.Fatalf("PushMove(%q) failed", s)
		}
	}
	if !b.IsThreefoldRepetition() {
		t.Fatalf("setup error: position should already be a threefold repetition")
	}
	eng := engine.NewEngine()
	// search's threefold-repetition branch (search.go) returns before
	// generating any move, at every depth, so a root that is already a
	// repetition never produces a best move: IterativeDeepening's result
	// stays at its NoMove zero value, per spec.md §4.7's repetition handling.
	result := eng.IterativeDeepening(b, 4)
	if result.Best != gm.NoMove {
		t.Fatalf("expected NoMove for an already-repeated root, got %v", result.Best)
	}
	if result.Score != 0 {
		t.Fatalf("expected score 0 for an already-repeated root, got %d", result.Score)
	}
}
