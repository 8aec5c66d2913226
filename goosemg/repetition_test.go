package goosemg_test

import (
	"testing"

	gm "chessgoose/goosemg"
)

// TestThreefoldRepetitionKnightShuffle plays a repeating knight shuffle and
// checks that the position is reported as a threefold repetition only once
// it has actually recurred three times: the initial occurrence seeded by
// ParseFEN, plus two returns via the shuffle, per spec.md §8's knight
// shuffle scenario.
func TestThreefoldRepetitionKnightShuffle(t *testing.T) {
	b, err := gm.ParseFEN("4k3/8/8/8/8/8/8/4K2N w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	if b.IsThreefoldRepetition() {
		t.Fatalf("starting position should not be a repetition")
	}

	shuffle := []string{"h1g3", "e8d8", "g3h1", "d8e8"}
	playShuffle := func(round int) {
		for _, s := range shuffle {
			m, err := gm.ParseMoveString(b, s)
			if err != nil {
				t.Fatalf("round %d: ParseMoveString(%q) error: %v", round, s, err)
			}
			if !b.PushMove(m) {
				t.Fatalf("round %d: PushMove(%q) failed", round, s)
			}
		}
	}

	playShuffle(1)
	if b.IsThreefoldRepetition() {
		t.Fatalf("position should not yet be a threefold repetition after only one shuffle (second occurrence)")
	}

	playShuffle(2)
	if !b.IsThreefoldRepetition() {
		t.Fatalf("expected threefold repetition after the position recurred a third time")
	}
}
