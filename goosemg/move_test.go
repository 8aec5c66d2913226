package goosemg_test

import (
	"testing"

	gm "chessgoose/goosemg"
)

func TestMoveStringRoundTrip(t *testing.T) {
	b, err := gm.ParseFEN(gm.FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	for _, m := range b.GenerateLegalMoves().Moves {
		s := m.String()
		parsed, err := gm.ParseMoveString(b, s)
		if err != nil {
			t.Fatalf("ParseMoveString(%q) error: %v", s, err)
		}
		if parsed != m {
			t.Fatalf("round trip mismatch for %q: got %v, want %v", s, parsed, m)
		}
	}
}

func TestMoveStringHasNoPromotionSuffix(t *testing.T) {
	b, err := gm.ParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	found := false
	for _, m := range b.GenerateLegalMoves().Moves {
		if m.String() == "a7a8" {
			found = true
		}
		if len(m.String()) != 4 {
			t.Fatalf("move string %q has unexpected length", m.String())
		}
	}
	if !found {
		t.Fatalf("expected a7a8 promotion move")
	}
}

func TestParseMoveStringRejectsIllegal(t *testing.T) {
	b, err := gm.ParseFEN(gm.FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	if _, err := gm.ParseMoveString(b, "e2e5"); err == nil {
		t.Fatalf("expected e2e5 to be rejected as illegal from the start position")
	}
	if _, err := gm.ParseMoveString(b, "z9z9"); err == nil {
		t.Fatalf("expected malformed square to be rejected")
	}
}
