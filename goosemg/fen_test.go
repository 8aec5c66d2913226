package goosemg_test

import (
	"testing"

	gm "chessgoose/goosemg"
)

func TestParseFENRoundTrip(t *testing.T) {
	cases := []string{
		gm.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
	}
	for _, fen := range cases {
		b, err := gm.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q) error: %v", fen, err)
		}
		if got := b.ToFEN(); got != fen {
			t.Fatalf("round trip mismatch: got %q, want %q", got, fen)
		}
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"not a fen",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1", // missing a rank
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
	}
	for _, fen := range bad {
		if _, err := gm.ParseFEN(fen); err == nil {
			t.Fatalf("ParseFEN(%q) should have failed", fen)
		}
	}
}

func TestParseFENSeedsHashAndRepetition(t *testing.T) {
	b, err := gm.ParseFEN(gm.FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	if got, want := b.Hash(), b.ComputeZobrist(); got != want {
		t.Fatalf("Hash() = %#x, want ComputeZobrist() = %#x", got, want)
	}
	if !b.Validate() {
		t.Fatalf("freshly parsed board failed Validate()")
	}
}
