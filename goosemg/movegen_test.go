package goosemg_test

import (
	"testing"

	gm "chessgoose/goosemg"
)

// TestPerftStartPos and its siblings check the three canonical perft tables.
func TestPerftStartPos(t *testing.T) {
	b, err := gm.ParseFEN(gm.FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	if got, want := b.Perft(4), uint64(197281); got != want {
		t.Fatalf("Perft(4) from start position = %d, want %d", got, want)
	}
}

func TestPerftKiwipete(t *testing.T) {
	b, err := gm.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	if got, want := b.Perft(3), uint64(97862); got != want {
		t.Fatalf("Perft(3) from Kiwipete = %d, want %d", got, want)
	}
}

func TestPerftPosition3(t *testing.T) {
	b, err := gm.ParseFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	if got, want := b.Perft(4), uint64(43238); got != want {
		t.Fatalf("Perft(4) from position 3 = %d, want %d", got, want)
	}
}

func moveStrings(list gm.MoveList) map[string]gm.Move {
	out := make(map[string]gm.Move, len(list.Moves))
	for _, m := range list.Moves {
		out[m.String()] = m
	}
	return out
}

func TestEnPassantLegalityAndExecution(t *testing.T) {
	b, err := gm.ParseFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	moves := moveStrings(b.GenerateLegalMoves())
	m, ok := moves["e5d6"]
	if !ok {
		t.Fatalf("expected e5d6 en-passant capture to be legal, got moves %v", moves)
	}
	if !b.PushMove(m) {
		t.Fatalf("PushMove(e5d6) failed")
	}
	if b.PieceAt(gm.Square(35)) != gm.NoPiece { // d5
		t.Fatalf("expected d5 to be vacated after en-passant capture")
	}
	if b.PieceAt(gm.Square(43)) != gm.WhitePawn { // d6
		t.Fatalf("expected white pawn on d6 after en-passant capture")
	}
}

func TestEnPassantDiscoveredCheckIsIllegal(t *testing.T) {
	// White king f5, black rook a5, black pawn d5 (just played d7-d5), white
	// pawn e5: capturing en passant vanishes both d5 and e5 from the rank,
	// laying the king open to the a5 rook along a now-empty rank.
	b, err := gm.ParseFEN("4k3/8/8/r2pPK2/8/8/8/8 w - d6 0 1")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	moves := moveStrings(b.GenerateLegalMoves())
	if _, ok := moves["e5d6"]; ok {
		t.Fatalf("expected e5d6 en-passant capture to be illegal: it exposes the king to the a5 rook")
	}
}

func TestCastlingBlockedThroughCheckIsIllegal(t *testing.T) {
	// White king on e1, rook on h1, black rook on f8 attacking f1: O-O must
	// not appear since the king would pass through an attacked square.
	b, err := gm.ParseFEN("5r1k/8/8/8/8/8/8/4K2R w K - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	moves := moveStrings(b.GenerateLegalMoves())
	if _, ok := moves["e1g1"]; ok {
		t.Fatalf("expected e1g1 castling to be illegal while f1 is attacked")
	}
}

func TestCastlingAvailableWhenClear(t *testing.T) {
	b, err := gm.ParseFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	moves := moveStrings(b.GenerateLegalMoves())
	m, ok := moves["e1g1"]
	if !ok {
		t.Fatalf("expected e1g1 castling to be legal")
	}
	if !b.PushMove(m) {
		t.Fatalf("PushMove(e1g1) failed")
	}
	if b.PieceAt(gm.Square(6)) != gm.WhiteKing || b.PieceAt(gm.Square(5)) != gm.WhiteRook {
		t.Fatalf("expected king on g1 and rook on f1 after castling")
	}
}

func TestPromotionLegalityAndExecution(t *testing.T) {
	b, err := gm.ParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	moves := moveStrings(b.GenerateLegalMoves())
	m, ok := moves["a7a8"]
	if !ok {
		t.Fatalf("expected a7a8 promotion to be legal, got %v", moves)
	}
	if !b.PushMove(m) {
		t.Fatalf("PushMove(a7a8) failed")
	}
	if b.PieceAt(gm.Square(56)) != gm.WhiteQueen {
		t.Fatalf("expected a white queen on a8 after promotion")
	}
}

func TestCheckmateAndStalemateDetection(t *testing.T) {
	mate, err := gm.ParseFEN("R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	if !mate.InCheck(gm.Black) {
		t.Fatalf("expected black king in check")
	}

	stalemate, err := gm.ParseFEN("7k/8/6Q1/8/8/8/8/6K1 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	if stalemate.InCheck(gm.Black) {
		t.Fatalf("expected black king not in check")
	}
	if !stalemate.InStalemate() {
		t.Fatalf("expected stalemate")
	}
}
