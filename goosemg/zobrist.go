package goosemg

import "math/rand"

// Zobrist key tables: piece-on-square, castling-rights state, en-passant
// file, and side-to-move, populated once from a fixed seed so hashes are
// reproducible across runs (required for testing and repetition detection).
var (
	zobristPiece     [16][64]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [8]uint64
	zobristSide      uint64
)

func init() {
	initZobrist()
}

func initZobrist() {
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := 0; p < 16; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// ComputeZobrist recomputes the Zobrist hash of the board from scratch. Used
// to verify the incrementally maintained hash kept by MakeMove/UnmakeMove.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64
	for sq := 0; sq < 64; sq++ {
		if p := b.pieces[sq]; p != NoPiece {
			key ^= zobristPiece[p][sq]
		}
	}
	if b.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[b.castlingRights]
	if b.epSquare != NoSquare {
		key ^= zobristEnPassant[b.epSquare.File()]
	}
	return key
}
