package goosemg

import (
	"chessgoose/bitset"
)

// maxHistoryDepth bounds the move-history stack. Any game or search line
// longer than this is a programmer error, not a position that can occur in
// practice, and PushMove aborts rather than growing unbounded.
const maxHistoryDepth = 512

// UndoRecord captures everything needed to reverse one MakeMove call.
type UndoRecord struct {
	move             Move
	captured         Piece
	prevCastling     CastlingRights
	prevEnPassant    Square
	prevHalfmove     int
	prevFullmove     int
	prevZobrist      uint64
	rookFrom, rookTo Square
}

// Bitboards exposes one side's per-piece-type occupancy.
type Bitboards struct {
	Pawns, Knights, Bishops, Rooks, Queens, Kings, All bitset.BitSet
}

// Board is the central position representation: twelve piece bitsets, side
// to move, castling rights, en-passant target, incremental Zobrist hash,
// repetition counter, and a bounded move-history stack.
type Board struct {
	pawns, knights, bishops, rooks, queens, kings [2]bitset.BitSet
	occupancy                                     [2]bitset.BitSet
	pieces                                        [64]Piece

	sideToMove     Color
	castlingRights CastlingRights
	epSquare       Square
	halfmoveClock  int
	fullmoveNumber int
	zobristKey     uint64

	repetition map[uint64]int
	history    [maxHistoryDepth]UndoRecord
	historyLen int
}

// NewBoard returns an empty board (no pieces, White to move). Callers
// typically populate it via ParseFEN.
func NewBoard() *Board {
	b := &Board{epSquare: NoSquare}
	b.repetition = make(map[uint64]int, 64)
	return b
}

func colorOf(p Piece) Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

func typeOf(p Piece) PieceType { return PieceType(p & 7) }

func (b *Board) bitboardFor(color Color, pt PieceType) *bitset.BitSet {
	ci := int(color)
	switch pt {
	case PieceTypePawn:
		return &b.pawns[ci]
	case PieceTypeKnight:
		return &b.knights[ci]
	case PieceTypeBishop:
		return &b.bishops[ci]
	case PieceTypeRook:
		return &b.rooks[ci]
	case PieceTypeQueen:
		return &b.queens[ci]
	case PieceTypeKing:
		return &b.kings[ci]
	}
	return nil
}

// addPiece places p on sq (assumed empty) and updates occupancy and hash.
func (b *Board) addPiece(sq Square, p Piece) {
	if p == NoPiece {
		return
	}
	ci := int(colorOf(p))
	b.pieces[sq] = p
	b.occupancy[ci] = b.occupancy[ci].Set(int(sq))
	if bb := b.bitboardFor(colorOf(p), typeOf(p)); bb != nil {
		*bb = bb.Set(int(sq))
	}
	b.zobristKey ^= zobristPiece[p][sq]
}

// removePiece clears sq and returns the piece that was there (NoPiece if empty).
func (b *Board) removePiece(sq Square) Piece {
	p := b.pieces[sq]
	if p == NoPiece {
		return NoPiece
	}
	ci := int(colorOf(p))
	b.pieces[sq] = NoPiece
	b.occupancy[ci] = b.occupancy[ci].Clear(int(sq))
	if bb := b.bitboardFor(colorOf(p), typeOf(p)); bb != nil {
		*bb = bb.Clear(int(sq))
	}
	b.zobristKey ^= zobristPiece[p][sq]
	return p
}

// SetPiece places p on sq, replacing anything there, keeping bitboards and
// hash consistent.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.removePiece(sq)
	b.addPiece(sq, p)
}

// PieceAt returns the piece occupying sq, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece { return b.pieces[sq] }

// AllOccupancy returns the union of both sides' occupied squares.
func (b *Board) AllOccupancy() bitset.BitSet { return b.occupancy[White] | b.occupancy[Black] }

// ColorOccupancy returns the occupied squares of one side.
func (b *Board) ColorOccupancy(c Color) bitset.BitSet { return b.occupancy[c] }

// PieceBitboard returns the bitset of one side's pieces of one type.
func (b *Board) PieceBitboard(c Color, pt PieceType) bitset.BitSet {
	if bb := b.bitboardFor(c, pt); bb != nil {
		return *bb
	}
	return bitset.Empty
}

// SideBitboards returns a snapshot of one side's per-type bitboards.
func (b *Board) SideBitboards(c Color) Bitboards {
	ci := int(c)
	return Bitboards{
		Pawns: b.pawns[ci], Knights: b.knights[ci], Bishops: b.bishops[ci],
		Rooks: b.rooks[ci], Queens: b.queens[ci], Kings: b.kings[ci],
		All: b.occupancy[ci],
	}
}

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// CastlingRights returns the current castling-rights bitmask.
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }

// EnPassantSquare returns the current en-passant target, or NoSquare.
func (b *Board) EnPassantSquare() Square { return b.epSquare }

// Hash returns the incrementally maintained Zobrist hash.
func (b *Board) Hash() uint64 { return b.zobristKey }

// HalfmoveClock returns the half-move clock (tracked for FEN round-tripping;
// the search never consults it for draw claims).
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full-move counter.
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// IsDrawBy50 reports whether the 50-move rule would allow a draw claim.
// Exposed for completeness; the search's draw handling never calls it.
func (b *Board) IsDrawBy50() bool { return b.halfmoveClock >= 100 }

// KingSquare returns the square of color's king, or NoSquare if absent
// (which should never happen on a valid position).
func (b *Board) KingSquare(color Color) Square {
	kb := b.kings[color]
	if kb.None() {
		return NoSquare
	}
	return Square(kb.LowestSetIndex())
}

// IsThreefoldRepetition reports whether the current position's Zobrist hash
// has occurred three or more times across the game line reachable via
// PushMove/PopMove.
func (b *Board) IsThreefoldRepetition() bool {
	return b.repetition[b.zobristKey] >= 3
}

// PushMove makes m if legal, records it on the bounded history stack, and
// registers the resulting hash in the repetition counter. Returns false
// (leaving the board unchanged) if m is illegal.
func (b *Board) PushMove(m Move) bool {
	if b.historyLen >= maxHistoryDepth {
		panic("goosemg: move history overflow")
	}
	ok, undo := b.MakeMove(m)
	if !ok {
		return false
	}
	b.history[b.historyLen] = undo
	b.historyLen++
	b.repetition[b.zobristKey]++
	return true
}

// PopMove undoes the most recent PushMove.
func (b *Board) PopMove() {
	if b.historyLen == 0 {
		panic("goosemg: PopMove: empty history")
	}
	b.repetition[b.zobristKey]--
	if b.repetition[b.zobristKey] <= 0 {
		delete(b.repetition, b.zobristKey)
	}
	b.historyLen--
	undo := b.history[b.historyLen]
	b.UnmakeMove(undo.move, undo)
}

// seedRepetition registers the board's current hash as the first occurrence
// of the game line, called once after loading a position.
func (b *Board) seedRepetition() {
	b.repetition[b.zobristKey] = 1
}

// Validate checks internal consistency between pieces[], the per-piece
// bitboards, occupancy, and the incremental Zobrist hash. Intended for
// tests and invariant assertions, not the hot path.
func (b *Board) Validate() bool {
	var occ [2]bitset.BitSet
	var pawns, knights, bishops, rooks, queens, kings [2]bitset.BitSet
	for sq := 0; sq < 64; sq++ {
		p := b.pieces[sq]
		if p == NoPiece {
			continue
		}
		ci := int(colorOf(p))
		occ[ci] = occ[ci].Set(sq)
		switch typeOf(p) {
		case PieceTypePawn:
			pawns[ci] = pawns[ci].Set(sq)
		case PieceTypeKnight:
			knights[ci] = knights[ci].Set(sq)
		case PieceTypeBishop:
			bishops[ci] = bishops[ci].Set(sq)
		case PieceTypeRook:
			rooks[ci] = rooks[ci].Set(sq)
		case PieceTypeQueen:
			queens[ci] = queens[ci].Set(sq)
		case PieceTypeKing:
			kings[ci] = kings[ci].Set(sq)
		}
	}
	if occ != b.occupancy || pawns != b.pawns || knights != b.knights ||
		bishops != b.bishops || rooks != b.rooks || queens != b.queens || kings != b.kings {
		return false
	}
	return b.zobristKey == b.ComputeZobrist()
}
