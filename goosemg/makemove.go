package goosemg

import "chessgoose/bitset"

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// MakeMove applies m to the board. If the move leaves the mover's king in
// check it is rejected: the board is restored to its pre-move state and ok
// is false. On success the returned UndoRecord reverses the move exactly.
func (b *Board) MakeMove(m Move) (ok bool, undo UndoRecord) {
	undo.move = m
	undo.prevCastling = b.castlingRights
	undo.prevEnPassant = b.epSquare
	undo.prevHalfmove = b.halfmoveClock
	undo.prevFullmove = b.fullmoveNumber
	undo.prevZobrist = b.zobristKey
	undo.rookFrom, undo.rookTo = NoSquare, NoSquare
	undo.captured = NoPiece

	from, to := m.From(), m.To()
	moved := m.MovedPiece()
	captured := m.CapturedPiece()
	promo := m.PromotionPiece()
	flag := m.Flags()

	if b.epSquare != NoSquare {
		b.zobristKey ^= zobristEnPassant[b.epSquare.File()]
	}
	b.epSquare = NoSquare

	us := b.sideToMove
	them := us.Other()

	if flag == FlagEnPassant {
		var capSq Square
		var capPiece Piece
		if us == White {
			capSq, capPiece = to-8, BlackPawn
		} else {
			capSq, capPiece = to+8, WhitePawn
		}
		undo.captured = capPiece
		b.pieces[capSq] = NoPiece
		b.occupancy[them] = b.occupancy[them].Clear(int(capSq))
		b.pawns[them] = b.pawns[them].Clear(int(capSq))
		b.zobristKey ^= zobristPiece[capPiece][capSq]
	} else if captured != NoPiece {
		undo.captured = captured
		b.pieces[to] = NoPiece
		b.occupancy[them] = b.occupancy[them].Clear(int(to))
		if bb := b.bitboardFor(them, typeOf(captured)); bb != nil {
			*bb = bb.Clear(int(to))
		}
		b.zobristKey ^= zobristPiece[captured][to]
	}

	if promo != NoPiece {
		b.pieces[from] = NoPiece
		b.occupancy[us] = b.occupancy[us].Clear(int(from))
		b.pawns[us] = b.pawns[us].Clear(int(from))
		b.zobristKey ^= zobristPiece[moved][from]

		b.pieces[to] = promo
		b.occupancy[us] = b.occupancy[us].Set(int(to))
		if bb := b.bitboardFor(us, typeOf(promo)); bb != nil {
			*bb = bb.Set(int(to))
		}
		b.zobristKey ^= zobristPiece[promo][to]
	} else {
		b.pieces[from] = NoPiece
		b.pieces[to] = moved
		mask := bitset.Bit(int(from)) | bitset.Bit(int(to))
		b.occupancy[us] ^= mask
		if bb := b.bitboardFor(us, typeOf(moved)); bb != nil {
			*bb ^= mask
		}
		b.zobristKey ^= zobristPiece[moved][from]
		b.zobristKey ^= zobristPiece[moved][to]
	}

	if flag == FlagCastle {
		var rookFrom, rookTo Square
		var rook Piece
		switch to {
		case 6:
			rookFrom, rookTo, rook = 7, 5, WhiteRook
		case 2:
			rookFrom, rookTo, rook = 0, 3, WhiteRook
		case 62:
			rookFrom, rookTo, rook = 63, 61, BlackRook
		case 58:
			rookFrom, rookTo, rook = 56, 59, BlackRook
		}
		if rookFrom != NoSquare {
			b.pieces[rookFrom] = NoPiece
			b.pieces[rookTo] = rook
			mask := bitset.Bit(int(rookFrom)) | bitset.Bit(int(rookTo))
			b.occupancy[us] ^= mask
			b.rooks[us] ^= mask
			b.zobristKey ^= zobristPiece[rook][rookFrom]
			b.zobristKey ^= zobristPiece[rook][rookTo]
			undo.rookFrom, undo.rookTo = rookFrom, rookTo
		}
	}

	newCR := b.castlingRights
	switch moved {
	case WhiteKing:
		newCR &^= CastleWhiteK | CastleWhiteQ
	case BlackKing:
		newCR &^= CastleBlackK | CastleBlackQ
	}
	if moved == WhiteRook {
		switch from {
		case 0:
			newCR &^= CastleWhiteQ
		case 7:
			newCR &^= CastleWhiteK
		}
	} else if moved == BlackRook {
		switch from {
		case 56:
			newCR &^= CastleBlackQ
		case 63:
			newCR &^= CastleBlackK
		}
	}
	if undo.captured != NoPiece && typeOf(undo.captured) == PieceTypeRook {
		switch to {
		case 0:
			newCR &^= CastleWhiteQ
		case 7:
			newCR &^= CastleWhiteK
		case 56:
			newCR &^= CastleBlackQ
		case 63:
			newCR &^= CastleBlackK
		}
	}
	if newCR != b.castlingRights {
		b.zobristKey ^= zobristCastle[b.castlingRights]
		b.zobristKey ^= zobristCastle[newCR]
		b.castlingRights = newCR
	}

	if typeOf(moved) == PieceTypePawn {
		if abs(to.Rank()-from.Rank()) == 2 {
			var ep Square
			if us == White {
				ep = from + 8
			} else {
				ep = from - 8
			}
			b.epSquare = ep
			b.zobristKey ^= zobristEnPassant[ep.File()]
		}
	}

	b.sideToMove = them
	b.zobristKey ^= zobristSide

	kingBB := b.kings[us]
	if kingBB.None() {
		b.UnmakeMove(m, undo)
		return false, undo
	}
	ks := kingBB.LowestSetIndex()
	needCheck := true
	if typeOf(moved) != PieceTypeKing && flag != FlagEnPassant {
		if !kingRaysUnion[ks].Test(int(from)) {
			needCheck = false
		}
	}
	if needCheck {
		occ := b.occupancy[White] | b.occupancy[Black]
		if b.isSquareAttacked(ks, them, occ) {
			b.UnmakeMove(m, undo)
			return false, undo
		}
	}

	if typeOf(moved) == PieceTypePawn || undo.captured != NoPiece {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if us == Black {
		b.fullmoveNumber++
	}

	return true, undo
}

// UnmakeMove reverses a MakeMove call given the UndoRecord it produced.
func (b *Board) UnmakeMove(m Move, undo UndoRecord) {
	b.sideToMove = b.sideToMove.Other()
	b.zobristKey ^= zobristSide

	if b.epSquare != NoSquare {
		b.zobristKey ^= zobristEnPassant[b.epSquare.File()]
	}

	from, to := m.From(), m.To()
	moved := m.MovedPiece()
	promo := m.PromotionPiece()
	flag := m.Flags()

	us := b.sideToMove
	them := us.Other()

	if flag == FlagCastle && undo.rookFrom != NoSquare {
		rook := WhiteRook
		if moved.Color() == Black {
			rook = BlackRook
		}
		b.pieces[undo.rookTo] = NoPiece
		b.pieces[undo.rookFrom] = rook
		mask := bitset.Bit(int(undo.rookFrom)) | bitset.Bit(int(undo.rookTo))
		b.occupancy[us] ^= mask
		b.rooks[us] ^= mask
	}

	b.pieces[to] = NoPiece
	if promo != NoPiece {
		pawn := WhitePawn
		if moved.Color() == Black {
			pawn = BlackPawn
		}
		b.pieces[from] = pawn
		mask := bitset.Bit(int(from)) | bitset.Bit(int(to))
		b.occupancy[us] ^= mask
		if bb := b.bitboardFor(us, typeOf(promo)); bb != nil {
			*bb = bb.Clear(int(to))
		}
		b.pawns[us] = b.pawns[us].Set(int(from))
	} else {
		b.pieces[from] = moved
		mask := bitset.Bit(int(from)) | bitset.Bit(int(to))
		b.occupancy[us] ^= mask
		if bb := b.bitboardFor(us, typeOf(moved)); bb != nil {
			*bb ^= mask
		}
	}

	if undo.captured != NoPiece {
		if flag == FlagEnPassant {
			var capSq Square
			if moved.Color() == White {
				capSq = to - 8
			} else {
				capSq = to + 8
			}
			b.pieces[capSq] = undo.captured
			b.occupancy[them] = b.occupancy[them].Set(int(capSq))
			b.pawns[them] = b.pawns[them].Set(int(capSq))
		} else {
			b.pieces[to] = undo.captured
			b.occupancy[them] = b.occupancy[them].Set(int(to))
			if bb := b.bitboardFor(them, typeOf(undo.captured)); bb != nil {
				*bb = bb.Set(int(to))
			}
		}
	}

	b.castlingRights = undo.prevCastling
	b.epSquare = undo.prevEnPassant
	if b.epSquare != NoSquare {
		b.zobristKey ^= zobristEnPassant[b.epSquare.File()]
	}
	b.halfmoveClock = undo.prevHalfmove
	b.fullmoveNumber = undo.prevFullmove

	// Full-hash restore rather than reversing each incremental XOR keeps
	// UnmakeMove exact even if a future edit adds a Zobrist feature this
	// function forgets to unwind by hand.
	b.zobristKey = undo.prevZobrist
}
