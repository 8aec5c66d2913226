package goosemg

import "chessgoose/bitset"

// MaxMoves is a hard per-position move-count cap; no legal chess position
// exceeds it.
const MaxMoves = 218

// MoveList is the result of GenerateLegalMoves. Moves is ordered per the
// generator's ordering contract: captures, then quiet moves whose origin is
// under attack, then castling moves, then remaining quiet moves. CaptureEnd
// is the index at which quiet moves begin.
type MoveList struct {
	Moves      []Move
	CaptureEnd int
}

// InCheck reports whether color's king is currently attacked.
func (b *Board) InCheck(color Color) bool {
	ksq := b.KingSquare(color)
	if ksq == NoSquare {
		return false
	}
	return b.isSquareAttacked(int(ksq), color.Other(), b.AllOccupancy())
}

// isSquareAttacked reports whether sq is attacked by attacker given occ.
// This is the plain (without-protection) query: it does not special-case
// the friendly king's own occupancy, and is used everywhere except the
// king's own destination-safety test.
func (b *Board) isSquareAttacked(sq int, attacker Color, occ bitset.BitSet) bool {
	if PawnAttackSquares(attacker.Other(), sq).Intersect(b.PieceBitboard(attacker, PieceTypePawn)).Any() {
		return true
	}
	if KnightAttacks(sq).Intersect(b.PieceBitboard(attacker, PieceTypeKnight)).Any() {
		return true
	}
	if KingStepAttacks(sq).Intersect(b.PieceBitboard(attacker, PieceTypeKing)).Any() {
		return true
	}
	rq := b.PieceBitboard(attacker, PieceTypeRook) | b.PieceBitboard(attacker, PieceTypeQueen)
	if rq.Any() && RookAttacks(sq, occ).Intersect(rq).Any() {
		return true
	}
	bq := b.PieceBitboard(attacker, PieceTypeBishop) | b.PieceBitboard(attacker, PieceTypeQueen)
	if bq.Any() && BishopAttacks(sq, occ).Intersect(bq).Any() {
		return true
	}
	return false
}

// attackedSquares returns every square attacked by attacker given occ, used
// for the king's "with protection" destination-safety test (§4.3.1): occ is
// expected to already exclude the friendly king's own square, and the
// result is not masked by attacker's own occupancy, so a square defended by
// another attacker piece still counts as attacked.
func (b *Board) attackedSquares(attacker Color, occ bitset.BitSet) bitset.BitSet {
	var attacked bitset.BitSet
	pawns := b.PieceBitboard(attacker, PieceTypePawn)
	for pawns.Any() {
		attacked |= PawnAttackSquares(attacker, pawns.PopLowest())
	}
	knights := b.PieceBitboard(attacker, PieceTypeKnight)
	for knights.Any() {
		attacked |= KnightAttacks(knights.PopLowest())
	}
	kingsBB := b.PieceBitboard(attacker, PieceTypeKing)
	for kingsBB.Any() {
		attacked |= KingStepAttacks(kingsBB.PopLowest())
	}
	rq := b.PieceBitboard(attacker, PieceTypeRook) | b.PieceBitboard(attacker, PieceTypeQueen)
	for rq.Any() {
		attacked |= RookAttacks(rq.PopLowest(), occ)
	}
	bq := b.PieceBitboard(attacker, PieceTypeBishop) | b.PieceBitboard(attacker, PieceTypeQueen)
	for bq.Any() {
		attacked |= BishopAttacks(bq.PopLowest(), occ)
	}
	return attacked
}

// computeCheckAndPins finds us's checkers (collapsed into a check mask) and
// pinned pieces (each with its own allowed-destination mask), per §4.3
// steps 1-2.
func (b *Board) computeCheckAndPins(us Color) (checkMask bitset.BitSet, pinned bitset.BitSet, pinMask [64]bitset.BitSet) {
	them := us.Other()
	ksq := int(b.KingSquare(us))
	occ := b.AllOccupancy()

	var checkers bitset.BitSet
	checkers |= PawnAttackSquares(them.Other(), ksq).Intersect(b.PieceBitboard(them, PieceTypePawn))
	checkers |= KnightAttacks(ksq).Intersect(b.PieceBitboard(them, PieceTypeKnight))
	rq := b.PieceBitboard(them, PieceTypeRook) | b.PieceBitboard(them, PieceTypeQueen)
	if rq.Any() {
		checkers |= RookAttacks(ksq, occ).Intersect(rq)
	}
	bq := b.PieceBitboard(them, PieceTypeBishop) | b.PieceBitboard(them, PieceTypeQueen)
	if bq.Any() {
		checkers |= BishopAttacks(ksq, occ).Intersect(bq)
	}

	switch n := checkers.Popcount(); {
	case n == 0:
		checkMask = bitset.Full
	case n == 1:
		c := checkers.LowestSetIndex()
		checkMask = Between(ksq, c).Set(c)
	default:
		checkMask = bitset.Empty
	}

	candidates := (rookRayFull[ksq] & rq) | (bishopRayFull[ksq] & bq)
	for candidates.Any() {
		attackerSq := candidates.PopLowest()
		betweenBits := Between(ksq, attackerSq)
		blockers := betweenBits & occ
		if blockers.Popcount() == 1 {
			pinnedSq := blockers.LowestSetIndex()
			pinned = pinned.Set(pinnedSq)
			pinMask[pinnedSq] = betweenBits.Set(attackerSq)
		}
	}
	return checkMask, pinned, pinMask
}

type moveBuckets struct {
	captures, threatened, castles, quiets []Move
}

func (mb *moveBuckets) addCapture(m Move) { mb.captures = append(mb.captures, m) }
func (mb *moveBuckets) addCastle(m Move)  { mb.castles = append(mb.castles, m) }

// addQuiet places m in the "threatened" bucket if its origin square is
// currently attacked by the opponent (without-protection query, per the
// design note that only the king's own move generation uses the
// with-protection variant), otherwise the plain quiets bucket.
func (b *Board) addQuiet(mb *moveBuckets, m Move, us Color, occ bitset.BitSet) {
	if b.isSquareAttacked(int(m.From()), us.Other(), occ) {
		mb.threatened = append(mb.threatened, m)
	} else {
		mb.quiets = append(mb.quiets, m)
	}
}

func (mb *moveBuckets) collect() MoveList {
	moves := make([]Move, 0, len(mb.captures)+len(mb.threatened)+len(mb.castles)+len(mb.quiets))
	moves = append(moves, mb.captures...)
	captureEnd := len(moves)
	moves = append(moves, mb.threatened...)
	moves = append(moves, mb.castles...)
	moves = append(moves, mb.quiets...)
	return MoveList{Moves: moves, CaptureEnd: captureEnd}
}

// GenerateLegalMoves generates every legal move for the side to move,
// ordered per §4.3's ordering contract.
func (b *Board) GenerateLegalMoves() MoveList {
	us := b.SideToMove()
	them := us.Other()
	occ := b.AllOccupancy()
	usOcc := b.ColorOccupancy(us)
	themOcc := b.ColorOccupancy(them)
	ksq := int(b.KingSquare(us))

	checkMask, pinned, pinMask := b.computeCheckAndPins(us)

	var mb moveBuckets

	b.generatePawnMoves(&mb, us, occ, themOcc, pinned, pinMask, checkMask)
	b.generateStepPieceMoves(&mb, us, PieceTypeKnight, KnightAttacks, occ, usOcc, pinned, pinMask, checkMask)
	b.generateSliderMoves(&mb, us, PieceTypeBishop, occ, usOcc, pinned, pinMask, checkMask)
	b.generateSliderMoves(&mb, us, PieceTypeRook, occ, usOcc, pinned, pinMask, checkMask)
	b.generateSliderMoves(&mb, us, PieceTypeQueen, occ, usOcc, pinned, pinMask, checkMask)
	b.generateKingMoves(&mb, us, ksq, occ, usOcc)

	return mb.collect()
}

func (b *Board) generatePawnMoves(mb *moveBuckets, us Color, occ, themOcc bitset.BitSet, pinned bitset.BitSet, pinMask [64]bitset.BitSet, checkMask bitset.BitSet) {
	them := us.Other()
	forward := 8
	startRank, promoRank := 1, 7
	if us == Black {
		forward = -8
		startRank, promoRank = 6, 0
	}
	movedPawn := PieceFromType(us, PieceTypePawn)
	queenPromo := PieceFromType(us, PieceTypeQueen)

	pawns := b.PieceBitboard(us, PieceTypePawn)
	for pawns.Any() {
		from := pawns.PopLowest()
		pin := bitset.Full
		if pinned.Test(from) {
			pin = pinMask[from]
		}
		fromSq := Square(from)

		to1 := from + forward
		if to1 >= 0 && to1 < 64 && b.PieceAt(Square(to1)) == NoPiece {
			if bitset.Bit(to1).Intersect(pin).Intersect(checkMask).Any() {
				b.addPawnAdvance(mb, us, fromSq, Square(to1), movedPawn, queenPromo, promoRank, occ)
			}
			if fromSq.Rank() == startRank {
				to2 := from + 2*forward
				if b.PieceAt(Square(to2)) == NoPiece && bitset.Bit(to2).Intersect(pin).Intersect(checkMask).Any() {
					b.addQuiet(mb, NewMove(fromSq, Square(to2), movedPawn, NoPiece, NoPiece, FlagNone), us, occ)
				}
			}
		}

		captures := PawnAttackSquares(us, from).Intersect(themOcc).Intersect(pin).Intersect(checkMask)
		for captures.Any() {
			to := captures.PopLowest()
			captured := b.PieceAt(Square(to))
			if to/8 == promoRank {
				mb.addCapture(NewMove(fromSq, Square(to), movedPawn, captured, queenPromo, FlagNone))
			} else {
				mb.addCapture(NewMove(fromSq, Square(to), movedPawn, captured, NoPiece, FlagNone))
			}
		}

		if b.EnPassantSquare() != NoSquare {
			epSq := int(b.EnPassantSquare())
			if PawnAttackSquares(us, from).Test(epSq) {
				capturedPawnSq := epSq - forward
				allowed := bitset.Bit(epSq).Intersect(checkMask).Any() || bitset.Bit(capturedPawnSq).Intersect(checkMask).Any()
				if allowed && pin.Test(epSq) && !b.enPassantExposesCheck(us, from, capturedPawnSq) {
					capturedPawn := PieceFromType(them, PieceTypePawn)
					mb.addCapture(NewMove(fromSq, Square(epSq), movedPawn, capturedPawn, NoPiece, FlagEnPassant))
				}
			}
		}
	}
}

// enPassantExposesCheck reports whether capturing en passant would remove
// both the capturing and captured pawns from a rank the king shares with an
// enemy rook or queen, exposing a horizontal discovered check that the
// ordinary single-blocker pin scan in computeCheckAndPins never sees (it
// only accounts for one piece disappearing between king and slider, not
// two, which is exactly what an en-passant capture does).
func (b *Board) enPassantExposesCheck(us Color, fromSq, capturedSq int) bool {
	ksq := b.KingSquare(us)
	if ksq == NoSquare || int(ksq)/8 != fromSq/8 {
		return false
	}
	them := us.Other()
	occ := b.AllOccupancy().Clear(fromSq).Clear(capturedSq)
	rq := b.PieceBitboard(them, PieceTypeRook) | b.PieceBitboard(them, PieceTypeQueen)
	return RookAttacks(int(ksq), occ).Intersect(rq).Any()
}

func (b *Board) addPawnAdvance(mb *moveBuckets, us Color, from, to Square, movedPawn, queenPromo Piece, promoRank int, occ bitset.BitSet) {
	if int(to)/8 == promoRank {
		b.addQuiet(mb, NewMove(from, to, movedPawn, NoPiece, queenPromo, FlagNone), us, occ)
	} else {
		b.addQuiet(mb, NewMove(from, to, movedPawn, NoPiece, NoPiece, FlagNone), us, occ)
	}
}

func (b *Board) generateStepPieceMoves(mb *moveBuckets, us Color, pt PieceType, attacksFn func(int) bitset.BitSet, occ, usOcc bitset.BitSet, pinned bitset.BitSet, pinMask [64]bitset.BitSet, checkMask bitset.BitSet) {
	piece := PieceFromType(us, pt)
	pieces := b.PieceBitboard(us, pt)
	for pieces.Any() {
		from := pieces.PopLowest()
		pin := bitset.Full
		if pinned.Test(from) {
			pin = pinMask[from]
		}
		dest := attacksFn(from).Without(usOcc).Intersect(pin).Intersect(checkMask)
		for dest.Any() {
			to := dest.PopLowest()
			captured := b.PieceAt(Square(to))
			m := NewMove(Square(from), Square(to), piece, captured, NoPiece, FlagNone)
			if captured != NoPiece {
				mb.addCapture(m)
			} else {
				b.addQuiet(mb, m, us, occ)
			}
		}
	}
}

func (b *Board) generateSliderMoves(mb *moveBuckets, us Color, pt PieceType, occ, usOcc bitset.BitSet, pinned bitset.BitSet, pinMask [64]bitset.BitSet, checkMask bitset.BitSet) {
	piece := PieceFromType(us, pt)
	pieces := b.PieceBitboard(us, pt)
	for pieces.Any() {
		from := pieces.PopLowest()
		pin := bitset.Full
		if pinned.Test(from) {
			pin = pinMask[from]
		}
		var attacks bitset.BitSet
		switch pt {
		case PieceTypeBishop:
			attacks = BishopAttacks(from, occ)
		case PieceTypeRook:
			attacks = RookAttacks(from, occ)
		case PieceTypeQueen:
			attacks = QueenAttacks(from, occ)
		}
		dest := attacks.Without(usOcc).Intersect(pin).Intersect(checkMask)
		for dest.Any() {
			to := dest.PopLowest()
			captured := b.PieceAt(Square(to))
			m := NewMove(Square(from), Square(to), piece, captured, NoPiece, FlagNone)
			if captured != NoPiece {
				mb.addCapture(m)
			} else {
				b.addQuiet(mb, m, us, occ)
			}
		}
	}
}

func (b *Board) generateKingMoves(mb *moveBuckets, us Color, ksq int, occ, usOcc bitset.BitSet) {
	them := us.Other()
	piece := PieceFromType(us, PieceTypeKing)
	occExclKing := occ.Clear(ksq)
	attackedByThem := b.attackedSquares(them, occExclKing)
	theirKing := b.KingSquare(them)
	var theirKingZone bitset.BitSet
	if theirKing != NoSquare {
		theirKingZone = KingStepAttacks(int(theirKing))
	}

	dest := KingStepAttacks(ksq).Without(usOcc).Without(attackedByThem).Without(theirKingZone)
	for dest.Any() {
		to := dest.PopLowest()
		captured := b.PieceAt(Square(to))
		m := NewMove(Square(ksq), Square(to), piece, captured, NoPiece, FlagNone)
		if captured != NoPiece {
			mb.addCapture(m)
		} else {
			b.addQuiet(mb, m, us, occ)
		}
	}

	b.generateCastling(mb, us, ksq, occ, attackedByThem)
}

func (b *Board) generateCastling(mb *moveBuckets, us Color, ksq int, occ, attackedByThem bitset.BitSet) {
	if attackedByThem.Test(ksq) {
		return // in check: no castling
	}
	rights := b.CastlingRights()
	if us == White {
		if rights&CastleWhiteK != 0 && b.PieceAt(7) == WhiteRook &&
			occ.Intersect(bitset.Bit(5)|bitset.Bit(6)).None() &&
			!attackedByThem.Test(5) && !attackedByThem.Test(6) {
			mb.addCastle(NewMove(4, 6, WhiteKing, NoPiece, NoPiece, FlagCastle))
		}
		if rights&CastleWhiteQ != 0 && b.PieceAt(0) == WhiteRook &&
			occ.Intersect(bitset.Bit(1)|bitset.Bit(2)|bitset.Bit(3)).None() &&
			!attackedByThem.Test(3) && !attackedByThem.Test(2) {
			mb.addCastle(NewMove(4, 2, WhiteKing, NoPiece, NoPiece, FlagCastle))
		}
	} else {
		if rights&CastleBlackK != 0 && b.PieceAt(63) == BlackRook &&
			occ.Intersect(bitset.Bit(61)|bitset.Bit(62)).None() &&
			!attackedByThem.Test(61) && !attackedByThem.Test(62) {
			mb.addCastle(NewMove(60, 62, BlackKing, NoPiece, NoPiece, FlagCastle))
		}
		if rights&CastleBlackQ != 0 && b.PieceAt(56) == BlackRook &&
			occ.Intersect(bitset.Bit(57)|bitset.Bit(58)|bitset.Bit(59)).None() &&
			!attackedByThem.Test(59) && !attackedByThem.Test(58) {
			mb.addCastle(NewMove(60, 58, BlackKing, NoPiece, NoPiece, FlagCastle))
		}
	}
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func (b *Board) HasLegalMoves() bool { return len(b.GenerateLegalMoves().Moves) > 0 }

// InCheckmate reports whether the side to move is checkmated.
func (b *Board) InCheckmate() bool { return b.InCheck(b.SideToMove()) && !b.HasLegalMoves() }

// InStalemate reports whether the side to move is stalemated.
func (b *Board) InStalemate() bool { return !b.InCheck(b.SideToMove()) && !b.HasLegalMoves() }

// Perft counts leaf nodes of the legal move tree to the given depth,
// recursing via PushMove/PopMove.
func (b *Board) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves().Moves
	if depth == 1 {
		return uint64(len(moves))
	}
	var total uint64
	for _, m := range moves {
		if !b.PushMove(m) {
			continue
		}
		total += b.Perft(depth - 1)
		b.PopMove()
	}
	return total
}
