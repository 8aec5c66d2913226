package goosemg

import "fmt"

// Move packs a chess move into a 32-bit value: from square, to square, the
// moved and captured piece codes, an optional promotion piece, and a flag
// for castling / en-passant.
type Move uint32

const (
	moveFromShift    = 0
	moveToShift      = 6
	movePieceShift   = 12
	moveCaptureShift = 16
	movePromoteShift = 20
	moveFlagShift    = 24
)

// Special move flags. Promotion is signalled by a non-empty promotion piece,
// not a flag bit.
const (
	FlagNone      uint8 = 0
	FlagCastle    uint8 = 1
	FlagEnPassant uint8 = 2
)

// NoMove is the zero value, used as a sentinel for "no move found".
const NoMove Move = 0

// NewMove packs a move's components into a Move value.
func NewMove(from, to Square, piece, captured, promotion Piece, flag uint8) Move {
	return Move(uint32(from&0x3F) |
		(uint32(to&0x3F) << moveToShift) |
		(uint32(piece&0xF) << movePieceShift) |
		(uint32(captured&0xF) << moveCaptureShift) |
		(uint32(promotion&0xF) << movePromoteShift) |
		(uint32(flag&0x3) << moveFlagShift))
}

func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0x3F) }
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0x3F) }
func (m Move) MovedPiece() Piece { return Piece((uint32(m) >> movePieceShift) & 0xF) }
func (m Move) CapturedPiece() Piece { return Piece((uint32(m) >> moveCaptureShift) & 0xF) }
func (m Move) PromotionPiece() Piece { return Piece((uint32(m) >> movePromoteShift) & 0xF) }
func (m Move) Flags() uint8 { return uint8((uint32(m) >> moveFlagShift) & 0x3) }
func (m Move) IsCapture() bool { return m.CapturedPiece() != NoPiece || m.Flags() == FlagEnPassant }
func (m Move) IsCastle() bool { return m.Flags() == FlagCastle }
func (m Move) IsEnPassant() bool { return m.Flags() == FlagEnPassant }
func (m Move) IsPromotion() bool { return m.PromotionPiece() != NoPiece }

// String renders the move as four-character algebraic "from-square
// to-square" (e.g. "e2e4"); per spec, promotion is always to queen and is
// not encoded in the move string.
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	from, to := m.From(), m.To()
	return fmt.Sprintf("%c%c%c%c",
		'a'+byte(from.File()), '1'+byte(from.Rank()),
		'a'+byte(to.File()), '1'+byte(to.Rank()))
}

// ParseMoveString parses a four-character algebraic move string against the
// board's current legal moves, returning the fully encoded Move so the
// caller need not reconstruct captured/promotion metadata by hand.
func ParseMoveString(b *Board, s string) (Move, error) {
	if len(s) != 4 {
		return NoMove, fmt.Errorf("goosemg: malformed move string %q: want length 4", s)
	}
	from, err := parseSquare(s[0:2])
	if err != nil {
		return NoMove, fmt.Errorf("goosemg: malformed move string %q: %w", s, err)
	}
	to, err := parseSquare(s[2:4])
	if err != nil {
		return NoMove, fmt.Errorf("goosemg: malformed move string %q: %w", s, err)
	}
	var result Move
	found := false
	moves := b.GenerateLegalMoves()
	for _, cand := range moves.Moves {
		if cand.From() == from && cand.To() == to {
			result = cand
			found = true
			break
		}
	}
	if !found {
		return NoMove, fmt.Errorf("goosemg: illegal move %q", s)
	}
	return result, nil
}

func parseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("square %q out of range", s)
	}
	return Square(int(rank-'1')*8 + int(file-'a')), nil
}
