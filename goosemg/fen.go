package goosemg

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

func charFromPiece(p Piece) rune {
	switch p {
	case WhitePawn:
		return 'P'
	case WhiteKnight:
		return 'N'
	case WhiteBishop:
		return 'B'
	case WhiteRook:
		return 'R'
	case WhiteQueen:
		return 'Q'
	case WhiteKing:
		return 'K'
	case BlackPawn:
		return 'p'
	case BlackKnight:
		return 'n'
	case BlackBishop:
		return 'b'
	case BlackRook:
		return 'r'
	case BlackQueen:
		return 'q'
	case BlackKing:
		return 'k'
	default:
		return '?'
	}
}

// ParseFEN parses a FEN string into a new Board. Malformed input is
// reported as an error and no Board is returned; the caller's existing
// position (if any) is left untouched.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("goosemg: malformed FEN %q: not enough fields", fen)
	}

	b := NewBoard()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("goosemg: malformed FEN %q: expected 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		rankIndex := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece {
				return nil, fmt.Errorf("goosemg: malformed FEN %q: unrecognized piece %q", fen, ch)
			}
			if file >= 8 {
				return nil, fmt.Errorf("goosemg: malformed FEN %q: too many squares in rank %d", fen, i)
			}
			b.addPiece(Square(rankIndex*8+file), piece)
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("goosemg: malformed FEN %q: rank %d does not sum to 8 files", fen, i)
		}
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, fmt.Errorf("goosemg: malformed FEN %q: side to move must be 'w' or 'b'", fen)
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.castlingRights |= CastleWhiteK
			case 'Q':
				b.castlingRights |= CastleWhiteQ
			case 'k':
				b.castlingRights |= CastleBlackK
			case 'q':
				b.castlingRights |= CastleBlackQ
			default:
				return nil, fmt.Errorf("goosemg: malformed FEN %q: invalid castling character %q", fen, ch)
			}
		}
	}

	b.epSquare = NoSquare
	if fields[3] != "-" {
		sq, err := parseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("goosemg: malformed FEN %q: %w", fen, err)
		}
		b.epSquare = sq
	}

	if len(fields) > 4 {
		hm, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("goosemg: malformed FEN %q: halfmove clock: %w", fen, err)
		}
		b.halfmoveClock = hm
	}
	if len(fields) > 5 {
		fm, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("goosemg: malformed FEN %q: fullmove number: %w", fen, err)
		}
		b.fullmoveNumber = fm
	}

	b.zobristKey = b.ComputeZobrist()
	b.seedRepetition()
	return b, nil
}

// ToFEN renders the board as a well-formed FEN string: exactly one space
// between each of the six fields.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.pieces[rank*8+file]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteRune(charFromPiece(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	if b.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if b.castlingRights&CastleWhiteK != 0 {
			sb.WriteByte('K')
		}
		if b.castlingRights&CastleWhiteQ != 0 {
			sb.WriteByte('Q')
		}
		if b.castlingRights&CastleBlackK != 0 {
			sb.WriteByte('k')
		}
		if b.castlingRights&CastleBlackQ != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	if b.epSquare != NoSquare {
		sb.WriteByte('a' + byte(b.epSquare.File()))
		sb.WriteByte('1' + byte(b.epSquare.Rank()))
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')

	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmoveNumber))

	return sb.String()
}
