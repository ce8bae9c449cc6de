// Package notation parses and prints the two external text formats
// the engine's setup and move-interface collaborators feed off of:
// FEN for positions and algebraic move-text for moves.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidchess/corvid/engine"
)

// ParseFEN parses a FEN string and returns a ready-to-play
// engine.BoardState, or engine.ErrIllegalFen (wrapped with a reason)
// if the position is malformed.
func ParseFEN(fen string) (*engine.BoardState, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: expected at least 4 fields, got %d", engine.ErrIllegalFen, len(fields))
	}

	bs := engine.NewBoardState()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: expected 8 ranks, got %d", engine.ErrIllegalFen, len(ranks))
	}

	pieceCount := 0
	for r, row := range ranks {
		rank := 7 - r // FEN describes the board from rank 8 down.
		file := 0
		for _, ch := range row {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			kind, color, err := pieceFromFENChar(ch)
			if err != nil {
				return nil, err
			}
			if file >= 8 {
				return nil, fmt.Errorf("%w: rank %d overflows 8 files", engine.ErrIllegalFen, r)
			}
			sq := engine.SQ(file, rank)
			bs.PlacePiece(kind, color, sq)
			// A pawn off its starting rank has already moved and may not
			// double-step.
			if kind == engine.Pawn && !((color == engine.White && rank == 1) || (color == engine.Black && rank == 6)) {
				bs.Board[rank][file].HasMoved = true
			}
			pieceCount++
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("%w: rank %d has %d files, want 8", engine.ErrIllegalFen, r, file)
		}
	}
	if pieceCount > 32 {
		return nil, fmt.Errorf("%w: %d pieces on board, max 32", engine.ErrIllegalFen, pieceCount)
	}

	var sideToMove engine.Color
	switch fields[1] {
	case "w":
		sideToMove = engine.White
	case "b":
		sideToMove = engine.Black
	default:
		return nil, fmt.Errorf("%w: unknown side to move %q", engine.ErrIllegalFen, fields[1])
	}

	applyCastlingRights(bs, fields[2])

	if len(fields) >= 4 && fields[3] != "-" {
		sq, err := engine.SquareFromString(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: bad en-passant target %q", engine.ErrIllegalFen, fields[3])
		}
		bs.EnPassantFile = int8(sq.File)
	}

	halfmoveClock := 0
	if len(fields) >= 5 {
		halfmoveClock, _ = strconv.Atoi(fields[4])
	}
	fullmoveNumber := 1
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			fullmoveNumber = n
		}
	}

	if err := bs.Setup(sideToMove, halfmoveClock, fullmoveNumber); err != nil {
		return nil, err
	}
	return bs, nil
}

func pieceFromFENChar(ch rune) (engine.PieceKind, engine.Color, error) {
	switch ch {
	case 'p':
		return engine.Pawn, engine.Black, nil
	case 'n':
		return engine.Knight, engine.Black, nil
	case 'b':
		return engine.Bishop, engine.Black, nil
	case 'r':
		return engine.Rook, engine.Black, nil
	case 'q':
		return engine.Queen, engine.Black, nil
	case 'k':
		return engine.King, engine.Black, nil
	case 'P':
		return engine.Pawn, engine.White, nil
	case 'N':
		return engine.Knight, engine.White, nil
	case 'B':
		return engine.Bishop, engine.White, nil
	case 'R':
		return engine.Rook, engine.White, nil
	case 'Q':
		return engine.Queen, engine.White, nil
	case 'K':
		return engine.King, engine.White, nil
	default:
		return engine.Empty, engine.None, fmt.Errorf("%w: unhandled piece letter %q", engine.ErrIllegalFen, ch)
	}
}

// applyCastlingRights marks kings and rooks as having moved when a FEN
// castling-rights letter for their side/wing is absent, since
// BoardState tracks castling eligibility via Piece.HasMoved rather
// than a dedicated rights bitmask.
func applyCastlingRights(bs *engine.BoardState, rights string) {
	if rights == "-" {
		rights = ""
	}
	has := func(c byte) bool { return strings.IndexByte(rights, c) >= 0 }

	markMoved := func(color engine.Color, rank int) {
		if p := &bs.Board[rank][4]; p.Kind == engine.King && p.Color == color {
			p.HasMoved = true
		}
	}
	markRookMoved := func(color engine.Color, rank, file int) {
		if p := &bs.Board[rank][file]; p.Kind == engine.Rook && p.Color == color {
			p.HasMoved = true
		}
	}

	if !has('K') {
		markRookMoved(engine.White, 0, 7)
	}
	if !has('Q') {
		markRookMoved(engine.White, 0, 0)
	}
	if !has('k') {
		markRookMoved(engine.Black, 7, 7)
	}
	if !has('q') {
		markRookMoved(engine.Black, 7, 0)
	}
	if !has('K') && !has('Q') {
		markMoved(engine.White, 0)
	}
	if !has('k') && !has('q') {
		markMoved(engine.Black, 7)
	}
}

// FEN renders bs as a FEN string.
func FEN(bs *engine.BoardState) string {
	var sb strings.Builder

	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			p := bs.Board[r][f]
			if p.Kind == engine.Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteRune(fenCharForPiece(p))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if bs.SideToMove == engine.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(castlingRightsString(bs))

	sb.WriteByte(' ')
	if bs.EnPassantFile >= 0 {
		// The target square sits behind the pawn that just double-stepped,
		// on the rank the opposite side's pawns would capture onto: rank 6
		// when White is to move (Black just pushed), rank 3 when Black is
		// to move (White just pushed).
		rank := 2
		if bs.SideToMove == engine.White {
			rank = 5
		}
		sb.WriteString(engine.SQ(int(bs.EnPassantFile), rank).String())
	} else {
		sb.WriteByte('-')
	}

	fmt.Fprintf(&sb, " %d %d", bs.HalfmoveClock, bs.FullmoveNumber)
	return sb.String()
}

func fenCharForPiece(p engine.Piece) rune {
	var ch rune
	switch p.Kind {
	case engine.Pawn:
		ch = 'p'
	case engine.Knight:
		ch = 'n'
	case engine.Bishop:
		ch = 'b'
	case engine.Rook:
		ch = 'r'
	case engine.Queen:
		ch = 'q'
	case engine.King:
		ch = 'k'
	}
	if p.Color == engine.White {
		ch = ch - 'a' + 'A'
	}
	return ch
}

func castlingRightsString(bs *engine.BoardState) string {
	var sb strings.Builder
	if !bs.Board[0][4].HasMoved && bs.Board[0][4].Kind == engine.King {
		if !bs.Board[0][7].HasMoved && bs.Board[0][7].Kind == engine.Rook {
			sb.WriteByte('K')
		}
		if !bs.Board[0][0].HasMoved && bs.Board[0][0].Kind == engine.Rook {
			sb.WriteByte('Q')
		}
	}
	if !bs.Board[7][4].HasMoved && bs.Board[7][4].Kind == engine.King {
		if !bs.Board[7][7].HasMoved && bs.Board[7][7].Kind == engine.Rook {
			sb.WriteByte('k')
		}
		if !bs.Board[7][0].HasMoved && bs.Board[7][0].Kind == engine.Rook {
			sb.WriteByte('q')
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
