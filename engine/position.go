// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// BoardState owns the 8x8 square array together with everything that
// must be rolled back in lock-step with it: side to move, king
// locations, derived material counters, the Zobrist hash stack and the
// repetition map. It is mutated only through Apply/Undo/ApplyNull/
// UndoNull.
type BoardState struct {
	Board [8][8]Piece

	SideToMove Color

	WhiteKingAlive, BlackKingAlive   bool
	WhiteKingSquare, BlackKingSquare Square

	QueensOnBoard          int
	NumberOfMainPiecesLeft int // rooks + bishops + knights, both colors
	WhiteHasCastled        bool
	BlackHasCastled        bool
	IsEndGame              bool

	HalfmoveClock  int
	FullmoveNumber int

	// EnPassantFile is the file of the square a pawn has just
	// double-stepped past, or -1 if the last move was not a pawn
	// double-step. epFileHistory mirrors PreviousMoveStack so Undo can
	// restore the prior value without widening Move.
	EnPassantFile int8
	epFileHistory []int8

	PreviousMoveStack      []Move
	VisitedStatesHashStack []uint64
	VisitedStatesHashMap   map[uint64]int
}

// NewBoardState returns an empty board: all 64 squares hold NoPiece,
// side to move is White. Callers populate it (directly, via the Board
// field) and then call Setup.
func NewBoardState() *BoardState {
	bs := &BoardState{
		SideToMove:           White,
		EnPassantFile:        -1,
		VisitedStatesHashMap: make(map[uint64]int),
	}
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			bs.Board[r][f] = NoPiece
		}
	}
	return bs
}

// PlacePiece sets the piece at sq, filling in its coordinate fields.
// HasMoved defaults to false; FEN loading overrides it per castling
// rights and starting-rank heuristics.
func (bs *BoardState) PlacePiece(kind PieceKind, color Color, sq Square) {
	bs.Board[sq.Rank][sq.File] = Piece{Kind: kind, Color: color, File: sq.File, Rank: sq.Rank}
}

// Setup finalizes a freshly populated board: it locates both kings,
// recomputes material counters and endgame status, and pushes the
// initial Zobrist hash -- the "initial state" push required by
// spec.md §3's stack-length invariant.
func (bs *BoardState) Setup(sideToMove Color, halfmoveClock, fullmoveNumber int) error {
	bs.SideToMove = sideToMove
	bs.HalfmoveClock = halfmoveClock
	bs.FullmoveNumber = fullmoveNumber

	bs.WhiteKingAlive, bs.BlackKingAlive = false, false
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			p := bs.Board[r][f]
			if p.Kind != King {
				continue
			}
			switch p.Color {
			case White:
				if bs.WhiteKingAlive {
					return ErrIllegalFen
				}
				bs.WhiteKingAlive = true
				bs.WhiteKingSquare = SQ(f, r)
			case Black:
				if bs.BlackKingAlive {
					return ErrIllegalFen
				}
				bs.BlackKingAlive = true
				bs.BlackKingSquare = SQ(f, r)
			}
		}
	}
	if !bs.WhiteKingAlive || !bs.BlackKingAlive {
		return ErrIllegalFen
	}
	if KingInCheck(bs, sideToMove.Opposite()) {
		return ErrIllegalFen
	}

	bs.recomputeMaterialCounters()
	if bs.VisitedStatesHashMap == nil {
		bs.VisitedStatesHashMap = make(map[uint64]int)
	}
	bs.pushHash(computeZobristHash(bs))
	return nil
}

// Hash returns the Zobrist hash of the current position -- the top of
// VisitedStatesHashStack, per spec.md §3's invariant.
func (bs *BoardState) Hash() uint64 {
	return bs.VisitedStatesHashStack[len(bs.VisitedStatesHashStack)-1]
}

func (bs *BoardState) pushHash(h uint64) {
	bs.VisitedStatesHashStack = append(bs.VisitedStatesHashStack, h)
	bs.VisitedStatesHashMap[h]++
}

func (bs *BoardState) popHash() {
	n := len(bs.VisitedStatesHashStack)
	h := bs.VisitedStatesHashStack[n-1]
	bs.VisitedStatesHashStack = bs.VisitedStatesHashStack[:n-1]
	bs.VisitedStatesHashMap[h]--
	if bs.VisitedStatesHashMap[h] == 0 {
		delete(bs.VisitedStatesHashMap, h)
	}
}

// CurrentStateRepeatedThreeTimes reports whether the position at the
// top of the stack has occurred three or more times.
func (bs *BoardState) CurrentStateRepeatedThreeTimes() bool {
	return bs.VisitedStatesHashMap[bs.Hash()] >= 3
}

// LastMove returns the most recently applied move, or NullMove if the
// stack is empty.
func (bs *BoardState) LastMove() Move {
	if len(bs.PreviousMoveStack) == 0 {
		return NullMove
	}
	return bs.PreviousMoveStack[len(bs.PreviousMoveStack)-1]
}

func (bs *BoardState) recomputeMaterialCounters() {
	queens, mainPieces := 0, 0
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			switch bs.Board[r][f].Kind {
			case Queen:
				queens++
			case Rook, Bishop, Knight:
				mainPieces++
			}
		}
	}
	bs.QueensOnBoard = queens
	bs.NumberOfMainPiecesLeft = mainPieces
	bs.IsEndGame = isEndGame(queens, mainPieces)
}

// isEndGame implements spec.md §4.4's endgame predicate.
func isEndGame(queens, mainPieces int) bool {
	switch queens {
	case 2:
		return mainPieces <= 2
	case 1:
		return mainPieces <= 5
	case 0:
		return mainPieces <= 8
	default:
		return false
	}
}

// rookCastleSquares returns the rook's home and post-castle squares
// for a king move of the given shape on rank.
func rookCastleSquares(rank int8, kingside bool) (from, to Square) {
	if kingside {
		return SQ(7, int(rank)), SQ(5, int(rank))
	}
	return SQ(0, int(rank)), SQ(3, int(rank))
}

// Apply transforms the board per spec.md §4.1 steps 1-9, pushing onto
// the undo stack a complete record of the inverse.
func (bs *BoardState) Apply(m Move) {
	mover := m.MovingPiece
	color := mover.Color
	kingside := m.To.File > m.From.File

	h := bs.Hash()
	h ^= pieceKey(mover, m.From)

	// En passant: the captured pawn sits one rank behind the
	// destination, not on the destination itself.
	if m.EnPassant {
		epSq := SQ(int(m.To.File), int(m.From.Rank))
		h ^= pieceKey(m.CapturedPiece, epSq)
		bs.Board[epSq.Rank][epSq.File] = NoPiece
	} else if m.CapturedPiece.Kind != Empty {
		h ^= pieceKey(m.CapturedPiece, m.To)
	}

	// Castling: swap the rook between its home and post-castle file.
	isCastle := m.Type() == Castling
	var rookFrom, rookTo Square
	var rookOld, rookNew Piece
	if isCastle {
		rookFrom, rookTo = rookCastleSquares(m.From.Rank, kingside)
		rookOld = bs.Board[rookFrom.Rank][rookFrom.File]
		rookNew = rookOld
		rookNew.HasMoved = true
		rookNew.File, rookNew.Rank = rookTo.File, rookTo.Rank
		h ^= pieceKey(rookOld, rookFrom)
		h ^= pieceKey(rookNew, rookTo)
		bs.Board[rookTo.Rank][rookTo.File] = rookNew
		bs.Board[rookFrom.Rank][rookFrom.File] = NoPiece
		if color == White {
			bs.WhiteHasCastled = true
		} else {
			bs.BlackHasCastled = true
		}
	}

	newMover := mover
	newMover.HasMoved = true
	newMover.File, newMover.Rank = m.To.File, m.To.Rank
	if m.PromotionKind != Empty {
		newMover.Kind = m.PromotionKind
	}
	h ^= pieceKey(newMover, m.To)

	bs.Board[m.To.Rank][m.To.File] = newMover
	bs.Board[m.From.Rank][m.From.File] = NoPiece

	if m.CapturedPiece.Kind == King {
		if m.CapturedPiece.Color == White {
			bs.WhiteKingAlive = false
		} else {
			bs.BlackKingAlive = false
		}
	}
	if mover.Kind == King {
		if color == White {
			bs.WhiteKingSquare = m.To
		} else {
			bs.BlackKingSquare = m.To
		}
	}

	bs.epFileHistory = append(bs.epFileHistory, bs.EnPassantFile)
	if m.PawnMovedTwo {
		bs.EnPassantFile = m.PMT.File
	} else {
		bs.EnPassantFile = -1
	}

	h ^= zobristSideToMove
	bs.SideToMove = bs.SideToMove.Opposite()
	bs.PreviousMoveStack = append(bs.PreviousMoveStack, m)
	bs.pushHash(h)
	bs.recomputeMaterialCounters()
}

// Undo is the exact inverse of Apply, using only the top of
// PreviousMoveStack and the board -- it never consults game history.
func (bs *BoardState) Undo() {
	n := len(bs.PreviousMoveStack)
	m := bs.PreviousMoveStack[n-1]
	bs.PreviousMoveStack = bs.PreviousMoveStack[:n-1]
	bs.popHash()

	bs.SideToMove = bs.SideToMove.Opposite()

	epN := len(bs.epFileHistory)
	bs.EnPassantFile = bs.epFileHistory[epN-1]
	bs.epFileHistory = bs.epFileHistory[:epN-1]

	mover := m.MovingPiece
	color := mover.Color
	kingside := m.To.File > m.From.File

	bs.Board[m.From.Rank][m.From.File] = mover

	if m.EnPassant {
		bs.Board[m.To.Rank][m.To.File] = NoPiece
		epSq := SQ(int(m.To.File), int(m.From.Rank))
		bs.Board[epSq.Rank][epSq.File] = m.CapturedPiece
	} else {
		bs.Board[m.To.Rank][m.To.File] = m.CapturedPiece
	}

	if m.Type() == Castling {
		rookFrom, rookTo := rookCastleSquares(m.From.Rank, kingside)
		rook := bs.Board[rookTo.Rank][rookTo.File]
		rook.HasMoved = false
		rook.File, rook.Rank = rookFrom.File, rookFrom.Rank
		bs.Board[rookFrom.Rank][rookFrom.File] = rook
		bs.Board[rookTo.Rank][rookTo.File] = NoPiece
		if color == White {
			bs.WhiteHasCastled = false
		} else {
			bs.BlackHasCastled = false
		}
	}

	if m.CapturedPiece.Kind == King {
		if m.CapturedPiece.Color == White {
			bs.WhiteKingAlive = true
		} else {
			bs.BlackKingAlive = true
		}
	}
	if mover.Kind == King {
		if color == White {
			bs.WhiteKingSquare = m.From
		} else {
			bs.BlackKingSquare = m.From
		}
	}

	bs.recomputeMaterialCounters()
}

// ApplyNull flips side to move without touching the board; legal only
// when the side to move is not currently in check (spec.md §4.1).
func (bs *BoardState) ApplyNull() {
	h := bs.Hash() ^ zobristSideToMove
	bs.epFileHistory = append(bs.epFileHistory, bs.EnPassantFile)
	bs.EnPassantFile = -1
	bs.SideToMove = bs.SideToMove.Opposite()
	bs.PreviousMoveStack = append(bs.PreviousMoveStack, NullMove)
	bs.pushHash(h)
}

// UndoNull is the exact inverse of ApplyNull.
func (bs *BoardState) UndoNull() {
	n := len(bs.PreviousMoveStack)
	bs.PreviousMoveStack = bs.PreviousMoveStack[:n-1]
	bs.popHash()
	epN := len(bs.epFileHistory)
	bs.EnPassantFile = bs.epFileHistory[epN-1]
	bs.epFileHistory = bs.epFileHistory[:epN-1]
	bs.SideToMove = bs.SideToMove.Opposite()
}

// livePieces returns pointers to every occupied cell of color, scanned
// fresh on each call rather than incrementally maintained -- the
// array-of-values board makes a persistent piece-list redundant and a
// source of invariant bugs if it drifted from the array.
func (bs *BoardState) livePieces(color Color) []*Piece {
	pieces := make([]*Piece, 0, 16)
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			if bs.Board[r][f].Color == color {
				pieces = append(pieces, &bs.Board[r][f])
			}
		}
	}
	return pieces
}

// Clone returns a deep copy of bs: its move and hash stacks and its
// repetition map share no storage with bs.
func (bs *BoardState) Clone() *BoardState {
	c := *bs
	c.epFileHistory = append([]int8(nil), bs.epFileHistory...)
	c.PreviousMoveStack = append([]Move(nil), bs.PreviousMoveStack...)
	c.VisitedStatesHashStack = append([]uint64(nil), bs.VisitedStatesHashStack...)
	c.VisitedStatesHashMap = make(map[uint64]int, len(bs.VisitedStatesHashMap))
	for k, v := range bs.VisitedStatesHashMap {
		c.VisitedStatesHashMap[k] = v
	}
	return &c
}
