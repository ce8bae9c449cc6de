// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// promotionKinds lists the four piece kinds a pawn can promote to, in
// the order spec.md §4.3 names them.
var promotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// GenerateMoves appends the pseudo-legal moves of the side to move to
// *moves. When captureOnly is true (quiescence's capture-only mode)
// only moves with a non-empty CapturedPiece are produced -- final
// legality (king not left in check) is left to the caller, per
// spec.md §4.3's pseudo-legal contract.
func GenerateMoves(bs *BoardState, captureOnly bool, moves *[]Move) {
	color := bs.SideToMove
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			p := bs.Board[r][f]
			if p.Color != color {
				continue
			}
			from := SQ(f, r)
			switch p.Kind {
			case Pawn:
				generatePawnMoves(bs, p, from, captureOnly, moves)
			case Knight:
				generateOffsetMoves(bs, p, from, knightOffsets[:], captureOnly, moves)
			case Bishop:
				generateSlidingMoves(bs, p, from, bishopDirections[:], captureOnly, moves)
			case Rook:
				generateSlidingMoves(bs, p, from, rookDirections[:], captureOnly, moves)
			case Queen:
				generateSlidingMoves(bs, p, from, queenDirections[:], captureOnly, moves)
			case King:
				generateOffsetMoves(bs, p, from, queenDirections[:], captureOnly, moves)
				if !captureOnly {
					generateCastlingMoves(bs, p, from, moves)
				}
			}
		}
	}
}

func appendMove(moves *[]Move, p Piece, from, to Square, captured Piece) {
	*moves = append(*moves, Move{
		From:             from,
		To:               to,
		MovingPiece:      p,
		CapturedPiece:    captured,
		FirstMoveOfMover: p.HasMoved,
	})
}

func generatePawnMoves(bs *BoardState, p Piece, from Square, captureOnly bool, moves *[]Move) {
	forward := pawnForward(p.Color)
	promoRank := 7
	if p.Color == Black {
		promoRank = 0
	}

	addPawnMove := func(to Square, captured Piece, pawnMovedTwo bool) {
		if to.Rank == int8(promoRank) {
			for _, k := range promotionKinds {
				*moves = append(*moves, Move{
					From: from, To: to,
					MovingPiece: p, CapturedPiece: captured,
					PromotionKind:    k,
					FirstMoveOfMover: p.HasMoved,
				})
			}
			return
		}
		*moves = append(*moves, Move{
			From: from, To: to,
			MovingPiece: p, CapturedPiece: captured,
			FirstMoveOfMover: p.HasMoved,
			PawnMovedTwo:     pawnMovedTwo,
			PMT:              to,
		})
	}

	if !captureOnly {
		one := from.Relative(0, forward)
		if one.Valid() && bs.Board[one.Rank][one.File].Kind == Empty {
			addPawnMove(one, NoPiece, false)
			if !p.HasMoved {
				two := from.Relative(0, 2*forward)
				if two.Valid() && bs.Board[two.Rank][two.File].Kind == Empty {
					addPawnMove(two, NoPiece, true)
				}
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to := from.Relative(df, forward)
		if !to.Valid() {
			continue
		}
		target := bs.Board[to.Rank][to.File]
		if target.Kind != Empty && target.Color == p.Color.Opposite() {
			addPawnMove(to, target, false)
		}
	}

	// En passant: the enemy's last move must have been a pawn double
	// step landing adjacent to this pawn, per spec.md §4.3.
	if bs.EnPassantFile >= 0 {
		enemy := p.Color.Opposite()
		var landingRank int8
		if enemy == White {
			landingRank = 3
		} else {
			landingRank = 4
		}
		if from.Rank == landingRank && absInt(int(from.File)-int(bs.EnPassantFile)) == 1 {
			to := SQ(int(bs.EnPassantFile), int(landingRank)+forward)
			captured := bs.Board[landingRank][bs.EnPassantFile]
			*moves = append(*moves, Move{
				From: from, To: to,
				MovingPiece:      p,
				CapturedPiece:    captured,
				EnPassant:        true,
				FirstMoveOfMover: p.HasMoved,
			})
		}
	}
}

func generateOffsetMoves(bs *BoardState, p Piece, from Square, offsets [][2]int, captureOnly bool, moves *[]Move) {
	for _, o := range offsets {
		to := from.Relative(o[0], o[1])
		if !to.Valid() {
			continue
		}
		target := bs.Board[to.Rank][to.File]
		if target.Kind == Empty {
			if !captureOnly {
				appendMove(moves, p, from, to, NoPiece)
			}
		} else if target.Color == p.Color.Opposite() {
			appendMove(moves, p, from, to, target)
		}
	}
}

func generateSlidingMoves(bs *BoardState, p Piece, from Square, dirs [][2]int, captureOnly bool, moves *[]Move) {
	for _, d := range dirs {
		to := from.Relative(d[0], d[1])
		for to.Valid() {
			target := bs.Board[to.Rank][to.File]
			if target.Kind == Empty {
				if !captureOnly {
					appendMove(moves, p, from, to, NoPiece)
				}
				to = to.Relative(d[0], d[1])
				continue
			}
			if target.Color == p.Color.Opposite() {
				appendMove(moves, p, from, to, target)
			}
			break
		}
	}
}

func generateCastlingMoves(bs *BoardState, p Piece, from Square, moves *[]Move) {
	color := p.Color
	if canCastle(bs, color, true) {
		to := from.Relative(2, 0)
		appendMove(moves, p, from, to, NoPiece)
	}
	if canCastle(bs, color, false) {
		to := from.Relative(-2, 0)
		appendMove(moves, p, from, to, NoPiece)
	}
}
