// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// pawnFileBonus and kingFileBonus are the fixed per-file tables from
// spec.md §4.4, indexed a..h (file 0..7).
var (
	pawnFileBonus = [8]int{0, 4, 8, 10, 10, 8, 4, 0}
	kingFileBonus = [8]int{5, 20, 0, 0, 0, 0, 20, 5}
)

// Evaluate returns a side-to-move-relative centipawn score: the raw
// evaluation is computed White-positive and negated if Black is to
// move, per spec.md §4.4.
func Evaluate(bs *BoardState) int {
	score := 0
	for _, p := range bs.livePieces(White) {
		score += evaluatePiece(bs, *p)
	}
	for _, p := range bs.livePieces(Black) {
		score -= evaluatePiece(bs, *p)
	}
	if bs.SideToMove == Black {
		score = -score
	}
	return score
}

// EvaluateLightweight sums only base piece values -- the material-only
// proxy spec.md §4.4 names for razor margins and delta pruning.
func EvaluateLightweight(bs *BoardState) int {
	score := 0
	for _, p := range bs.livePieces(White) {
		score += baseValue[p.Kind]
	}
	for _, p := range bs.livePieces(Black) {
		score -= baseValue[p.Kind]
	}
	if bs.SideToMove == Black {
		score = -score
	}
	return score
}

func evaluatePiece(bs *BoardState, p Piece) int {
	switch p.Kind {
	case Pawn:
		return evaluatePawn(bs, p)
	case Knight:
		return evaluateKnight(bs, p)
	case Bishop:
		return evaluateBishop(bs, p)
	case Rook:
		return evaluateRook(bs, p)
	case Queen:
		return evaluateQueen(bs, p)
	case King:
		return evaluateKing(bs, p)
	default:
		return 0
	}
}

func evaluatePawn(bs *BoardState, p Piece) int {
	v := baseValue[Pawn]
	v += pawnFileBonus[p.File]

	forward := pawnForward(p.Color)
	if bs.IsEndGame {
		rankFromOwnSide := int(p.Rank)
		if p.Color == Black {
			rankFromOwnSide = 7 - int(p.Rank)
		}
		v += rankFromOwnSide * 20
	}

	sq := p.Square()
	for i := 1; i <= 3; i++ {
		ahead := sq.Relative(0, forward*i)
		if !ahead.Valid() {
			break
		}
		other := bs.Board[ahead.Rank][ahead.File]
		if other.Kind == Pawn && other.Color == p.Color {
			v -= 20
		}
	}
	return v
}

func evaluateKnight(bs *BoardState, p Piece) int {
	v := baseValue[Knight]
	if !p.HasMoved {
		v -= 40
	}
	sq := p.Square()
	for _, o := range knightOffsets {
		if sq.Relative(o[0], o[1]).Valid() {
			v += 5
		}
	}
	return v
}

func evaluateBishop(bs *BoardState, p Piece) int {
	v := baseValue[Bishop]
	if !p.HasMoved {
		v -= 40
	}
	sq := p.Square()
	ahead := sq.Relative(0, pawnForward(p.Color))
	if ahead.Valid() {
		other := bs.Board[ahead.Rank][ahead.File]
		if other.Kind == Pawn && other.Color == p.Color {
			v -= 40
		}
	}
	v += 5 * slidingMobility(bs, sq, bishopDirections[:])
	return v
}

func evaluateRook(bs *BoardState, p Piece) int {
	v := baseValue[Rook]
	if bs.IsEndGame {
		v += 5 * slidingMobility(bs, p.Square(), rookDirections[:])
	}
	return v
}

func evaluateQueen(bs *BoardState, p Piece) int {
	v := baseValue[Queen]
	v += 5 * slidingMobility(bs, p.Square(), queenDirections[:])
	return v
}

func evaluateKing(bs *BoardState, p Piece) int {
	v := baseValue[King]
	if !bs.IsEndGame {
		hasCastled := bs.WhiteHasCastled
		if p.Color == Black {
			hasCastled = bs.BlackHasCastled
		}
		if hasCastled {
			v += 40
		}
		v += kingFileBonus[p.File]
		v -= 5 * slidingMobility(bs, p.Square(), queenDirections[:])
	}
	return v
}

// slidingMobility counts the empty squares reachable from sq along
// dirs before hitting the board edge or any piece.
func slidingMobility(bs *BoardState, sq Square, dirs [][2]int) int {
	count := 0
	for _, d := range dirs {
		s := sq.Relative(d[0], d[1])
		for s.Valid() && bs.Board[s.Rank][s.File].Kind == Empty {
			count++
			s = s.Relative(d[0], d[1])
		}
	}
	return count
}
