// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// rookDirections and bishopDirections are the four orthogonal and
// four diagonal step directions sliding pieces travel along.
var (
	rookDirections   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirections = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirections  = [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	knightOffsets = [8][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
)

// pawnForward returns +1 for White (advancing toward rank 8) and -1
// for Black (advancing toward rank 1).
func pawnForward(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// SquareIsAttacked reports whether any piece of the color opposite
// attackedColor could capture on sq if it were that side's turn --
// spec.md §4.2's union of five cheap checks.
func SquareIsAttacked(bs *BoardState, sq Square, attackedColor Color) bool {
	enemy := attackedColor.Opposite()

	// Pawn attacks, from the two forward diagonals relative to the
	// attacked color.
	enemyForward := pawnForward(enemy)
	pawnRank := int(sq.Rank) - enemyForward
	for _, df := range [2]int{-1, 1} {
		s := SQ(int(sq.File)+df, pawnRank)
		if s.Valid() {
			p := bs.Board[s.Rank][s.File]
			if p.Kind == Pawn && p.Color == enemy {
				return true
			}
		}
	}

	// Knight hops.
	for _, o := range knightOffsets {
		s := sq.Relative(o[0], o[1])
		if s.Valid() {
			p := bs.Board[s.Rank][s.File]
			if p.Kind == Knight && p.Color == enemy {
				return true
			}
		}
	}

	// Sliding rook/queen along the orthogonals.
	for _, d := range rookDirections {
		if slidingAttacker(bs, sq, d, enemy, Rook, Queen) {
			return true
		}
	}

	// Sliding bishop/queen along the diagonals.
	for _, d := range bishopDirections {
		if slidingAttacker(bs, sq, d, enemy, Bishop, Queen) {
			return true
		}
	}

	// King adjacency.
	for _, d := range queenDirections {
		s := sq.Relative(d[0], d[1])
		if s.Valid() {
			p := bs.Board[s.Rank][s.File]
			if p.Kind == King && p.Color == enemy {
				return true
			}
		}
	}

	return false
}

// slidingAttacker walks from sq along direction d until it hits the
// board edge or a piece; it reports an attack if that first piece is
// an enemy of kind1 or kind2.
func slidingAttacker(bs *BoardState, sq Square, d [2]int, enemy Color, kind1, kind2 PieceKind) bool {
	s := sq.Relative(d[0], d[1])
	for s.Valid() {
		p := bs.Board[s.Rank][s.File]
		if p.Kind == Empty {
			s = s.Relative(d[0], d[1])
			continue
		}
		return p.Color == enemy && (p.Kind == kind1 || p.Kind == kind2)
	}
	return false
}

// KingInCheck reports whether color's king is currently attacked.
func KingInCheck(bs *BoardState, color Color) bool {
	var kingSq Square
	if color == White {
		kingSq = bs.WhiteKingSquare
	} else {
		kingSq = bs.BlackKingSquare
	}
	return SquareIsAttacked(bs, kingSq, color)
}

// MoveLeavesOwnKingInCheck applies m, checks whether the mover's king
// is attacked, and undoes m -- exactly as spec.md §4.2 defines it.
func MoveLeavesOwnKingInCheck(bs *BoardState, m Move) bool {
	color := m.MovingPiece.Color
	bs.Apply(m)
	inCheck := KingInCheck(bs, color)
	bs.Undo()
	return inCheck
}

// canCastle reports whether color may castle in the given direction,
// requiring the conjunction of all five conditions from spec.md §4.2:
// king and rook unmoved, king not currently in check, the squares the
// king crosses are empty, and none of them are attacked. (The source
// engine's helper used OR here, a bug noted in spec.md §9 / REDESIGN
// FLAG 2; this is the corrected AND form.)
func canCastle(bs *BoardState, color Color, kingside bool) bool {
	var kingSq Square
	if color == White {
		kingSq = bs.WhiteKingSquare
	} else {
		kingSq = bs.BlackKingSquare
	}
	king := bs.Board[kingSq.Rank][kingSq.File]
	if king.Kind != King || king.HasMoved {
		return false
	}

	rookFrom, _ := rookCastleSquares(kingSq.Rank, kingside)
	rook := bs.Board[rookFrom.Rank][rookFrom.File]
	if rook.Kind != Rook || rook.Color != color || rook.HasMoved {
		return false
	}

	if KingInCheck(bs, color) {
		return false
	}

	step := 1
	if !kingside {
		step = -1
	}
	crossCount := 2
	if !kingside {
		crossCount = 3 // b,c,d files must be empty; king only crosses c,d
	}
	for i := 1; i <= crossCount; i++ {
		s := SQ(int(kingSq.File)+step*i, int(kingSq.Rank))
		if bs.Board[s.Rank][s.File].Kind != Empty {
			return false
		}
	}

	// The king's own square, the square it passes through and its
	// destination must not be attacked. On the queenside the b-file
	// square only has to be empty (checked above), since the king
	// never lands on or passes through it.
	for i := 0; i <= 2; i++ {
		s := SQ(int(kingSq.File)+step*i, int(kingSq.Rank))
		if SquareIsAttacked(bs, s, color) {
			return false
		}
	}

	return true
}
