// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

func TestSortMovesHashMoveFirst(t *testing.T) {
	queen := Piece{Kind: Queen, Color: White}
	rook := Piece{Kind: Rook, Color: Black}
	pawn := Piece{Kind: Pawn, Color: Black}

	hashMove := Move{From: SQ(0, 0), To: SQ(0, 1), MovingPiece: queen}
	moves := []Move{
		{From: SQ(1, 1), To: SQ(2, 2), MovingPiece: queen, CapturedPiece: rook},
		hashMove,
		{From: SQ(3, 3), To: SQ(4, 4), MovingPiece: queen, CapturedPiece: pawn},
	}

	hist := NewHistoryTable()
	SortMoves(moves, hist, hashMove)

	if !moves[0].Equal(hashMove) {
		t.Fatalf("hash move should sort first, got %v", moves[0])
	}
}

func TestSortMovesCapturesBeforeQuiets(t *testing.T) {
	queen := Piece{Kind: Queen, Color: White}
	rook := Piece{Kind: Rook, Color: Black}

	capture := Move{From: SQ(1, 1), To: SQ(2, 2), MovingPiece: queen, CapturedPiece: rook}
	quiet := Move{From: SQ(3, 3), To: SQ(4, 4), MovingPiece: queen}
	moves := []Move{quiet, capture}

	hist := NewHistoryTable()
	SortMoves(moves, hist, NullMove)

	if !moves[0].Equal(capture) {
		t.Fatal("captures should sort before quiet moves")
	}
}

func TestSortMovesMVVLVA(t *testing.T) {
	pawnAttacker := Piece{Kind: Pawn, Color: White}
	queenAttacker := Piece{Kind: Queen, Color: White}
	rook := Piece{Kind: Rook, Color: Black}

	byQueen := Move{From: SQ(0, 0), To: SQ(1, 1), MovingPiece: queenAttacker, CapturedPiece: rook}
	byPawn := Move{From: SQ(2, 2), To: SQ(1, 1), MovingPiece: pawnAttacker, CapturedPiece: rook}
	moves := []Move{byQueen, byPawn}

	hist := NewHistoryTable()
	SortMoves(moves, hist, NullMove)

	if !moves[0].Equal(byPawn) {
		t.Fatal("a pawn capturing a rook should outrank a queen capturing the same rook")
	}
}

func TestHistoryTableBumpAndDecay(t *testing.T) {
	hist := NewHistoryTable()
	m := Move{From: SQ(4, 1), To: SQ(4, 3), MovingPiece: Piece{Kind: Pawn, Color: White}}

	hist.Bump(m, 4)
	if got, want := hist.get(m), 16; got != want {
		t.Fatalf("after Bump(depth=4), history = %d, want %d", got, want)
	}

	hist.Decay()
	if got, want := hist.get(m), 14; got != want {
		t.Fatalf("after Decay, history = %d, want %d", got, want)
	}
}
