// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

func startBoard(t *testing.T) *BoardState {
	t.Helper()
	bs := NewBoardState()
	back := [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := 0; f < 8; f++ {
		bs.PlacePiece(back[f], White, SQ(f, 0))
		bs.PlacePiece(Pawn, White, SQ(f, 1))
		bs.PlacePiece(Pawn, Black, SQ(f, 6))
		bs.PlacePiece(back[f], Black, SQ(f, 7))
	}
	if err := bs.Setup(White, 0, 1); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	return bs
}

// TestApplyUndoRestoresState is invariant 1 from spec.md §8: apply
// followed by undo returns the board to a byte-identical state.
func TestApplyUndoRestoresState(t *testing.T) {
	bs := startBoard(t)
	before := *bs

	var moves []Move
	GenerateMoves(bs, false, &moves)
	if len(moves) == 0 {
		t.Fatal("expected legal moves from the starting position")
	}

	for _, m := range moves {
		bs.Apply(m)
		bs.Undo()

		if bs.Board != before.Board {
			t.Fatalf("board differs after apply/undo of %v", m)
		}
		if bs.Hash() != before.Hash() {
			t.Fatalf("hash differs after apply/undo of %v", m)
		}
		if bs.WhiteKingSquare != before.WhiteKingSquare || bs.BlackKingSquare != before.BlackKingSquare {
			t.Fatalf("king squares differ after apply/undo of %v", m)
		}
		if len(bs.VisitedStatesHashStack) != len(before.VisitedStatesHashStack) {
			t.Fatalf("hash stack length differs after apply/undo of %v", m)
		}
	}
}

// TestHashMatchesComputedFromScratch is invariant 2: the Zobrist hash
// computed from scratch equals the top of the hash stack.
func TestHashMatchesComputedFromScratch(t *testing.T) {
	bs := startBoard(t)
	if got, want := bs.Hash(), computeZobristHash(bs); got != want {
		t.Fatalf("Hash() = %#x, computeZobristHash = %#x", got, want)
	}

	var moves []Move
	GenerateMoves(bs, false, &moves)
	bs.Apply(moves[0])
	if got, want := bs.Hash(), computeZobristHash(bs); got != want {
		t.Fatalf("after apply: Hash() = %#x, computeZobristHash = %#x", got, want)
	}
}

// TestThreefoldRepetition is scenario (d): four repeated knight
// shuffles leave the start position visited three times.
func TestThreefoldRepetition(t *testing.T) {
	bs := startBoard(t)
	shuffle := []struct{ from, to string }{
		{"g1", "f3"}, {"g8", "f6"},
		{"f3", "g1"}, {"f6", "g8"},
		{"g1", "f3"}, {"g8", "f6"},
		{"f3", "g1"}, {"f6", "g8"},
	}
	for _, s := range shuffle {
		from, _ := SquareFromString(s.from)
		to, _ := SquareFromString(s.to)
		m := findMove(t, bs, from, to)
		bs.Apply(m)
	}
	if !bs.CurrentStateRepeatedThreeTimes() {
		t.Fatal("expected starting position to be repeated three times")
	}
}

func findMove(t *testing.T, bs *BoardState, from, to Square) Move {
	t.Helper()
	var moves []Move
	GenerateMoves(bs, false, &moves)
	for _, m := range moves {
		if m.From == from && m.To == to {
			return m
		}
	}
	t.Fatalf("no pseudo-legal move %v->%v", from, to)
	return Move{}
}
