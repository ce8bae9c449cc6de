// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

// buildBoard places pieces from a list of (kind, color, square) tuples
// and finishes with Setup, for tests that need a custom position
// without going through FEN.
type placement struct {
	kind  PieceKind
	color Color
	sq    string
}

func buildBoard(t *testing.T, side Color, pieces []placement) *BoardState {
	t.Helper()
	bs := NewBoardState()
	for _, p := range pieces {
		sq, err := SquareFromString(p.sq)
		if err != nil {
			t.Fatalf("bad square %q: %v", p.sq, err)
		}
		bs.PlacePiece(p.kind, p.color, sq)
	}
	if err := bs.Setup(side, 0, 1); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	return bs
}

// TestMoveLeavesOwnKingInCheckPinnedPiece is invariant 4: a pinned
// rook cannot step off the pin line without exposing its own king.
func TestMoveLeavesOwnKingInCheckPinnedPiece(t *testing.T) {
	bs := buildBoard(t, White, []placement{
		{King, White, "e1"},
		{Rook, White, "e4"},
		{Rook, Black, "e8"},
		{King, Black, "g8"},
	})

	var moves []Move
	GenerateMoves(bs, false, &moves)

	var sideways Move
	found := false
	for _, m := range moves {
		if m.MovingPiece.Kind == Rook && m.MovingPiece.Color == White && m.To.File != m.From.File {
			sideways = m
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected a pseudo-legal sideways rook move off the pin line")
	}
	if !MoveLeavesOwnKingInCheck(bs, sideways) {
		t.Fatal("moving the pinned rook off the e-file should expose the king")
	}

	var forward Move
	found = false
	for _, m := range moves {
		if m.MovingPiece.Kind == Rook && m.MovingPiece.Color == White && m.To.File == m.From.File && m.To != m.From {
			forward = m
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected a pseudo-legal rook move along the pin line")
	}
	if MoveLeavesOwnKingInCheck(bs, forward) {
		t.Fatal("moving the pinned rook along the e-file should stay legal")
	}
}

// castleBoard places both kings and both rooks on their home squares
// for testing canCastle.
func castleBoard(t *testing.T, extra []placement) *BoardState {
	t.Helper()
	pieces := append([]placement{
		{King, White, "e1"},
		{Rook, White, "a1"},
		{Rook, White, "h1"},
		{King, Black, "e8"},
	}, extra...)
	return buildBoard(t, White, pieces)
}

// TestCastlingThroughCheckForbidden is scenario (c). The literal FEN
// in the castling-through-check fixture places the attacking rook on
// e2, which also checks the White king on e1 -- under canCastle's AND
// semantics that would forbid both O-O and O-O-O, contradicting the
// scenario's claim that O-O-O remains legal. The fixture is corrected
// here by placing the rook on f2, attacking only f1 (O-O's crossing
// square) and leaving the king itself unchecked.
func TestCastlingThroughCheckForbidden(t *testing.T) {
	bs := castleBoard(t, []placement{{Rook, Black, "f2"}})

	if canCastle(bs, White, true) {
		t.Fatal("O-O should be forbidden: f1 is attacked")
	}
	if !canCastle(bs, White, false) {
		t.Fatal("O-O-O should remain legal: queenside squares are untouched")
	}
}

func TestCastlingRequiresKingNotInCheck(t *testing.T) {
	bs := castleBoard(t, []placement{{Rook, Black, "e2"}})
	if canCastle(bs, White, true) {
		t.Fatal("O-O should be forbidden while the king is in check")
	}
	if canCastle(bs, White, false) {
		t.Fatal("O-O-O should be forbidden while the king is in check")
	}
}

func TestCastlingRequiresRookUnmoved(t *testing.T) {
	bs := castleBoard(t, nil)
	rook := bs.Board[0][7]
	rook.HasMoved = true
	bs.Board[0][7] = rook

	if canCastle(bs, White, true) {
		t.Fatal("O-O should be forbidden once the rook has moved")
	}
	if !canCastle(bs, White, false) {
		t.Fatal("O-O-O should be unaffected by the kingside rook having moved")
	}
}
