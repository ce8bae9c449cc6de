// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

func TestZobristDeterministicAcrossRuns(t *testing.T) {
	bs1 := startBoard(t)
	bs2 := startBoard(t)
	if bs1.Hash() != bs2.Hash() {
		t.Fatal("two freshly built starting positions should hash identically")
	}
}

func TestZobristDistinguishesSideToMove(t *testing.T) {
	white := startBoard(t)
	black := startBoard(t)
	black.SideToMove = Black

	if computeZobristHash(white) == computeZobristHash(black) {
		t.Fatal("side to move must affect the hash")
	}
}

func TestZobristDistinguishesPiecePlacement(t *testing.T) {
	a := buildBoard(t, White, []placement{
		{King, White, "e1"},
		{King, Black, "e8"},
		{Pawn, White, "e4"},
	})
	b := buildBoard(t, White, []placement{
		{King, White, "e1"},
		{King, Black, "e8"},
		{Pawn, White, "d4"},
	})
	if a.Hash() == b.Hash() {
		t.Fatal("different piece placement must produce different hashes")
	}
}
