// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

func TestEvaluateSymmetric(t *testing.T) {
	bs := startBoard(t)
	white := Evaluate(bs)

	bs.SideToMove = Black
	black := Evaluate(bs)

	if white != -black {
		t.Fatalf("Evaluate should flip sign with side to move: white=%d, black=%d", white, black)
	}
}

func TestEvaluateLightweightMaterialOnly(t *testing.T) {
	bs := buildBoard(t, White, []placement{
		{King, White, "e1"},
		{King, Black, "e8"},
		{Queen, White, "d1"},
	})
	if got, want := EvaluateLightweight(bs), baseValue[Queen]; got != want {
		t.Fatalf("EvaluateLightweight = %d, want %d (queen only, kings cancel)", got, want)
	}
}

func TestIsEndGameThresholds(t *testing.T) {
	cases := []struct {
		queens, mainPieces int
		want               bool
	}{
		{2, 2, true},
		{2, 3, false},
		{1, 5, true},
		{1, 6, false},
		{0, 8, true},
		{0, 9, false},
	}
	for _, c := range cases {
		if got := isEndGame(c.queens, c.mainPieces); got != c.want {
			t.Fatalf("isEndGame(%d, %d) = %v, want %v", c.queens, c.mainPieces, got, c.want)
		}
	}
}
