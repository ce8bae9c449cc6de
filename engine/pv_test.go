// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

func TestPVTablePutGet(t *testing.T) {
	pv := newPVTable()
	bs := startBoard(t)
	var moves []Move
	GenerateMoves(bs, false, &moves)
	m := moves[0]

	pv.Put(bs.Hash(), m)
	if got := pv.get(bs.Hash()); !got.Equal(m) {
		t.Fatalf("pv.get = %v, want %v", got, m)
	}
}

func TestPVTableLineRestoresBoard(t *testing.T) {
	pv := newPVTable()
	bs := startBoard(t)
	before := *bs

	var moves []Move
	GenerateMoves(bs, false, &moves)
	m1 := moves[0]
	pv.Put(bs.Hash(), m1)

	bs.Apply(m1)
	var moves2 []Move
	GenerateMoves(bs, false, &moves2)
	m2 := moves2[0]
	pv.Put(bs.Hash(), m2)
	bs.Undo()

	line := pv.Line(bs, 10)
	if len(line) != 2 {
		t.Fatalf("len(line) = %d, want 2", len(line))
	}
	if !line[0].Equal(m1) || !line[1].Equal(m2) {
		t.Fatalf("line = %v, want [%v, %v]", line, m1, m2)
	}
	if bs.Board != before.Board {
		t.Fatal("Line should restore the board to its original state")
	}
}

func TestPVTablePutIgnoresNullMove(t *testing.T) {
	pv := newPVTable()
	pv.Put(0x1234, NullMove)
	if got := pv.get(0x1234); !got.IsNull() {
		t.Fatalf("pv.get after Put(NullMove) = %v, want NullMove", got)
	}
}
