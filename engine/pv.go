// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

const (
	pvTableSize = 1 << 13
	pvTableMask = pvTableSize - 1
)

type pvEntry struct {
	lock uint64 // position's Zobrist hash, used to detect collisions
	move Move
}

// pvTable is a small hash-indexed table recording, for each visited
// position, the move the search currently believes is best -- walking
// it from the root via Line recovers the principal variation.
type pvTable []pvEntry

func newPVTable() pvTable {
	return make(pvTable, pvTableSize)
}

// Put records move as the best move found for hash. Null moves are
// not worth recording.
func (pv pvTable) Put(hash uint64, move Move) {
	if move.IsNull() {
		return
	}
	pv[hash&pvTableMask] = pvEntry{lock: hash, move: move}
}

func (pv pvTable) get(hash uint64) Move {
	e := &pv[hash&pvTableMask]
	if e.lock == hash {
		return e.move
	}
	return NullMove
}

// Line walks the table from bs's current position, applying each
// recorded move and looking up the next, until a loop or a position
// with no recorded move is reached. It restores bs to its original
// state before returning.
func (pv pvTable) Line(bs *BoardState, maxLen int) []Move {
	seen := make(map[uint64]bool)
	var moves []Move

	next := pv.get(bs.Hash())
	for !next.IsNull() && !seen[bs.Hash()] && len(moves) < maxLen {
		seen[bs.Hash()] = true
		moves = append(moves, next)
		bs.Apply(next)
		next = pv.get(bs.Hash())
	}
	for range moves {
		bs.Undo()
	}
	return moves
}
