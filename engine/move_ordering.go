// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// move_ordering orders a generated move list so the search explores
// the moves most likely to be good first: the hash/PV move, then
// captures by MVV-LVA, then quiet moves by the history heuristic.

package engine

import "sort"

// mvvLva[victim][attacker] is the 6x6 Most-Valuable-Victim,
// Least-Valuable-Attacker table from spec.md §4.3, generated from the
// same base piece values the evaluator uses so a pawn taking a queen
// always outranks a queen taking a pawn.
var mvvLva [numPieceKinds][numPieceKinds]int

func init() {
	for victim := Pawn; victim <= King; victim++ {
		for attacker := Pawn; attacker <= King; attacker++ {
			mvvLva[victim][attacker] = baseValue[victim]*10 - baseValue[attacker]
		}
	}
}

// captureOrderBase lifts every capture's order key above the quiet
// move range so captures always sort before quiets within a list that
// mixes both.
const captureOrderBase = 1 << 20

// HistoryTable accumulates beta-cutoff credit for quiet moves, keyed
// by (color, piece kind, destination file, destination rank), per
// spec.md §3 and §4.6.
type HistoryTable struct {
	table [3][numPieceKinds][8][8]int
}

// NewHistoryTable returns a zeroed history table.
func NewHistoryTable() *HistoryTable {
	return &HistoryTable{}
}

func (h *HistoryTable) get(m Move) int {
	p := m.MovingPiece
	return h.table[p.Color][p.Kind][m.To.Rank][m.To.File]
}

// Bump adds depth*depth to the (color, kind, to) bucket on a
// beta-cutoff, per spec.md §4.6.
func (h *HistoryTable) Bump(m Move, depth int) {
	p := m.MovingPiece
	h.table[p.Color][p.Kind][m.To.Rank][m.To.File] += depth * depth
}

// Decay multiplies every entry by 9/10, run once per completed
// top-level search (spec.md §4.6).
func (h *HistoryTable) Decay() {
	for c := range h.table {
		for k := range h.table[c] {
			for r := range h.table[c][k] {
				for f := range h.table[c][k][r] {
					h.table[c][k][r][f] = h.table[c][k][r][f] * 9 / 10
				}
			}
		}
	}
}

// orderKey returns a move's sort key: captures rank by MVV-LVA above
// captureOrderBase, quiets rank by history score below it.
func orderKey(m Move, hist *HistoryTable) int {
	if m.IsCapture() {
		return captureOrderBase + mvvLva[m.CapturedPiece.Kind][m.MovingPiece.Kind]
	}
	return hist.get(m)
}

// SortMoves orders moves in place: hashMove first (if present in the
// list), then captures by MVV-LVA descending, then quiets by history
// descending, per spec.md §4.3 and §4.6 step 5.
func SortMoves(moves []Move, hist *HistoryTable, hashMove Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		hi := moves[i].Equal(hashMove) && !hashMove.IsNull()
		hj := moves[j].Equal(hashMove) && !hashMove.IsNull()
		if hi != hj {
			return hi
		}
		return orderKey(moves[i], hist) > orderKey(moves[j], hist)
	})
}
