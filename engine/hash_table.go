// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// Bound classifies how a stored score relates to the (alpha, beta)
// window it was produced under.
type Bound uint8

const (
	Exact Bound = iota
	LowerBound
	UpperBound
)

// ttEntry is one transposition-table slot. The stored hash rejects a
// slot last written for a different position, and checksum verifies
// that the entry's fields are intact (spec.md §4.5). A
// single table backs both main-search and quiescence probes: an entry
// stored at a deeper search depth than the current probe asks for is
// always a valid substitute, so quiescence benefits from whatever the
// full-width search already resolved without needing its own half.
type ttEntry struct {
	hash     uint64
	depth    int
	score    int
	bound    Bound
	checksum uint32
	valid    bool
}

const (
	fnvOffset32 uint32 = 2166136261
	fnvPrime32  uint32 = 16777619
)

func (e ttEntry) computeChecksum() uint32 {
	h := fnvOffset32
	h = (h ^ uint32(e.hash)) * fnvPrime32
	h = (h ^ uint32(e.hash>>32)) * fnvPrime32
	h = (h ^ uint32(e.depth)) * fnvPrime32
	h = (h ^ uint32(e.score)) * fnvPrime32
	h = (h ^ uint32(e.bound)) * fnvPrime32
	return h
}

// TranspositionTable is a fixed-capacity, open-addressed,
// always-replace table, per spec.md §4.5.
type TranspositionTable struct {
	table    []ttEntry
	capacity uint64
}

// NewTranspositionTable allocates a table with room for capacity
// entries.
func NewTranspositionTable(capacity int) *TranspositionTable {
	if capacity <= 0 {
		capacity = 1
	}
	return &TranspositionTable{
		table:    make([]ttEntry, capacity),
		capacity: uint64(capacity),
	}
}

// Store writes an entry, always replacing whatever occupied the slot.
func (tt *TranspositionTable) Store(hash uint64, depth, score int, bound Bound) {
	e := ttEntry{
		hash:  hash,
		depth: depth,
		score: score,
		bound: bound,
		valid: true,
	}
	e.checksum = e.computeChecksum()
	tt.table[hash%tt.capacity] = e
}

// Probe returns the stored entry for hash, if present and valid, as
// (depth, score, bound, ok).
func (tt *TranspositionTable) Probe(hash uint64) (depth, score int, bound Bound, ok bool) {
	e := tt.table[hash%tt.capacity]
	if !e.valid || e.hash != hash {
		return 0, 0, Exact, false
	}
	if e.checksum != e.computeChecksum() {
		return 0, 0, Exact, false
	}
	return e.depth, e.score, e.bound, true
}

// Clear resets every slot, discarding all stored evaluations.
func (tt *TranspositionTable) Clear() {
	for i := range tt.table {
		tt.table[i] = ttEntry{}
	}
}
