// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

func TestTranspositionTableStoreProbeRoundTrip(t *testing.T) {
	tt := NewTranspositionTable(1024)
	tt.Store(0xdeadbeef, 6, 123, LowerBound)

	depth, score, bound, ok := tt.Probe(0xdeadbeef)
	if !ok {
		t.Fatal("expected a hit for the stored hash")
	}
	if depth != 6 || score != 123 || bound != LowerBound {
		t.Fatalf("got (%d, %d, %v), want (6, 123, LowerBound)", depth, score, bound)
	}
}

// TestTranspositionTableShallowerDepthStillHits confirms a shallower
// probe can reuse an entry stored at a greater depth, since a deeper
// search result is always a valid substitute for a shallower query
// (the property that lets quiescence and main search share one table).
func TestTranspositionTableShallowerDepthStillHits(t *testing.T) {
	tt := NewTranspositionTable(1024)
	tt.Store(0x1, 4, 50, Exact)

	// A probe wanting depth 2 may use the entry only if its stored
	// depth is at least 2.
	depth, score, _, ok := tt.Probe(0x1)
	if !ok || depth < 2 || score != 50 {
		t.Fatalf("probe = (%d, %d), ok=%v, want a hit usable at depth 2 with score 50", depth, score, ok)
	}
}

// TestTranspositionTableCollisionMisses checks that a slot last
// written for a different hash (sharing the same modulo index) is not
// returned as a hit: Probe compares the stored hash with the query.
func TestTranspositionTableCollisionMisses(t *testing.T) {
	tt := NewTranspositionTable(4)
	tt.Store(1, 5, 10, Exact) // lands in slot 1 % 4 == 1
	tt.Store(5, 7, 20, Exact) // collides into the same slot

	_, score, _, ok := tt.Probe(5)
	if !ok || score != 20 {
		t.Fatalf("expected the most recent write to win: got %d, ok=%v", score, ok)
	}
	_, _, _, ok = tt.Probe(1)
	if ok {
		t.Fatal("expected the overwritten hash to miss, not return stale data")
	}
}

func TestTranspositionTableClear(t *testing.T) {
	tt := NewTranspositionTable(16)
	tt.Store(42, 3, 1, Exact)
	tt.Clear()

	if _, _, _, ok := tt.Probe(42); ok {
		t.Fatal("expected Clear to discard all stored entries")
	}
}
