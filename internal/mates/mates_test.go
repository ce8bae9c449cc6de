// Package mates exercises the search engine against known
// mate-in-one positions.
package mates

import (
	"testing"

	"github.com/corvidchess/corvid/engine"
	"github.com/corvidchess/corvid/notation"
)

type matePosition struct {
	fen          string
	expectedMove string // move text, per notation.MoveText's grammar
}

var mateIn1 = []matePosition{
	// Back-rank mate: rook delivers mate along the 8th, king boxed in
	// by its own pawns.
	{"6k1/5ppp/8/8/8/8/8/4R1K1 w - - 0 1", "re1e8"},
	// Fool's mate: 1.f3 e5 2.g4 Qh4#.
	{"rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2", "qd8h4"},
}

func runMateSearch(t *testing.T, pos matePosition, depth int) {
	bs, err := notation.ParseFEN(pos.fen)
	if err != nil {
		t.Fatalf("bad FEN %q: %v", pos.fen, err)
	}

	opts := engine.DefaultOptions()
	opts.MaxDepth = depth
	opts.MoveTimeMS = 5000
	eng := engine.NewEngine(bs, opts, nil)

	best := eng.Play()
	if best.IsNull() {
		t.Fatalf("no move found for %q", pos.fen)
	}
	got := notation.MoveText(best)
	if got != pos.expectedMove {
		t.Errorf("fen %q: expected %s, got %s", pos.fen, pos.expectedMove, got)
	}
}

func TestMateIn1(t *testing.T) {
	for _, pos := range mateIn1 {
		runMateSearch(t, pos, 3)
	}
}
