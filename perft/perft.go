// Perft is a perft tool.
//
// Perft's main purpose is to test, debug and benchmark move generation.
// To do this we count number of nodes, captures, en passant, castles and
// promotions for given depths (usually small 4-7) from specific positions.
//
// For more background see:
//
//	https://www.chessprogramming.org/Perft
//	https://www.chessprogramming.org/Perft_Results
//
// Example:
//
//	$ go run ./perft --fen startpos --max_depth 6
//	Searching FEN "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
//	depth        nodes   captures enpassant castles   promotions eval  KNps   elapsed
//	-----+------------+----------+---------+---------+----------+-----+------+-------
//	    1           20          0         0         0          0 good    ...
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/corvidchess/corvid/engine"
	"github.com/corvidchess/corvid/notation"
)

var (
	fen      = flag.String("fen", "startpos", "position to search")
	minDepth = flag.Int("min_depth", 1, "minimum depth to search (inclusive)")
	maxDepth = flag.Int("max_depth", 5, "maximum depth to search (inclusive)")
	depth    = flag.Int("depth", 0, "if non zero, searches only this depth")
)

// counters counts leaves after backtracking on a position up to a
// certain depth.
type counters struct {
	nodes      uint64
	captures   uint64
	enpassant  uint64
	castles    uint64
	promotions uint64
}

func (co *counters) Add(ot counters) {
	co.nodes += ot.nodes
	co.captures += ot.captures
	co.enpassant += ot.enpassant
	co.castles += ot.castles
	co.promotions += ot.promotions
}

type hashEntry struct {
	hash     uint64
	counters counters
	depth    int
}

var (
	startpos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	duplain  = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"

	known = map[string]string{
		"startpos": startpos,
		"kiwipete": kiwipete,
		"duplain":  duplain,
	}

	// These node counts are standard chess perft results, independent
	// of board representation, so they carry over unchanged from the
	// bitboard-era tool.
	data = map[string][]counters{
		startpos: {
			{1, 0, 0, 0, 0},
			{20, 0, 0, 0, 0},
			{400, 0, 0, 0, 0},
			{8902, 34, 0, 0, 0},
			{197281, 1576, 0, 0, 0},
			{4865609, 82719, 258, 0, 0},
			{119060324, 2812008, 5248, 0, 0},
		},
		kiwipete: {
			{1, 0, 0, 0, 0},
			{48, 8, 0, 2, 0},
			{2039, 351, 1, 91, 0},
			{97862, 17102, 45, 3162, 0},
			{4085603, 757163, 1929, 128013, 15172},
		},
		duplain: {
			{1, 0, 0, 0, 0},
			{14, 1, 0, 0, 0},
			{191, 14, 0, 0, 0},
			{2812, 209, 2, 0, 0},
			{43238, 3348, 123, 0, 0},
			{674624, 52051, 1165, 0, 0},
			{11030083, 940350, 33325, 0, 7552},
		},
	}

	hashSize  = 1 << 20
	hashTable = make([]hashEntry, hashSize)
)

func perft(bs *engine.BoardState, depth int, hashTable []hashEntry, moves *[]engine.Move) counters {
	if depth == 0 {
		return counters{1, 0, 0, 0, 0}
	}

	// The Zobrist hash does not cover en-passant state, so it is mixed
	// into the cache key: the same placement reached with and without a
	// capturable double step has different counts.
	key := bs.Hash() ^ uint64(int64(bs.EnPassantFile)+2)*0x9e3779b97f4a7c15
	if hashTable != nil {
		index := key % uint64(len(hashTable))
		if hashTable[index].depth == depth && hashTable[index].hash == key {
			return hashTable[index].counters
		}
	}

	r := counters{}
	start := len(*moves)
	engine.GenerateMoves(bs, false, moves)
	for start < len(*moves) {
		last := len(*moves) - 1
		move := (*moves)[last]
		*moves = (*moves)[:last]

		bs.Apply(move)
		if engine.KingInCheck(bs, move.MovingPiece.Color) {
			bs.Undo()
			continue
		}

		if depth == 1 { // count only leaf nodes
			if move.IsCapture() {
				r.captures++
			}
			switch move.Type() {
			case engine.EnPassant:
				r.enpassant++
			case engine.Castling:
				r.castles++
			case engine.Promotion:
				r.promotions++
			}
		}

		r.Add(perft(bs, depth-1, hashTable, moves))
		bs.Undo()
	}

	if hashTable != nil {
		index := key % uint64(len(hashTable))
		hashTable[index] = hashEntry{hash: key, counters: r, depth: depth}
	}
	return r
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	var expected []counters
	if s, has := known[*fen]; has {
		*fen = s
		expected = data[*fen]
	}
	if *depth != 0 {
		*minDepth = *depth
		*maxDepth = *depth
	}

	fmt.Printf("Searching FEN %q\n", *fen)
	bs, err := notation.ParseFEN(*fen)
	if err != nil {
		log.Fatalln("cannot parse --fen:", err)
	}

	fmt.Printf("depth        nodes   captures enpassant castles   promotions eval  KNps   elapsed\n")
	fmt.Printf("-----+------------+----------+---------+---------+----------+-----+------+-------\n")

	for d := *minDepth; d <= *maxDepth; d++ {
		start := time.Now()
		c := perft(bs, d, hashTable, new([]engine.Move))
		duration := time.Since(start)

		ok := ""
		if d < len(expected) {
			if c == expected[d] {
				ok = "good"
			} else {
				ok = "bad"
			}
		}

		fmt.Printf("   %2d %12d %10d %9d %9d %10d %-4s %6.f %v\n",
			d, c.nodes, c.captures, c.enpassant, c.castles, c.promotions,
			ok, float64(c.nodes)/duration.Seconds()/1e3, duration)

		if ok == "bad" {
			e := expected[d]
			fmt.Printf("   %2d %12d %10d %9d %9d %10d %s\n",
				d, e.nodes, e.captures, e.enpassant, e.castles, e.promotions,
				"expected")
			break
		}
	}
}
