// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine implements board representation, move generation,
// position evaluation and search.
//
// Position (basic.go, position.go) uses a plain 8x8 array of Piece
// values rather than bitboards -- see SPEC_FULL.md's Design Notes.
//
// Search (engine.go) features implemented are:
//
//   - Aspiration windows
//   - Negamax framework with alpha-beta pruning
//   - Null-move pruning
//   - Razor pruning
//   - Futility pruning
//   - Late move reductions (LMR)
//   - Principal variation search (PVS)
//   - Quiescence search with delta pruning
//   - History heuristic
//   - Zobrist hashing (zobrist.go) and a checksum-guarded
//     transposition table (hash_table.go)
//
// Move ordering (move_ordering.go) consists of the hash/PV move first,
// then captures sorted by MVV-LVA, then quiet moves sorted by the
// history heuristic.
package engine

import (
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Search tuning constants named directly by spec.md §4.6.
const (
	nullMoveR            = 2
	nullMoveMinDepth     = 2
	nullMoveMinIterDepth = 6

	lmrThreshold      = 3
	lmrR              = 2
	lmrExtraThreshold = 10
	lmrMinDepth       = 2
	lmrMinIterDepth   = 6

	razorMaxDepth = 3

	futilityMaxDepth = 6

	rootPruneMinDepth = 8
)

func razorMargin(depth int) int {
	return min(400+300*depth, 3000)
}

// futilityMargin is not given an explicit formula by spec.md (only the
// technique and its gating conditions); this linear schedule is a
// documented implementation choice, see DESIGN.md.
func futilityMargin(depth int) int {
	return 100 + 100*depth
}

// Options holds the search tunables the CLI's update-depth,
// update-timelimit, update-window, update-info and update-pondering
// commands adjust, and that config.Load reads from an optional TOML
// file.
type Options struct {
	MaxDepth            int
	MoveTimeMS          int
	UseAspirationWindow bool
	ShowSearchInfo      bool
	PonderingEnabled    bool
}

// DefaultOptions returns the engine's out-of-the-box tunables.
func DefaultOptions() Options {
	return Options{
		MaxDepth:            64,
		MoveTimeMS:          5000,
		UseAspirationWindow: true,
		ShowSearchInfo:      true,
	}
}

// SearchStats are the atomics spec.md §5 requires to be observable
// safely from outside the search goroutine.
type SearchStats struct {
	Nodes                   atomic.Int64
	LeafNodes               atomic.Int64
	QuiescenceNodes         atomic.Int64
	BestEvalOfIteration     atomic.Int32
	MaxIterativeSearchDepth atomic.Int32
}

// Reset zeroes every counter, run once at the start of each Play call
// so per-move statistics don't accumulate across an entire game.
func (s *SearchStats) Reset() {
	s.Nodes.Store(0)
	s.LeafNodes.Store(0)
	s.QuiescenceNodes.Store(0)
	s.BestEvalOfIteration.Store(0)
	s.MaxIterativeSearchDepth.Store(0)
}

// searchState is carried through the recursion instead of global
// flags: it tracks whether this line already used its one null move,
// and whether it is inside a reduced (LMR) or null-window (PVS)
// re-search.
type searchState struct {
	inNullMoveLine bool
	inLMRLine      bool
	inPVSLine      bool
}

// Engine ties a board, transposition/history tables, PV table and
// thread handler together into one searcher. It is not safe for
// concurrent use by two goroutines at once -- Play owns the board for
// the duration of the search.
type Engine struct {
	Board   *BoardState
	TT      *TranspositionTable
	History *HistoryTable
	PV      pvTable
	Threads *ThreadHandler
	Stats   SearchStats
	Options Options
	Log     *zap.SugaredLogger
}

// NewEngine builds an Engine around bs. log may be nil, in which case
// a no-op logger is used.
func NewEngine(bs *BoardState, opts Options, log *zap.SugaredLogger) *Engine {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Engine{
		Board:   bs,
		TT:      NewTranspositionTable(1 << 20),
		History: NewHistoryTable(),
		PV:      newPVTable(),
		Threads: NewThreadHandler(),
		Options: opts,
		Log:     log,
	}
}

// rootMove pairs a root-level move with the score its subtree
// returned in the most recently completed iteration.
type rootMove struct {
	move  Move
	score int
}

// Play runs iterative deepening under a ThreadHandler-managed deadline
// and returns the best move found. If not even depth 1 completed, the
// first legal move is returned; if there are no legal moves at all,
// NullMove is returned and the caller should consult IsCheckmate and
// IsStalemate.
func (e *Engine) Play() Move {
	legal := e.legalRootMoves()
	if len(legal) == 0 {
		return NullMove
	}

	e.Stats.Reset()
	best := legal[0]
	timeout := time.Duration(e.Options.MoveTimeMS) * time.Millisecond
	e.Threads.Run(timeout, func() {
		best = e.iterativeDeepening(legal)
	})
	return best
}

func (e *Engine) legalRootMoves() []Move {
	var pseudo []Move
	GenerateMoves(e.Board, false, &pseudo)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if !MoveLeavesOwnKingInCheck(e.Board, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// iterativeDeepening implements spec.md §4.6's top-level loop: depth 1
// upward until max depth or cancellation, each iteration fully scoring
// the root-move list, discarding any iteration that did not complete.
func (e *Engine) iterativeDeepening(legal []Move) Move {
	roots := make([]rootMove, len(legal))
	for i, m := range legal {
		roots[i] = rootMove{move: m}
	}

	best := legal[0]
	prevScore := 0

	for depth := 1; depth <= e.Options.MaxDepth && e.Threads.Running(); depth++ {
		e.Stats.MaxIterativeSearchDepth.Store(int32(depth))

		results, completed := e.searchRoot(roots, depth, prevScore)
		if !completed {
			break // partial iteration discarded
		}

		roots = results
		best = roots[0].move
		prevScore = roots[0].score
		e.Stats.BestEvalOfIteration.Store(int32(prevScore))

		e.History.Decay()
		e.logIteration(depth, prevScore)

		if depth >= rootPruneMinDepth && depth%2 == 0 && len(roots) > 1 {
			keep := len(roots) - len(roots)/2
			roots = roots[:keep]
		}
	}

	return best
}

func (e *Engine) logIteration(depth, score int) {
	if !e.Options.ShowSearchInfo {
		return
	}
	e.Log.Infow("search iteration complete",
		"depth", depth,
		"score", score,
		"nodes", e.Stats.Nodes.Load(),
		"qnodes", e.Stats.QuiescenceNodes.Load(),
		"pv", formatPV(e.PV.Line(e.Board, depth)),
	)
}

func formatPV(line []Move) string {
	var sb strings.Builder
	for i, m := range line {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.From.String())
		sb.WriteString(m.To.String())
	}
	return sb.String()
}

// aspirationWindows is the fixed sequence spec.md §4.6 names for
// widening the window on fail-high/fail-low: half a pawn, two pawns,
// then unbounded.
var aspirationWindows = [3]int{baseValue[Pawn] / 2, baseValue[Pawn] * 2, Inf}

// searchRoot scores every root move at depth, applying aspiration
// windows when enabled, and returns the root list sorted best-first.
// completed is false if the search was cancelled mid-iteration.
func (e *Engine) searchRoot(roots []rootMove, depth, prevScore int) ([]rootMove, bool) {
	if depth < 2 || !e.Options.UseAspirationWindow {
		return e.searchRootPass(roots, depth, -Inf, Inf)
	}

	for wi := 0; wi < len(aspirationWindows); wi++ {
		w := aspirationWindows[wi]
		var alpha, beta int
		if w == Inf {
			alpha, beta = -Inf, Inf
		} else {
			alpha, beta = prevScore-w, prevScore+w
		}

		results, completed := e.searchRootPass(roots, depth, alpha, beta)
		if !completed {
			return nil, false
		}
		if len(results) == 0 {
			return results, true
		}
		best := results[0].score
		if w == Inf || (best > alpha && best < beta) {
			return results, true
		}
		// Fail-high or fail-low: re-search with the next wider window.
	}
	return e.searchRootPass(roots, depth, -Inf, Inf)
}

// searchRootPass runs one pass over roots at the given window, using
// PVS between root moves (first full-window, rest null-window with a
// full re-search on fail-high).
func (e *Engine) searchRootPass(roots []rootMove, depth, alpha, beta int) ([]rootMove, bool) {
	bs := e.Board
	results := make([]rootMove, 0, len(roots))
	a := alpha
	for i, rm := range roots {
		if !e.Threads.Running() {
			return nil, false
		}

		bs.Apply(rm.move)
		var score int
		if i == 0 {
			score = -e.negamax(depth-1, 1, -beta, -a, depth, searchState{})
		} else {
			score = -e.negamax(depth-1, 1, -a-1, -a, depth, searchState{inPVSLine: true})
			if score > a && score < beta {
				score = -e.negamax(depth-1, 1, -beta, -a, depth, searchState{})
			}
		}
		bs.Undo()

		if !e.Threads.Running() {
			return nil, false
		}

		results = append(results, rootMove{move: rm.move, score: score})
		if score > a {
			a = score
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].score > results[j].score })
	if len(results) > 0 {
		e.PV.Put(bs.Hash(), results[0].move)
	}
	return results, true
}

// negamax implements spec.md §4.6's augmented alpha-beta search. It
// operates on e.Board directly, applying and undoing moves as it
// recurses; depth is plies remaining, ply is distance from the root
// (used for mate-score scaling), iterDepth is the current iterative-
// deepening target (gating null-move/LMR activation).
func (e *Engine) negamax(depth, ply, alpha, beta, iterDepth int, st searchState) int {
	if !e.Threads.Running() {
		return 0
	}
	e.Stats.Nodes.Add(1)

	bs := e.Board
	hash := bs.Hash()
	origAlpha, origBeta := alpha, beta
	isQNode := depth <= 0

	// 1. TT probe. One table backs both main search and quiescence: an
	// entry stored at ttDepth >= depth is a valid substitute regardless
	// of which search mode produced it.
	if ttDepth, ttScore, bound, ok := e.TT.Probe(hash); ok && ttDepth >= depth {
		switch bound {
		case Exact:
			return ttScore
		case LowerBound:
			if ttScore >= beta {
				return ttScore
			}
		case UpperBound:
			if ttScore <= alpha {
				return ttScore
			}
		}
	}

	// 2. Leaf: drop into quiescence.
	if isQNode {
		e.Stats.LeafNodes.Add(1)
		return e.quiescence(alpha, beta)
	}

	inCheck := KingInCheck(bs, bs.SideToMove)

	// 3. Null-move pruning.
	if !st.inNullMoveLine && !inCheck && depth >= nullMoveMinDepth && iterDepth >= nullMoveMinIterDepth {
		bs.ApplyNull()
		score := -e.negamax(depth-1-nullMoveR, ply+1, -beta, -beta+1, iterDepth, searchState{inNullMoveLine: true})
		bs.UndoNull()
		if e.Threads.Running() && score >= beta {
			return beta
		}
	}

	nodeLightEval := 0
	haveLightEval := false
	lightEval := func() int {
		if !haveLightEval {
			nodeLightEval = EvaluateLightweight(bs)
			haveLightEval = true
		}
		return nodeLightEval
	}

	// 4. Razor pruning.
	if depth <= razorMaxDepth && lightEval()+razorMargin(depth) < alpha {
		return e.quiescence(alpha, beta)
	}

	// 5. Generate and order moves: hash/PV move, then MVV-LVA captures,
	// then history-sorted quiets.
	var moves []Move
	GenerateMoves(bs, false, &moves)
	hashMove := e.PV.get(hash)
	SortMoves(moves, e.History, hashMove)

	legalCount := 0
	best := -Inf
	bestMove := NullMove

	for idx, m := range moves {
		if !e.Threads.Running() {
			return 0
		}

		if m.CapturedPiece.Kind == King {
			// Defensive: the prior ply's move left its king capturable.
			// Legality filtering below should make this unreachable, but
			// spec.md §4.6 step 6 names it as the mate-detection signal.
			return Inf - ply
		}

		bs.Apply(m)
		if KingInCheck(bs, m.MovingPiece.Color) {
			bs.Undo()
			continue // pseudo-legal but illegal: leaves own king in check
		}
		legalCount++

		giveCheck := KingInCheck(bs, bs.SideToMove)
		isTactical := m.IsCapture() || m.PromotionKind != Empty

		// Futility pruning: skip quiet, non-checking moves that can't
		// plausibly raise alpha even with a margin.
		if !isTactical && !giveCheck && depth <= futilityMaxDepth &&
			lightEval()+futilityMargin(depth) < alpha {
			bs.Undo()
			continue
		}

		reduction := 0
		if idx > lmrThreshold && !isTactical && !giveCheck &&
			depth >= lmrMinDepth && iterDepth >= lmrMinIterDepth {
			reduction = lmrR
			if idx > lmrExtraThreshold {
				reduction++
			}
		}

		var score int
		switch {
		case idx == 0:
			// First (best-ordered) move: full window.
			score = -e.negamax(depth-1, ply+1, -beta, -alpha, iterDepth, st)
		case reduction > 0:
			reducedDepth := depth - 1 - reduction
			if reducedDepth < 0 {
				reducedDepth = 0
			}
			score = -e.negamax(reducedDepth, ply+1, -alpha-1, -alpha, iterDepth, searchState{inNullMoveLine: st.inNullMoveLine, inLMRLine: true})
			if score > alpha {
				// Reduced search beat alpha: re-search at full depth,
				// still within PVS's null window first.
				score = -e.negamax(depth-1, ply+1, -alpha-1, -alpha, iterDepth, searchState{inNullMoveLine: st.inNullMoveLine, inPVSLine: true})
				if score > alpha && score < beta {
					score = -e.negamax(depth-1, ply+1, -beta, -alpha, iterDepth, st)
				}
			}
		default:
			// PVS: null window, full re-search only on fail-high.
			score = -e.negamax(depth-1, ply+1, -alpha-1, -alpha, iterDepth, searchState{inNullMoveLine: st.inNullMoveLine, inPVSLine: true})
			if score > alpha && score < beta {
				score = -e.negamax(depth-1, ply+1, -beta, -alpha, iterDepth, st)
			}
		}

		bs.Undo()

		if !e.Threads.Running() {
			return 0
		}

		if score > best {
			best = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if !isTactical {
				e.History.Bump(m, depth)
			}
			break
		}
	}

	// 7. Terminal: no legal reply. Distinguish checkmate from stalemate;
	// shorter mates are preferred automatically since ply grows with
	// recursion depth, shrinking the magnitude returned for deeper mates.
	if legalCount == 0 {
		if inCheck {
			return -Inf + ply
		}
		return 0
	}

	e.PV.Put(hash, bestMove)

	// 8. Store into TT.
	var bound Bound
	switch {
	case best >= origBeta:
		bound = LowerBound
	case best <= origAlpha:
		bound = UpperBound
	default:
		bound = Exact
	}
	e.TT.Store(hash, depth, best, bound)

	return best
}

// quiescence implements spec.md §4.6's capture-only extension:
// standing pat, then captures ordered by MVV-LVA with delta pruning.
func (e *Engine) quiescence(alpha, beta int) int {
	if !e.Threads.Running() {
		return 0
	}
	e.Stats.Nodes.Add(1)
	e.Stats.QuiescenceNodes.Add(1)

	bs := e.Board
	standPat := Evaluate(bs)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var caps []Move
	GenerateMoves(bs, true, &caps)
	SortMoves(caps, e.History, NullMove)

	for _, m := range caps {
		if !e.Threads.Running() {
			return 0
		}
		if m.CapturedPiece.Kind == King {
			return Inf
		}

		if !bs.IsEndGame {
			delta := standPat + baseValue[m.CapturedPiece.Kind] + baseValue[Queen]
			if delta < alpha {
				continue
			}
		}

		bs.Apply(m)
		if KingInCheck(bs, m.MovingPiece.Color) {
			bs.Undo()
			continue
		}
		score := -e.quiescence(-beta, -alpha)
		bs.Undo()

		if !e.Threads.Running() {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// IsCheckmate reports whether color is checkmated: in check with no
// legal reply.
func IsCheckmate(bs *BoardState, color Color) bool {
	if bs.SideToMove != color || !KingInCheck(bs, color) {
		return false
	}
	return !hasAnyLegalMove(bs)
}

// IsStalemate reports whether color is stalemated: not in check but
// with no legal reply.
func IsStalemate(bs *BoardState, color Color) bool {
	if bs.SideToMove != color || KingInCheck(bs, color) {
		return false
	}
	return !hasAnyLegalMove(bs)
}

func hasAnyLegalMove(bs *BoardState) bool {
	var pseudo []Move
	GenerateMoves(bs, false, &pseudo)
	for _, m := range pseudo {
		if !MoveLeavesOwnKingInCheck(bs, m) {
			return true
		}
	}
	return false
}
