// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "errors"

// Error kinds produced by the core. Callers distinguish them with
// errors.Is; none of them is fatal to the engine itself.
var (
	// ErrIllegalFen is returned when a FEN string is malformed, has an
	// impossible piece count, or leaves a king in an illegal square.
	ErrIllegalFen = errors.New("illegal fen")

	// ErrIllegalMoveInput is returned when a user-supplied move string
	// does not name a move in the current legal move list.
	ErrIllegalMoveInput = errors.New("illegal move")
)

// Inf is a score magnitude no real evaluation or mate score can reach;
// mate scores are reported as Inf minus a small ply-dependent shift.
const Inf = 30000

func max(a, b int) int {
	if a >= b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a <= b {
		return a
	}
	return b
}
