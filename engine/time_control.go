// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"sync/atomic"
	"time"
)

// ThreadHandler launches a worker goroutine to run the search and a
// watchdog goroutine that sleeps up to a deadline, per spec.md §4.7.
// On timeout the watchdog clears runningFlag; on worker completion the
// worker's close of workerDone wakes the watchdog early. Run joins
// both goroutines before returning, matching §5's ordering guarantee
// that handle_engine_turn only returns once both have finished.
//
// One ThreadHandler owns at most one active pair at a time -- Run must
// not be called again until a prior call has returned.
type ThreadHandler struct {
	runningFlag atomic.Bool
}

// NewThreadHandler returns a handler with no search in flight.
func NewThreadHandler() *ThreadHandler {
	return &ThreadHandler{}
}

// Running reports whether the current search should keep going. Every
// recursive negamax call checks this (spec.md §5's cancellation
// semantics): a false observation means the caller must unwind,
// undoing any moves it applied, and discard its partial result.
func (th *ThreadHandler) Running() bool {
	return th.runningFlag.Load()
}

// Stop requests that the running search unwind as soon as it next
// checks Running -- used by the CLI's stop-search command.
func (th *ThreadHandler) Stop() {
	th.runningFlag.Store(false)
}

// Run executes work (expected to be the iterative-deepening search)
// under a cooperative deadline. It returns once both the worker and
// the watchdog have finished, exactly as spec.md §4.7 describes for
// the C++ worker/watchdog thread pair.
func (th *ThreadHandler) Run(timeout time.Duration, work func()) {
	th.runningFlag.Store(true)

	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		work()
	}()

	watchdogDone := make(chan struct{})
	go func() {
		defer close(watchdogDone)
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		select {
		case <-timer.C:
			th.runningFlag.Store(false)
		case <-workerDone:
			// Worker finished first; wake early, nothing to do.
		}
	}()

	<-workerDone
	<-watchdogDone
	th.runningFlag.Store(false)
}
