// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"testing"
	"time"
)

func TestThreadHandlerStopsOnTimeout(t *testing.T) {
	th := NewThreadHandler()
	start := time.Now()
	th.Run(20*time.Millisecond, func() {
		for th.Running() {
			time.Sleep(time.Millisecond)
		}
	})
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("Run took %v, expected it to return shortly after the deadline", elapsed)
	}
	if th.Running() {
		t.Fatal("Running should be false once Run returns")
	}
}

func TestThreadHandlerReturnsWhenWorkFinishesEarly(t *testing.T) {
	th := NewThreadHandler()
	done := false
	th.Run(time.Second, func() {
		done = true
	})
	if !done {
		t.Fatal("work function should have run")
	}
}

func TestThreadHandlerStop(t *testing.T) {
	th := NewThreadHandler()
	iterations := 0
	th.Run(time.Second, func() {
		for th.Running() {
			iterations++
			if iterations == 3 {
				th.Stop()
			}
		}
	})
	if iterations < 3 {
		t.Fatalf("expected at least 3 iterations before Stop took effect, got %d", iterations)
	}
}
