// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// timecontrol.go splits remaining clock time over the moves expected to
// be played and exposes cooperative cancellation for the search.

package engine

import (
	"math"
	"sync/atomic"
	"time"
)

const (
	defaultMovesToGo   = 30
	defaultBranchFactor = 2
)

// TimeControl allocates a thinking budget from either a clock (time left
// plus increment per side) or a fixed depth/move-time, and exposes a
// cooperative stop flag the search checks at node-count checkpoints.
type TimeControl struct {
	WTime, WInc time.Duration
	BTime, BInc time.Duration
	Depth       int
	MaxNodes    uint64
	MovesToGo   int
	Infinite    bool

	numPieces  int
	sideToMove Color
	stopped    atomic.Bool

	searchTime     time.Duration
	searchDeadline time.Time
}

// NewTimeControl returns a time control with no limits, to be narrowed by
// setting WTime/BTime/Depth before Start. MaxNodes is not read by the time
// control; the search enforces SearchSpec.MaxNodes itself.
func NewTimeControl(pos *Position) *TimeControl {
	inf := time.Duration(math.MaxInt64)
	return &TimeControl{
		WTime: inf, BTime: inf,
		Depth:      MaxPly,
		MovesToGo:  defaultMovesToGo,
		numPieces:  pos.Occupied().Popcnt(),
		sideToMove: pos.SideToMove(),
	}
}

// NewFixedDepthTimeControl returns a time control bounded only by depth.
func NewFixedDepthTimeControl(pos *Position, depth int) *TimeControl {
	tc := NewTimeControl(pos)
	tc.Depth = depth
	tc.MovesToGo = 1
	return tc
}

// NewMoveTimeControl returns a time control whose clock for both sides is
// moveTime, with one move to go. Start still divides that clock by the
// branch factor, so the search deadline falls well before moveTime has
// elapsed; the search does not use the whole of moveTime.
func NewMoveTimeControl(pos *Position, moveTime time.Duration) *TimeControl {
	tc := NewTimeControl(pos)
	tc.WTime, tc.BTime = moveTime, moveTime
	tc.MovesToGo = 1
	return tc
}

// thinkingTime splits remaining time t (plus increment i) over the moves
// still expected, favoring using more time early and relying more on the
// increment later.
func (tc *TimeControl) thinkingTime(t, i time.Duration) time.Duration {
	n := time.Duration(tc.MovesToGo)
	if tt := (t + (n-1)*i) / n; tt < t {
		return tt
	}
	return t
}

// Start begins the clock; call as close as possible to when the engine
// actually starts searching.
func (tc *TimeControl) Start() {
	branch := time.Duration(defaultBranchFactor)
	for np := tc.numPieces - 2; np > 0; np /= 6 {
		branch++
	}
	for i := 4; i > 0; i /= 2 {
		if tc.MovesToGo <= i {
			branch++
		}
	}

	var t, inc time.Duration
	if tc.sideToMove == White {
		t, inc = tc.WTime, tc.WInc
	} else {
		t, inc = tc.BTime, tc.BInc
	}

	tc.stopped.Store(false)
	tc.searchTime = tc.thinkingTime(t, inc) / branch
	tc.searchDeadline = time.Now().Add(tc.searchTime)
}

// NextDepth reports whether the search should start depth. Depths 1 and 2
// always start, so the search never returns with no move chosen just
// because the clock ran out before the first depth finished.
func (tc *TimeControl) NextDepth(depth int) bool {
	return depth <= tc.Depth && (depth <= 2 || !tc.Stopped())
}

// Stop marks the search as cancelled; the next checkpoint unwinds it.
func (tc *TimeControl) Stop() { tc.stopped.Store(true) }

// Stopped reports whether the search has been cancelled, either
// explicitly via Stop or because the deadline has passed.
func (tc *TimeControl) Stopped() bool {
	if tc.stopped.Load() {
		return true
	}
	if tc.Infinite {
		return false
	}
	if time.Now().After(tc.searchDeadline) {
		tc.stopped.Store(true)
		return true
	}
	return false
}
