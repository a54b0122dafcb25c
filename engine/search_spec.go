// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// search_spec.go defines the input contract the UCI layer builds before
// invoking Searcher.Search.

package engine

// SearchSpec configures one search: a time allocation, depth/node limits,
// an optional root-move restriction, and the telemetry sink.
type SearchSpec struct {
	TimeControl *TimeControl  // time_frame, derived by the caller from clocks or a fixed move time
	MaxDepth    int           // 0 means MaxSearchDepth
	MaxNodes    uint64        // 0 means unbounded
	SearchMoves []Move        // optional restriction of root moves
	Infinite    bool          // disables the checkmate-found early exit
	Logger      Logger        // info/bestmove sink; NopLogger if nil
}
