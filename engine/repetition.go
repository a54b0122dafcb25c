// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// repetition.go detects draws by repeated position, scanning the history
// stack rather than maintaining a separate count, since the hash is
// already incrementally maintained and path-independent.

package engine

// IsThreefoldRepetition reports whether the current position's hash has
// occurred at least twice before in the reversible-move tail of history
// (i.e. three occurrences total, counting the current one).
func (pos *Position) IsThreefoldRepetition() bool {
	hash := pos.state.zobrist
	count := 1
	// Only reversible plies (since the last pawn move or capture) can
	// repeat a position; halfmoveClock bounds how far back to scan.
	limit := len(pos.history) - pos.state.halfmoveClock
	if limit < 0 {
		limit = 0
	}
	for i := len(pos.history) - 1; i >= limit; i-- {
		if pos.history[i].zobrist == hash {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}

// IsFiftyMoveDraw reports whether the halfmove clock has reached the
// fifty-move-rule threshold.
func (pos *Position) IsFiftyMoveDraw() bool {
	return pos.state.halfmoveClock >= 100
}
