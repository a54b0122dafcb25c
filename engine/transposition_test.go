// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

func TestTranspositionStoreProbeRoundtrip(t *testing.T) {
	tt := NewTranspositionTable(1)
	m := NewMove(MoveInfo{From: RankFile(1, 4), To: RankFile(3, 4), Piece: Pawn})
	tt.Store(0x1234, 6, BoundExact, 150, m)

	depth, flag, eval, compact, ok := tt.Probe(0x1234)
	if !ok {
		t.Fatalf("expected a hit on the key just stored")
	}
	if depth != 6 || flag != BoundExact || eval != 150 {
		t.Errorf("got (depth=%d, flag=%v, eval=%d), want (6, BoundExact, 150)", depth, flag, eval)
	}
	if !m.Matches(compact) {
		t.Errorf("stored move should match the compact projection read back")
	}
}

func TestTranspositionMiss(t *testing.T) {
	tt := NewTranspositionTable(1)
	if _, _, _, _, ok := tt.Probe(0xdeadbeef); ok {
		t.Errorf("expected a miss on an empty table")
	}
}

func TestTranspositionReplacementPolicy(t *testing.T) {
	tt := NewTranspositionTable(1)
	m := NewMove(MoveInfo{From: RankFile(1, 4), To: RankFile(3, 4), Piece: Pawn})

	tt.Store(0x1, 10, BoundExact, 100, m)
	tt.Store(0x1, 3, BoundExact, 1, m) // shallower, same generation: should not overwrite

	depth, _, eval, _, ok := tt.Probe(0x1)
	if !ok || depth != 10 || eval != 100 {
		t.Errorf("shallower same-generation store should not replace a deeper entry, got depth=%d eval=%d", depth, eval)
	}

	tt.Age()
	tt.Store(0x1, 3, BoundExact, 1, m) // new generation: should overwrite regardless of depth
	depth, _, eval, _, ok = tt.Probe(0x1)
	if !ok || depth != 3 || eval != 1 {
		t.Errorf("a new generation should be free to overwrite, got depth=%d eval=%d", depth, eval)
	}
}

func TestTranspositionHashFull(t *testing.T) {
	tt := NewTranspositionTable(1)
	if got := tt.HashFull(); got != 0 {
		t.Errorf("HashFull() on an empty table = %d, want 0", got)
	}
	m := NewMove(MoveInfo{From: RankFile(1, 4), To: RankFile(3, 4), Piece: Pawn})
	for i := uint64(0); i < 10; i++ {
		tt.Store(i, 1, BoundExact, 0, m)
	}
	if got := tt.HashFull(); got <= 0 {
		t.Errorf("HashFull() after storing entries should be > 0, got %d", got)
	}
}
