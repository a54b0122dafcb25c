// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

func TestThreefoldRepetition(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")

	shuttle := func() {
		m1, err := ParseUCIMove(pos, "e1d1")
		if err != nil {
			t.Fatalf("ParseUCIMove: %v", err)
		}
		pos.MakeMove(m1)
		m2, err := ParseUCIMove(pos, "e8d8")
		if err != nil {
			t.Fatalf("ParseUCIMove: %v", err)
		}
		pos.MakeMove(m2)
		m3, err := ParseUCIMove(pos, "d1e1")
		if err != nil {
			t.Fatalf("ParseUCIMove: %v", err)
		}
		pos.MakeMove(m3)
		m4, err := ParseUCIMove(pos, "d8e8")
		if err != nil {
			t.Fatalf("ParseUCIMove: %v", err)
		}
		pos.MakeMove(m4)
	}

	if pos.IsThreefoldRepetition() {
		t.Fatalf("starting position should not already be a repetition")
	}
	shuttle()
	if pos.IsThreefoldRepetition() {
		t.Fatalf("position should not repeat after only one shuttle")
	}
	shuttle()
	if !pos.IsThreefoldRepetition() {
		t.Fatalf("position should repeat a third time after two shuttles")
	}
}

func TestFiftyMoveDraw(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 99 50")
	if pos.IsFiftyMoveDraw() {
		t.Fatalf("halfmove clock 99 should not yet be a draw")
	}
	m, err := ParseUCIMove(pos, "e1d1")
	if err != nil {
		t.Fatalf("ParseUCIMove: %v", err)
	}
	pos.MakeMove(m)
	if !pos.IsFiftyMoveDraw() {
		t.Fatalf("halfmove clock 100 should be a fifty-move draw")
	}
}
