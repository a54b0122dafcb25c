// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

func TestColorPieceRoundtrip(t *testing.T) {
	for c := Color(White); c <= Black; c++ {
		for p := Pawn; p <= King; p++ {
			cp := MakeColorPiece(c, p)
			if got := cp.Color(); got != c {
				t.Errorf("MakeColorPiece(%v,%v).Color() = %v, want %v", c, p, got, c)
			}
			if got := cp.Piece(); got != p {
				t.Errorf("MakeColorPiece(%v,%v).Piece() = %v, want %v", c, p, got, p)
			}
		}
	}
}

func TestPieceValueOrdering(t *testing.T) {
	if Pawn.Value() >= Knight.Value() {
		t.Errorf("pawn should be worth less than a knight")
	}
	if Queen.Value() <= Rook.Value() {
		t.Errorf("queen should be worth more than a rook")
	}
	if King.Value() <= Queen.Value() {
		t.Errorf("king should outrank every other piece for MVV-LVA purposes")
	}
}

func TestPieceString(t *testing.T) {
	cases := map[Piece]string{
		NoPiece: "", Pawn: "P", Knight: "N", Bishop: "B",
		Rook: "R", Queen: "Q", King: "K",
	}
	for p, want := range cases {
		if got := p.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", p, got, want)
		}
	}
}
