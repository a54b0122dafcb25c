// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

func TestMakeUnmakeRestoresPosition(t *testing.T) {
	pos := mustFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	before := pos.FEN()

	var moves []Move
	pos.GenerateMoves(&moves)
	if len(moves) != 20 {
		t.Fatalf("starting position has %d legal moves, want 20", len(moves))
	}

	for _, m := range moves {
		pos.MakeMove(m)
		pos.UnmakeMove(m)
		if got := pos.FEN(); got != before {
			t.Fatalf("FEN after make/unmake %v = %q, want %q", m, got, before)
		}
	}
}

func TestEnPassantCapture(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	m, err := ParseUCIMove(pos, "e5d6")
	if err != nil {
		t.Fatalf("ParseUCIMove: %v", err)
	}
	if !m.IsEnPassant() {
		t.Fatalf("expected e5d6 to be an en-passant capture")
	}
	pos.MakeMove(m)
	if !pos.IsEmpty(RankFile(4, 3)) {
		t.Errorf("captured pawn on d5 should be removed")
	}
	if p, _ := pos.PieceOn(RankFile(5, 3)); p != Pawn {
		t.Errorf("capturing pawn should now be on d6")
	}
	pos.UnmakeMove(m)
	if p, c := pos.PieceOn(RankFile(4, 3)); p != Pawn || c != Black {
		t.Errorf("unmake should restore the captured black pawn on d5")
	}
}

func TestCastlingRookMoves(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	m, err := ParseUCIMove(pos, "e1g1")
	if err != nil {
		t.Fatalf("ParseUCIMove: %v", err)
	}
	pos.MakeMove(m)
	if p, _ := pos.PieceOn(SquareF1); p != Rook {
		t.Errorf("rook should have moved to f1")
	}
	if p, _ := pos.PieceOn(SquareG1); p != King {
		t.Errorf("king should be on g1")
	}
	pos.UnmakeMove(m)
	if p, _ := pos.PieceOn(SquareH1); p != Rook {
		t.Errorf("unmake should restore the rook to h1")
	}
}

func TestCastlingRightsLostOnKingMove(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	m, err := ParseUCIMove(pos, "e1e2")
	if err != nil {
		t.Fatalf("ParseUCIMove: %v", err)
	}
	pos.MakeMove(m)
	if pos.CastlingRights()&WhiteKingside != 0 {
		t.Errorf("moving the king should drop kingside castling rights")
	}
}

func TestPromotion(t *testing.T) {
	pos := mustFEN(t, "8/4P3/8/8/8/8/8/4K2k w - - 0 1")
	m, err := ParseUCIMove(pos, "e7e8q")
	if err != nil {
		t.Fatalf("ParseUCIMove: %v", err)
	}
	pos.MakeMove(m)
	if p, _ := pos.PieceOn(SquareE8); p != Queen {
		t.Errorf("expected a queen on e8 after promotion")
	}
	pos.UnmakeMove(m)
	if p, _ := pos.PieceOn(RankFile(6, 4)); p != Pawn {
		t.Errorf("unmake should restore the pawn on e7")
	}
}
