// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

func perftCount(pos *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var moves []Move
	pos.GenerateMoves(&moves)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		pos.MakeMove(m)
		nodes += perftCount(pos, depth-1)
		pos.UnmakeMove(m)
	}
	return nodes
}

func TestPerftStartingPosition(t *testing.T) {
	pos := mustFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		if got := perftCount(pos, c.depth); got != c.want {
			t.Errorf("perft(%d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

// TestPerftKiwipete is the well-known "Kiwipete" position, which
// specifically stresses castling, en-passant and promotion move
// generation in combination with pins and checks.
func TestPerftKiwipete(t *testing.T) {
	pos := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if got, want := perftCount(pos, 1), uint64(48); got != want {
		t.Errorf("perft(1) = %d, want %d", got, want)
	}
	if got, want := perftCount(pos, 2), uint64(2039); got != want {
		t.Errorf("perft(2) = %d, want %d", got, want)
	}
}

func TestCheckEvasionOnlyKingOrBlock(t *testing.T) {
	// Black king on e8 in check from a rook on e1; the only legal moves
	// are to move the king or block/capture on the e-file.
	pos := mustFEN(t, "4k3/8/8/8/8/8/8/4R2K b - - 0 1")
	var moves []Move
	pos.GenerateMoves(&moves)
	for _, m := range moves {
		pos.MakeMove(m)
		if pos.IsChecked(Black) {
			t.Errorf("move %v leaves the king in check", m)
		}
		pos.UnmakeMove(m)
	}
	if len(moves) == 0 {
		t.Fatalf("expected at least one legal evasion")
	}
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// White king on e1 is in check from both a rook on e8 (clear e-file)
	// and a knight on d3: every legal move must be a king move.
	pos := mustFEN(t, "4r3/8/8/8/8/3n4/8/4K3 w - - 0 1")
	if got := pos.Checkers().Popcnt(); got != 2 {
		t.Fatalf("expected a double check, Checkers().Popcnt() = %d", got)
	}
	var moves []Move
	pos.GenerateMoves(&moves)
	if len(moves) == 0 {
		t.Fatalf("expected at least one legal king move")
	}
	for _, m := range moves {
		if m.Piece() != King {
			t.Errorf("only king moves should be legal under double check, got %v", m)
		}
	}
}

func TestPinnedPieceRestrictedToLine(t *testing.T) {
	pos := mustFEN(t, "4r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	var moves []Move
	pos.GenerateMoves(&moves)
	for _, m := range moves {
		if m.From() == RankFile(1, 4) && m.Piece() == Rook {
			if m.To().File() != 4 {
				t.Errorf("pinned rook should only move along the e-file, got %v", m)
			}
		}
	}
}

func TestCastlingBlockedByAttackedSquare(t *testing.T) {
	// White king would pass through f1, which is attacked by a black rook
	// on f8; kingside castling must not be offered.
	pos := mustFEN(t, "4kr2/8/8/8/8/8/8/4K2R w K - 0 1")
	var moves []Move
	pos.GenerateMoves(&moves)
	for _, m := range moves {
		if m.IsCastling() {
			t.Errorf("castling should be illegal while passing through an attacked square, got %v", m)
		}
	}
}
