// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

func TestFENRoundtrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/8/8/8/8/8/8/4K2k w - - 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
	}
	for _, fen := range fens {
		pos, err := PositionFromFEN(fen)
		if err != nil {
			t.Fatalf("PositionFromFEN(%q): %v", fen, err)
		}
		if got := pos.FEN(); got != fen {
			t.Errorf("roundtrip %q -> %q", fen, got)
		}
	}
}

func TestFENRejectsMalformedInput(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", // too few fields
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",        // rank count wrong
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1", // invalid piece letter
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", // invalid side to move
	}
	for _, fen := range bad {
		if _, err := PositionFromFEN(fen); err == nil {
			t.Errorf("PositionFromFEN(%q) should have failed", fen)
		}
	}
}

func TestFENEnPassantField(t *testing.T) {
	pos, err := PositionFromFEN("rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2")
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	ep := pos.EnPassant()
	if !ep.Valid {
		t.Fatalf("expected a valid en-passant target")
	}
	if ep.ToMove != RankFile(5, 2) {
		t.Errorf("ToMove = %v, want c6", ep.ToMove)
	}
	if ep.ToCapture != RankFile(4, 2) {
		t.Errorf("ToCapture = %v, want c5", ep.ToCapture)
	}
}
