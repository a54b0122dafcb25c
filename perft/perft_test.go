// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perft

import (
	"testing"

	"github.com/corvidchess/corvid/engine"
)

func testHelper(t *testing.T, fen string, depth int, want Counters) {
	t.Helper()
	pos, err := engine.PositionFromFEN(fen)
	if err != nil {
		t.Fatalf("PositionFromFEN(%q): %v", fen, err)
	}
	got := Perft(pos, depth, nil)
	if got != want {
		t.Errorf("Perft(%q, %d) = %+v, want %+v", fen, depth, got, want)
	}
}

func TestPerftInitial(t *testing.T) {
	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	testHelper(t, fen, 1, Counters{Nodes: 20})
	testHelper(t, fen, 2, Counters{Nodes: 400})
	testHelper(t, fen, 3, Counters{Nodes: 8902, Captures: 34})
	if testing.Short() {
		return
	}
	testHelper(t, fen, 4, Counters{Nodes: 197281, Captures: 1576})
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	testHelper(t, fen, 1, Counters{Nodes: 48, Captures: 8, Castles: 2})
	testHelper(t, fen, 2, Counters{Nodes: 2039, Captures: 351, EnPassant: 1, Castles: 91})
}

func TestPerftDuplain(t *testing.T) {
	// A position known for exercising en-passant discovered checks.
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	testHelper(t, fen, 1, Counters{Nodes: 14, Captures: 1})
	testHelper(t, fen, 2, Counters{Nodes: 191, Captures: 14})
	testHelper(t, fen, 3, Counters{Nodes: 2812, Captures: 209, EnPassant: 2})
}

func benchHelper(b *testing.B, fen string, depth int) {
	b.Helper()
	pos, err := engine.PositionFromFEN(fen)
	if err != nil {
		b.Fatalf("PositionFromFEN(%q): %v", fen, err)
	}
	table := NewTable(1 << 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Perft(pos, depth, table)
	}
}

func BenchmarkPerftInitial(b *testing.B) {
	benchHelper(b, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 4)
}

func BenchmarkPerftKiwipete(b *testing.B) {
	benchHelper(b, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3)
}

func BenchmarkPerftDuplain(b *testing.B) {
	benchHelper(b, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3)
}
