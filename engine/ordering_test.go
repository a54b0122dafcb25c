// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

func TestScoreMoveHashMoveWins(t *testing.T) {
	var k killerSet
	hash := NewMove(MoveInfo{From: RankFile(1, 4), To: RankFile(3, 4), Piece: Pawn})
	capture := NewMove(MoveInfo{From: RankFile(3, 3), To: RankFile(4, 4), Piece: Pawn, Captured: Queen, CaptureSquare: RankFile(4, 4)})

	if got := scoreMove(hash, hash, &k, 0); got != scoreHash {
		t.Errorf("hash move score = %d, want %d", got, scoreHash)
	}
	if got := scoreMove(capture, hash, &k, 0); got >= scoreHash {
		t.Errorf("a non-hash move should score below the hash move")
	}
}

func TestMVVLVAOrdersBiggerVictimsFirst(t *testing.T) {
	var k killerSet
	takeQueen := NewMove(MoveInfo{From: RankFile(3, 3), To: RankFile(4, 4), Piece: Pawn, Captured: Queen, CaptureSquare: RankFile(4, 4)})
	takePawn := NewMove(MoveInfo{From: RankFile(3, 3), To: RankFile(4, 4), Piece: Pawn, Captured: Pawn, CaptureSquare: RankFile(4, 4)})

	if scoreMove(takeQueen, NullMove, &k, 0) <= scoreMove(takePawn, NullMove, &k, 0) {
		t.Errorf("capturing a queen should score higher than capturing a pawn")
	}
}

func TestMVVLVAPrefersSmallerAttacker(t *testing.T) {
	var k killerSet
	pawnTakes := NewMove(MoveInfo{From: RankFile(3, 3), To: RankFile(4, 4), Piece: Pawn, Captured: Knight, CaptureSquare: RankFile(4, 4)})
	queenTakes := NewMove(MoveInfo{From: RankFile(0, 3), To: RankFile(4, 4), Piece: Queen, Captured: Knight, CaptureSquare: RankFile(4, 4)})

	if scoreMove(pawnTakes, NullMove, &k, 0) <= scoreMove(queenTakes, NullMove, &k, 0) {
		t.Errorf("capturing with a pawn should score higher than the same capture with a queen")
	}
}

func TestKillerScoresAboveQuiet(t *testing.T) {
	var k killerSet
	killer := NewMove(MoveInfo{From: RankFile(1, 2), To: RankFile(2, 2), Piece: Pawn})
	quiet := NewMove(MoveInfo{From: RankFile(1, 5), To: RankFile(2, 5), Piece: Pawn})
	k.store(killer, 3, false)

	if got, want := scoreMove(killer, NullMove, &k, 3), scoreKillerA; got != want {
		t.Errorf("killer score = %d, want %d", got, want)
	}
	if scoreMove(quiet, NullMove, &k, 3) >= scoreMove(killer, NullMove, &k, 3) {
		t.Errorf("a plain quiet move should score below a killer")
	}
}

func TestPickNextSelectsHighestScoreFirst(t *testing.T) {
	var k killerSet
	low := NewMove(MoveInfo{From: RankFile(1, 0), To: RankFile(2, 0), Piece: Pawn})
	high := NewMove(MoveInfo{From: RankFile(3, 3), To: RankFile(4, 4), Piece: Pawn, Captured: Queen, CaptureSquare: RankFile(4, 4)})
	moves := []Move{low, high}

	order := newMoveOrder(moves, NullMove, &k, 0)
	first := order.PickNext(0)
	if first != high {
		t.Errorf("PickNext(0) = %v, want the capture to be picked first", first)
	}
	second := order.PickNext(1)
	if second != low {
		t.Errorf("PickNext(1) = %v, want the remaining quiet move", second)
	}
}
