// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// zobrist.go builds the random key schedule used to incrementally hash a
// position. The schedule is package-level, built once at init and shared
// by every Position: positions hold no copy of it, only the accumulated
// XOR of the keys that apply to them.

package engine

import "math/rand"

var (
	// zobristPiece[color][piece][square] is XORed in/out whenever a piece
	// of that color/kind occupies that square.
	zobristPiece [ColorArraySize][PieceArraySize][64]uint64
	// zobristCastle[right] is XORed in/out as each of the four castling
	// rights is gained or lost. Indexed by the single-bit CastlingRights
	// value, e.g. zobristCastle[WhiteKingside].
	zobristCastle [16]uint64
	// zobristEnPassantFile[file] is XORed in/out while an en-passant
	// capture is available on that file.
	zobristEnPassantFile [8]uint64
	// zobristSide is XORed in when it is Black's move.
	zobristSide uint64
)

// rand64 composes a full 64-bit key out of two 63-bit PRNG draws, the
// same trick the teacher uses since math/rand's Int63 only ever set 63
// bits.
func rand64(r *rand.Rand) uint64 {
	return uint64(r.Int63())<<32 ^ uint64(r.Int63())
}

func init() {
	rng := rand.New(rand.NewSource(2))
	for c := Color(0); c < Color(ColorArraySize); c++ {
		for p := Piece(0); p < Piece(PieceArraySize); p++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][p][sq] = rand64(rng)
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rand64(rng)
	}
	for i := range zobristEnPassantFile {
		zobristEnPassantFile[i] = rand64(rng)
	}
	zobristSide = rand64(rng)
}
