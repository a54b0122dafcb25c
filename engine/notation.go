// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// notation.go converts between UCI's four-or-five-character move strings
// and the engine's packed Move. Parsing only ever returns a move that
// GenerateMoves itself produced for pos, so a parsed move is guaranteed
// legal and fully populated (captured piece, capture square, flags).

package engine

import "fmt"

var promotionLetter = map[byte]Piece{
	'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen,
}

// ParseUCIMove parses s (e.g. "e2e4", "e7e8q") against the legal moves
// of pos, returning the matching Move.
func ParseUCIMove(pos *Position, s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return NullMove, fmt.Errorf("engine: invalid UCI move %q", s)
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		return NullMove, fmt.Errorf("engine: invalid UCI move %q: %w", s, err)
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		return NullMove, fmt.Errorf("engine: invalid UCI move %q: %w", s, err)
	}
	promoted := NoPiece
	if len(s) == 5 {
		p, known := promotionLetter[s[4]]
		if !known {
			return NullMove, fmt.Errorf("engine: invalid promotion letter in %q", s)
		}
		promoted = p
	}

	var moves []Move
	pos.GenerateMoves(&moves)
	for _, m := range moves {
		if m.From() == from && m.To() == to && m.Promoted() == promoted {
			return m, nil
		}
	}
	return NullMove, fmt.Errorf("engine: %q is not a legal move", s)
}

// UCI formats m in UCI's move notation. Same as m.String() except that
// the promotion letter is lowercase, as ParseUCIMove expects.
func (m Move) UCI() string {
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(pieceToSymbol[m.Promoted()][0] | 0x20)
	}
	return s
}
