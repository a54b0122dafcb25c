// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// square.go defines Square, Color and the between/line lookup tables used
// by pin detection and castling legality.

package engine

import "fmt"

var errInvalidSquare = fmt.Errorf("invalid square")

// Square identifies one of the 64 board squares, 0..63. Rank = idx/8,
// file = idx%8; file 'a' is 0, rank 1 is 0.
type Square uint8

const (
	SquareA1 Square = iota
	SquareB1
	SquareC1
	SquareD1
	SquareE1
	SquareF1
	SquareG1
	SquareH1
	SquareA2
	SquareB2
	SquareC2
	SquareD2
	SquareE2
	SquareF2
	SquareG2
	SquareH2
)

const (
	SquareA8 Square = 56 + iota
	SquareB8
	SquareC8
	SquareD8
	SquareE8
	SquareF8
	SquareG8
	SquareH8
)

// RankFile builds a square from a 0-indexed rank and file.
func RankFile(rank, file int) Square {
	return Square(rank*8 + file)
}

// SquareFromString parses a square in [a-h][1-8] form.
func SquareFromString(s string) (Square, error) {
	if len(s) != 2 {
		return SquareA1, errInvalidSquare
	}
	file, rank := -1, -1
	if 'a' <= s[0] && s[0] <= 'h' {
		file = int(s[0] - 'a')
	}
	if '1' <= s[1] && s[1] <= '8' {
		rank = int(s[1] - '1')
	}
	if file == -1 || rank == -1 {
		return SquareA1, errInvalidSquare
	}
	return RankFile(rank, file), nil
}

// Rank returns the 0-indexed rank of sq.
func (sq Square) Rank() int { return int(sq / 8) }

// File returns the 0-indexed file of sq.
func (sq Square) File() int { return int(sq % 8) }

// Bitboard returns a singleton bitboard containing sq.
func (sq Square) Bitboard() Bitboard { return SquareBb(sq) }

// Relative shifts sq by dr ranks and df files; result undefined if it
// falls off the board.
func (sq Square) Relative(dr, df int) Square {
	return Square(int(sq) + dr*8 + df)
}

func (sq Square) String() string {
	return string([]byte{byte(sq.File() + 'a'), byte(sq.Rank() + '1')})
}

// Color identifies a side to move or a piece's owner.
type Color uint8

const (
	NoColor Color = iota
	White
	Black

	ColorArraySize = int(iota)
)

// Opposite returns the other color; undefined unless c is White or Black.
func (c Color) Opposite() Color {
	return White + Black - c
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// direction indexes the eight ray directions used to build the ray,
// between and line masks at init time.
type direction int

const (
	dirNorth direction = iota
	dirSouth
	dirEast
	dirWest
	dirNorthEast
	dirSouthWest
	dirNorthWest
	dirSouthEast
	numDirections
)

// opposite pairs each ray direction with the one that walks it backwards,
// so a line through two squares is the union of a ray and its opposite.
var oppositeDirection = [numDirections]direction{
	dirNorth:     dirSouth,
	dirSouth:     dirNorth,
	dirEast:      dirWest,
	dirWest:      dirEast,
	dirNorthEast: dirSouthWest,
	dirSouthWest: dirNorthEast,
	dirNorthWest: dirSouthEast,
	dirSouthEast: dirNorthWest,
}

var directionDelta = [numDirections][2]int{
	dirNorth:     {1, 0},
	dirSouth:     {-1, 0},
	dirEast:      {0, 1},
	dirWest:      {0, -1},
	dirNorthEast: {1, 1},
	dirSouthWest: {-1, -1},
	dirNorthWest: {1, -1},
	dirSouthEast: {-1, 1},
}

// rayBb[sq][dir] is every square reachable from sq walking in dir,
// stopping at the board edge, not including sq itself.
var rayBb [64][numDirections]Bitboard

// betweenBb[a][b] is the set of squares strictly between a and b if they
// are colinear (same rank, file or diagonal), else 0.
var betweenBb [64][64]Bitboard

// lineBb[a][b] is the full rank/file/diagonal through a and b if
// colinear, else 0.
var lineBb [64][64]Bitboard

func onBoard(rank, file int) bool {
	return rank >= 0 && rank < 8 && file >= 0 && file < 8
}

func init() {
	for sq := Square(0); sq < 64; sq++ {
		for d := direction(0); d < numDirections; d++ {
			dr, df := directionDelta[d][0], directionDelta[d][1]
			r, f := sq.Rank()+dr, sq.File()+df
			for onBoard(r, f) {
				rayBb[sq][d] |= RankFile(r, f).Bitboard()
				r += dr
				f += df
			}
		}
	}

	for a := Square(0); a < 64; a++ {
		for d := direction(0); d < numDirections; d++ {
			line := rayBb[a][d] | rayBb[a][oppositeDirection[d]] | a.Bitboard()
			ray := rayBb[a][d]
			for ray != 0 {
				b := ray.LSB().AsSquare()
				betweenBb[a][b] = rayBb[a][d] &^ rayBb[b][d] &^ b.Bitboard()
				lineBb[a][b] = line
				ray &= ray - 1
			}
		}
	}
}

// Between returns the squares strictly between a and b, empty if they are
// not colinear.
func Between(a, b Square) Bitboard { return betweenBb[a][b] }

// Line returns the full line through a and b, empty if they are not
// colinear.
func Line(a, b Square) Bitboard { return lineBb[a][b] }
