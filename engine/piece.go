// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// piece.go defines Piece, the colorless figure enum, and the combined
// ColorPiece lookups the position and move generator index by.

package engine

// Piece is a chessman without a color.
type Piece uint8

const (
	NoPiece Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	PieceArraySize = int(iota)
)

var pieceToSymbol = [PieceArraySize]string{
	NoPiece: "",
	Pawn:    "P",
	Knight:  "N",
	Bishop:  "B",
	Rook:    "R",
	Queen:   "Q",
	King:    "K",
}

func (pi Piece) String() string { return pieceToSymbol[pi] }

// ColorPiece packs a piece with its owning color; used to index the
// mailbox and FEN conversion.
type ColorPiece uint8

// MakeColorPiece combines a color and a piece into one mailbox entry.
func MakeColorPiece(c Color, p Piece) ColorPiece {
	return ColorPiece(p)<<2 | ColorPiece(c)
}

// Color returns the owning color of cp.
func (cp ColorPiece) Color() Color { return Color(cp & 3) }

// Piece returns the figure of cp.
func (cp ColorPiece) Piece() Piece { return Piece(cp >> 2) }

const noColorPiece = ColorPiece(0)

var pieceValue = [PieceArraySize]int32{
	NoPiece: 0,
	Pawn:    100,
	Knight:  320,
	Bishop:  330,
	Rook:    500,
	Queen:   900,
	King:    20000,
}

// Value returns the conventional material value of p in centipawns, used
// by MVV-LVA ordering and the material-only evaluator fallback.
func (p Piece) Value() int32 { return pieceValue[p] }
