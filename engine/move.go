// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// move.go packs a move into a single integer value, bit layout fixed so
// the encoding is reproducible across runs and across the transposition
// table's narrower 16-bit move field.
//
// Bit layout, low to high:
//
//	bits 0..5    from square
//	bits 6..11   to square
//	bits 12..14  moved piece
//	bit  15      is-castling flag
//	bits 16..18  captured piece (NoPiece if none)
//	bit  19      is-en-passant flag
//	bits 20..22  promoted piece (NoPiece if none)
//	bits 23..28  capture square (equals To for ordinary captures)
//
// All remaining bits are zero. The all-zero value is the reserved NullMove.
package engine

const (
	moveFromShift   = 0
	moveToShift     = 6
	movePieceShift  = 12
	moveCastleShift = 15
	moveCaptShift   = 16
	moveEpShift     = 19
	movePromoShift  = 20
	moveCaptSqShift = 23

	moveSquareMask = 0x3f
	movePieceMask  = 0x7
	moveFlagMask   = 0x1
)

// Move is a packed, position-independent encoding of a chess move.
type Move uint32

// NullMove is the reserved all-zero encoding, used as a sentinel for
// "no move".
const NullMove Move = 0

// MoveInfo groups the fields needed to build a Move; it exists only to
// keep NewMove's argument list readable.
type MoveInfo struct {
	From, To      Square
	Piece         Piece
	Captured      Piece
	CaptureSquare Square
	Promoted      Piece
	IsCastling    bool
	IsEnPassant   bool
}

// NewMove packs mi into a Move.
func NewMove(mi MoveInfo) Move {
	m := Move(mi.From)<<moveFromShift | Move(mi.To)<<moveToShift
	m |= Move(mi.Piece) << movePieceShift
	m |= Move(mi.Captured) << moveCaptShift
	m |= Move(mi.Promoted) << movePromoShift
	m |= Move(mi.CaptureSquare) << moveCaptSqShift
	if mi.IsCastling {
		m |= 1 << moveCastleShift
	}
	if mi.IsEnPassant {
		m |= 1 << moveEpShift
	}
	return m
}

// From returns the origin square.
func (m Move) From() Square { return Square(m >> moveFromShift & moveSquareMask) }

// To returns the destination square.
func (m Move) To() Square { return Square(m >> moveToShift & moveSquareMask) }

// Piece returns the moved piece.
func (m Move) Piece() Piece { return Piece(m >> movePieceShift & movePieceMask) }

// Captured returns the captured piece, or NoPiece for a quiet move.
func (m Move) Captured() Piece { return Piece(m >> moveCaptShift & movePieceMask) }

// CaptureSquare returns the square the captured piece stood on. Equal to
// To() except for en-passant.
func (m Move) CaptureSquare() Square { return Square(m >> moveCaptSqShift & moveSquareMask) }

// Promoted returns the promoted-to piece, or NoPiece if this is not a
// promotion.
func (m Move) Promoted() Piece { return Piece(m >> movePromoShift & movePieceMask) }

// IsCastling returns true if m is a castling move.
func (m Move) IsCastling() bool { return m>>moveCastleShift&moveFlagMask != 0 }

// IsEnPassant returns true if m is an en-passant capture.
func (m Move) IsEnPassant() bool { return m>>moveEpShift&moveFlagMask != 0 }

// IsCapture returns true if m captures a piece (en-passant included).
func (m Move) IsCapture() bool { return m.Captured() != NoPiece }

// IsPromotion returns true if m promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promoted() != NoPiece }

// IsQuiet returns true for moves that don't change material and aren't
// castling: these are the moves eligible to become killers.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// IsViolent returns true for moves the quiescence search should consider:
// captures and promotions.
func (m Move) IsViolent() bool {
	return m.IsCapture() || m.IsPromotion()
}

// compactMove is the 16-bit projection of a Move stored in the
// transposition table (spec's packed_data reserves only 16 bits for the
// best move). It carries enough information — from, to, promoted piece —
// to recover the exact Move by matching against a freshly generated move
// list: the TT never "resurrects" a move out of thin air, it only biases
// ordering toward one already known to be legal in this position.
type compactMove uint16

const (
	compactFromShift  = 0
	compactToShift    = 6
	compactPromoShift = 12
)

// Compact projects m down to its 16-bit transposition-table encoding.
func (m Move) Compact() compactMove {
	c := compactMove(m.From())<<compactFromShift | compactMove(m.To())<<compactToShift
	c |= compactMove(m.Promoted()) << compactPromoShift
	return c
}

// Matches reports whether m is the full move that compacts to c.
func (m Move) Matches(c compactMove) bool {
	return m.Compact() == c
}

func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += pieceToSymbol[m.Promoted()]
	}
	return s
}
