// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// makemove.go implements make/unmake, following the step ordering spec'd
// for incremental hash/state maintenance: clear stale en-passant, update
// clocks, apply the double-push/capture/promotion/castling side effects,
// flip the mover, then recompute pinned/checkers/attacked for whoever is
// to move next.

package engine

// MakeMove applies m to pos, pushing the current GameState onto history
// so UnmakeMove can restore it exactly.
func (pos *Position) MakeMove(m Move) {
	pos.history = append(pos.history, pos.state)
	st := &pos.state
	us := st.sideToMove
	them := us.Opposite()

	if m.IsEnPassant() {
		pos.Remove(them, Pawn, m.CaptureSquare())
	}

	if st.enPassant.Valid {
		st.zobrist ^= zobristEnPassantFile[st.enPassant.ToCapture.File()]
		st.enPassant = EnPassant{}
	}

	if m.Piece() == Pawn || m.IsCapture() {
		st.halfmoveClock = 0
	} else {
		st.halfmoveClock++
	}
	if us == Black {
		st.fullmoveNumber++
	}

	if m.Piece() == Pawn {
		diff := int(m.To()) - int(m.From())
		if diff == 16 || diff == -16 {
			capSq := Square((int(m.From()) + int(m.To())) / 2)
			st.enPassant = EnPassant{Valid: true, ToMove: capSq, ToCapture: m.To()}
			st.zobrist ^= zobristEnPassantFile[capSq.File()]
		}
	}

	st.captured = NoPiece
	if m.IsEnPassant() {
		st.captured = Pawn
	} else if m.IsCapture() {
		st.captured = m.Captured()
		pos.Remove(them, m.Captured(), m.To())
	}

	if m.IsPromotion() {
		pos.Remove(us, Pawn, m.From())
		pos.Put(us, m.Promoted(), m.To())
	} else {
		pos.Remove(us, m.Piece(), m.From())
		pos.Put(us, m.Piece(), m.To())
	}

	pos.updateCastlingRights(m, us)

	if m.IsCastling() {
		rookFrom, rookTo := castlingRookSquares(m.To())
		pos.Remove(us, Rook, rookFrom)
		pos.Put(us, Rook, rookTo)
	}

	st.sideToMove = them
	st.zobrist ^= zobristSide

	pos.recomputeDerived()
}

// UnmakeMove reverses the effect of MakeMove(m), which must be the move
// most recently made.
func (pos *Position) UnmakeMove(m Move) {
	prev := pos.history[len(pos.history)-1]
	pos.history = pos.history[:len(pos.history)-1]
	us := prev.sideToMove
	them := us.Opposite()

	if m.IsCastling() {
		rookFrom, rookTo := castlingRookSquares(m.To())
		pos.Remove(us, Rook, rookTo)
		pos.Put(us, Rook, rookFrom)
	}

	if m.IsPromotion() {
		pos.Remove(us, m.Promoted(), m.To())
		pos.Put(us, Pawn, m.From())
	} else {
		pos.Remove(us, m.Piece(), m.To())
		pos.Put(us, m.Piece(), m.From())
	}

	if m.IsEnPassant() {
		pos.Put(them, Pawn, m.CaptureSquare())
	} else if m.IsCapture() {
		pos.Put(them, m.Captured(), m.To())
	}

	pos.state = prev
}

// MakeNullMove flips the side to move without moving a piece, clearing
// en-passant and leaving the halfmove clock untouched. Used by null-move
// pruning.
func (pos *Position) MakeNullMove() {
	pos.history = append(pos.history, pos.state)
	st := &pos.state
	if st.enPassant.Valid {
		st.zobrist ^= zobristEnPassantFile[st.enPassant.ToCapture.File()]
		st.enPassant = EnPassant{}
	}
	st.sideToMove = st.sideToMove.Opposite()
	st.zobrist ^= zobristSide
	pos.recomputeDerived()
}

// UnmakeNullMove reverses the most recent MakeNullMove.
func (pos *Position) UnmakeNullMove() {
	pos.state = pos.history[len(pos.history)-1]
	pos.history = pos.history[:len(pos.history)-1]
}

// updateCastlingRights drops rights made stale by a king/rook move from
// its home square, or a capture landing on an enemy rook's home square.
func (pos *Position) updateCastlingRights(m Move, us Color) {
	st := &pos.state
	lose := func(right CastlingRights) {
		if st.castling&right != 0 {
			st.castling &^= right
			st.zobrist ^= zobristCastle[right]
		}
	}
	if m.Piece() == King {
		if us == White {
			lose(WhiteKingside)
			lose(WhiteQueenside)
		} else {
			lose(BlackKingside)
			lose(BlackQueenside)
		}
	}
	for _, sq := range [2]Square{m.From(), m.To()} {
		switch sq {
		case SquareA1:
			lose(WhiteQueenside)
		case SquareH1:
			lose(WhiteKingside)
		case SquareA8:
			lose(BlackQueenside)
		case SquareH8:
			lose(BlackKingside)
		}
	}
}

// castlingRookSquares returns the rook's origin and destination for a
// castling move landing the king on kingTo.
func castlingRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case SquareC1:
		return SquareA1, SquareD1
	case SquareG1:
		return SquareH1, SquareF1
	case SquareC8:
		return SquareA8, SquareD8
	case SquareG8:
		return SquareH8, SquareF8
	default:
		panic("engine: invalid castling destination square")
	}
}
