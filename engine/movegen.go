// movegen.go generates legal moves directly, by pin-mask and check-mask
// filtering, instead of generating pseudo-legal moves and replaying each
// one to discard those that leave the king in check. The algorithm
// mirrors the reference move generator's pin/check-mask approach: given
// Position.Pinned/Checkers/Attacked (kept current by recomputeDerived),
// every move this package emits is already legal — callers never need to
// validate a move coming out of GenerateMoves.

package engine

// MaxMoves bounds the number of pseudo-distinct moves any single legal
// position can have; move-stack callers size their backing array to this.
const MaxMoves = 256

var promotionPieces = [4]Piece{Queen, Rook, Bishop, Knight}

// GenerateMoves appends every legal move in pos to *moves.
func (pos *Position) GenerateMoves(moves *[]Move) {
	us := pos.SideToMove()
	checkers := pos.Checkers()

	genKingMoves(pos, us, moves)
	switch checkers.Popcnt() {
	case 0:
		genNonKingMoves(pos, us, ^Bitboard(0), moves)
		genCastles(pos, us, moves)
	case 1:
		checkerSq := checkers.AsSquare()
		checkMask := Between(pos.King(us), checkerSq) | checkerSq.Bitboard()
		genNonKingMoves(pos, us, checkMask, moves)
	default:
		// Double check: only the king can move.
	}
}

func genNonKingMoves(pos *Position, us Color, checkMask Bitboard, moves *[]Move) {
	genPawnMoves(pos, us, checkMask, moves)
	genKnightMoves(pos, us, checkMask, moves)
	genSliderMoves(pos, us, Bishop, BishopAttacks, checkMask, moves)
	genSliderMoves(pos, us, Rook, RookAttacks, checkMask, moves)
	genSliderMoves(pos, us, Queen, QueenAttacks, checkMask, moves)
}

// emitPieceMoves appends one Move per set bit of targets, classifying
// each as quiet or a capture of whatever piece currently sits there.
func emitPieceMoves(pos *Position, us Color, piece Piece, from Square, targets Bitboard, moves *[]Move) {
	them := us.Opposite()
	for targets != 0 {
		to := targets.Pop()
		captured := NoPiece
		if pos.ByColor(them).Has(to) {
			captured, _ = pos.PieceOn(to)
		}
		*moves = append(*moves, NewMove(MoveInfo{
			From: from, To: to, Piece: piece,
			Captured: captured, CaptureSquare: to,
		}))
	}
}

func genKnightMoves(pos *Position, us Color, checkMask Bitboard, moves *[]Move) {
	own := pos.ByColor(us)
	for knights := pos.ByPiece(us, Knight); knights != 0; {
		from := knights.Pop()
		if pos.Pinned().Has(from) {
			// A pinned knight has no move that stays on the pin line.
			continue
		}
		targets := KnightAttacks(from) &^ own & checkMask
		emitPieceMoves(pos, us, Knight, from, targets, moves)
	}
}

func genSliderMoves(pos *Position, us Color, piece Piece, attacks func(Square, Bitboard) Bitboard, checkMask Bitboard, moves *[]Move) {
	own := pos.ByColor(us)
	occ := pos.Occupied()
	kingSq := pos.King(us)
	for pieces := pos.ByPiece(us, piece); pieces != 0; {
		from := pieces.Pop()
		allowed := checkMask
		if pos.Pinned().Has(from) {
			allowed &= Line(kingSq, from)
		}
		targets := attacks(from, occ) &^ own & allowed
		emitPieceMoves(pos, us, piece, from, targets, moves)
	}
}

func genKingMoves(pos *Position, us Color, moves *[]Move) {
	own := pos.ByColor(us)
	from := pos.King(us)
	targets := KingAttacks(from) &^ own &^ pos.Attacked()
	emitPieceMoves(pos, us, King, from, targets, moves)
}

func genCastles(pos *Position, us Color, moves *[]Move) {
	occ := pos.Occupied()
	attacked := pos.Attacked()
	rights := pos.CastlingRights()

	clear := func(a, b Square) bool { return Between(a, b)&occ == 0 }
	safe := func(squares ...Square) bool {
		for _, sq := range squares {
			if attacked.Has(sq) {
				return false
			}
		}
		return true
	}

	if us == White {
		if rights&WhiteKingside != 0 && clear(SquareE1, SquareH1) && safe(SquareE1, SquareF1, SquareG1) {
			emitCastle(SquareE1, SquareG1, moves)
		}
		if rights&WhiteQueenside != 0 && clear(SquareA1, SquareE1) && safe(SquareE1, SquareD1, SquareC1) {
			emitCastle(SquareE1, SquareC1, moves)
		}
	} else {
		if rights&BlackKingside != 0 && clear(SquareE8, SquareH8) && safe(SquareE8, SquareF8, SquareG8) {
			emitCastle(SquareE8, SquareG8, moves)
		}
		if rights&BlackQueenside != 0 && clear(SquareA8, SquareE8) && safe(SquareE8, SquareD8, SquareC8) {
			emitCastle(SquareE8, SquareC8, moves)
		}
	}
}

func emitCastle(from, to Square, moves *[]Move) {
	*moves = append(*moves, NewMove(MoveInfo{From: from, To: to, Piece: King, IsCastling: true}))
}

func genPawnMoves(pos *Position, us Color, checkMask Bitboard, moves *[]Move) {
	them := us.Opposite()
	occ := pos.Occupied()
	enemy := pos.ByColor(them)
	kingSq := pos.King(us)

	forward, startRank, promoRank := 8, 1, 7
	if us == Black {
		forward, startRank, promoRank = -8, 6, 0
	}

	for pawns := pos.ByPiece(us, Pawn); pawns != 0; {
		from := pawns.Pop()
		pinned := pos.Pinned().Has(from)
		pinLine := Line(kingSq, from)
		onPinLine := func(sq Square) bool { return !pinned || pinLine.Has(sq) }

		to := Square(int(from) + forward)
		if int(to) >= 0 && int(to) < 64 && !occ.Has(to) {
			if onPinLine(to) && checkMask.Has(to) {
				emitPawnMove(us, from, to, NoPiece, promoRank, moves)
			}
			if from.Rank() == startRank {
				to2 := Square(int(from) + 2*forward)
				if !occ.Has(to2) && onPinLine(to2) && checkMask.Has(to2) {
					*moves = append(*moves, NewMove(MoveInfo{From: from, To: to2, Piece: Pawn, CaptureSquare: to2}))
				}
			}
		}

		for attacks := PawnAttacks(us, from) & enemy; attacks != 0; {
			capTo := attacks.Pop()
			if !onPinLine(capTo) || !checkMask.Has(capTo) {
				continue
			}
			captured, _ := pos.PieceOn(capTo)
			emitPawnMove(us, from, capTo, captured, promoRank, moves)
		}
	}

	genEnPassant(pos, us, checkMask, moves)
}

func emitPawnMove(us Color, from, to Square, captured Piece, promoRank int, moves *[]Move) {
	if to.Rank() == promoRank {
		for _, promo := range promotionPieces {
			*moves = append(*moves, NewMove(MoveInfo{
				From: from, To: to, Piece: Pawn, Captured: captured, CaptureSquare: to, Promoted: promo,
			}))
		}
		return
	}
	*moves = append(*moves, NewMove(MoveInfo{From: from, To: to, Piece: Pawn, Captured: captured, CaptureSquare: to}))
}

// genEnPassant handles the single available en-passant capture, if any,
// including the discovered-check edge case: capturing en passant removes
// two pawns from the same rank, which can expose a rook/queen check that
// ordinary pin detection (which only tracks one blocker at a time) never
// sees.
func genEnPassant(pos *Position, us Color, checkMask Bitboard, moves *[]Move) {
	ep := pos.EnPassant()
	if !ep.Valid {
		return
	}
	them := us.Opposite()
	kingSq := pos.King(us)

	if checkMask&(ep.ToMove.Bitboard()|ep.ToCapture.Bitboard()) == 0 {
		return
	}

	for attackers := PawnAttacks(them, ep.ToMove) & pos.ByPiece(us, Pawn); attackers != 0; {
		from := attackers.Pop()
		if pos.Pinned().Has(from) && !Line(kingSq, from).Has(ep.ToMove) {
			continue
		}
		if !pos.enPassantSafe(from, ep.ToCapture, kingSq, them) {
			continue
		}
		*moves = append(*moves, NewMove(MoveInfo{
			From: from, To: ep.ToMove, Piece: Pawn,
			Captured: Pawn, CaptureSquare: ep.ToCapture, IsEnPassant: true,
		}))
	}
}

// enPassantSafe runs the discovered-check scan: with both the capturing
// pawn and the captured pawn lifted off the board and the capturing pawn
// placed on its destination, does any enemy rook/queen/bishop now attack
// the king?
func (pos *Position) enPassantSafe(from, capSq, kingSq Square, them Color) bool {
	occ := pos.Occupied() &^ from.Bitboard() &^ capSq.Bitboard()
	occ |= pos.state.enPassant.ToMove.Bitboard()
	rookLike := pos.ByPiece(them, Rook) | pos.ByPiece(them, Queen)
	if RookAttacks(kingSq, occ)&rookLike != 0 {
		return false
	}
	bishopLike := pos.ByPiece(them, Bishop) | pos.ByPiece(them, Queen)
	if BishopAttacks(kingSq, occ)&bishopLike != 0 {
		return false
	}
	return true
}
