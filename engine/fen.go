// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fen.go parses and formats standard 6-field Forsyth-Edwards Notation.
// Parsing never partially mutates a Position: it builds a fresh one and
// returns it only if every field is valid, so a rejected FEN yields no
// Position at all.

package engine

import (
	"fmt"
	"strconv"
	"strings"
)

var pieceFromFENLetter = map[byte]Piece{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// PositionFromFEN parses a standard FEN string into a new Position.
func PositionFromFEN(fen string) (*Position, error) {
	// Split into fields by hand rather than strings.Fields, since FEN
	// parsing runs on every perft/test position and the split is on the
	// hot path of test setup.
	var fields [6]string
	n := 0
	for i := 0; i < len(fen); {
		for i < len(fen) && fen[i] == ' ' {
			i++
		}
		start := i
		for i < len(fen) && fen[i] != ' ' {
			i++
		}
		if start == i {
			continue
		}
		if n >= len(fields) {
			return nil, fmt.Errorf("engine: fen has too many fields")
		}
		fields[n] = fen[start:i]
		n++
	}
	if n < len(fields) {
		return nil, fmt.Errorf("engine: fen has too few fields, want 6 got %d", n)
	}

	pos := NewPosition()
	if err := parsePiecePlacement(fields[0], pos); err != nil {
		return nil, err
	}
	if err := parseSideToMove(fields[1], pos); err != nil {
		return nil, err
	}
	if err := parseCastlingAbility(fields[2], pos); err != nil {
		return nil, err
	}
	if err := parseEnPassant(fields[3], pos); err != nil {
		return nil, err
	}
	clock, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("engine: invalid halfmove clock: %w", err)
	}
	full, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("engine: invalid fullmove number: %w", err)
	}
	pos.state.halfmoveClock = clock
	pos.state.fullmoveNumber = full
	pos.recomputeDerived()
	return pos, nil
}

func parsePiecePlacement(field string, pos *Position) error {
	rank, file := 7, 0
	for i := 0; i < len(field); i++ {
		c := field[i]
		switch {
		case c == '/':
			if file != 8 {
				return fmt.Errorf("engine: rank %d has %d files, want 8", rank+1, file)
			}
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			lower := c | 0x20
			p, known := pieceFromFENLetter[lower]
			if !known {
				return fmt.Errorf("engine: invalid piece letter %q", c)
			}
			if rank < 0 || file > 7 {
				return fmt.Errorf("engine: piece placement overflows the board")
			}
			color := Black
			if c >= 'A' && c <= 'Z' {
				color = White
			}
			pos.Put(color, p, RankFile(rank, file))
			file++
		}
	}
	if rank != 0 || file != 8 {
		return fmt.Errorf("engine: piece placement does not cover 8 ranks")
	}
	return nil
}

func parseSideToMove(field string, pos *Position) error {
	switch field {
	case "w":
		pos.state.sideToMove = White
	case "b":
		pos.state.sideToMove = Black
		pos.state.zobrist ^= zobristSide
	default:
		return fmt.Errorf("engine: invalid side to move %q", field)
	}
	return nil
}

func parseCastlingAbility(field string, pos *Position) error {
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		var right CastlingRights
		switch field[i] {
		case 'K':
			right = WhiteKingside
		case 'Q':
			right = WhiteQueenside
		case 'k':
			right = BlackKingside
		case 'q':
			right = BlackQueenside
		default:
			return fmt.Errorf("engine: invalid castling letter %q", field[i])
		}
		pos.state.castling |= right
		pos.state.zobrist ^= zobristCastle[right]
	}
	return nil
}

func parseEnPassant(field string, pos *Position) error {
	if field == "-" {
		return nil
	}
	toMove, err := SquareFromString(field)
	if err != nil {
		return fmt.Errorf("engine: invalid en-passant square %q: %w", field, err)
	}
	toCapture := toMove
	if toMove.Rank() == 5 {
		toCapture = toMove.Relative(-1, 0)
	} else {
		toCapture = toMove.Relative(1, 0)
	}
	pos.state.enPassant = EnPassant{Valid: true, ToMove: toMove, ToCapture: toCapture}
	pos.state.zobrist ^= zobristEnPassantFile[toMove.File()]
	return nil
}

// FEN formats pos as a standard 6-field FEN string.
func (pos *Position) FEN() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p, c := pos.PieceOn(RankFile(rank, file))
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			letter := pieceToSymbol[p][0]
			if c == Black {
				letter |= 0x20
			}
			b.WriteByte(letter)
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}

	if pos.state.sideToMove == White {
		b.WriteString(" w ")
	} else {
		b.WriteString(" b ")
	}
	b.WriteString(pos.state.castling.String())
	b.WriteByte(' ')
	if pos.state.enPassant.Valid {
		b.WriteString(pos.state.enPassant.ToMove.String())
	} else {
		b.WriteByte('-')
	}
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(pos.state.halfmoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(pos.state.fullmoveNumber))
	return b.String()
}
