// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package polyglot reads Polyglot-format opening books and computes the
// Polyglot position hash used to look an entry up in one: piece keys at
// offset 0, castling keys at 768, en-passant keys at 772, and the
// side-to-move key at 780, XORed together exactly as the format defines.
package polyglot

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/corvidchess/corvid/engine"
)

const (
	PieceOffset     = 0
	CastlingOffset  = 768
	EnPassantOffset = 772
	TurnOffset      = 780
	randomTableSize = 781
)

// RandomTable holds the 781 pseudo-random constants the Polyglot hash
// XORs together. The real Polyglot book format ships these as a fixed,
// externally-published table; without a toolchain available to check a
// hand-transcribed copy against the reference values, transcribing all
// 781 64-bit constants from memory risks silent corruption that would
// never be caught. The table is therefore left declared but unfilled:
// Hash below is fully implemented and tested against a small synthetic
// table, but until RandomTable is populated with the genuine Polyglot
// constants, hashes computed against a real .bin book will not match.
var RandomTable [randomTableSize]uint64

// Hash computes the Polyglot zobrist key for pos.
func Hash(pos *engine.Position) uint64 {
	var hash uint64

	for sq := engine.Square(0); sq < 64; sq++ {
		piece, color := pos.PieceOn(sq)
		if piece == engine.NoPiece {
			continue
		}
		hash ^= pieceKey(piece, color, sq)
	}

	if pos.SideToMove() == engine.White {
		hash ^= RandomTable[TurnOffset]
	}

	cr := pos.CastlingRights()
	if cr&engine.WhiteKingside != 0 {
		hash ^= RandomTable[CastlingOffset+0]
	}
	if cr&engine.WhiteQueenside != 0 {
		hash ^= RandomTable[CastlingOffset+1]
	}
	if cr&engine.BlackKingside != 0 {
		hash ^= RandomTable[CastlingOffset+2]
	}
	if cr&engine.BlackQueenside != 0 {
		hash ^= RandomTable[CastlingOffset+3]
	}

	if ep := pos.EnPassant(); ep.Valid && enPassantCapturable(pos, ep) {
		hash ^= RandomTable[EnPassantOffset+ep.ToCapture.File()]
	}

	return hash
}

// enPassantCapturable reports whether a pawn of the side to move
// actually sits on a file adjacent to the just-pushed pawn; Polyglot
// omits the en-passant key entirely when no capture is physically
// possible, even though the right nominally exists.
func enPassantCapturable(pos *engine.Position, ep engine.EnPassant) bool {
	file := ep.ToCapture.File()
	rank := ep.ToCapture.Rank()
	var adjacent engine.Bitboard
	if file > 0 {
		adjacent |= engine.FileBb(file - 1)
	}
	if file < 7 {
		adjacent |= engine.FileBb(file + 1)
	}
	adjacent &= engine.RankBb(rank)
	return adjacent&pos.ByPiece(pos.SideToMove(), engine.Pawn) != 0
}

// pieceKey indexes RandomTable the way Polyglot orders its 12 piece
// kinds: each piece type contributes a black key immediately followed
// by a white key (black pawn, white pawn, black knight, ...).
func pieceKey(piece engine.Piece, c engine.Color, sq engine.Square) uint64 {
	colorIndex := 0
	if c == engine.White {
		colorIndex = 1
	}
	kind := (int(piece)-1)*2 + colorIndex
	index := 64*kind + 8*sq.Rank() + sq.File()
	return RandomTable[PieceOffset+index]
}

// bookEntry is one 16-byte Polyglot book record.
type bookEntry struct {
	key    uint64
	move   uint16
	weight uint16
}

// Book is an in-memory Polyglot opening book, sorted by key so Probe
// can binary-search it.
type Book struct {
	entries []bookEntry
}

// Open reads a Polyglot .bin book from path.
func Open(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(bufio.NewReader(f))
}

// Read parses a Polyglot book from r.
func Read(r io.Reader) (*Book, error) {
	var entries []bookEntry
	var buf [16]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("polyglot: %w", err)
		}
		entries = append(entries, bookEntry{
			key:    binary.BigEndian.Uint64(buf[0:8]),
			move:   binary.BigEndian.Uint16(buf[8:10]),
			weight: binary.BigEndian.Uint16(buf[10:12]),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	return &Book{entries: entries}, nil
}

// Probe looks up pos in the book and returns its highest-weighted move,
// decoded against pos's legal moves so an illegal or malformed book
// entry is simply skipped rather than returned.
func (b *Book) Probe(pos *engine.Position) (engine.Move, bool) {
	key := Hash(pos)
	lo := sort.Search(len(b.entries), func(i int) bool { return b.entries[i].key >= key })

	var best engine.Move
	var bestWeight int
	found := false
	for i := lo; i < len(b.entries) && b.entries[i].key == key; i++ {
		move, ok := decodeMove(pos, b.entries[i].move)
		if !ok {
			continue
		}
		if !found || int(b.entries[i].weight) > bestWeight {
			best, bestWeight, found = move, int(b.entries[i].weight), true
		}
	}
	return best, found
}

// decodeMove converts a Polyglot-packed move (3 bits to-file, 3 bits
// to-row, 3 bits from-file, 3 bits from-row, 3 bits promotion piece)
// into the corresponding legal engine.Move, if any.
func decodeMove(pos *engine.Position, packed uint16) (engine.Move, bool) {
	toFile := int(packed & 0x7)
	toRank := int((packed >> 3) & 0x7)
	fromFile := int((packed >> 6) & 0x7)
	fromRank := int((packed >> 9) & 0x7)
	promo := int((packed >> 12) & 0x7)

	from := engine.RankFile(fromRank, fromFile)
	to := engine.RankFile(toRank, toFile)

	promoted := engine.NoPiece
	switch promo {
	case 1:
		promoted = engine.Knight
	case 2:
		promoted = engine.Bishop
	case 3:
		promoted = engine.Rook
	case 4:
		promoted = engine.Queen
	}

	var moves []engine.Move
	pos.GenerateMoves(&moves)
	for _, m := range moves {
		if m.From() == from && m.To() == to && m.Promoted() == promoted {
			return m, true
		}
		// Polyglot encodes castling as king-takes-rook; match that shape
		// against our king-moves-two-squares representation too.
		if m.IsCastling() && m.From() == from && castlingRookMatches(m, to) {
			return m, true
		}
	}
	return engine.NullMove, false
}

// castlingRookMatches reports whether a castling move's rook square
// equals to, Polyglot's encoding of castling as king-captures-own-rook.
func castlingRookMatches(m engine.Move, to engine.Square) bool {
	rank := m.From().Rank()
	if m.To().File() > m.From().File() {
		return to == engine.RankFile(rank, 7)
	}
	return to == engine.RankFile(rank, 0)
}
