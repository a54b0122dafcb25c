// Perft counts leaf nodes of the legal move tree to a fixed depth, the
// standard way to validate and benchmark a move generator: known
// starting positions have published node counts at every depth, so a
// mismatch pinpoints a move generation bug.
//
// Since the engine's GenerateMoves already filters to legal moves (no
// pseudo-legal-then-replay step), perft here needs no post-move
// IsChecked filtering the way some generators require.
package perft

import (
	"fmt"
	"strings"
	"time"

	"github.com/corvidchess/corvid/engine"
)

// Counters breaks a perft node count down by move category, which is
// what published perft results are normally checked against.
type Counters struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
}

// Add accumulates ot into co.
func (co *Counters) Add(ot Counters) {
	co.Nodes += ot.Nodes
	co.Captures += ot.Captures
	co.EnPassant += ot.EnPassant
	co.Castles += ot.Castles
	co.Promotions += ot.Promotions
}

type hashEntry struct {
	zobrist  uint64
	counters Counters
	depth    int
}

// Table memoizes Perft results keyed by (zobrist hash, depth), the same
// technique the search's transposition table uses, sized by the caller.
type Table []hashEntry

// NewTable allocates a memoization table with the given number of slots.
func NewTable(size int) Table {
	if size <= 0 {
		size = 1 << 20
	}
	return make(Table, size)
}

// Perft walks pos depth plies deep and returns the leaf statistics.
// table may be nil to disable memoization. A memoized hit returns the
// stored counters, move categories included.
func Perft(pos *engine.Position, depth int, table Table) Counters {
	return perft(pos, depth, table, new([]engine.Move))
}

func perft(pos *engine.Position, depth int, table Table, moves *[]engine.Move) Counters {
	if depth == 0 {
		return Counters{Nodes: 1}
	}

	var index uint64
	if table != nil {
		index = pos.Zobrist() % uint64(len(table))
		if table[index].depth == depth && table[index].zobrist == pos.Zobrist() {
			return table[index].counters
		}
	}

	var r Counters
	start := len(*moves)
	pos.GenerateMoves(moves)
	for start < len(*moves) {
		last := len(*moves) - 1
		move := (*moves)[last]
		*moves = (*moves)[:last]

		if depth == 1 {
			if move.IsCapture() {
				r.Captures++
			}
			if move.IsEnPassant() {
				r.EnPassant++
			}
			if move.IsCastling() {
				r.Castles++
			}
			if move.IsPromotion() {
				r.Promotions++
			}
		}

		pos.MakeMove(move)
		r.Add(perft(pos, depth-1, table, moves))
		pos.UnmakeMove(move)
	}

	if table != nil {
		table[index] = hashEntry{zobrist: pos.Zobrist(), counters: r, depth: depth}
	}
	return r
}

// Split runs Perft one ply at a time, printing the node count
// contributed by each root move at depth splitDepth. Used to bisect a
// move-generation bug down to the exact move sequence that triggers it.
func Split(pos *engine.Position, depth, splitDepth int, table Table) Counters {
	var path []string
	return split(pos, depth, splitDepth, table, &path)
}

func split(pos *engine.Position, depth, splitDepth int, table Table, path *[]string) Counters {
	if depth == 0 || splitDepth == 0 {
		return Perft(pos, depth, table)
	}

	var r Counters
	var moves []engine.Move
	pos.GenerateMoves(&moves)
	for _, move := range moves {
		pos.MakeMove(move)
		*path = append(*path, move.UCI())
		r.Add(split(pos, depth-1, splitDepth-1, table, path))
		*path = (*path)[:len(*path)-1]
		pos.UnmakeMove(move)
	}

	if len(*path) != 0 {
		fmt.Printf("   %2d %12d %8d %9d %7d split %s\n",
			depth, r.Nodes, r.Captures, r.EnPassant, r.Castles, strings.Join(*path, " "))
	}
	return r
}

// Time runs Perft and reports the elapsed wall time alongside the count.
func Time(pos *engine.Position, depth int, table Table) (Counters, time.Duration) {
	start := time.Now()
	c := Perft(pos, depth, table)
	return c, time.Since(start)
}
