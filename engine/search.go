// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// search.go is the core search driver: iterative deepening over a
// negamax/alpha-beta tree with principal-variation search, null-move
// pruning, transposition-table cutoffs and move ordering, and a
// quiescence search to settle tactical lines before returning a leaf
// evaluation.

package engine

import "fmt"

const (
	// MaxSearchDepth bounds iterative deepening; also the size of the
	// killer tables, so every ply fits without reallocation.
	MaxSearchDepth = MaxPly

	// Checkmate is the score returned for "mate in 0 from here". A mate
	// found N plies down scores Checkmate-N, so shorter mates always
	// outscore longer ones.
	Checkmate = int32(1_000_000)

	// CheckmateMin is the smallest score that still means "forced mate
	// found", used both to stop iterative deepening early and to route a
	// cutoff into the mate-killer bucket instead of the regular one.
	CheckmateMin = Checkmate - int32(MaxSearchDepth)

	// Draw is the score of a drawn position.
	Draw = int32(0)

	// NullMoveReduction is how much shallower the verification search
	// after a null move runs, relative to an ordinary child of the node
	// it was tried at (depth-1-NullMoveReduction).
	NullMoveReduction = 2

	// AspirationWindow is the half-width of the window iterative
	// deepening first tries around the previous depth's score.
	AspirationWindow = int32(20)

	MinEval = -Checkmate - 1
	MaxEval = Checkmate + 1

	// nodeCheckInterval is how often the search polls the time control
	// and node limit; checking every node would make the atomic load and
	// time.Now() calls a measurable fraction of total work.
	nodeCheckInterval = 4096
)

// Searcher runs a search against one Position, sharing a transposition
// table and evaluator across however many searches it's asked to run.
type Searcher struct {
	pos     *Position
	tt      *TranspositionTable
	eval    Evaluator
	killers killerSet

	tc       *TimeControl
	logger   Logger
	stats    Stats
	maxNodes uint64

	searchMoves map[Move]bool
	cancelled   bool
}

// NewSearcher builds a Searcher over pos, sharing tt and eval with
// whatever else holds a reference to them (tt, in particular, is meant
// to survive across searches).
func NewSearcher(pos *Position, tt *TranspositionTable, eval Evaluator) *Searcher {
	return &Searcher{pos: pos, tt: tt, eval: eval}
}

// Search runs iterative deepening under spec and returns the best move
// found for the side to move. It always returns a legal move if one
// exists, even if cancelled before completing depth 1.
func (s *Searcher) Search(spec SearchSpec) Move {
	s.tc = spec.TimeControl
	if s.tc == nil {
		s.tc = NewTimeControl(s.pos)
	}
	s.logger = spec.Logger
	if s.logger == nil {
		s.logger = NopLogger{}
	}
	s.maxNodes = spec.MaxNodes
	s.tc.Infinite = spec.Infinite
	s.killers = killerSet{}
	s.cancelled = false

	if len(spec.SearchMoves) > 0 {
		s.searchMoves = make(map[Move]bool, len(spec.SearchMoves))
		for _, m := range spec.SearchMoves {
			s.searchMoves[m] = true
		}
	} else {
		s.searchMoves = nil
	}

	s.stats.Reset()
	s.tc.Start()
	s.tt.Age()

	var rootMoves []Move
	s.pos.GenerateMoves(&rootMoves)
	best := NullMove
	if len(rootMoves) > 0 {
		best = rootMoves[0]
	}

	maxDepth := spec.MaxDepth
	if maxDepth <= 0 || maxDepth > MaxSearchDepth {
		maxDepth = MaxSearchDepth
	}

	s.logger.BeginSearch()
	score := Draw
	for depth := 1; depth <= maxDepth && s.tc.NextDepth(depth); depth++ {
		childScore, ok := s.searchRoot(depth, score)
		if !ok {
			break
		}
		score = childScore

		if move, found := s.probeBestMove(); found {
			best = move
		}
		s.logger.Info(Info{
			Depth:    depth,
			Time:     s.stats.Elapsed(),
			Nodes:    s.stats.Nodes,
			NPS:      s.stats.NPS(),
			Score:    score,
			PV:       s.reconstructPV(depth),
			HashFull: s.tt.HashFull(),
		})

		if !spec.Infinite && score >= CheckmateMin {
			break
		}
		if s.maxNodes != 0 && s.stats.Nodes >= s.maxNodes {
			break
		}
	}
	s.logger.EndSearch()
	return best
}

// searchRoot runs one iterative-deepening depth, widening an aspiration
// window around prevScore until the result falls strictly inside it.
// ok is false if the search was cancelled before a value was settled.
func (s *Searcher) searchRoot(depth int, prevScore int32) (score int32, ok bool) {
	alpha, beta := MinEval, MaxEval
	if depth >= 5 {
		alpha, beta = prevScore-AspirationWindow, prevScore+AspirationWindow
	}

	for {
		score = s.negamax(alpha, beta, depth, 0, true)
		if s.cancelled {
			return 0, false
		}
		if score <= alpha {
			alpha = MinEval
			continue
		}
		if score >= beta {
			beta = MaxEval
			continue
		}
		return score, true
	}
}

// negamax searches this node to depth, returning a score relative to
// the side to move. ply counts plies from the search root, used for
// mate-distance scoring and killer/PV indexing.
func (s *Searcher) negamax(alpha, beta int32, depth, ply int, doNull bool) int32 {
	s.stats.Nodes++
	if s.checkpoint() {
		return 0
	}

	if ply > 0 && (s.pos.IsFiftyMoveDraw() || s.pos.IsThreefoldRepetition()) {
		return Draw
	}

	key := s.pos.Zobrist()
	var hashMove Move
	if ttDepth, flag, ttEval, compact, found := s.tt.Probe(key); found {
		if move, err := s.matchCompact(compact); err == nil {
			hashMove = move
		}
		if int(ttDepth) >= depth && ply > 0 {
			switch flag {
			case BoundExact:
				return ttEval
			case BoundLower:
				if ttEval > alpha {
					alpha = ttEval
				}
			case BoundUpper:
				if ttEval < beta {
					beta = ttEval
				}
			}
			if alpha >= beta {
				return ttEval
			}
		}
	}

	if depth <= 0 {
		return s.quiescence(alpha, beta, ply)
	}

	inCheck := s.pos.Checkers() != 0

	if doNull && !inCheck && ply > 0 && depth >= 5 && s.hasNonPawnMaterial() {
		s.pos.MakeNullMove()
		score := -s.negamax(-beta, -beta+1, depth-1-NullMoveReduction, ply+1, false)
		s.pos.UnmakeNullMove()
		if s.cancelled {
			return 0
		}
		if score >= beta {
			return beta
		}
	}

	var moves []Move
	s.pos.GenerateMoves(&moves)
	if len(moves) == 0 {
		if inCheck {
			return -Checkmate + int32(ply)
		}
		return Draw
	}

	origAlpha := alpha
	best := MinEval
	bestMove := NullMove
	order := newMoveOrder(moves, hashMove, &s.killers, minPly(ply))

	searched := 0
	for i := 0; i < order.Len(); i++ {
		move := order.PickNext(i)
		if ply == 0 && s.searchMoves != nil && !s.searchMoves[move] {
			continue
		}

		s.pos.MakeMove(move)
		var score int32
		if searched == 0 {
			score = -s.negamax(-beta, -alpha, depth-1, ply+1, true)
		} else {
			score = -s.negamax(-alpha-1, -alpha, depth-1, ply+1, true)
			if score > alpha && score < beta {
				score = -s.negamax(-beta, -alpha, depth-1, ply+1, true)
			}
		}
		s.pos.UnmakeMove(move)
		searched++

		if s.cancelled {
			return 0
		}

		if score > best {
			best = score
			bestMove = move
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if move.IsQuiet() {
				mate := alpha >= CheckmateMin || alpha <= -CheckmateMin
				s.killers.store(move, minPly(ply), mate)
			}
			break
		}
	}

	flag := BoundExact
	if best <= origAlpha {
		flag = BoundUpper
	} else if best >= beta {
		flag = BoundLower
	}
	s.tt.Store(key, int8(depth), flag, best, bestMove)
	return best
}

// quiescence resolves captures, promotions and (while in check) every
// legal reply, so negamax never has to stop in the middle of a tactical
// exchange. Depth-less: it terminates because each recursion must
// either capture (strictly shrinking material) or evade check, and a
// position with neither available returns immediately.
func (s *Searcher) quiescence(alpha, beta int32, ply int) int32 {
	s.stats.Nodes++
	s.stats.QuiescenceNodes++
	if s.checkpoint() {
		return 0
	}

	inCheck := s.pos.Checkers() != 0
	if !inCheck {
		standPat := s.eval.Evaluate(s.pos)
		if standPat >= beta {
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	var moves []Move
	s.pos.GenerateMoves(&moves)
	if len(moves) == 0 {
		if inCheck {
			return -Checkmate + int32(ply)
		}
		return Draw
	}

	order := newMoveOrder(moves, NullMove, &s.killers, minPly(ply))
	for i := 0; i < order.Len(); i++ {
		move := order.PickNext(i)
		if !inCheck && !move.IsViolent() {
			continue
		}

		s.pos.MakeMove(move)
		score := -s.quiescence(-beta, -alpha, ply+1)
		s.pos.UnmakeMove(move)

		if s.cancelled {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// checkpoint polls the time control and node budget every
// nodeCheckInterval nodes, latching s.cancelled once either is
// exceeded so every stack frame on the way up bails out in one step.
func (s *Searcher) checkpoint() bool {
	if s.cancelled {
		return true
	}
	if s.stats.Nodes%nodeCheckInterval == 0 {
		if s.tc.Stopped() || (s.maxNodes != 0 && s.stats.Nodes >= s.maxNodes) {
			s.cancelled = true
		}
	}
	return s.cancelled
}

// hasNonPawnMaterial reports whether the side to move has a piece other
// than pawns and king, the usual guard against null-move pruning
// miscalculating zugzwang positions.
func (s *Searcher) hasNonPawnMaterial() bool {
	us := s.pos.SideToMove()
	for _, p := range [...]Piece{Knight, Bishop, Rook, Queen} {
		if s.pos.ByPiece(us, p) != 0 {
			return true
		}
	}
	return false
}

// matchCompact recovers the full Move a transposition-table entry's
// 16-bit projection refers to, by matching it against the current
// position's legal moves.
func (s *Searcher) matchCompact(c compactMove) (Move, error) {
	var moves []Move
	s.pos.GenerateMoves(&moves)
	for _, m := range moves {
		if m.Matches(c) {
			return m, nil
		}
	}
	return NullMove, fmt.Errorf("engine: no legal move matches compact move %d", c)
}

// probeBestMove reads the root's transposition-table entry and resolves
// it to a full Move, for reporting the iteration's chosen move even
// when the caller doesn't want a full PV.
func (s *Searcher) probeBestMove() (Move, bool) {
	_, _, _, compact, found := s.tt.Probe(s.pos.Zobrist())
	if !found {
		return NullMove, false
	}
	move, err := s.matchCompact(compact)
	if err != nil {
		return NullMove, false
	}
	return move, true
}

// reconstructPV walks the transposition table forward from the current
// position, playing and unplaying up to maxPly moves. A seen-key guard
// stops it from looping forever through a repetition the table itself
// would otherwise keep "completing".
func (s *Searcher) reconstructPV(maxPly int) []Move {
	var pv []Move
	seen := make(map[uint64]bool, maxPly)
	for i := 0; i < maxPly; i++ {
		key := s.pos.Zobrist()
		if seen[key] {
			break
		}
		seen[key] = true

		_, _, _, compact, found := s.tt.Probe(key)
		if !found {
			break
		}
		move, err := s.matchCompact(compact)
		if err != nil {
			break
		}
		pv = append(pv, move)
		s.pos.MakeMove(move)
	}
	for i := len(pv) - 1; i >= 0; i-- {
		s.pos.UnmakeMove(pv[i])
	}
	return pv
}

// minPly clamps ply into the killer/move-order tables' fixed range, for
// the rare position where quiescence runs deeper than MaxPly.
func minPly(ply int) int {
	if ply >= MaxPly {
		return MaxPly - 1
	}
	return ply
}
