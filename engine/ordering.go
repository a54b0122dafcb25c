// ordering.go scores and orders moves at a search node: hash move first,
// then captures by MVV-LVA, then mate-killers, then regular killers,
// then quiet moves. Selection uses in-place pick-next rather than
// sorting the whole ply, since most nodes beta-cut after only a few
// moves are tried.

package engine

const (
	scoreHash        = int32(1_000_000)
	scoreCaptureBase = int32(800_000)
	scoreMateKiller  = int32(700_000)
	scoreKillerA     = int32(600_000)
	scoreKillerB     = int32(590_000)
	scoreQuiet       = int32(0)
)

// mvvlvaTable[captured][attacker] scores a capture: bigger victims score
// higher, and within a victim band, smaller attackers score higher.
var mvvlvaTable [PieceArraySize][PieceArraySize]int32

func init() {
	for captured := Piece(0); captured < Piece(PieceArraySize); captured++ {
		for attacker := Piece(0); attacker < Piece(PieceArraySize); attacker++ {
			mvvlvaTable[captured][attacker] = captured.Value()*8 - attacker.Value()
		}
	}
}

func scoreMove(m Move, hashMove Move, killers *killerSet, ply int) int32 {
	if hashMove != NullMove && m == hashMove {
		return scoreHash
	}
	if m.IsCapture() {
		return scoreCaptureBase + mvvlvaTable[m.Captured()][m.Piece()]
	}
	if m.IsPromotion() {
		return scoreCaptureBase + mvvlvaTable[Queen][m.Piece()]
	}
	if rank, ok := killers.isKiller(m, ply); ok {
		switch rank {
		case 2:
			return scoreMateKiller
		case 0:
			return scoreKillerA
		default:
			return scoreKillerB
		}
	}
	return scoreQuiet
}

// moveOrder pairs a move list with per-move scores for pick-next
// selection during the PVS loop.
type moveOrder struct {
	moves  []Move
	scores []int32
}

// newMoveOrder scores every move in moves against the current hash move
// and the ply's killers.
func newMoveOrder(moves []Move, hashMove Move, killers *killerSet, ply int) *moveOrder {
	scores := make([]int32, len(moves))
	for i, m := range moves {
		scores[i] = scoreMove(m, hashMove, killers, ply)
	}
	return &moveOrder{moves: moves, scores: scores}
}

// Len returns the total number of moves being ordered.
func (o *moveOrder) Len() int { return len(o.moves) }

// PickNext scans moves[i:] for the highest score, swaps it into position
// i, and returns it.
func (o *moveOrder) PickNext(i int) Move {
	best := i
	for j := i + 1; j < len(o.moves); j++ {
		if o.scores[j] > o.scores[best] {
			best = j
		}
	}
	o.moves[i], o.moves[best] = o.moves[best], o.moves[i]
	o.scores[i], o.scores[best] = o.scores[best], o.scores[i]
	return o.moves[i]
}
