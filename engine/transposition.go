// transposition.go implements the lock-free transposition table: a flat,
// power-of-two-sized array of packed entries, each guarded only by the
// "lockless XOR trick" (store stored_key = actual_key XOR packed_data;
// a probe that recomputes actual_key and gets a mismatch treats it as a
// miss, which also catches a torn concurrent write). Each entry is a pair
// of atomic 64-bit words rather than a mutex or raw pointer, per the
// design note that calls for atomics over either of those.

package engine

import "sync/atomic"

// Bound classifies how a stored eval relates to the search window that
// produced it.
type Bound uint8

const (
	BoundExact Bound = iota
	BoundLower
	BoundUpper
)

// ttEntry is one slot: two atomic words, matching TranspositionEntry's
// {stored_key: 64, packed_data: 64} layout.
type ttEntry struct {
	key  atomic.Uint64
	data atomic.Uint64
}

// TranspositionTable is a fixed-capacity, always-power-of-two transposition
// table shared across the whole search.
type TranspositionTable struct {
	entries []ttEntry
	ages    []uint8 // best-effort replacement hint, not part of the atomic pair
	mask    uint64
	age     uint8
}

const ttEntrySize = 16 // two uint64 words

// NewTranspositionTable allocates a table of roughly sizeMB megabytes,
// rounded up to the next power-of-two entry count.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	count := uint64(sizeMB) << 20 / ttEntrySize
	count = nextPowerOfTwo(count)
	if count == 0 {
		count = 1
	}
	return &TranspositionTable{
		entries: make([]ttEntry, count),
		ages:    make([]uint8, count),
		mask:    count - 1,
	}
}

func nextPowerOfTwo(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}

// Size returns the number of entries in the table.
func (tt *TranspositionTable) Size() int { return len(tt.entries) }

// Age increments the table's generation counter; called once between
// searches so stale entries become eligible for overwrite regardless of
// their stored depth.
func (tt *TranspositionTable) Age() { tt.age++ }

func packData(depth int8, flag Bound, eval int32, move compactMove) uint64 {
	return uint64(uint8(depth)) |
		uint64(flag)<<8 |
		uint64(uint32(eval))<<16 |
		uint64(move)<<48
}

func unpackData(data uint64) (depth int8, flag Bound, eval int32, move compactMove) {
	depth = int8(uint8(data))
	flag = Bound(data >> 8 & 0xff)
	eval = int32(uint32(data >> 16))
	move = compactMove(data >> 48)
	return
}

// Store writes an entry for key, unless the slot holds a same-or-newer
// generation entry searched at least as deep.
func (tt *TranspositionTable) Store(key uint64, depth int8, flag Bound, eval int32, move Move) {
	idx := key & tt.mask
	e := &tt.entries[idx]

	if existing := e.data.Load(); existing != 0 {
		exDepth, _, _, _ := unpackData(existing)
		if tt.ages[idx] >= tt.age && exDepth >= depth {
			return
		}
	}

	data := packData(depth, flag, eval, move.Compact())
	tt.ages[idx] = tt.age
	e.data.Store(data)
	e.key.Store(key ^ data)
}

// Probe looks up key. ok is false on a miss, including a detected torn
// write (stored_key XOR packed_data != key).
func (tt *TranspositionTable) Probe(key uint64) (depth int8, flag Bound, eval int32, move compactMove, ok bool) {
	idx := key & tt.mask
	e := &tt.entries[idx]
	data := e.data.Load()
	if data == 0 {
		return 0, 0, 0, 0, false
	}
	storedKey := e.key.Load()
	if storedKey^data != key {
		return 0, 0, 0, 0, false
	}
	depth, flag, eval, move = unpackData(data)
	return depth, flag, eval, move, true
}

// Each calls fn with the original (key, data) pair for every occupied
// slot, used to snapshot the table to persistent storage between runs.
func (tt *TranspositionTable) Each(fn func(key, data uint64)) {
	for i := range tt.entries {
		data := tt.entries[i].data.Load()
		if data == 0 {
			continue
		}
		storedKey := tt.entries[i].key.Load()
		fn(storedKey^data, data)
	}
}

// RawStore installs a (key, data) pair exactly as Each produced it,
// bypassing the usual depth/age replacement check. Used to restore a
// table snapshotted by Each; a key whose slot has since been resized
// away (table shrunk) simply lands wherever key&mask now points, which
// is no worse than an ordinary collision.
func (tt *TranspositionTable) RawStore(key, data uint64) {
	idx := key & tt.mask
	tt.entries[idx].data.Store(data)
	tt.entries[idx].key.Store(key ^ data)
	tt.ages[idx] = tt.age
}

// Clear empties every entry.
func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i].key.Store(0)
		tt.entries[i].data.Store(0)
		tt.ages[i] = 0
	}
	tt.age = 0
}

// HashFull approximates, in permille, how full the table is by sampling
// up to the first 1000 slots.
func (tt *TranspositionTable) HashFull() int {
	sample := len(tt.entries)
	if sample > 1000 {
		sample = 1000
	}
	used := 0
	for i := 0; i < sample; i++ {
		if tt.entries[i].data.Load() != 0 {
			used++
		}
	}
	if sample == 0 {
		return 0
	}
	return used * 1000 / sample
}
