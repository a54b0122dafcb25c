// Package persist snapshots a transposition table to an embedded
// BadgerDB store between UCI sessions, so a long-running analysis can
// resume its hash table instead of starting cold.
package persist

import (
	"encoding/binary"

	"github.com/dgraph-io/badger/v4"

	"github.com/corvidchess/corvid/engine"
)

const ttSnapshotKey = "transposition_table"

// Store wraps a BadgerDB directory holding at most one transposition
// table snapshot at a time.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) a Badger store rooted at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveTable serializes every occupied slot of tt as a flat (key, data)
// pair array and writes it under a single key, replacing whatever
// snapshot was there before.
func (s *Store) SaveTable(tt *engine.TranspositionTable) error {
	buf := make([]byte, 0, 16*1024)
	var pair [16]byte
	tt.Each(func(key, data uint64) {
		binary.LittleEndian.PutUint64(pair[0:8], key)
		binary.LittleEndian.PutUint64(pair[8:16], data)
		buf = append(buf, pair[:]...)
	})

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(ttSnapshotKey), buf)
	})
}

// LoadTable restores a table previously written by SaveTable into tt.
// A missing snapshot is not an error; tt is simply left as it was.
func (s *Store) LoadTable(tt *engine.TranspositionTable) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(ttSnapshotKey))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			for i := 0; i+16 <= len(val); i += 16 {
				key := binary.LittleEndian.Uint64(val[i : i+8])
				data := binary.LittleEndian.Uint64(val[i+8 : i+16])
				tt.RawStore(key, data)
			}
			return nil
		})
	})
}
