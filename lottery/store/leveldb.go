package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var (
	betKeyPrefix = []byte("bet/")
	metaKey      = []byte("meta")
)

type levelMeta struct {
	Len    uint64 `json:"len"`
	Cursor uint64 `json:"cursor"`
	Pot    string `json:"pot"`
}

type levelDBStore struct {
	mu sync.Mutex
	db *leveldb.DB
}

func NewLevelDBStore(directory string) (Store, error) {
	db, err := leveldb.OpenFile(directory, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open leveldb")
	}
	return &levelDBStore{db: db}, nil
}

func betKey(index uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", betKeyPrefix, index))
}

func (s *levelDBStore) meta() (levelMeta, error) {
	m := levelMeta{Pot: "0"}
	raw, err := s.db.Get(metaKey, nil)
	if err == leveldb.ErrNotFound {
		return m, nil
	}
	if err != nil {
		return m, errors.Wrap(err, "failed to read ledger meta")
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return m, errors.Wrap(err, "failed to unmarshall ledger meta")
	}
	return m, nil
}

func (s *levelDBStore) Load(_ context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.meta()
	if err != nil {
		return nil, err
	}
	snap := &Snapshot{Cursor: m.Cursor, Pot: m.Pot}

	iter := s.db.NewIterator(util.BytesPrefix(betKeyPrefix), nil)
	defer iter.Release()
	for iter.Next() {
		var rec Record
		if err := json.Unmarshal(iter.Value(), &rec); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshall bet record")
		}
		snap.Records = append(snap.Records, rec)
	}
	if err := iter.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate bet records")
	}
	if uint64(len(snap.Records)) != m.Len {
		return nil, errors.Errorf("leveldb holds %d bet records, meta says %d", len(snap.Records), m.Len)
	}
	return snap, nil
}

func (s *levelDBStore) Commit(_ context.Context, cp *Checkpoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.meta()
	if err != nil {
		return err
	}
	if !cp.matches(m.Len, m.Cursor, m.Pot) {
		return ErrStaleState
	}

	batch := new(leveldb.Batch)
	for _, rec := range append(append([]Record(nil), cp.Appended...), cp.Resolved...) {
		bs, err := json.Marshal(&rec)
		if err != nil {
			return errors.Wrap(err, "failed to marshal bet record")
		}
		batch.Put(betKey(rec.Index), bs)
	}

	bs, err := json.Marshal(&levelMeta{
		Len:    m.Len + uint64(len(cp.Appended)),
		Cursor: cp.Cursor,
		Pot:    cp.Pot,
	})
	if err != nil {
		return errors.Wrap(err, "failed to marshal ledger meta")
	}
	batch.Put(metaKey, bs)

	if err := s.db.Write(batch, nil); err != nil {
		return errors.Wrap(err, "failed to write checkpoint to leveldb")
	}
	return nil
}

func (s *levelDBStore) Close() error {
	return s.db.Close()
}
