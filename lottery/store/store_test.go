package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rs, err := NewRedisStore(RedisOptions{Addr: mr.Addr(), Prefix: "lottery:"})
	require.NoError(t, err)

	ls, err := NewLevelDBStore(t.TempDir())
	require.NoError(t, err)

	stores := map[string]Store{
		"memory":  NewMemoryStore(),
		"redis":   rs,
		"leveldb": ls,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

func record(index uint64, resolved bool) Record {
	return Record{
		Index:       index,
		Bettor:      "0x00000000000000000000000000000000000000a1",
		Amount:      "5000000000000000",
		Challenge:   "0xab",
		TargetBlock: 4 + index,
		Resolved:    resolved,
	}
}

func TestStoreEmptyLoad(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			snap, err := s.Load(ctx)
			require.NoError(t, err)
			assert.Empty(t, snap.Records)
			assert.Equal(t, uint64(0), snap.Cursor)
			assert.Equal(t, "0", snap.Pot)
		})
	}
}

func TestStoreCommitAndLoad(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Commit(ctx, &Checkpoint{
				BaseLen:  0,
				Appended: []Record{record(0, false), record(1, false)},
				Pot:      "0",
			}))
			require.NoError(t, s.Commit(ctx, &Checkpoint{
				BaseLen:  2,
				Appended: []Record{record(2, false)},
				Resolved: []Record{record(0, true)},
				Cursor:   1,
				Pot:      "5000000000000000",
			}))

			snap, err := s.Load(ctx)
			require.NoError(t, err)
			require.Len(t, snap.Records, 3)
			assert.True(t, snap.Records[0].Resolved)
			assert.False(t, snap.Records[1].Resolved)
			assert.Equal(t, uint64(2), snap.Records[2].Index)
			assert.Equal(t, uint64(6), snap.Records[2].TargetBlock)
			assert.Equal(t, uint64(1), snap.Cursor)
			assert.Equal(t, "5000000000000000", snap.Pot)
		})
	}
}

func TestStoreRejectsStaleCheckpoint(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Commit(ctx, &Checkpoint{Appended: []Record{record(0, false)}, Pot: "0"}))

			err := s.Commit(ctx, &Checkpoint{BaseLen: 0, Appended: []Record{record(0, false)}, Pot: "7"})
			assert.ErrorIs(t, err, ErrStaleState)

			snap, err := s.Load(ctx)
			require.NoError(t, err)
			assert.Len(t, snap.Records, 1)
			assert.Equal(t, "0", snap.Pot)
		})
	}
}

func TestStoreRejectsSecondResolveFromSameBase(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Commit(ctx, &Checkpoint{
				Appended: []Record{record(0, false), record(1, false)},
				Pot:      "0",
			}))

			// Both writers saw two bets, cursor 0 and an empty pot.
			resolve := &Checkpoint{
				BaseLen:    2,
				BaseCursor: 0,
				BasePot:    "0",
				Resolved:   []Record{record(0, true)},
				Cursor:     1,
				Pot:        "5000000000000000",
			}
			require.NoError(t, s.Commit(ctx, resolve))
			assert.ErrorIs(t, s.Commit(ctx, resolve), ErrStaleState)

			drawOnly := &Checkpoint{
				BaseLen:    2,
				BaseCursor: 1,
				BasePot:    "0",
				Resolved:   []Record{record(1, true)},
				Cursor:     2,
				Pot:        "0",
			}
			assert.ErrorIs(t, s.Commit(ctx, drawOnly), ErrStaleState, "pot moved")

			snap, err := s.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, uint64(1), snap.Cursor)
			assert.Equal(t, "5000000000000000", snap.Pot)
			assert.False(t, snap.Records[1].Resolved)
		})
	}
}
