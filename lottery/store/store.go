package store

import (
	"context"

	"github.com/pkg/errors"
)

// ErrStaleState is returned by Commit when the stored ledger length, cursor or
// pot differ from the state the checkpoint was computed against.
var ErrStaleState = errors.New("stored ledger changed underneath the checkpoint")

// Record is the persisted form of one bet.
type Record struct {
	Index       uint64 `json:"index"`
	Bettor      string `json:"bettor"`
	Amount      string `json:"amount"`
	Challenge   string `json:"challenge"`
	TargetBlock uint64 `json:"target_block"`
	Resolved    bool   `json:"resolved"`
}

// Snapshot is the full lottery state: the bet list, the cursor and the pot.
type Snapshot struct {
	Records []Record
	Cursor  uint64
	Pot     string
}

// Checkpoint is the change produced by one engine operation. The Base fields
// describe the stored state it was computed against.
type Checkpoint struct {
	BaseLen    uint64
	BaseCursor uint64
	BasePot    string
	Appended   []Record
	Resolved   []Record
	Cursor     uint64
	Pot        string
}

func (cp *Checkpoint) matches(length, cursor uint64, pot string) bool {
	return cp.BaseLen == length && cp.BaseCursor == cursor && cp.basePot() == pot
}

func (cp *Checkpoint) basePot() string {
	if cp.BasePot == "" {
		return "0"
	}
	return cp.BasePot
}

type Store interface {
	Load(ctx context.Context) (*Snapshot, error)
	// Commit writes the checkpoint atomically or not at all.
	Commit(ctx context.Context, cp *Checkpoint) error
	Close() error
}

func emptySnapshot() *Snapshot {
	return &Snapshot{Pot: "0"}
}
