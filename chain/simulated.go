package chain

import (
	"context"
	"encoding/binary"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"block-lottery/lottery"
)

// Simulated is an in-process chain for development and tests. Block n's hash
// is keccak256(hash(n-1) || n). Only the latest window blocks keep their hash.
type Simulated struct {
	mu     sync.RWMutex
	hashes []common.Hash
	window uint64
}

func NewSimulated(window uint64, genesis common.Hash) *Simulated {
	return &Simulated{
		hashes: []common.Hash{genesis},
		window: window,
	}
}

// Mine appends n blocks and returns the new head number.
func (s *Simulated) Mine(n int) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < n; i++ {
		number := uint64(len(s.hashes))
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], number)
		s.hashes = append(s.hashes, crypto.Keccak256Hash(s.hashes[number-1].Bytes(), buf[:]))
	}
	return uint64(len(s.hashes) - 1)
}

func (s *Simulated) CurrentBlockNumber(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.hashes) - 1), nil
}

func (s *Simulated) HashOf(_ context.Context, number, head uint64) (common.Hash, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if number > head || number >= uint64(len(s.hashes)) || head-number > s.window {
		return common.Hash{}, lottery.ErrUnavailable
	}
	return s.hashes[number], nil
}
