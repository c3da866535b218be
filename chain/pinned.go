package chain

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"block-lottery/lottery"
)

// Pinned answers every hash lookup with a fixed hash while one is pinned.
// It bypasses the randomness of the wrapped source and is only wired in when
// diagnostics are enabled.
type Pinned struct {
	lottery.BlockSource

	mu     sync.RWMutex
	answer *common.Hash
}

func NewPinned(source lottery.BlockSource) *Pinned {
	return &Pinned{BlockSource: source}
}

func (p *Pinned) Pin(answer common.Hash) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.answer = &answer
}

func (p *Pinned) Unpin() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.answer = nil
}

func (p *Pinned) HashOf(ctx context.Context, number, head uint64) (common.Hash, error) {
	p.mu.RLock()
	answer := p.answer
	p.mu.RUnlock()

	if answer != nil {
		return *answer, nil
	}
	return p.BlockSource.HashOf(ctx, number, head)
}
