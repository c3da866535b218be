package chain

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"block-lottery/lottery"
)

func TestSimulatedWindow(t *testing.T) {
	ctx := context.Background()
	sim := NewSimulated(4, common.Hash{})

	head := sim.Mine(10)
	assert.Equal(t, uint64(10), head)

	n, err := sim.CurrentBlockNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), n)

	for number := uint64(6); number <= 10; number++ {
		h, err := sim.HashOf(ctx, number, head)
		require.NoError(t, err, "block %d", number)
		assert.NotEqual(t, common.Hash{}, h)
	}

	_, err = sim.HashOf(ctx, 5, head)
	assert.ErrorIs(t, err, lottery.ErrUnavailable)
	_, err = sim.HashOf(ctx, 11, head)
	assert.ErrorIs(t, err, lottery.ErrUnavailable)

	// The window follows the caller's head, not blocks mined since.
	h, err := sim.HashOf(ctx, 5, 9)
	require.NoError(t, err)
	assert.NotEqual(t, common.Hash{}, h)
	_, err = sim.HashOf(ctx, 11, 12)
	assert.ErrorIs(t, err, lottery.ErrUnavailable, "block 11 not mined")
}

func TestSimulatedIsDeterministic(t *testing.T) {
	ctx := context.Background()
	a := NewSimulated(256, common.HexToHash("0x01"))
	b := NewSimulated(256, common.HexToHash("0x01"))
	a.Mine(5)
	b.Mine(5)

	ha, err := a.HashOf(ctx, 5, 5)
	require.NoError(t, err)
	hb, err := b.HashOf(ctx, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, ha, hb)

	h4, err := a.HashOf(ctx, 4, 5)
	require.NoError(t, err)
	assert.NotEqual(t, h4, ha)
}

func TestPinned(t *testing.T) {
	ctx := context.Background()
	sim := NewSimulated(256, common.Hash{})
	sim.Mine(3)
	p := NewPinned(sim)

	orig, err := p.HashOf(ctx, 2, 3)
	require.NoError(t, err)

	answer := common.HexToHash("0xab17b7e54b0ee749f38a478df0f485fc8a99c6aaa8d2aae379a09827aeb5301e")
	p.Pin(answer)
	got, err := p.HashOf(ctx, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, answer, got)

	n, err := p.CurrentBlockNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), n)

	p.Unpin()
	got, err = p.HashOf(ctx, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

type fakeNode struct {
	head    uint64
	headers map[uint64]*types.Header
}

func (f *fakeNode) BlockNumber(context.Context) (uint64, error) {
	return f.head, nil
}

func (f *fakeNode) HeaderByNumber(_ context.Context, number *big.Int) (*types.Header, error) {
	h, ok := f.headers[number.Uint64()]
	if !ok {
		return nil, ethereum.NotFound
	}
	return h, nil
}

func TestEthereumSource(t *testing.T) {
	ctx := context.Background()
	node := &fakeNode{head: 300, headers: map[uint64]*types.Header{}}
	for n := uint64(0); n <= 300; n++ {
		node.headers[n] = &types.Header{Number: new(big.Int).SetUint64(n), Extra: []byte{byte(n)}}
	}
	delete(node.headers, 299)
	src := newEthereum(node, 256)

	n, err := src.CurrentBlockNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(300), n)

	h, err := src.HashOf(ctx, 100, n)
	require.NoError(t, err)
	assert.Equal(t, node.headers[100].Hash(), h)

	_, err = src.HashOf(ctx, 43, n)
	assert.ErrorIs(t, err, lottery.ErrUnavailable)
	_, err = src.HashOf(ctx, 301, n)
	assert.ErrorIs(t, err, lottery.ErrUnavailable)
	_, err = src.HashOf(ctx, 299, n)
	assert.ErrorIs(t, err, lottery.ErrUnavailable)
}

func TestEthereumWindowUsesCallerHead(t *testing.T) {
	ctx := context.Background()
	node := &fakeNode{head: 356, headers: map[uint64]*types.Header{}}
	for n := uint64(90); n <= 356; n++ {
		node.headers[n] = &types.Header{Number: new(big.Int).SetUint64(n)}
	}
	src := newEthereum(node, 256)

	// The engine classified against block 356 while the node moved on.
	node.head = 357
	h, err := src.HashOf(ctx, 100, 356)
	require.NoError(t, err, "exactly 256 blocks old at the caller's head")
	assert.Equal(t, node.headers[100].Hash(), h)

	_, err = src.HashOf(ctx, 100, 357)
	assert.ErrorIs(t, err, lottery.ErrUnavailable)
}
