package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"

	"block-lottery/lottery"
)

// headerReader is the part of ethclient.Client the block source needs.
type headerReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
}

// Ethereum reads block numbers and hashes from a JSON-RPC node and applies
// the BLOCKHASH retrievability window itself, since archive nodes would
// otherwise answer for any height.
type Ethereum struct {
	client headerReader
	window uint64
	closer func()
}

func DialEthereum(ctx context.Context, url string, window uint64) (*Ethereum, error) {
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to dial ethereum node %s", url)
	}
	return &Ethereum{client: client, window: window, closer: client.Close}, nil
}

func newEthereum(client headerReader, window uint64) *Ethereum {
	return &Ethereum{client: client, window: window}
}

func (e *Ethereum) CurrentBlockNumber(ctx context.Context) (uint64, error) {
	n, err := e.client.BlockNumber(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "eth_blockNumber")
	}
	return n, nil
}

func (e *Ethereum) HashOf(ctx context.Context, number, head uint64) (common.Hash, error) {
	if number > head || head-number > e.window {
		return common.Hash{}, lottery.ErrUnavailable
	}

	header, err := e.client.HeaderByNumber(ctx, new(big.Int).SetUint64(number))
	if err == ethereum.NotFound {
		return common.Hash{}, lottery.ErrUnavailable
	}
	if err != nil {
		return common.Hash{}, errors.Wrapf(err, "eth_getBlockByNumber %d", number)
	}
	return header.Hash(), nil
}

func (e *Ethereum) Close() {
	if e.closer != nil {
		e.closer()
	}
}
