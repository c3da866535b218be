package bank

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = common.HexToAddress("0xa1")
	bob   = common.HexToAddress("0xb2")
)

func TestSessionCommit(t *testing.T) {
	book := NewBook()

	tr := book.Begin()
	require.NoError(t, tr.Receive(alice, uint256.NewInt(10)))
	require.NoError(t, tr.Pay(bob, uint256.NewInt(4)))

	assert.True(t, book.House().IsZero(), "nothing moves before commit")
	assert.True(t, book.Balance(bob).IsZero())

	tr.Commit()
	assert.Equal(t, uint64(6), book.House().Uint64())
	assert.Equal(t, uint64(4), book.Balance(bob).Uint64())

	received, paid := book.Totals()
	assert.Equal(t, uint64(10), received.Uint64())
	assert.Equal(t, uint64(4), paid.Uint64())
}

func TestSessionDiscard(t *testing.T) {
	book := NewBook()

	tr := book.Begin()
	require.NoError(t, tr.Receive(alice, uint256.NewInt(10)))
	require.NoError(t, tr.Pay(alice, uint256.NewInt(10)))
	tr.Discard()
	tr.Commit()

	assert.True(t, book.House().IsZero())
	assert.True(t, book.Balance(alice).IsZero())
}

func TestPayFailures(t *testing.T) {
	book := NewBook()
	seed := book.Begin()
	require.NoError(t, seed.Receive(alice, uint256.NewInt(5)))
	seed.Commit()

	tr := book.Begin()
	assert.ErrorIs(t, tr.Pay(bob, uint256.NewInt(6)), ErrInsufficientHouse)

	book.Reject(bob, true)
	assert.ErrorIs(t, tr.Pay(bob, uint256.NewInt(1)), ErrRecipientRejected)

	book.Reject(bob, false)
	require.NoError(t, tr.Pay(bob, uint256.NewInt(5)))
	assert.ErrorIs(t, tr.Pay(bob, uint256.NewInt(1)), ErrInsufficientHouse)
	tr.Commit()
	assert.True(t, book.House().IsZero())
}
