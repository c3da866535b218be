package lottery

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRecord(t *testing.T) {
	l := NewLedger(DefaultWagerAmount, DefaultBetBlockInterval)
	bettor := common.HexToAddress("0x01")

	index, err := l.Record(bettor, DefaultWagerAmount, 0xab, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), index)

	index, err = l.Record(bettor, DefaultWagerAmount, 0xab, 11)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), index)

	b, err := l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, bettor, b.Bettor)
	assert.Equal(t, uint64(13), b.TargetBlock)
	assert.Equal(t, Challenge(0xab), b.Challenge)
	assert.False(t, b.Resolved)
	assert.Equal(t, uint64(2), l.Len())
	assert.Equal(t, uint64(0), l.Head())
}

func TestLedgerRejectsWrongAmount(t *testing.T) {
	l := NewLedger(DefaultWagerAmount, DefaultBetBlockInterval)

	for _, amount := range []*uint256.Int{nil, uint256.NewInt(0), uint256.NewInt(4_000_000_000_000_000), uint256.NewInt(5_000_000_000_000_001)} {
		_, err := l.Record(common.Address{}, amount, 0xab, 1)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
	assert.Equal(t, uint64(0), l.Len())
}

func TestLedgerGetOutOfBounds(t *testing.T) {
	l := NewLedger(DefaultWagerAmount, DefaultBetBlockInterval)
	_, err := l.Get(0)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = l.Record(common.Address{}, DefaultWagerAmount, 0xab, 1)
	require.NoError(t, err)
	_, err = l.Get(1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLedgerGetReturnsCopy(t *testing.T) {
	l := NewLedger(DefaultWagerAmount, DefaultBetBlockInterval)
	_, err := l.Record(common.Address{}, DefaultWagerAmount, 0xab, 1)
	require.NoError(t, err)

	b, err := l.Get(0)
	require.NoError(t, err)
	b.Amount.SetUint64(1)

	again, err := l.Get(0)
	require.NoError(t, err)
	assert.True(t, again.Amount.Eq(DefaultWagerAmount))
}

func TestLedgerHeadIsMonotonic(t *testing.T) {
	l := NewLedger(DefaultWagerAmount, DefaultBetBlockInterval)
	l.advanceTo(3)
	l.advanceTo(1)
	assert.Equal(t, uint64(3), l.Head())
}

func TestRulesStatus(t *testing.T) {
	r := DefaultRules()
	b := Bet{TargetBlock: 10}

	assert.Equal(t, Pending, r.Status(b, 9))
	assert.Equal(t, Resolvable, r.Status(b, 10))
	assert.Equal(t, Resolvable, r.Status(b, 10+DefaultBlockLimit))
	assert.Equal(t, Expired, r.Status(b, 11+DefaultBlockLimit))
}
