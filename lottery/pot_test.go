package lottery

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPot(t *testing.T) {
	p := NewPot(nil)
	assert.True(t, p.Current().IsZero())

	p.Credit(uint256.NewInt(7))
	p.Credit(uint256.NewInt(3))
	assert.Equal(t, uint64(10), p.Current().Uint64())

	clone := p.Clone()
	require.NoError(t, clone.Debit(uint256.NewInt(10)))
	assert.True(t, clone.Current().IsZero())
	assert.Equal(t, uint64(10), p.Current().Uint64(), "clone is independent")

	err := p.Debit(uint256.NewInt(11))
	assert.ErrorIs(t, err, ErrInsufficientPot)
	assert.Equal(t, uint64(10), p.Current().Uint64())
}

func TestFormatEther(t *testing.T) {
	assert.Equal(t, "0.005", FormatEther(DefaultWagerAmount))
	assert.Equal(t, "0", FormatEther(nil))
	assert.Equal(t, "1.5", FormatEther(uint256.NewInt(1_500_000_000_000_000_000)))
}
