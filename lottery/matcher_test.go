package lottery

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureHash = "0xab17b7e54b0ee749f38a478df0f485fc8a99c6aaa8d2aae379a09827aeb5301e"

func TestMatchFixture(t *testing.T) {
	answer := common.HexToHash(fixtureHash)

	tests := []struct {
		challenge string
		want      Outcome
	}{
		{"0xab", Win},
		{"0xdd", Fail},
		{"0xac", Draw},
		{"0xfb", Draw},
		{"ab", Win},
	}

	for _, tt := range tests {
		t.Run(tt.challenge, func(t *testing.T) {
			c, err := ParseChallenge(tt.challenge)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Match(c, answer))
		})
	}
}

func TestMatchCountsNibbles(t *testing.T) {
	for first := 0; first < 256; first++ {
		var answer common.Hash
		answer[0] = byte(first)
		answer[1] = 0xff

		for c := 0; c < 256; c++ {
			matches := 0
			if c>>4 == first>>4 {
				matches++
			}
			if c&0x0f == first&0x0f {
				matches++
			}

			want := map[int]Outcome{0: Fail, 1: Draw, 2: Win}[matches]
			if got := Match(Challenge(c), answer); got != want {
				t.Fatalf("Match(0x%02x, 0x%02x...) = %s, want %s", c, first, got, want)
			}
		}
	}
}

func TestParseChallenge(t *testing.T) {
	for _, bad := range []string{"", "0x", "0xa", "0xabc", "zz", "0xg1"} {
		_, err := ParseChallenge(bad)
		assert.ErrorIs(t, err, ErrInvalidChallenge, bad)
	}

	c, err := ParseChallenge("0XEF")
	require.NoError(t, err)
	assert.Equal(t, Challenge(0xef), c)
	assert.Equal(t, "0xef", c.String())
}
