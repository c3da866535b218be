package config

import (
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"block-lottery/lottery"
)

// LoadRules reads the game rules from an optional file (any format viper
// understands) with LOTTERY_* environment overrides.
func LoadRules(path string) (lottery.Rules, error) {
	v := viper.New()
	v.SetDefault("wager_amount", "0.005")
	v.SetDefault("bet_block_interval", lottery.DefaultBetBlockInterval)
	v.SetDefault("block_limit", lottery.DefaultBlockLimit)
	v.SetDefault("max_resolve_per_pass", 0)

	v.SetEnvPrefix("lottery")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return lottery.Rules{}, errors.Wrapf(err, "failed to read rules file %s", path)
		}
	}

	wager, err := ParseEther(v.GetString("wager_amount"))
	if err != nil {
		return lottery.Rules{}, errors.Wrap(err, "wager_amount")
	}
	if wager.IsZero() {
		return lottery.Rules{}, errors.New("wager_amount must be positive")
	}

	rules := lottery.Rules{
		WagerAmount:       wager,
		BetBlockInterval:  v.GetUint64("bet_block_interval"),
		BlockLimit:        v.GetUint64("block_limit"),
		MaxResolvePerPass: v.GetInt("max_resolve_per_pass"),
	}
	if rules.BetBlockInterval == 0 {
		return lottery.Rules{}, errors.New("bet_block_interval must be at least 1")
	}
	if rules.MaxResolvePerPass < 0 {
		return lottery.Rules{}, errors.New("max_resolve_per_pass must not be negative")
	}
	return rules, nil
}

// ParseEther converts an ether amount such as "0.005" to wei.
func ParseEther(s string) (*uint256.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid ether amount %q", s)
	}
	wei := d.Mul(decimal.New(1, 18))
	if wei.Sign() < 0 || !wei.Equal(wei.Truncate(0)) {
		return nil, errors.Errorf("ether amount %q is negative or finer than 1 wei", s)
	}
	b, ok := new(big.Int).SetString(wei.Truncate(0).String(), 10)
	if !ok {
		return nil, errors.Errorf("invalid ether amount %q", s)
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return nil, errors.Errorf("ether amount %q overflows 256 bits", s)
	}
	return v, nil
}
