package config

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"block-lottery/lottery"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, ":5300", cfg.ListenAddr)
	assert.Equal(t, "memory", cfg.StoreBackend)
	assert.False(t, cfg.DiagnosticsEnabled)
	assert.Equal(t, 0, cfg.ResolveIntervalMs)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("DIAGNOSTICS_ENABLED", "true")
	t.Setenv("RESOLVE_INTERVAL_MS", "250")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.StoreBackend)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.DiagnosticsEnabled)
	assert.Equal(t, 250, cfg.ResolveIntervalMs)

	t.Setenv("REDIS_DB", "three")
	_, err = Parse()
	assert.Error(t, err)
}

func TestParseEther(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"0.005", "5000000000000000", true},
		{"1", "1000000000000000000", true},
		{" 2.5 ", "2500000000000000000", true},
		{"0", "0", true},
		{"0.0000000000000000001", "", false},
		{"-1", "", false},
		{"abc", "", false},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			v, err := ParseEther(c.in)
			if !c.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, v.ToBig().String())
		})
	}
}

func TestLoadRulesDefaults(t *testing.T) {
	rules, err := LoadRules("")
	require.NoError(t, err)
	assert.True(t, rules.WagerAmount.Eq(lottery.DefaultWagerAmount))
	assert.Equal(t, uint64(lottery.DefaultBetBlockInterval), rules.BetBlockInterval)
	assert.Equal(t, uint64(lottery.DefaultBlockLimit), rules.BlockLimit)
	assert.Equal(t, 0, rules.MaxResolvePerPass)
}

func TestLoadRulesFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	body := "wager_amount: \"0.01\"\nbet_block_interval: 5\nblock_limit: 128\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("LOTTERY_MAX_RESOLVE_PER_PASS", "4")

	rules, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, "10000000000000000", rules.WagerAmount.ToBig().String())
	assert.Equal(t, uint64(5), rules.BetBlockInterval)
	assert.Equal(t, uint64(128), rules.BlockLimit)
	assert.Equal(t, 4, rules.MaxResolvePerPass)
}

func TestLoadRulesRejectsBadValues(t *testing.T) {
	t.Run("zero wager", func(t *testing.T) {
		t.Setenv("LOTTERY_WAGER_AMOUNT", "0")
		_, err := LoadRules("")
		assert.Error(t, err)
	})
	t.Run("zero interval", func(t *testing.T) {
		t.Setenv("LOTTERY_BET_BLOCK_INTERVAL", "0")
		_, err := LoadRules("")
		assert.Error(t, err)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestSetupLogging(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	defer log.SetLevel(log.InfoLevel)

	cfg := LotteryConfig{LogLevel: "debug", LogFormat: "json", LogFile: filepath.Join(t.TempDir(), "lottery.log")}
	require.NoError(t, SetupLogging(&cfg))
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	cfg.LogLevel = "loud"
	assert.Error(t, SetupLogging(&cfg))

	cfg.LogLevel = "info"
	cfg.LogFormat = "xml"
	assert.Error(t, SetupLogging(&cfg))
}
