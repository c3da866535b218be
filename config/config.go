package config

import (
	"github.com/caarlos0/env/v6"
	log "github.com/sirupsen/logrus"
)

type LotteryConfig struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":5300"`

	StoreBackend  string `env:"STORE_BACKEND" envDefault:"memory"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"lottery:"`
	LevelDBPath   string `env:"LEVELDB_PATH" envDefault:"./data/lottery"`

	// Empty means a simulated chain that mines one block per transaction.
	EthRPCURL string `env:"ETH_RPC_URL"`
	RulesFile string `env:"RULES_FILE"`

	DiagnosticsEnabled bool   `env:"DIAGNOSTICS_ENABLED" envDefault:"false"`
	OwnerAddress       string `env:"OWNER_ADDRESS"`
	ResolveIntervalMs  int    `env:"RESOLVE_INTERVAL_MS" envDefault:"0"`

	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"text"`
	LogFile       string `env:"LOG_FILE"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"100"`
	LogMaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"28"`
}

func Parse() (LotteryConfig, error) {
	cfg := LotteryConfig{}
	err := env.Parse(&cfg)
	return cfg, err
}

func GetConfig() LotteryConfig {
	cfg, err := Parse()
	if err != nil {
		log.Fatal("Cannot parse initial ENV vars: ", err)
	}
	return cfg
}
