package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupLogging configures the standard logrus logger. When LOG_FILE is set
// output goes to both stderr and a rotated file.
func SetupLogging(cfg *LotteryConfig) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	log.SetLevel(level)

	switch cfg.LogFormat {
	case "", "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		return errors.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	if cfg.LogFile == "" {
		log.SetOutput(os.Stderr)
		return nil
	}
	log.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
		Filename: cfg.LogFile,
		MaxSize:  cfg.LogMaxSizeMB,
		MaxAge:   cfg.LogMaxAgeDays,
		Compress: true,
	}))
	return nil
}
