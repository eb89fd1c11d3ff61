package config

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func NewLogger(cfg Config) *log.Logger {
	logger := log.New()
	logger.SetOutput(os.Stdout)

	if cfg.LogFormat == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithField("value", cfg.LogLevel).Warn("unknown LOG_LEVEL, using info")
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
