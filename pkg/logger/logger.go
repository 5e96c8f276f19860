// Package logger pkg/logger/logger.go configures the process-wide zerolog logger.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init sets the global log level and output format. Unknown levels fall back
// to info; the default format is JSON on stderr.
func Init(level, format string) {
	levelVal := zerolog.InfoLevel

	switch strings.ToLower(level) {
	case "debug":
		levelVal = zerolog.DebugLevel
	case "info":
		levelVal = zerolog.InfoLevel
	case "warn", "warning":
		levelVal = zerolog.WarnLevel
	case "error":
		levelVal = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(levelVal)

	if strings.ToLower(format) == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}
