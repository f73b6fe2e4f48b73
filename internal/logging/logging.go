package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/Domenick1991/tripplanner/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger. Output is human readable
// unless the format is "json".
func Setup(cfg config.LogConfig) {
	SetupWriter(cfg, os.Stdout)
}

func SetupWriter(cfg config.LogConfig, w io.Writer) {
	if strings.EqualFold(cfg.Format, "json") {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Logger.Level(level)
}
