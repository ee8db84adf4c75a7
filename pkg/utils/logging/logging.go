package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogging sets the global level and swaps the global logger for a human
// readable one when format is "console". Anything else logs JSON.
func SetupLogging(level, format string) {
	setupLogging(os.Stderr, level, format)
}

func setupLogging(out io.Writer, level, format string) {
	zerologLevel, err := zerolog.ParseLevel(level)
	if err != nil || zerologLevel == zerolog.NoLevel {
		zerologLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(zerologLevel)

	if format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	if err != nil {
		log.Warn().Err(err).Msg("Failed to parse log level, defaulting to info")
	}
}
