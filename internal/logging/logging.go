// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup installs the global logger at the given level and routes gin's own
// output, including recovered panics, through it. An unknown level falls back to info.
func Setup(level string, pretty bool) zerolog.Logger {
	return SetupWriter(os.Stdout, level, pretty)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(w io.Writer, level string, pretty bool) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	out := w
	if pretty {
		out = zerolog.ConsoleWriter{Out: w}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	// gin writes plain text, so it goes through the logger rather than
	// straight to out: ConsoleWriter only decodes JSON events.
	ginLogger := log.Logger.With().Str("component", "gin").Logger()
	gin.DefaultWriter = ginLogger
	gin.DefaultErrorWriter = ginLogger.With().Str("stream", "stderr").Logger()

	if err != nil {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
	}
	return log.Logger
}
