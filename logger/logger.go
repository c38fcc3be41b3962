// Package logger configures the global zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const timeFormat = "15:04:05.000"

// Init sets the global level and routes the global logger to a console
// writer on w (stderr when nil). Unknown levels fall back to info.
func Init(level string, w io.Writer) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if w == nil {
		w = os.Stderr
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: timeFormat,
		NoColor:    os.Getenv("NO_COLOR") != "" || w != os.Stderr,
	})

	log.Debug().Str("level", lvl.String()).Msg("logger initialized")
	return lvl
}
