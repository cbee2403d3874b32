// Package plotlog provides the leveled logging helpers used across the
// module, backed by zerolog with a console writer.
package plotlog

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Logger().
	Level(zerolog.InfoLevel)

// SetLevel parses and applies a global log level ("debug", "info",
// "warn", "error"). Unknown values are ignored.
func SetLevel(s string) {
	l, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return
	}
	logger = logger.Level(l)
}

func Debugf(format string, a ...any) { logger.Debug().Msgf(format, a...) }
func Infof(format string, a ...any)  { logger.Info().Msgf(format, a...) }
func Warnf(format string, a ...any)  { logger.Warn().Msgf(format, a...) }
func Errorf(format string, a ...any) { logger.Error().Msgf(format, a...) }
