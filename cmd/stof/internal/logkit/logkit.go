// Package logkit builds the console logger stof writes to stderr.
package logkit

import (
	"io"

	"github.com/rs/zerolog"
)

// ladder orders levels from least to most verbose. Index 2 (warn) is the
// default; each -v moves down the ladder, each -q moves up.
var ladder = []zerolog.Level{
	zerolog.FatalLevel,
	zerolog.ErrorLevel,
	zerolog.WarnLevel,
	zerolog.InfoLevel,
	zerolog.DebugLevel,
}

// Level maps the -v/-q flag counts onto a log level, clamping at the ends
// of the ladder.
func Level(verbose, quiet int) zerolog.Level {
	idx := 2 + verbose - quiet

	switch {
	case idx < 0:
		return ladder[0]
	case idx >= len(ladder):
		return ladder[len(ladder)-1]
	default:
		return ladder[idx]
	}
}

// New returns a console logger writing to out at the level selected by the
// -v/-q flag counts.
func New(out io.Writer, verbose, quiet int) zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: out}

	return zerolog.New(writer).Level(Level(verbose, quiet)).With().Timestamp().Logger()
}
