package obs

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a console logger writing to w at the named level.
// Unknown or empty level names fall back to warn.
func NewLogger(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
