package logger

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

var (
	base  zerolog.Logger
	ready atomic.Bool
)

// Options controls the global logger.
//
//   - Level: debug|info|warn|error (default: info)
//   - Pretty: human-readable console output instead of JSON
//   - Out: destination, defaults to os.Stdout
type Options struct {
	Level  string
	Pretty bool
	Out    io.Writer
}

// Init configures the global logger from opts.
func Init(opts Options) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	base = zerolog.New(out).With().Timestamp().Str("service", "bikepulse").Logger().Level(parseLevel(opts.Level))
	ready.Store(true)
}

// L returns the global logger. Until Init is called it logs JSON at info
// level to stdout.
func L() *zerolog.Logger {
	if !ready.Load() {
		Init(Options{})
	}
	return &base
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
