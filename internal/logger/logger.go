package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

type Options struct {
	Level   string // zerolog level name, default "info"
	Format  string // "json" or "console"
	Caller  bool
	NoColor bool
}

// Init builds the process logger on stdout and installs it as the zerolog global.
func Init(opts Options) zerolog.Logger {
	l := New(os.Stdout, opts)
	zlog.Logger = l
	return l
}

func New(w io.Writer, opts Options) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.TrimSpace(opts.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var base zerolog.Logger
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		base = zerolog.New(w)
	} else {
		base = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    opts.NoColor,
		})
	}

	l := base.With().Timestamp().Str("service", "mail-relay").Logger().Level(level)
	if opts.Caller {
		l = l.With().Caller().Logger()
	}
	return l
}
