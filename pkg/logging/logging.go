package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures a Logger.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger is a thin zerolog wrapper. A nil *Logger discards everything.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger writing to stderr unless opts.Writer is set.
// Stdout stays free for snapshot output.
func New(opts Options) (*Logger, error) {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	level := zerolog.WarnLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var out io.Writer = w
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = w
		console.TimeFormat = time.Kitchen
		out = console
	}

	return &Logger{base: zerolog.New(out).Level(level).With().Timestamp().Logger()}, nil
}

// Nop returns a Logger that writes nothing.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields returns a child logger carrying fields on every entry.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	ctx := l.base.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{base: ctx.Logger()}
}

// With returns a child logger carrying a single field.
func (l *Logger) With(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Interface(key, value).Logger()}
}

func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error logs msg with err attached when non-nil.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	ev := l.base.Error()
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(msg)
}

// Timed logs msg at debug level with the elapsed time since start.
func (l *Logger) Timed(start time.Time, msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Dur("elapsed", time.Since(start)).Msg(msg)
}
