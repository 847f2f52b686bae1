package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// ZeroLogger implements ports.Logger on top of zerolog.
type ZeroLogger struct {
	log zerolog.Logger
}

// New creates a console logger writing to w. Verbose lowers the level to debug;
// otherwise only warnings and errors are emitted.
func New(w io.Writer, verbose bool) *ZeroLogger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    w != os.Stderr,
	}
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return &ZeroLogger{
		log: zerolog.New(output).Level(level).With().Timestamp().Logger(),
	}
}

// NewStd creates a logger on stderr.
func NewStd(verbose bool) *ZeroLogger {
	return New(os.Stderr, verbose)
}

// Nop returns a logger that discards everything.
func Nop() *ZeroLogger {
	return &ZeroLogger{log: zerolog.Nop()}
}

func (l *ZeroLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.log.Error().Err(err).Fields(fields).Msg(msg)
}
