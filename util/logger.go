// Package util provides low-level helpers shared by all other packages.
package util

import (
	"bytes"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogLevel controls output verbosity.
type LogLevel int

const (
	LogQuiet   LogLevel = 0
	LogNormal  LogLevel = 1
	LogVerbose LogLevel = 2
	LogDebug   LogLevel = 3
)

// Logger writes levelled messages to stderr with level prefixes, and
// wall-clock timestamps at debug verbosity.  It is a thin front for a logrus.Logger so the
// -v count maps directly onto logrus levels.
type Logger struct {
	level LogLevel
	log   *logrus.Logger
}

// NewLogger returns a Logger that prints messages at or below the given
// verbosity (0 = quiet, 1 = normal, 2 = verbose, 3 = debug).
func NewLogger(verbosity int) *Logger {
	f := &prefixFormatter{timestamps: verbosity >= int(LogDebug)}
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(f)
	l.SetLevel(logrusLevel(LogLevel(verbosity)))
	return &Logger{level: LogLevel(verbosity), log: l}
}

func logrusLevel(v LogLevel) logrus.Level {
	switch {
	case v <= LogQuiet:
		return logrus.ErrorLevel
	case v == LogNormal:
		return logrus.InfoLevel
	case v == LogVerbose:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

// SetOutput overrides the output writer (default: os.Stderr).
func (l *Logger) SetOutput(w io.Writer) { l.log.SetOutput(w) }

// Level returns the current log level.
func (l *Logger) Level() LogLevel { return l.level }

// Info prints when verbosity ≥ 1.  Prefixed with [INF].
func (l *Logger) Info(format string, args ...interface{}) { l.log.Infof(format, args...) }

// Warn prints when verbosity ≥ 1.  Prefixed with [WRN].
func (l *Logger) Warn(format string, args ...interface{}) { l.log.Warnf(format, args...) }

// Verbose prints when verbosity ≥ 2.  Prefixed with [VRB].
func (l *Logger) Verbose(format string, args ...interface{}) { l.log.Debugf(format, args...) }

// Debug prints when verbosity ≥ 3.  Prefixed with [DBG].
func (l *Logger) Debug(format string, args ...interface{}) { l.log.Tracef(format, args...) }

// Error always prints regardless of verbosity.  Prefixed with [ERR].
func (l *Logger) Error(format string, args ...interface{}) { l.log.Errorf(format, args...) }

// prefixFormatter renders "[TAG] message" lines, optionally preceded
// by a wall-clock timestamp.
type prefixFormatter struct {
	timestamps bool
}

func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	if f.timestamps {
		b.WriteString(e.Time.Format("15:04:05.000"))
		b.WriteByte(' ')
	}
	b.WriteByte('[')
	b.WriteString(levelTag(e.Level))
	b.WriteString("] ")
	b.WriteString(e.Message)
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func levelTag(lv logrus.Level) string {
	switch lv {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return "ERR"
	case logrus.WarnLevel:
		return "WRN"
	case logrus.InfoLevel:
		return "INF"
	case logrus.DebugLevel:
		return "VRB"
	default:
		return "DBG"
	}
}
