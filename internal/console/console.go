// Package console provides the operator logger used by the teelog command
// itself. It reports configuration problems, prune summaries and viewer
// errors on stderr, separate from the lines written through the logging
// facility.
package console

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Logger defines the interface for operator messages.
// This interface is designed for easy mocking in tests.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keyvals ...interface{})
	// Info logs an info message with optional key-value pairs.
	Info(msg string, keyvals ...interface{})
	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keyvals ...interface{})
	// Error logs an error message with optional key-value pairs.
	Error(msg string, keyvals ...interface{})
	// Debugf logs a formatted debug message.
	Debugf(format string, args ...interface{})
	// Warnf logs a formatted warning message.
	Warnf(format string, args ...interface{})
	// WithPrefix returns a new Logger with the given prefix.
	WithPrefix(prefix string) Logger
	// SetVerbose switches debug output on or off.
	SetVerbose(verbose bool)
}

// Options configures the operator logger.
type Options struct {
	// Verbose enables debug messages.
	Verbose bool
	// Output is the destination for log messages.
	Output io.Writer
	// TimeFormat is the format string for timestamps.
	TimeFormat string
	// Prefix is an optional prefix for all log messages.
	Prefix string
	// NoColor disables colorized output.
	NoColor bool
	// ReportTimestamp enables timestamp output.
	ReportTimestamp bool
}

// DefaultOptions returns sensible defaults for operator output.
func DefaultOptions() Options {
	return Options{
		Output:          os.Stderr,
		TimeFormat:      "15:04:05",
		ReportTimestamp: false,
	}
}

type logger struct {
	mu   sync.RWMutex
	impl *log.Logger
}

// New creates a new operator logger with the given options.
func New(opts Options) Logger {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	l := log.NewWithOptions(opts.Output, log.Options{
		TimeFormat:      opts.TimeFormat,
		Level:           levelFor(opts.Verbose),
		Prefix:          opts.Prefix,
		ReportTimestamp: opts.ReportTimestamp,
	})

	if opts.NoColor {
		l.SetColorProfile(termenv.Ascii)
	}

	return &logger{impl: l}
}

// NewNop returns a logger that discards all output.
func NewNop() Logger {
	return &nopLogger{}
}

func (l *logger) Debug(msg string, keyvals ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.impl.Debug(msg, keyvals...)
}

func (l *logger) Info(msg string, keyvals ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.impl.Info(msg, keyvals...)
}

func (l *logger) Warn(msg string, keyvals ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.impl.Warn(msg, keyvals...)
}

func (l *logger) Error(msg string, keyvals ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.impl.Error(msg, keyvals...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.impl.Debugf(format, args...)
}

func (l *logger) Warnf(format string, args ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.impl.Warnf(format, args...)
}

func (l *logger) WithPrefix(prefix string) Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return &logger{impl: l.impl.WithPrefix(prefix)}
}

func (l *logger) SetVerbose(verbose bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.impl.SetLevel(levelFor(verbose))
}

func levelFor(verbose bool) log.Level {
	if verbose {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// nopLogger discards all log output.
type nopLogger struct{}

func (n *nopLogger) Debug(msg string, keyvals ...interface{})  {}
func (n *nopLogger) Info(msg string, keyvals ...interface{})   {}
func (n *nopLogger) Warn(msg string, keyvals ...interface{})   {}
func (n *nopLogger) Error(msg string, keyvals ...interface{})  {}
func (n *nopLogger) Debugf(format string, args ...interface{}) {}
func (n *nopLogger) Warnf(format string, args ...interface{})  {}
func (n *nopLogger) WithPrefix(prefix string) Logger           { return n }
func (n *nopLogger) SetVerbose(verbose bool)                   {}
