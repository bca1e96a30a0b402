package logging

import "sync"

var (
	defaultMu sync.RWMutex
	std       = New(DefaultOptions())
)

// Default returns the process-wide Logger used by the package-level functions.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return std
}

// SetDefault replaces the process-wide Logger. It is meant to be called
// once at startup, before Init.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	std = l
}

// Init initializes the default Logger.
func Init(startingMessage string) error { return Default().Init(startingMessage) }

// Close closes the default Logger.
func Close() error { return Default().Close() }

// Debug logs msg at SeverityDebug on the default Logger.
func Debug(msg string) { Default().Debug(msg) }

// Info logs msg at SeverityInfo on the default Logger.
func Info(msg string) { Default().Info(msg) }

// Warn logs msg at SeverityWarning on the default Logger.
func Warn(msg string) { Default().Warn(msg) }

// Error logs msg at SeverityError on the default Logger.
func Error(msg string) { Default().Error(msg) }

// Fatal logs msg at SeverityFatal on the default Logger. It does not exit.
func Fatal(msg string) { Default().Fatal(msg) }

// Debugf logs a formatted message at SeverityDebug on the default Logger.
func Debugf(format string, args ...interface{}) { Default().Debugf(format, args...) }

// Infof logs a formatted message at SeverityInfo on the default Logger.
func Infof(format string, args ...interface{}) { Default().Infof(format, args...) }

// Warnf logs a formatted message at SeverityWarning on the default Logger.
func Warnf(format string, args ...interface{}) { Default().Warnf(format, args...) }

// Errorf logs a formatted message at SeverityError on the default Logger.
func Errorf(format string, args ...interface{}) { Default().Errorf(format, args...) }

// Fatalf logs a formatted message at SeverityFatal on the default Logger.
func Fatalf(format string, args ...interface{}) { Default().Fatalf(format, args...) }

// PrintException logs the innermost cause of err on the default Logger.
func PrintException(err error) { Default().PrintException(err) }

// HandlePanic reports a panic on the default Logger and panics again.
// It must be deferred directly.
func HandlePanic() {
	if r := recover(); r != nil {
		Default().printException(panicError(r), isFacilityOrStdFrame)
		panic(r)
	}
}

// Go runs fn in a new goroutine under HandlePanic of the default Logger.
func Go(fn func()) { Default().Go(fn) }
