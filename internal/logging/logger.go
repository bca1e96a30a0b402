package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/tungetti/teelog/internal/errors"
)

// core is the state shared by a Logger and its Named views.
type core struct {
	// initMu serializes Init and Close, including rotation.
	initMu sync.Mutex

	// mu guards the fields below and serializes format-and-write.
	mu          sync.Mutex
	opts        Options
	formatter   Formatter
	sink        *DualSinkWriter
	file        *os.File
	dir         string
	initialized bool
	redirect    *stdRedirect
}

// Logger is the logging facility. It starts uninitialized, writing raw
// messages to the console, and after Init writes prefixed lines to the
// console and the log file. There is no way back to the uninitialized state.
//
// A Logger is safe for concurrent use.
type Logger struct {
	c      *core
	thread string
	named  bool
}

// New creates an uninitialized Logger.
func New(opts Options) *Logger {
	opts = opts.withDefaults()
	return &Logger{c: &core{
		opts: opts,
		formatter: Formatter{
			Prefix:    opts.Prefix,
			Verbosity: opts.Verbosity,
			Color:     opts.Color,
			Palette:   opts.Palette,
			Clock:     opts.Clock,
		},
	}}
}

// Init creates the log directory and file, attaches the file to the console
// output, routes crash output to the file, writes startingMessage at Info
// and prunes old log files. Calling Init twice returns a State error and
// leaves the first log file in use.
func (l *Logger) Init(startingMessage string) error {
	c := l.c
	c.initMu.Lock()
	defer c.initMu.Unlock()

	c.mu.Lock()
	if c.initialized {
		c.mu.Unlock()
		return errors.New(errors.State, "logger already initialized").WithOp("logging.Init")
	}
	opts := c.opts
	c.mu.Unlock()

	dir := opts.Directory
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	var file *os.File
	var fileName string
	if opts.CreateLogFile {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(errors.FileSystem, err, "failed to create log directory %s", dir).WithOp("logging.Init")
		}
		fileName = LogFileName(opts.Clock())
		f, err := os.OpenFile(filepath.Join(dir, fileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Wrapf(errors.FileSystem, err, "failed to open log file %s", fileName).WithOp("logging.Init")
		}
		file = f
	}

	var sink *DualSinkWriter
	if file != nil {
		sink = NewDualSinkWriter(opts.Console, file)
	} else {
		sink = NewDualSinkWriter(opts.Console, nil)
	}

	c.mu.Lock()
	c.sink = sink
	c.file = file
	c.dir = dir
	c.initialized = true
	c.mu.Unlock()

	var crashErr error
	if file != nil {
		crashErr = debug.SetCrashOutput(file, debug.CrashOptions{})
	}

	var redirectErr error
	if opts.RedirectStdStreams {
		r, err := redirectStdStreams(l.root())
		if err != nil {
			redirectErr = err
		} else {
			c.mu.Lock()
			c.redirect = r
			c.mu.Unlock()
		}
	}

	if startingMessage != "" {
		l.Info(startingMessage)
	}

	if crashErr != nil {
		l.Warnf("Failed to route crash output to the log file: %v", crashErr)
	}
	if redirectErr != nil {
		l.Warnf("Failed to redirect standard streams: %v", redirectErr)
	}

	if file != nil {
		if _, err := Prune(dir, opts.MaxLogFiles, WithExclude(fileName), WithReporter(l)); err != nil {
			l.Warnf("Failed to prune log files: %v", err)
		}
	}
	return nil
}

// Initialized reports whether Init has completed.
func (l *Logger) Initialized() bool {
	l.c.mu.Lock()
	defer l.c.mu.Unlock()
	return l.c.initialized
}

// Close restores redirected streams, stops routing crash output and closes
// the log file. The Logger stays initialized and keeps writing to the console.
func (l *Logger) Close() error {
	c := l.c
	c.initMu.Lock()
	defer c.initMu.Unlock()

	c.mu.Lock()
	r := c.redirect
	c.redirect = nil
	file := c.file
	c.file = nil
	sink := c.sink
	c.mu.Unlock()

	if r != nil {
		r.restore()
	}
	if file != nil {
		_ = debug.SetCrashOutput(nil, debug.CrashOptions{})
	}
	if sink == nil {
		return nil
	}
	if err := sink.Close(); err != nil {
		return errors.Wrap(errors.FileSystem, "failed to close log file", err).WithOp("logging.Close")
	}
	return nil
}

// Named returns a view of l that writes thread in the thread segment.
// The view shares all state with l.
func (l *Logger) Named(thread string) *Logger {
	return &Logger{c: l.c, thread: thread, named: true}
}

func (l *Logger) root() *Logger {
	return &Logger{c: l.c}
}

// Debug logs msg at SeverityDebug.
func (l *Logger) Debug(msg string) { l.log(SeverityDebug, msg, nil, isFacilityFrame) }

// Info logs msg at SeverityInfo.
func (l *Logger) Info(msg string) { l.log(SeverityInfo, msg, nil, isFacilityFrame) }

// Warn logs msg at SeverityWarning.
func (l *Logger) Warn(msg string) { l.log(SeverityWarning, msg, nil, isFacilityFrame) }

// Error logs msg at SeverityError.
func (l *Logger) Error(msg string) { l.log(SeverityError, msg, nil, isFacilityFrame) }

// Fatal logs msg at SeverityFatal. It does not exit.
func (l *Logger) Fatal(msg string) { l.log(SeverityFatal, msg, nil, isFacilityFrame) }

// Debugf logs a formatted message at SeverityDebug.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(SeverityDebug, fmt.Sprintf(format, args...), nil, isFacilityFrame)
}

// Infof logs a formatted message at SeverityInfo.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(SeverityInfo, fmt.Sprintf(format, args...), nil, isFacilityFrame)
}

// Warnf logs a formatted message at SeverityWarning.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(SeverityWarning, fmt.Sprintf(format, args...), nil, isFacilityFrame)
}

// Errorf logs a formatted message at SeverityError.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(SeverityError, fmt.Sprintf(format, args...), nil, isFacilityFrame)
}

// Fatalf logs a formatted message at SeverityFatal. It does not exit.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.log(SeverityFatal, fmt.Sprintf(format, args...), nil, isFacilityFrame)
}

// Log logs msg at sev.
func (l *Logger) Log(sev Severity, msg string) {
	l.log(sev, msg, nil, isFacilityFrame)
}

// LogAt logs msg at sev with an explicit call site, typically built by Tag.
// No stack walk takes place.
func (l *Logger) LogAt(site CallSite, sev Severity, msg string) {
	l.log(sev, msg, &site, nil)
}

func (l *Logger) log(sev Severity, msg string, site *CallSite, skipFrame func(runtime.Frame) bool) {
	c := l.c
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		_, _ = io.WriteString(c.opts.Console, msg+"\n")
		return
	}

	var s CallSite
	switch {
	case site != nil:
		s = *site
	case c.formatter.wantsSite():
		s = caller(c.formatter.Verbosity >= TierMore, skipFrame)
	default:
		s = UnknownSite()
	}

	thread := l.thread
	if !l.named {
		thread = c.opts.ThreadName
	}
	_ = c.sink.WriteLine(c.formatter.Format(sev, msg, s, thread))
}

// Options returns a copy of the current settings.
func (l *Logger) Options() Options {
	l.c.mu.Lock()
	defer l.c.mu.Unlock()
	return l.c.opts
}

// LogDirectory returns the absolute log directory in use. Before Init it
// logs a warning and returns "".
func (l *Logger) LogDirectory() string {
	l.c.mu.Lock()
	initialized, dir := l.c.initialized, l.c.dir
	l.c.mu.Unlock()

	if !initialized {
		l.Warn("Log directory requested before the logger was initialized")
		return ""
	}
	return dir
}

// LogFilePath returns the path of the open log file, or "" when there is none.
func (l *Logger) LogFilePath() string {
	l.c.mu.Lock()
	defer l.c.mu.Unlock()
	if l.c.file == nil {
		return ""
	}
	return l.c.file.Name()
}

// SetPrefix replaces the prefix flags. It applies to the next line.
func (l *Logger) SetPrefix(p PrefixFlags) {
	l.c.mu.Lock()
	defer l.c.mu.Unlock()
	l.c.opts.Prefix = p
	l.c.formatter.Prefix = p
}

// SetVerbosity replaces the verbosity tier. It applies to the next line.
func (l *Logger) SetVerbosity(v VerbosityTier) {
	l.c.mu.Lock()
	defer l.c.mu.Unlock()
	l.c.opts.Verbosity = v
	l.c.formatter.Verbosity = v
}

// SetColor switches palette colouring. It applies to the next line.
func (l *Logger) SetColor(enabled bool) {
	l.c.mu.Lock()
	defer l.c.mu.Unlock()
	l.c.opts.Color = enabled
	l.c.formatter.Color = enabled
}

// SetPalette replaces the palette. It applies to the next line.
func (l *Logger) SetPalette(p Palette) {
	l.c.mu.Lock()
	defer l.c.mu.Unlock()
	l.c.opts.Palette = p
	l.c.formatter.Palette = p
}

// SetCreateLogFile enables or disables the log file. After Init the value
// is stored but has no effect, and a warning is logged.
func (l *Logger) SetCreateLogFile(enabled bool) {
	l.setRetention("CreateLogFile", func(o *Options) { o.CreateLogFile = enabled })
}

// SetMaxLogFiles sets how many earlier log files Init keeps. After Init the
// value is stored but has no effect, and a warning is logged.
func (l *Logger) SetMaxLogFiles(n int) {
	if n < 0 {
		n = 0
	}
	l.setRetention("MaxLogFiles", func(o *Options) { o.MaxLogFiles = n })
}

// SetDirectory sets the log directory. After Init the value is stored but
// has no effect, and a warning is logged.
func (l *Logger) SetDirectory(dir string) {
	l.setRetention("Directory", func(o *Options) { o.Directory = dir })
}

func (l *Logger) setRetention(name string, apply func(*Options)) {
	l.c.mu.Lock()
	apply(&l.c.opts)
	initialized := l.c.initialized
	l.c.mu.Unlock()

	if initialized {
		l.Warnf("%s changed after initialization; it takes effect on the next start", name)
	}
}

func (f Formatter) wantsSite() bool {
	if f.Verbosity == TierMinimal {
		return false
	}
	return f.Prefix.Namespace || f.Prefix.Class || f.Prefix.Method || f.Prefix.Line
}
