package logging

import (
	"io"
	"os"
	"time"

	"github.com/tungetti/teelog/internal/constants"
)

// Options configures a Logger. Fields are read by New; the retention
// fields (CreateLogFile, MaxLogFiles, Directory) are fixed once Init runs.
type Options struct {
	// CreateLogFile enables the on-disk log file.
	CreateLogFile bool
	// MaxLogFiles is how many earlier log files Init keeps besides its own.
	MaxLogFiles int
	// Directory holds the log files, relative to the working directory.
	Directory string
	// Verbosity caps the call-site detail of every line.
	Verbosity VerbosityTier
	// Color wraps every line in its severity's palette colour.
	Color bool
	// Palette maps severities to escape sequences.
	Palette Palette
	// Prefix selects the prefix segments.
	Prefix PrefixFlags
	// Console receives every line. Defaults to os.Stdout at the time New runs.
	Console io.Writer
	// Clock supplies timestamps and the log file name.
	Clock func() time.Time
	// RedirectStdStreams routes os.Stdout, os.Stderr and the standard log
	// package through the facility after Init.
	RedirectStdStreams bool
	// ThreadName is written in the thread segment of lines from the root Logger.
	ThreadName string
}

// DefaultOptions returns the defaults: file logging on, five files kept,
// directory "Logs", TierNormal, colour when stdout is a colour terminal.
func DefaultOptions() Options {
	return Options{
		CreateLogFile: true,
		MaxLogFiles:   constants.DefaultMaxLogFiles,
		Directory:     constants.DefaultLogDir,
		Verbosity:     TierNormal,
		Color:         DetectColor(os.Stdout),
		Palette:       DefaultPalette(),
		Prefix:        DefaultPrefixFlags(),
		Console:       os.Stdout,
		Clock:         time.Now,
	}
}

func (o Options) withDefaults() Options {
	if o.Console == nil {
		o.Console = os.Stdout
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.Directory == "" {
		o.Directory = constants.DefaultLogDir
	}
	if o.MaxLogFiles < 0 {
		o.MaxLogFiles = 0
	}
	if o.Palette == (Palette{}) {
		o.Palette = DefaultPalette()
	}
	return o
}
