// Package cli provides command-line argument parsing for teelog.
// It supports subcommands, global flags, and command-specific flags with both
// short and long variants. Global flags override values loaded by the
// config package.
package cli

import (
	"github.com/tungetti/teelog/internal/logging"
	"github.com/tungetti/teelog/internal/ui/theme"
)

// GlobalFlags holds flags common to all commands.
// These flags can be specified before the command name and affect
// the overall behavior of the application.
type GlobalFlags struct {
	// Verbose enables debug messages from the tool itself.
	Verbose bool

	// Quiet suppresses the tool's own informational messages.
	Quiet bool

	// ConfigFile specifies a custom configuration file path.
	ConfigFile string

	// LogDir overrides the log directory.
	LogDir string

	// Verbosity overrides the call-site verbosity tier.
	Verbosity string

	// NoColor disables colored terminal output.
	NoColor bool
}

// RunFlags holds run command specific flags.
type RunFlags struct {
	// Message is the start message written by Init.
	Message string

	// Thread is written in the thread segment of every line.
	Thread string

	// Severity is used for trailing message arguments.
	Severity string

	// Stdin logs standard input line by line.
	Stdin bool
}

// PruneFlags holds prune command specific flags.
type PruneFlags struct {
	// Keep is the number of files to keep. Negative means the configured limit.
	Keep int
}

// ListFlags holds list command specific flags.
type ListFlags struct {
	// Paths prints absolute paths instead of file names.
	Paths bool
}

// TailFlags holds tail command specific flags.
type TailFlags struct {
	// Lines is the number of lines to print. Zero prints the whole file.
	Lines int

	// Follow keeps printing appended lines.
	Follow bool

	// Severity hides lines below this severity.
	Severity string

	// Raw prints lines unchanged.
	Raw bool
}

// ViewFlags holds view command specific flags.
type ViewFlags struct {
	// Follow streams appended lines into the viewer.
	Follow bool

	// Severity is the initial minimum severity.
	Severity string

	// Theme is the color theme name.
	Theme string
}

// ConfigFlags holds config command specific flags.
type ConfigFlags struct {
	// Defaults prints the built-in defaults.
	Defaults bool

	// Save writes the effective configuration to the config file.
	Save bool
}

// Validate checks GlobalFlags for conflicting options.
// It returns an error if incompatible flags are set together.
func (f *GlobalFlags) Validate() error {
	if f.Verbose && f.Quiet {
		return &FlagError{
			Flag:    "verbose/quiet",
			Message: "cannot use --verbose and --quiet together",
		}
	}
	if f.Verbosity != "" {
		if _, ok := logging.ParseVerbosity(f.Verbosity); !ok {
			return &FlagError{
				Flag:    "verbosity",
				Message: "must be one of minimal, normal, more, maximum",
			}
		}
	}
	return nil
}

// Validate checks RunFlags values.
func (f *RunFlags) Validate() error {
	return validateSeverity(f.Severity)
}

// Validate checks TailFlags values.
func (f *TailFlags) Validate() error {
	if f.Lines < 0 {
		return &FlagError{Flag: "lines", Message: "must not be negative"}
	}
	return validateSeverity(f.Severity)
}

// Validate checks ViewFlags values.
func (f *ViewFlags) Validate() error {
	if err := validateSeverity(f.Severity); err != nil {
		return err
	}
	for _, name := range theme.AvailableThemes() {
		if string(name) == f.Theme {
			return nil
		}
	}
	return &FlagError{Flag: "theme", Message: "unknown theme " + f.Theme}
}

// Validate checks ConfigFlags for conflicting options.
func (f *ConfigFlags) Validate() error {
	if f.Defaults && f.Save {
		return &FlagError{
			Flag:    "defaults/save",
			Message: "cannot use --defaults and --save together",
		}
	}
	return nil
}

func validateSeverity(s string) error {
	if s == "" {
		return nil
	}
	if _, ok := logging.ParseSeverity(s); !ok {
		return &FlagError{
			Flag:    "severity",
			Message: "must be one of debug, info, warning, error, fatal",
		}
	}
	return nil
}

// SeverityOrDefault parses s, returning def when s is empty.
func SeverityOrDefault(s string, def logging.Severity) logging.Severity {
	if s == "" {
		return def
	}
	if sev, ok := logging.ParseSeverity(s); ok {
		return sev
	}
	return def
}

// FlagError represents an error with a command-line flag.
type FlagError struct {
	Flag    string
	Message string
}

// Error implements the error interface.
func (e *FlagError) Error() string {
	return "flag error: " + e.Flag + ": " + e.Message
}
