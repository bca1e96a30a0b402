// Package constants defines application-wide constants for teelog.
// All constants are typed to ensure type safety and prevent accidental misuse.
package constants

import "time"

// Application metadata
const (
	// AppName is the application name used in logs, configs, and user messages.
	AppName string = "teelog"
	// AppDescription is a short description of the application.
	AppDescription string = "Console and file logging with call-site prefixes and log rotation"
	// EnvPrefix is the prefix for environment variables that override config values.
	EnvPrefix string = "TEELOG_"
)

// ExitCode represents process exit codes for different termination scenarios.
type ExitCode int

const (
	// ExitSuccess indicates the application completed successfully.
	ExitSuccess ExitCode = iota
	// ExitError indicates a general error occurred.
	ExitError
	// ExitFileSystem indicates the log directory or a log file could not be used.
	ExitFileSystem
	// ExitValidation indicates invalid input or configuration.
	ExitValidation
	// ExitNotFound indicates that no log files were found.
	ExitNotFound
	// ExitUserAbort indicates the user cancelled the operation.
	ExitUserAbort
)

// Int returns the exit code as an int for use with os.Exit().
func (e ExitCode) Int() int {
	return int(e)
}

// Log file layout.
const (
	// DefaultLogDir is the log directory, relative to the working directory.
	DefaultLogDir string = "Logs"
	// DefaultMaxLogFiles is the number of log files kept by rotation.
	DefaultMaxLogFiles int = 5
	// LogFileExt is the extension of every log file.
	LogFileExt string = ".log"
	// LogFileNameLayout is the time layout of a log file name, without milliseconds.
	LogFileNameLayout string = "01-02-2006 15-04-05"
	// LogFileNameLen is the exact length of a valid log file name.
	LogFileNameLen int = len("MM-dd-yyyy HH-mm-ss-fff.log")
	// TimestampLayout is the time layout of a line prefix, without milliseconds.
	TimestampLayout string = "15:04:05"
)

// Timeouts for tool operations.
const (
	// ShutdownTimeout bounds the shutdown functions run on exit.
	ShutdownTimeout time.Duration = 10 * time.Second
	// FollowPollInterval is how often Follow re-checks a file when no events arrive.
	FollowPollInterval time.Duration = 500 * time.Millisecond
	// DefaultTailLines is the number of lines tail prints when -n is not given.
	DefaultTailLines int = 20
)

// File paths relative to user's home directory
const (
	// DefaultConfigDir is the default configuration directory relative to $HOME.
	DefaultConfigDir string = ".config/teelog"
	// ConfigFileName is the configuration file name.
	ConfigFileName string = "config.yaml"
)
