// Package errors provides custom error types and utilities for teelog.
// It implements structured errors with error codes, operation context, and proper
// support for Go's error wrapping with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Code represents error categories for classifying different types of failures.
type Code int

const (
	// Unknown indicates an unclassified error.
	Unknown Code = iota
	// Configuration indicates a configuration error.
	Configuration
	// FileSystem indicates a failure creating the log directory or opening a log file.
	FileSystem
	// Rotation indicates a failure while pruning old log files.
	Rotation
	// State indicates an operation invalid for the facility's current state.
	State
	// Validation indicates a validation failure.
	Validation
	// NotFound indicates a required resource was not found.
	NotFound
	// Terminal indicates a failure driving the interactive terminal viewer.
	Terminal
)

// String returns the string representation of the error code.
func (c Code) String() string {
	switch c {
	case Unknown:
		return "Unknown"
	case Configuration:
		return "Configuration"
	case FileSystem:
		return "FileSystem"
	case Rotation:
		return "Rotation"
	case State:
		return "State"
	case Validation:
		return "Validation"
	case NotFound:
		return "NotFound"
	case Terminal:
		return "Terminal"
	default:
		return fmt.Sprintf("Code(%d)", c)
	}
}

// Error represents a structured application error with code, message,
// operation context, and optional cause for error chaining.
type Error struct {
	Code    Code   // Error category
	Message string // Human-readable error message
	Op      string // Operation that failed (e.g., "logging.Init")
	Cause   error  // Underlying error, if any
}

// New creates a new Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a new Error with a formatted message.
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with additional context.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(code Code, cause error, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// WithOp adds operation context to the error and returns the modified error.
// This allows for fluent chaining: errors.New(...).WithOp("operation").
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// Error implements the error interface.
// The format varies based on whether Op and Cause are set:
//   - With Op and Cause: "op: message: cause"
//   - With Op only: "op: message"
//   - With Cause only: "message: cause"
//   - Message only: "message"
func (e *Error) Error() string {
	if e.Op != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Cause)
		}
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the target error matches this error's code.
// This enables errors.Is() to match errors by their code. Sentinel targets
// also require the same message, so sentinels sharing a code stay distinct.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e.Code != t.Code {
		return false
	}
	if isSentinel(t) {
		return e == t || e.Message == t.Message
	}
	return true
}

func isSentinel(e *Error) bool {
	return e == ErrAlreadyInitialized || e == ErrNotInitialized || e == ErrNoLogFiles
}

// GetCode extracts the error code from an error.
// Returns Unknown if the error is not an *Error type.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Unknown
}

// IsCode checks if an error has a specific code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}

// Sentinel errors for common cases.
// These can be used directly or wrapped with additional context.
var (
	// ErrAlreadyInitialized indicates Init was called on an initialized facility.
	ErrAlreadyInitialized = New(State, "logger already initialized")
	// ErrNotInitialized indicates an operation that requires Init was called before it.
	ErrNotInitialized = New(State, "logger not initialized")
	// ErrNoLogFiles indicates a log directory contains no recognizable log files.
	ErrNoLogFiles = New(NotFound, "no log files found")
)
