// Package logging is a process-wide facility that writes every line to an
// interactive console and to a timestamped log file. Lines carry a
// configurable prefix of timestamp, severity, thread name and call site,
// and old log files are pruned when the facility starts.
package logging

import (
	"fmt"
	"strings"
)

// Severity is the importance of a log line. It never filters output; it
// selects the tag text and the palette colour.
type Severity int

const (
	// SeverityDebug is for detailed debugging information.
	SeverityDebug Severity = iota
	// SeverityInfo is for general informational messages.
	SeverityInfo
	// SeverityWarning is for warning messages about potential issues.
	SeverityWarning
	// SeverityError is for error messages about failures.
	SeverityError
	// SeverityFatal is for failures the process is unlikely to survive.
	// Logging at this severity does not exit.
	SeverityFatal
)

// String returns the tag text written between brackets in a line prefix.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "Debug"
	case SeverityInfo:
		return "Info"
	case SeverityWarning:
		return "Warning"
	case SeverityError:
		return "Error"
	case SeverityFatal:
		return "Fatal"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// ParseSeverity converts a case-insensitive severity name to a Severity.
// "warn" is accepted as an alias of "warning".
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return SeverityDebug, true
	case "info":
		return SeverityInfo, true
	case "warning", "warn":
		return SeverityWarning, true
	case "error":
		return SeverityError, true
	case "fatal":
		return SeverityFatal, true
	default:
		return SeverityInfo, false
	}
}

// Severities returns every severity from least to most important.
func Severities() []Severity {
	return []Severity{SeverityDebug, SeverityInfo, SeverityWarning, SeverityError, SeverityFatal}
}

// VerbosityTier is a ceiling on how much call-site detail a line carries.
type VerbosityTier int

const (
	// TierMinimal emits no call-site block.
	TierMinimal VerbosityTier = iota
	// TierNormal emits the method and line.
	TierNormal
	// TierMore adds the declaring type's short name.
	TierMore
	// TierMaximum adds the package path, giving the fully qualified type.
	TierMaximum
)

// String returns the lower-case tier name used in configuration.
func (v VerbosityTier) String() string {
	switch v {
	case TierMinimal:
		return "minimal"
	case TierNormal:
		return "normal"
	case TierMore:
		return "more"
	case TierMaximum:
		return "maximum"
	default:
		return "unknown"
	}
}

// ParseVerbosity converts a case-insensitive tier name to a VerbosityTier.
// Unrecognized names return TierNormal and false.
func ParseVerbosity(s string) (VerbosityTier, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimal":
		return TierMinimal, true
	case "normal":
		return TierNormal, true
	case "more":
		return TierMore, true
	case "maximum", "max":
		return TierMaximum, true
	default:
		return TierNormal, false
	}
}

// allows reports whether the tier permits the given call-site segment.
func (v VerbosityTier) allows(seg segment) bool {
	switch seg {
	case segMethod, segLine:
		return v >= TierNormal
	case segClass:
		return v >= TierMore
	case segNamespace:
		return v >= TierMaximum
	default:
		return false
	}
}

type segment int

const (
	segNamespace segment = iota
	segClass
	segMethod
	segLine
)
