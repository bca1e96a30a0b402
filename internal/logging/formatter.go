package logging

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tungetti/teelog/internal/constants"
)

// PrefixFlags selects which prefix segments are written before a message.
// Call-site segments are additionally capped by the VerbosityTier.
type PrefixFlags struct {
	Timestamp bool
	Severity  bool
	Thread    bool
	Namespace bool
	Class     bool
	Method    bool
	Line      bool
}

// DefaultPrefixFlags enables timestamp, severity, class, method and line.
func DefaultPrefixFlags() PrefixFlags {
	return PrefixFlags{
		Timestamp: true,
		Severity:  true,
		Class:     true,
		Method:    true,
		Line:      true,
	}
}

// Formatter turns a message into a prefixed line. It holds no state besides
// its settings and never fails.
type Formatter struct {
	Prefix    PrefixFlags
	Verbosity VerbosityTier
	Color     bool
	Palette   Palette
	// Clock returns the time written in the timestamp segment.
	Clock func() time.Time
}

// NewFormatter returns a Formatter with default prefix flags, TierNormal,
// the default palette and the wall clock.
func NewFormatter() Formatter {
	return Formatter{
		Prefix:    DefaultPrefixFlags(),
		Verbosity: TierNormal,
		Palette:   DefaultPalette(),
		Clock:     time.Now,
	}
}

// Format builds
//
//	[color][HH:mm:ss:fff] [Severity] [thread] [site] msg[reset]
//
// leaving out every disabled or empty segment.
func (f Formatter) Format(sev Severity, msg string, site CallSite, thread string) string {
	var b strings.Builder

	if f.Color {
		b.WriteString(f.Palette.For(sev))
	}
	if f.Prefix.Timestamp {
		b.WriteString("[")
		b.WriteString(FormatTimestamp(f.now()))
		b.WriteString("] ")
	}
	if f.Prefix.Severity {
		b.WriteString("[")
		b.WriteString(sev.String())
		b.WriteString("] ")
	}
	if f.Prefix.Thread && thread != "" {
		b.WriteString("[")
		b.WriteString(thread)
		b.WriteString("] ")
	}
	if block := f.siteBlock(site); block != "" {
		b.WriteString("[")
		b.WriteString(block)
		b.WriteString("] ")
	}
	b.WriteString(msg)
	if f.Color {
		b.WriteString(Reset)
	}
	return b.String()
}

func (f Formatter) siteBlock(site CallSite) string {
	parts := make([]string, 0, 4)
	add := func(seg segment, enabled bool, value string) {
		if enabled && value != "" && f.Verbosity.allows(seg) {
			parts = append(parts, value)
		}
	}
	add(segNamespace, f.Prefix.Namespace, site.Namespace)
	add(segClass, f.Prefix.Class, site.Type)
	add(segMethod, f.Prefix.Method, site.Method)
	add(segLine, f.Prefix.Line, formatLine(site.Line))
	return strings.Join(parts, ".")
}

func (f Formatter) now() time.Time {
	if f.Clock == nil {
		return time.Now()
	}
	return f.Clock()
}

// FormatTimestamp renders t as HH:mm:ss:fff.
func FormatTimestamp(t time.Time) string {
	return t.Format(constants.TimestampLayout) + fmt.Sprintf(":%03d", t.Nanosecond()/int(time.Millisecond))
}

func formatLine(line int) string {
	if line == UnknownLine {
		return Unknown
	}
	return strconv.Itoa(line)
}
