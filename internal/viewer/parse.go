// Package viewer reads log files written by the logging facility: it lists
// them, tails and follows them, and parses their lines back into records.
package viewer

import (
	"regexp"
	"strings"

	"github.com/tungetti/teelog/internal/logging"
)

var (
	ansiPattern      = regexp.MustCompile("\x1b\\[[0-9;]*m")
	timestampPattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}:\d{3}$`)
)

// Record is one parsed log line. Lines not written by the formatter keep
// only Message and Raw.
type Record struct {
	Raw         string
	Timestamp   string
	Severity    logging.Severity
	HasSeverity bool
	Thread      string
	Site        string
	Message     string
}

// StripANSI removes SGR escape sequences from s.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// ParseLine splits a formatted line into its prefix segments and message.
// A single bracketed segment after the severity is read as the call site;
// two are read as thread then call site.
func ParseLine(line string) Record {
	clean := strings.TrimRight(StripANSI(line), "\r\n")
	rec := Record{Raw: clean}

	rest := clean
	if seg, tail, ok := bracket(rest); ok && timestampPattern.MatchString(seg) {
		rec.Timestamp = seg
		rest = tail
	}
	if seg, tail, ok := bracket(rest); ok {
		if sev, known := parseSeverityName(seg); known {
			rec.Severity = sev
			rec.HasSeverity = true
			rest = tail
		}
	}

	var groups []string
	tail := rest
	for len(groups) < 2 {
		seg, next, ok := bracket(tail)
		if !ok {
			break
		}
		groups = append(groups, seg)
		tail = next
	}
	if rec.HasSeverity || rec.Timestamp != "" {
		switch len(groups) {
		case 1:
			rec.Site = groups[0]
			rest = tail
		case 2:
			rec.Thread, rec.Site = groups[0], groups[1]
			rest = tail
		}
	}

	rec.Message = rest
	return rec
}

// bracket reads a leading "[x] " group.
func bracket(s string) (seg, rest string, ok bool) {
	if !strings.HasPrefix(s, "[") {
		return "", s, false
	}
	end := strings.Index(s, "] ")
	if end < 0 {
		if strings.HasSuffix(s, "]") && !strings.Contains(s[1:], "[") {
			return s[1 : len(s)-1], "", true
		}
		return "", s, false
	}
	return s[1:end], s[end+2:], true
}

func parseSeverityName(s string) (logging.Severity, bool) {
	for _, sev := range logging.Severities() {
		if sev.String() == s {
			return sev, true
		}
	}
	return logging.SeverityInfo, false
}

// ParseLines parses every line.
func ParseLines(lines []string) []Record {
	records := make([]Record, len(lines))
	for i, line := range lines {
		records[i] = ParseLine(line)
	}
	return records
}

// Filter keeps records at or above min. Records without a severity are kept.
func Filter(records []Record, min logging.Severity) []Record {
	var out []Record
	for _, r := range records {
		if !r.HasSeverity || r.Severity >= min {
			out = append(out, r)
		}
	}
	return out
}
