package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/tungetti/teelog/internal/constants"
)

// ============================================================================
// Log Directory Fixtures
// ============================================================================

// BaseTime is a fixed local time used by fixtures.
var BaseTime = time.Date(2024, time.March, 5, 14, 7, 9, 42*int(time.Millisecond), time.Local)

// LogName returns the log file name for t, MM-dd-yyyy HH-mm-ss-fff.log.
func LogName(t time.Time) string {
	return t.Format(constants.LogFileNameLayout) +
		fmt.Sprintf("-%03d", t.Nanosecond()/int(time.Millisecond)) +
		constants.LogFileExt
}

// LogNames returns n log file names one minute apart starting at start,
// oldest first.
func LogNames(start time.Time, n int) []string {
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = LogName(start.Add(time.Duration(i) * time.Minute))
	}
	return names
}

// LogDirWithFiles creates a temporary directory holding the named files,
// each containing a single line naming itself.
func LogDirWithFiles(t testing.TB, names ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(name+"\n"), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
	return dir
}

// LogFileNames returns the names in dir that have the shape of a log file
// name, sorted.
func LogFileNames(t testing.TB, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read %s: %v", dir, err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && len(e.Name()) == constants.LogFileNameLen && strings.HasSuffix(e.Name(), constants.LogFileExt) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// MalformedLogNames are names that must never be treated as log files.
var MalformedLogNames = []string{
	"notes.txt",
	"03-05-2024 14-07-09.log",
	"03-05-2024 14-07-09-042.txt",
	"13-45-2024 14-07-09-042.log",
	"03-05-2024 14-07-09-04x.log",
	"03-05-2024_14-07-09-042.log",
	"app.log",
}

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// StripANSI removes SGR escape sequences from s.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// ============================================================================
// Formatted Line Fixtures
// ============================================================================

// SampleLog is a log file as the facility writes it with default prefix
// flags, a named worker thread and one coloured line.
const SampleLog = "[14:07:09:042] [Info] [main.12] ready\n" +
	"[14:07:09:043] [Debug] Found too many log files. Deleting the oldest 2\n" +
	"[14:07:10:100] [Warning] [worker-1] [Store.Flush.88] disk low\n" +
	"\x1b[38;5;9m[14:07:11:000] [Error] [Store.Flush.91] write failed\x1b[0m\n" +
	"raw line before init\n"

// SampleConfigYAML is a complete configuration file.
const SampleConfigYAML = `create_log_file: true
max_log_files: 3
log_directory: /tmp/teelog-logs
verbosity: more
color: never
redirect_std_streams: false
prefix:
  timestamp: true
  severity: true
  thread: true
  namespace: false
  class: true
  method: true
  line: true
palette:
  debug: 8
  info: 15
  warning: 11
  error: 9
  fatal: 1
`

// ============================================================================
// TempDirBuilder - Create temporary directories with files for testing
// ============================================================================

// TempDirBuilder helps create temporary directories with files for testing.
type TempDirBuilder struct {
	files map[string]string
}

// NewTempDirBuilder creates a new TempDirBuilder.
func NewTempDirBuilder() *TempDirBuilder {
	return &TempDirBuilder{
		files: make(map[string]string),
	}
}

// WithFile adds a file with the given path and content.
// Path is relative to the temp directory root.
func (b *TempDirBuilder) WithFile(path, content string) *TempDirBuilder {
	b.files[path] = content
	return b
}

// WithLogFiles adds empty-bodied log files under dir for each time.
func (b *TempDirBuilder) WithLogFiles(dir string, times ...time.Time) *TempDirBuilder {
	for _, t := range times {
		name := LogName(t)
		b.files[filepath.Join(dir, name)] = name + "\n"
	}
	return b
}

// WithConfig adds a config.yaml with the given content.
func (b *TempDirBuilder) WithConfig(content string) *TempDirBuilder {
	return b.WithFile(constants.ConfigFileName, content)
}

// Build creates the temporary directory with all configured files.
// Returns the temp directory path and a cleanup function.
func (b *TempDirBuilder) Build(t testing.TB) (string, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "teelog-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	for path, content := range b.files {
		fullPath := filepath.Join(tmpDir, path)

		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			os.RemoveAll(tmpDir)
			t.Fatalf("failed to create directory for %s: %v", fullPath, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			os.RemoveAll(tmpDir)
			t.Fatalf("failed to write file %s: %v", fullPath, err)
		}
	}

	return tmpDir, func() {
		os.RemoveAll(tmpDir)
	}
}
