package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tungetti/teelog/internal/constants"
	"github.com/tungetti/teelog/internal/errors"
)

// Reporter receives progress and failures from Prune. *Logger satisfies it,
// as does *log.Logger from charmbracelet/log.
type Reporter interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type nopReporter struct{}

func (nopReporter) Debugf(string, ...interface{}) {}
func (nopReporter) Warnf(string, ...interface{})  {}

// LogFile is a file in a log directory whose name parses as a log timestamp.
type LogFile struct {
	Name string
	Path string
	Time time.Time
	Size int64
}

// LogFileName returns the file name for a log started at t:
// MM-dd-yyyy HH-mm-ss-fff.log.
func LogFileName(t time.Time) string {
	return t.Format(constants.LogFileNameLayout) +
		fmt.Sprintf("-%03d", t.Nanosecond()/int(time.Millisecond)) +
		constants.LogFileExt
}

// ParseLogFileName parses a name produced by LogFileName in the local time
// zone. Any other name returns false.
func ParseLogFileName(name string) (time.Time, bool) {
	if len(name) != constants.LogFileNameLen || !strings.HasSuffix(name, constants.LogFileExt) {
		return time.Time{}, false
	}
	stamp := len(constants.LogFileNameLayout)
	if name[stamp] != '-' {
		return time.Time{}, false
	}
	ms := name[stamp+1 : stamp+4]
	for _, r := range ms {
		if r < '0' || r > '9' {
			return time.Time{}, false
		}
	}
	t, err := time.ParseInLocation(constants.LogFileNameLayout, name[:stamp], time.Local)
	if err != nil {
		return time.Time{}, false
	}
	millis, _ := strconv.Atoi(ms)
	return t.Add(time.Duration(millis) * time.Millisecond), true
}

// ListLogFiles returns the log files in dir sorted oldest first. Files with
// other names and subdirectories are ignored.
func ListLogFiles(dir string) ([]LogFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(errors.FileSystem, err, "failed to list %s", dir).WithOp("logging.ListLogFiles")
	}

	files := make([]LogFile, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		t, ok := ParseLogFileName(entry.Name())
		if !ok {
			continue
		}
		var size int64
		if info, err := entry.Info(); err == nil {
			size = info.Size()
		}
		files = append(files, LogFile{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
			Time: t,
			Size: size,
		})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Time.Equal(files[j].Time) {
			return files[i].Name < files[j].Name
		}
		return files[i].Time.Before(files[j].Time)
	})
	return files, nil
}

// PruneOption configures Prune.
type PruneOption func(*pruneConfig)

type pruneConfig struct {
	exclude  map[string]bool
	reporter Reporter
	remove   func(string) error
}

// WithExclude keeps the named files out of consideration, neither counted
// nor deleted. Init uses it for the file it just opened.
func WithExclude(names ...string) PruneOption {
	return func(c *pruneConfig) {
		for _, name := range names {
			c.exclude[filepath.Base(name)] = true
		}
	}
}

// WithReporter sets where Prune reports what it deletes and what it fails to delete.
func WithReporter(r Reporter) PruneOption {
	return func(c *pruneConfig) {
		if r != nil {
			c.reporter = r
		}
	}
}

// WithRemoveFunc replaces os.Remove.
func WithRemoveFunc(fn func(string) error) PruneOption {
	return func(c *pruneConfig) {
		if fn != nil {
			c.remove = fn
		}
	}
}

// Prune deletes the oldest log files in dir until at most maxFiles remain
// and returns how many it deleted. A file that cannot be deleted is reported
// at warning level and skipped; no newer file is deleted in its place.
// Only a failure to list dir is returned.
func Prune(dir string, maxFiles int, opts ...PruneOption) (int, error) {
	cfg := pruneConfig{
		exclude:  make(map[string]bool),
		reporter: nopReporter{},
		remove:   os.Remove,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if maxFiles < 0 {
		maxFiles = 0
	}

	all, err := ListLogFiles(dir)
	if err != nil {
		return 0, errors.Wrap(errors.Rotation, "failed to read log directory", err).WithOp("logging.Prune")
	}

	files := all[:0]
	for _, f := range all {
		if !cfg.exclude[f.Name] {
			files = append(files, f)
		}
	}

	excess := len(files) - maxFiles
	if excess <= 0 {
		return 0, nil
	}

	cfg.reporter.Debugf("Found too many log files. Deleting the oldest %d", excess)
	deleted := 0
	for _, f := range files[:excess] {
		if err := cfg.remove(f.Path); err != nil {
			cfg.reporter.Warnf("Failed to delete log file %s: %v", f.Name, err)
			continue
		}
		deleted++
	}
	return deleted, nil
}
