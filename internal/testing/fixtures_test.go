package testing

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogName(t *testing.T) {
	assert.Equal(t, "03-05-2024 14-07-09-042.log", LogName(BaseTime))
	assert.Len(t, LogName(BaseTime), 27)
}

func TestLogNames_OldestFirst(t *testing.T) {
	names := LogNames(BaseTime, 3)

	assert.Equal(t, []string{
		"03-05-2024 14-07-09-042.log",
		"03-05-2024 14-08-09-042.log",
		"03-05-2024 14-09-09-042.log",
	}, names)
}

func TestLogDirWithFiles(t *testing.T) {
	names := LogNames(BaseTime, 2)
	dir := LogDirWithFiles(t, append(names, MalformedLogNames[0])...)

	AssertLogFileCount(t, dir, 2)
	AssertSameContent(t, filepath.Join(dir, names[0]), names[0]+"\n")
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "[Error] boom", StripANSI("\x1b[38;5;9m[Error] boom\x1b[0m"))
	assert.Equal(t, "plain", StripANSI("plain"))
}

func TestTempDirBuilder_WithLogFiles(t *testing.T) {
	dir, cleanup := NewTempDirBuilder().
		WithLogFiles("Logs", BaseTime, BaseTime.Add(time.Hour)).
		WithConfig(SampleConfigYAML).
		Build(t)
	defer cleanup()

	AssertLogFileCount(t, filepath.Join(dir, "Logs"), 2)
	AssertFileContains(t, filepath.Join(dir, "config.yaml"), "verbosity: more")
}

func TestAssertLinePrefix(t *testing.T) {
	AssertLinePrefix(t, SampleLog, "[14:07:11:000] [Error]")
}
