package console

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(verbose bool) (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(Options{
		Verbose: verbose,
		Output:  &buf,
		NoColor: true,
	}), &buf
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.False(t, opts.Verbose)
	assert.Equal(t, os.Stderr, opts.Output)
	assert.Equal(t, "15:04:05", opts.TimeFormat)
	assert.False(t, opts.NoColor)
	assert.False(t, opts.ReportTimestamp)
}

func TestNew_NilOutput(t *testing.T) {
	logger := New(Options{})
	require.NotNil(t, logger)
}

func TestLogger_Levels(t *testing.T) {
	logger, buf := newBufferLogger(true)

	logger.Debug("debug message")
	assert.Contains(t, buf.String(), "debug message")
	buf.Reset()

	logger.Info("info message")
	assert.Contains(t, buf.String(), "info message")
	buf.Reset()

	logger.Warn("warn message")
	assert.Contains(t, buf.String(), "warn message")
	buf.Reset()

	logger.Error("error message")
	assert.Contains(t, buf.String(), "error message")
}

func TestLogger_VerboseFiltering(t *testing.T) {
	logger, buf := newBufferLogger(false)

	logger.Debug("hidden")
	logger.Debugf("hidden %d", 2)
	assert.Empty(t, buf.String())

	logger.SetVerbose(true)
	logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogger_Formatted(t *testing.T) {
	logger, buf := newBufferLogger(true)

	logger.Debugf("deleting %d files", 2)
	logger.Warnf("failed to delete %s", "old.log")

	assert.Contains(t, buf.String(), "deleting 2 files")
	assert.Contains(t, buf.String(), "failed to delete old.log")
}

func TestLogger_KeyValues(t *testing.T) {
	logger, buf := newBufferLogger(false)

	logger.Info("pruned", "deleted", 2, "dir", "Logs")
	output := buf.String()

	assert.Contains(t, output, "pruned")
	assert.Contains(t, output, "deleted")
	assert.Contains(t, output, "Logs")
}

func TestLogger_WithPrefix(t *testing.T) {
	logger, buf := newBufferLogger(false)

	logger.WithPrefix("prune").Info("prefixed message")

	assert.Contains(t, buf.String(), "prune")
	assert.Contains(t, buf.String(), "prefixed message")
}

func TestLogger_Concurrent(t *testing.T) {
	logger, _ := newBufferLogger(true)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			logger.Info("message", "n", n)
			logger.SetVerbose(n%2 == 0)
		}(i)
	}
	wg.Wait()
}

func TestNopLogger(t *testing.T) {
	logger := NewNop()

	logger.Debug("x")
	logger.Info("x")
	logger.Warn("x")
	logger.Error("x")
	logger.Debugf("x")
	logger.Warnf("x")
	logger.SetVerbose(true)
	assert.Equal(t, logger, logger.WithPrefix("p"))
}
