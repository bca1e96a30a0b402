package testing

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"testing"
	"time"
)

// ============================================================================
// Context Helpers
// ============================================================================

// ContextWithTimeout creates a context with timeout for testing.
// The context is automatically cancelled when the test completes.
func ContextWithTimeout(t testing.TB, timeout time.Duration) (context.Context, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx, cancel
}

// ShortContext creates a context with a short timeout (5 seconds).
func ShortContext(t testing.TB) context.Context {
	t.Helper()
	ctx, _ := ContextWithTimeout(t, 5*time.Second)
	return ctx
}

// ============================================================================
// Skip Helpers
// ============================================================================

// SkipIfRoot skips the test if running as root. Permission-based failure
// injection does not work for root.
func SkipIfRoot(t testing.TB) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("skipping test when running as root")
	}
}

// SkipShort skips the test in short mode.
func SkipShort(t testing.TB) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping test in short mode")
	}
}

// RequireNoError fails the test immediately if err is not nil.
func RequireNoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Fatalf("%s: unexpected error: %v", msg, err)
		} else {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}

// WaitFor waits for a condition to become true with timeout.
// If the condition does not become true within the timeout, the test fails.
func WaitFor(t testing.TB, condition func() bool, timeout, interval time.Duration) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(interval)
	}
	t.Fatalf("condition not met within %v", timeout)
}

// ============================================================================
// Output Capture Helpers
// ============================================================================

// CaptureOutput captures stdout and stderr during a function call.
func CaptureOutput(t testing.TB, fn func()) (stdout, stderr string) {
	t.Helper()

	oldStdout := os.Stdout
	oldStderr := os.Stderr
	defer func() {
		os.Stdout = oldStdout
		os.Stderr = oldStderr
	}()

	rOut, wOut, err := os.Pipe()
	RequireNoError(t, err, "failed to create stdout pipe")

	rErr, wErr, err := os.Pipe()
	RequireNoError(t, err, "failed to create stderr pipe")

	os.Stdout = wOut
	os.Stderr = wErr

	outC := make(chan string)
	errC := make(chan string)

	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, rOut)
		outC <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, rErr)
		errC <- buf.String()
	}()

	fn()

	wOut.Close()
	wErr.Close()

	return <-outC, <-errC
}

// SyncBuffer is a bytes.Buffer safe for concurrent writers, used as a
// console stand-in when lines arrive from several goroutines.
type SyncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write implements io.Writer.
func (b *SyncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String returns everything written so far.
func (b *SyncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Reset discards everything written so far.
func (b *SyncBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

// ============================================================================
// Environment Variable Helpers
// ============================================================================

// SetEnv sets an environment variable and returns a cleanup function.
// The original value (or unset state) is restored when the cleanup function is called.
func SetEnv(t testing.TB, key, value string) func() {
	t.Helper()

	oldValue, existed := os.LookupEnv(key)

	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set env var %s: %v", key, err)
	}

	return func() {
		if existed {
			os.Setenv(key, oldValue)
		} else {
			os.Unsetenv(key)
		}
	}
}

// SetEnvs sets multiple environment variables and returns a cleanup function.
func SetEnvs(t testing.TB, vars map[string]string) func() {
	t.Helper()

	cleanups := make([]func(), 0, len(vars))
	for key, value := range vars {
		cleanups = append(cleanups, SetEnv(t, key, value))
	}

	return func() {
		for _, cleanup := range cleanups {
			cleanup()
		}
	}
}

// ============================================================================
// Temporary Dir Helpers
// ============================================================================

// TempDirWithFiles creates a temporary directory with files.
func TempDirWithFiles(t testing.TB, files map[string]string) (path string, cleanup func()) {
	t.Helper()

	builder := NewTempDirBuilder()
	for name, content := range files {
		builder.WithFile(name, content)
	}

	return builder.Build(t)
}

// ============================================================================
// MockTime - Controllable time for testing
// ============================================================================

// MockTime provides controllable time for testing. Its Now method can be
// used as a logging clock.
type MockTime struct {
	mu      sync.Mutex
	current time.Time
}

// NewMockTime creates a new MockTime starting at the given time.
func NewMockTime(t time.Time) *MockTime {
	return &MockTime{current: t}
}

// Now returns the current mock time.
func (m *MockTime) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Advance advances the mock time by the given duration.
func (m *MockTime) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}

// Set sets the mock time to the given value.
func (m *MockTime) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// formatMessage formats optional message arguments for error output.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}

	if len(msgAndArgs) == 1 {
		if msg, ok := msgAndArgs[0].(string); ok {
			return msg
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}

	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}

	return fmt.Sprintf("%v", msgAndArgs)
}
