package testing

import (
	stderrors "errors"
	"os"
	"strings"
	"testing"

	"github.com/tungetti/teelog/internal/errors"
)

// ============================================================================
// Error Assertions
// ============================================================================

// AssertErrorCode checks if an error has a specific error code.
func AssertErrorCode(t testing.TB, err error, expectedCode errors.Code) {
	t.Helper()

	if err == nil {
		t.Errorf("expected error with code %s, but got nil", expectedCode)
		return
	}

	actualCode := errors.GetCode(err)
	if actualCode != expectedCode {
		t.Errorf("expected error code %s, but got %s (error: %v)", expectedCode, actualCode, err)
	}
}

// AssertErrorContains checks if error message contains a substring.
func AssertErrorContains(t testing.TB, err error, substring string) {
	t.Helper()

	if err == nil {
		t.Errorf("expected error containing %q, but got nil", substring)
		return
	}

	if !strings.Contains(err.Error(), substring) {
		t.Errorf("expected error to contain %q, but got: %v", substring, err)
	}
}

// AssertErrorIs checks if error matches target using errors.Is.
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()

	if err == nil {
		t.Errorf("expected error matching %v, but got nil", target)
		return
	}

	if !stderrors.Is(err, target) {
		t.Errorf("expected error matching %v, but got: %v", target, err)
	}
}

// ============================================================================
// Logger Assertions
// ============================================================================

// AssertLogContains checks if the mock logger recorded a message containing substring.
func AssertLogContains(t testing.TB, logger *MockLogger, substring string) {
	t.Helper()

	if !logger.ContainsMessage(substring) {
		messages := logger.Messages()
		var msgs []string
		for _, m := range messages {
			msgs = append(msgs, m.Message)
		}
		t.Errorf("expected log to contain %q, but it doesn't (messages: %v)", substring, msgs)
	}
}

// AssertLogNotContains checks if the mock logger does NOT contain a message.
func AssertLogNotContains(t testing.TB, logger *MockLogger, substring string) {
	t.Helper()

	if logger.ContainsMessage(substring) {
		t.Errorf("expected log to NOT contain %q, but it does", substring)
	}
}

// AssertLogLevel checks if a message was logged at a specific level.
func AssertLogLevel(t testing.TB, logger *MockLogger, level Level, substring string) {
	t.Helper()

	if !logger.ContainsMessageAtLevel(level, substring) {
		messages := logger.MessagesAtLevel(level)
		var msgs []string
		for _, m := range messages {
			msgs = append(msgs, m.Message)
		}
		t.Errorf("expected log at level %s to contain %q, but it doesn't (messages: %v)",
			level, substring, msgs)
	}
}

// AssertLogEmpty checks if the mock logger has no messages.
func AssertLogEmpty(t testing.TB, logger *MockLogger) {
	t.Helper()

	if logger.MessageCount() > 0 {
		messages := logger.Messages()
		var msgs []string
		for _, m := range messages {
			msgs = append(msgs, m.Message)
		}
		t.Errorf("expected log to be empty, but it has %d messages: %v",
			logger.MessageCount(), msgs)
	}
}

// AssertLogCount checks the number of log messages.
func AssertLogCount(t testing.TB, logger *MockLogger, expected int) {
	t.Helper()

	actual := logger.MessageCount()
	if actual != expected {
		t.Errorf("expected %d log messages, got %d", expected, actual)
	}
}

// ============================================================================
// File System Assertions
// ============================================================================

// AssertFileExists checks if a file exists.
func AssertFileExists(t testing.TB, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("expected file %q to exist, but it doesn't", path)
	}
}

// AssertFileNotExists checks if a file does NOT exist.
func AssertFileNotExists(t testing.TB, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file %q to NOT exist, but it does", path)
	} else if !os.IsNotExist(err) {
		t.Errorf("unexpected error checking file %q: %v", path, err)
	}
}

// AssertFileContains checks if a file contains a substring.
func AssertFileContains(t testing.TB, path, substring string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("failed to read file %q: %v", path, err)
		return
	}

	if !strings.Contains(string(content), substring) {
		t.Errorf("expected file %q to contain %q, but it doesn't", path, substring)
	}
}

// AssertFileNotContains checks if a file does NOT contain a substring.
func AssertFileNotContains(t testing.TB, path, substring string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("failed to read file %q: %v", path, err)
		return
	}

	if strings.Contains(string(content), substring) {
		t.Errorf("expected file %q to NOT contain %q, but it does", path, substring)
	}
}

// AssertFileEquals checks if a file has exact content.
func AssertFileEquals(t testing.TB, path, expected string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("failed to read file %q: %v", path, err)
		return
	}

	if string(content) != expected {
		t.Errorf("file %q content mismatch:\nexpected:\n%s\ngot:\n%s", path, expected, string(content))
	}
}

// AssertDirExists checks if a directory exists.
func AssertDirExists(t testing.TB, path string) {
	t.Helper()

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("expected directory %q to exist, but it doesn't", path)
		return
	}
	if err != nil {
		t.Errorf("error checking directory %q: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %q to be a directory, but it's a file", path)
	}
}

// AssertDirNotExists checks if a directory does NOT exist.
func AssertDirNotExists(t testing.TB, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected directory %q to NOT exist, but it does", path)
	} else if !os.IsNotExist(err) {
		t.Errorf("unexpected error checking directory %q: %v", path, err)
	}
}

// ============================================================================
// Log File Assertions
// ============================================================================

// AssertLogFileCount checks how many log-file-named entries dir holds.
func AssertLogFileCount(t testing.TB, dir string, expected int) {
	t.Helper()

	names := LogFileNames(t, dir)
	if len(names) != expected {
		t.Errorf("expected %d log files in %s, got %d: %v", expected, dir, len(names), names)
	}
}

// AssertSameContent checks that the file at path holds exactly content.
// It is used to compare the log file with what the console received.
func AssertSameContent(t testing.TB, path, content string) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("failed to read file %s: %v", path, err)
		return
	}
	if string(data) != content {
		t.Errorf("file %s differs from expected content\nfile:     %q\nexpected: %q", path, string(data), content)
	}
}

// AssertLinePrefix checks that some line of text starts with prefix once
// ANSI escapes are removed.
func AssertLinePrefix(t testing.TB, text, prefix string) {
	t.Helper()

	for _, line := range strings.Split(StripANSI(text), "\n") {
		if strings.HasPrefix(line, prefix) {
			return
		}
	}
	t.Errorf("expected a line starting with %q in %q", prefix, text)
}
