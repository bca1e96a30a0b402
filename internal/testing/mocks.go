// Package testing provides shared test infrastructure for teelog: a
// recording operator logger, a failing file remover, log directory
// fixtures, helpers and assertions.
package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tungetti/teelog/internal/console"
)

// ============================================================================
// MockLogger - Implements console.Logger and the prune Reporter for testing
// ============================================================================

// Level is the level a MockLogger message was recorded at.
type Level string

// Levels recorded by MockLogger.
const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// LogMessage represents a recorded log message.
type LogMessage struct {
	Level   Level
	Message string
	Fields  []interface{}
}

// MockLogger records every message for later inspection. It implements
// console.Logger, and its Debugf and Warnf methods make it usable wherever
// a prune reporter is expected.
type MockLogger struct {
	mu       sync.Mutex
	messages []LogMessage
	prefix   string
	parent   *MockLogger
}

// NewMockLogger creates an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{messages: make([]LogMessage, 0)}
}

// Debug records a debug message.
func (m *MockLogger) Debug(msg string, keyvals ...interface{}) {
	m.record(LevelDebug, msg, keyvals)
}

// Info records an info message.
func (m *MockLogger) Info(msg string, keyvals ...interface{}) {
	m.record(LevelInfo, msg, keyvals)
}

// Warn records a warning message.
func (m *MockLogger) Warn(msg string, keyvals ...interface{}) {
	m.record(LevelWarn, msg, keyvals)
}

// Error records an error message.
func (m *MockLogger) Error(msg string, keyvals ...interface{}) {
	m.record(LevelError, msg, keyvals)
}

// Debugf records a formatted debug message.
func (m *MockLogger) Debugf(format string, args ...interface{}) {
	m.record(LevelDebug, fmt.Sprintf(format, args...), nil)
}

// Warnf records a formatted warning message.
func (m *MockLogger) Warnf(format string, args ...interface{}) {
	m.record(LevelWarn, fmt.Sprintf(format, args...), nil)
}

// WithPrefix returns a logger that records into m with prefix prepended.
func (m *MockLogger) WithPrefix(prefix string) console.Logger {
	return &MockLogger{prefix: prefix, parent: m.root()}
}

// SetVerbose is a no-op; MockLogger records every level.
func (m *MockLogger) SetVerbose(bool) {}

func (m *MockLogger) root() *MockLogger {
	if m.parent != nil {
		return m.parent
	}
	return m
}

func (m *MockLogger) record(level Level, msg string, keyvals []interface{}) {
	if m.prefix != "" {
		msg = m.prefix + ": " + msg
	}
	r := m.root()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, LogMessage{
		Level:   level,
		Message: msg,
		Fields:  append([]interface{}{}, keyvals...),
	})
}

// Messages returns all recorded log messages.
func (m *MockLogger) Messages() []LogMessage {
	r := m.root()
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]LogMessage{}, r.messages...)
}

// MessagesAtLevel returns all messages at a specific level.
func (m *MockLogger) MessagesAtLevel(level Level) []LogMessage {
	var filtered []LogMessage
	for _, msg := range m.Messages() {
		if msg.Level == level {
			filtered = append(filtered, msg)
		}
	}
	return filtered
}

// ContainsMessage checks if any recorded message contains the given substring.
func (m *MockLogger) ContainsMessage(substring string) bool {
	for _, msg := range m.Messages() {
		if strings.Contains(msg.Message, substring) {
			return true
		}
	}
	return false
}

// ContainsMessageAtLevel checks if any message at the given level contains the substring.
func (m *MockLogger) ContainsMessageAtLevel(level Level, substring string) bool {
	for _, msg := range m.MessagesAtLevel(level) {
		if strings.Contains(msg.Message, substring) {
			return true
		}
	}
	return false
}

// MessageCount returns the total number of recorded messages.
func (m *MockLogger) MessageCount() int {
	return len(m.Messages())
}

// Ensure MockLogger implements console.Logger.
var _ console.Logger = (*MockLogger)(nil)

// ============================================================================
// MockRemover - Replaces os.Remove during pruning
// ============================================================================

// MockRemover removes files with os.Remove unless their base name is
// registered to fail. Every call is recorded.
type MockRemover struct {
	mu      sync.Mutex
	failing map[string]error
	calls   []string
}

// NewMockRemover creates a remover that fails for the given base names.
func NewMockRemover(failing ...string) *MockRemover {
	r := &MockRemover{failing: make(map[string]error)}
	for _, name := range failing {
		r.failing[name] = os.ErrPermission
	}
	return r
}

// Remove deletes path or returns the configured error.
func (r *MockRemover) Remove(path string) error {
	r.mu.Lock()
	r.calls = append(r.calls, path)
	err, fail := r.failing[filepath.Base(path)]
	r.mu.Unlock()

	if fail {
		return &os.PathError{Op: "remove", Path: path, Err: err}
	}
	return os.Remove(path)
}

// Calls returns the paths Remove was called with, in order.
func (r *MockRemover) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.calls...)
}
