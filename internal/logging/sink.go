package logging

import (
	"io"
	"sync"
)

type syncer interface {
	Sync() error
}

type flusher interface {
	Flush() error
}

// DualSinkWriter writes every line to a log file and to the console. Each
// write goes to both sinks under one lock and is flushed before returning,
// so the two sinks always hold the same bytes in the same order.
type DualSinkWriter struct {
	mu      sync.Mutex
	console io.Writer
	file    io.WriteCloser
}

// NewDualSinkWriter creates a writer over console and file. file may be nil,
// in which case only the console receives output.
func NewDualSinkWriter(console io.Writer, file io.WriteCloser) *DualSinkWriter {
	if console == nil {
		console = io.Discard
	}
	return &DualSinkWriter{console: console, file: file}
}

// WriteLine writes line followed by a newline to both sinks.
func (w *DualSinkWriter) WriteLine(line string) error {
	_, err := w.Write([]byte(line + "\n"))
	return err
}

// Write implements io.Writer. The bytes are written unchanged.
func (w *DualSinkWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var firstErr error
	if w.file != nil {
		if _, err := w.file.Write(p); err != nil {
			firstErr = err
		} else if s, ok := w.file.(syncer); ok {
			if err := s.Sync(); err != nil {
				firstErr = err
			}
		}
	}

	if _, err := w.console.Write(p); err != nil && firstErr == nil {
		firstErr = err
	}
	if f, ok := w.console.(flusher); ok {
		if err := f.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if firstErr != nil {
		return 0, firstErr
	}
	return len(p), nil
}

// HasFile reports whether a log file is attached.
func (w *DualSinkWriter) HasFile() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file != nil
}

// Close syncs and closes the log file. Later writes reach the console only.
func (w *DualSinkWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	if s, ok := w.file.(syncer); ok {
		_ = s.Sync()
	}
	err := w.file.Close()
	w.file = nil
	return err
}
