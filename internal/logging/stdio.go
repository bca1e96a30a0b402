package logging

import (
	"bufio"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// LineWriter is an io.Writer that logs every complete line written to it.
// A trailing partial line is held until the next newline or Flush.
type LineWriter struct {
	l   *Logger
	sev Severity

	mu  sync.Mutex
	buf []byte
}

// Writer returns a LineWriter that logs at sev. Lines keep the call site of
// the code that wrote them when it is reachable on the same goroutine.
func (l *Logger) Writer(sev Severity) *LineWriter {
	return &LineWriter{l: l, sev: sev}
}

// Write implements io.Writer.
func (w *LineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	w.buf = append(w.buf, p...)
	var lines []string
	for {
		i := strings.IndexByte(string(w.buf), '\n')
		if i < 0 {
			break
		}
		lines = append(lines, strings.TrimSuffix(string(w.buf[:i]), "\r"))
		w.buf = w.buf[i+1:]
	}
	w.mu.Unlock()

	for _, line := range lines {
		w.l.log(w.sev, line, nil, isFacilityOrStdFrame)
	}
	return len(p), nil
}

// Flush logs any buffered partial line.
func (w *LineWriter) Flush() error {
	w.mu.Lock()
	rest := string(w.buf)
	w.buf = nil
	w.mu.Unlock()

	if rest != "" {
		w.l.log(w.sev, strings.TrimSuffix(rest, "\r"), nil, isFacilityOrStdFrame)
	}
	return nil
}

// Close flushes the writer.
func (w *LineWriter) Close() error {
	return w.Flush()
}

// stdRedirect replaces os.Stdout, os.Stderr and the standard logger's
// output with pipes read by the facility.
type stdRedirect struct {
	stdout    *os.File
	stderr    *os.File
	logOutput io.Writer
	logFlags  int

	outW *os.File
	errW *os.File
	wg   sync.WaitGroup
}

func redirectStdStreams(l *Logger) (*stdRedirect, error) {
	outR, outW, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		outR.Close()
		outW.Close()
		return nil, err
	}

	r := &stdRedirect{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		logOutput: log.Writer(),
		logFlags:  log.Flags(),
		outW:      outW,
		errW:      errW,
	}

	r.wg.Add(2)
	go r.copyLines(outR, l.Writer(SeverityInfo))
	go r.copyLines(errR, l.Writer(SeverityError))

	os.Stdout = outW
	os.Stderr = errW
	log.SetOutput(l.Writer(SeverityInfo))
	log.SetFlags(0)
	return r, nil
}

func (r *stdRedirect) copyLines(src *os.File, dst *LineWriter) {
	defer r.wg.Done()
	defer src.Close()

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		_, _ = dst.Write(append(scanner.Bytes(), '\n'))
	}
	_ = dst.Flush()
}

// restore puts the original streams back and waits for buffered output
// to be logged.
func (r *stdRedirect) restore() {
	os.Stdout = r.stdout
	os.Stderr = r.stderr
	log.SetOutput(r.logOutput)
	log.SetFlags(r.logFlags)

	r.outW.Close()
	r.errW.Close()
	r.wg.Wait()
}
