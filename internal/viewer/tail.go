package viewer

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/tungetti/teelog/internal/errors"
)

// maxLineSize bounds a single line read by Tail.
const maxLineSize = 1024 * 1024

// Tail returns the last n lines of the file at path. n <= 0 returns every line.
func Tail(path string, n int) ([]string, error) {
	lines, _, err := TailOffset(path, n)
	return lines, err
}

// TailOffset is Tail that also returns the byte offset where reading
// stopped. Passing it to FollowWith continues without a gap.
func TailOffset(path string, n int) ([]string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, errors.Wrapf(errors.NotFound, err, "log file %s not found", path).
				WithOp("viewer.Tail")
		}
		return nil, 0, errors.Wrapf(errors.FileSystem, err, "failed to open %s", path).
			WithOp("viewer.Tail")
	}
	defer f.Close()

	cr := &countingReader{r: f}
	var lines []string
	scanner := bufio.NewScanner(cr)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
		if n > 0 && len(lines) > n {
			lines = lines[1:]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, errors.Wrapf(errors.FileSystem, err, "failed to read %s", path).
			WithOp("viewer.Tail")
	}
	return lines, cr.n, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
