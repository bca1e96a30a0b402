package viewer

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tungetti/teelog/internal/constants"
	"github.com/tungetti/teelog/internal/errors"
)

// FromEnd starts following at the current end of the file.
const FromEnd int64 = -1

// FollowOptions tunes Follow.
type FollowOptions struct {
	// Offset is the byte offset to start reading from, or FromEnd.
	Offset int64
	// PollInterval re-checks the file when no fsnotify event arrives.
	PollInterval time.Duration
}

// Follow sends every complete line appended to path to out until ctx is
// cancelled. Lines already in the file are skipped.
func Follow(ctx context.Context, path string, out chan<- string) error {
	return FollowWith(ctx, path, out, FollowOptions{Offset: FromEnd})
}

// FollowWith is Follow with explicit options. It returns ctx.Err() once ctx
// is done. A file that shrinks is read again from the start.
func FollowWith(ctx context.Context, path string, out chan<- string, opts FollowOptions) error {
	if opts.PollInterval <= 0 {
		opts.PollInterval = constants.FollowPollInterval
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(errors.FileSystem, err, "failed to open %s", path).
			WithOp("viewer.Follow")
	}
	defer f.Close()

	t := &tailer{f: f, offset: opts.Offset}
	if t.offset == FromEnd {
		info, err := f.Stat()
		if err != nil {
			return errors.Wrapf(errors.FileSystem, err, "failed to stat %s", path).
				WithOp("viewer.Follow")
		}
		t.offset = info.Size()
	}

	// Polling alone still works when no watcher can be created.
	var events <-chan fsnotify.Event
	var watchErrs <-chan error
	if w, err := fsnotify.NewWatcher(); err == nil {
		defer w.Close()
		if err := w.Add(path); err == nil {
			events = w.Events
			watchErrs = w.Errors
		}
	}

	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	if err := t.drain(ctx, out); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
		case _, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
			}
			continue
		case <-ticker.C:
		}
		if err := t.drain(ctx, out); err != nil {
			return err
		}
	}
}

type tailer struct {
	f       *os.File
	offset  int64
	partial []byte
}

// drain reads everything past offset and emits the complete lines.
func (t *tailer) drain(ctx context.Context, out chan<- string) error {
	info, err := t.f.Stat()
	if err != nil {
		return errors.Wrap(errors.FileSystem, "failed to stat followed file", err).
			WithOp("viewer.Follow")
	}
	size := info.Size()
	if size < t.offset {
		t.offset = 0
		t.partial = nil
	}
	if size == t.offset {
		return nil
	}

	data, err := io.ReadAll(io.NewSectionReader(t.f, t.offset, size-t.offset))
	if err != nil {
		return errors.Wrap(errors.FileSystem, "failed to read followed file", err).
			WithOp("viewer.Follow")
	}
	t.offset += int64(len(data))
	t.partial = append(t.partial, data...)

	for {
		i := bytes.IndexByte(t.partial, '\n')
		if i < 0 {
			return nil
		}
		line := strings.TrimRight(string(t.partial[:i]), "\r")
		t.partial = t.partial[i+1:]
		select {
		case out <- line:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
