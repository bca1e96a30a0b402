package viewer

import (
	"github.com/tungetti/teelog/internal/errors"
	"github.com/tungetti/teelog/internal/logging"
)

// ListLogFiles returns the log files in dir, newest first.
func ListLogFiles(dir string) ([]logging.LogFile, error) {
	files, err := logging.ListLogFiles(dir)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(files)-1; i < j; i, j = i+1, j-1 {
		files[i], files[j] = files[j], files[i]
	}
	return files, nil
}

// Latest returns the newest log file in dir.
func Latest(dir string) (logging.LogFile, error) {
	files, err := ListLogFiles(dir)
	if err != nil {
		return logging.LogFile{}, err
	}
	if len(files) == 0 {
		return logging.LogFile{}, errors.Wrapf(errors.NotFound, errors.ErrNoLogFiles, "no log files in %s", dir).
			WithOp("viewer.Latest")
	}
	return files[0], nil
}
