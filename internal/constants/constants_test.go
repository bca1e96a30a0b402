package constants

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExitCode_Int(t *testing.T) {
	tests := []struct {
		name     string
		code     ExitCode
		expected int
	}{
		{"ExitSuccess", ExitSuccess, 0},
		{"ExitError", ExitError, 1},
		{"ExitFileSystem", ExitFileSystem, 2},
		{"ExitValidation", ExitValidation, 3},
		{"ExitNotFound", ExitNotFound, 4},
		{"ExitUserAbort", ExitUserAbort, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.code.Int())
		})
	}
}

func TestAppMetadata(t *testing.T) {
	assert.Equal(t, "teelog", AppName)
	assert.NotEmpty(t, AppDescription)
	assert.Equal(t, "TEELOG_", EnvPrefix)
}

func TestLogFileLayout(t *testing.T) {
	assert.Equal(t, "Logs", DefaultLogDir)
	assert.Equal(t, 5, DefaultMaxLogFiles)
	assert.Equal(t, 27, LogFileNameLen)

	// Layout plus "-fff" plus extension must give the full name length.
	assert.Equal(t, LogFileNameLen, len(LogFileNameLayout)+4+len(LogFileExt))
}

func TestTimeouts(t *testing.T) {
	assert.Equal(t, 10*time.Second, ShutdownTimeout)
	assert.Less(t, FollowPollInterval, ShutdownTimeout)
	assert.Positive(t, DefaultTailLines)
}

func TestFilePaths(t *testing.T) {
	assert.NotEmpty(t, DefaultConfigDir)
	assert.NotEmpty(t, ConfigFileName)
}
