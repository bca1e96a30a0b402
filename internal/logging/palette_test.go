package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	testutil "github.com/tungetti/teelog/internal/testing"
)

func TestColor256(t *testing.T) {
	assert.Equal(t, "\x1b[38;5;9m", Color256(9))
	assert.Equal(t, "\x1b[38;5;15m", Color256(15))
}

func TestReset(t *testing.T) {
	assert.Equal(t, "\x1b[0m", Reset)
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()

	assert.Equal(t, Color256(7), p.For(SeverityDebug))
	assert.Equal(t, Color256(15), p.For(SeverityInfo))
	assert.Equal(t, Color256(3), p.For(SeverityWarning))
	assert.Equal(t, Color256(9), p.For(SeverityError))
	assert.Equal(t, Color256(1), p.For(SeverityFatal))
	assert.Empty(t, p.For(Severity(99)))
}

func TestDetectColor_NonTerminal(t *testing.T) {
	defer testutil.SetEnv(t, "CLICOLOR_FORCE", "")()

	var buf bytes.Buffer
	assert.False(t, DetectColor(&buf))
}

func TestDetectColor_NoColorEnv(t *testing.T) {
	defer testutil.SetEnv(t, "NO_COLOR", "1")()

	var buf bytes.Buffer
	assert.False(t, DetectColor(&buf))
}
