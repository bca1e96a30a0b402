package viewer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tungetti/teelog/internal/logging"
	testutil "github.com/tungetti/teelog/internal/testing"
)

func sampleLines() []string {
	return strings.Split(strings.TrimSuffix(testutil.SampleLog, "\n"), "\n")
}

func TestParseLine_SampleLog(t *testing.T) {
	records := ParseLines(sampleLines())
	require.Len(t, records, 5)

	assert.Equal(t, Record{
		Raw:         "[14:07:09:042] [Info] [main.12] ready",
		Timestamp:   "14:07:09:042",
		Severity:    logging.SeverityInfo,
		HasSeverity: true,
		Site:        "main.12",
		Message:     "ready",
	}, records[0])

	assert.Equal(t, logging.SeverityDebug, records[1].Severity)
	assert.Empty(t, records[1].Site)
	assert.Equal(t, "Found too many log files. Deleting the oldest 2", records[1].Message)

	assert.Equal(t, logging.SeverityWarning, records[2].Severity)
	assert.Equal(t, "worker-1", records[2].Thread)
	assert.Equal(t, "Store.Flush.88", records[2].Site)
	assert.Equal(t, "disk low", records[2].Message)
}

func TestParseLine_StripsColor(t *testing.T) {
	rec := ParseLine(sampleLines()[3])

	assert.True(t, rec.HasSeverity)
	assert.Equal(t, logging.SeverityError, rec.Severity)
	assert.Equal(t, "Store.Flush.91", rec.Site)
	assert.Equal(t, "write failed", rec.Message)
	assert.NotContains(t, rec.Raw, "\x1b")
}

func TestParseLine_RawLine(t *testing.T) {
	rec := ParseLine("raw line before init")

	assert.False(t, rec.HasSeverity)
	assert.Empty(t, rec.Timestamp)
	assert.Empty(t, rec.Site)
	assert.Equal(t, "raw line before init", rec.Message)
}

func TestParseLine_BracketedRawLine(t *testing.T) {
	rec := ParseLine("[not a level] [x] text")

	assert.False(t, rec.HasSeverity)
	assert.Empty(t, rec.Site)
	assert.Equal(t, "[not a level] [x] text", rec.Message)
}

func TestParseLine_SeverityOnly(t *testing.T) {
	rec := ParseLine("[Fatal] going down\r\n")

	assert.Equal(t, logging.SeverityFatal, rec.Severity)
	assert.Equal(t, "going down", rec.Message)
}

func TestParseLine_FormatterOutput(t *testing.T) {
	f := logging.NewFormatter()
	f.Prefix = logging.PrefixFlags{
		Timestamp: true,
		Severity:  true,
		Thread:    true,
		Namespace: true,
		Class:     true,
		Method:    true,
		Line:      true,
	}
	f.Verbosity = logging.TierMaximum
	f.Color = true
	f.Clock = testutil.NewMockTime(testutil.BaseTime).Now

	line := f.Format(logging.SeverityWarning, "disk low", logging.Tag("app", "Cache", "Get"), "worker")
	rec := ParseLine(line)

	assert.Equal(t, "14:07:09:042", rec.Timestamp)
	assert.Equal(t, logging.SeverityWarning, rec.Severity)
	assert.Equal(t, "worker", rec.Thread)
	assert.Contains(t, rec.Site, "Cache.Get")
	assert.Equal(t, "disk low", rec.Message)
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "plain", StripANSI(logging.Color256(9)+"plain"+logging.Reset))
	assert.Equal(t, "untouched", StripANSI("untouched"))
}

func TestFilter(t *testing.T) {
	records := ParseLines(sampleLines())

	warnings := Filter(records, logging.SeverityWarning)
	require.Len(t, warnings, 3)
	assert.Equal(t, "disk low", warnings[0].Message)
	assert.Equal(t, "write failed", warnings[1].Message)
	assert.False(t, warnings[2].HasSeverity)

	assert.Len(t, Filter(records, logging.SeverityDebug), 5)
	assert.Empty(t, Filter(nil, logging.SeverityDebug))
}
