package logging

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	testutil "github.com/tungetti/teelog/internal/testing"
)

func testFormatter() Formatter {
	f := NewFormatter()
	f.Clock = testutil.NewMockTime(testutil.BaseTime).Now
	return f
}

var sampleSite = CallSite{
	Namespace: "example.com/app/store",
	Type:      "Cache",
	FullType:  "example.com/app/store.Cache",
	Method:    "Get",
	Line:      42,
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		time     time.Time
		expected string
	}{
		{"millis", testutil.BaseTime, "14:07:09:042"},
		{"zero millis", time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), "00:00:00:000"},
		{"truncates sub-millisecond", time.Date(2024, 1, 1, 23, 59, 59, 999999999, time.Local), "23:59:59:999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTimestamp(tt.time))
		})
	}
}

func TestFormatter_DefaultPrefix(t *testing.T) {
	f := testFormatter()

	line := f.Format(SeverityInfo, "ready", sampleSite, "")

	assert.Equal(t, "[14:07:09:042] [Info] [Get.42] ready", line)
}

func TestFormatter_Tiers(t *testing.T) {
	all := PrefixFlags{Timestamp: false, Severity: true, Namespace: true, Class: true, Method: true, Line: true}

	tests := []struct {
		tier     VerbosityTier
		expected string
	}{
		{TierMinimal, "[Warning] disk low"},
		{TierNormal, "[Warning] [Get.42] disk low"},
		{TierMore, "[Warning] [Cache.Get.42] disk low"},
		{TierMaximum, "[Warning] [example.com/app/store.Cache.Get.42] disk low"},
	}

	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			f := testFormatter()
			f.Prefix = all
			f.Verbosity = tt.tier
			assert.Equal(t, tt.expected, f.Format(SeverityWarning, "disk low", sampleSite, ""))
		})
	}
}

func TestFormatter_FlagsWithinTier(t *testing.T) {
	f := testFormatter()
	f.Verbosity = TierMaximum
	f.Prefix = PrefixFlags{Class: true, Line: true}

	assert.Equal(t, "[Cache.42] msg", f.Format(SeverityDebug, "msg", sampleSite, ""))
}

func TestFormatter_NoSiteFlagsNoBrackets(t *testing.T) {
	for _, tier := range []VerbosityTier{TierMinimal, TierNormal, TierMore, TierMaximum} {
		t.Run(tier.String(), func(t *testing.T) {
			f := testFormatter()
			f.Verbosity = tier
			f.Prefix = PrefixFlags{}

			line := f.Format(SeverityError, "boom", sampleSite, "worker")
			assert.Equal(t, "boom", line)
			assert.NotContains(t, line, "[")
		})
	}
}

func TestFormatter_EmptySegmentsSkipped(t *testing.T) {
	f := testFormatter()
	f.Verbosity = TierMore
	f.Prefix = PrefixFlags{Class: true, Method: true, Line: true}

	site := CallSite{Namespace: "example.com/app", Method: "Run", Line: 7}
	assert.Equal(t, "[Run.7] go", f.Format(SeverityInfo, "go", site, ""))
}

func TestFormatter_UnknownSite(t *testing.T) {
	f := testFormatter()
	f.Prefix = PrefixFlags{Method: true, Line: true}

	assert.Equal(t, "[???.???] lost", f.Format(SeverityInfo, "lost", UnknownSite(), ""))
}

func TestFormatter_Thread(t *testing.T) {
	f := testFormatter()
	f.Prefix = PrefixFlags{Severity: true, Thread: true}

	assert.Equal(t, "[Info] [worker-1] hi", f.Format(SeverityInfo, "hi", sampleSite, "worker-1"))
	assert.Equal(t, "[Info] hi", f.Format(SeverityInfo, "hi", sampleSite, ""))

	f.Prefix.Thread = false
	assert.Equal(t, "[Info] hi", f.Format(SeverityInfo, "hi", sampleSite, "worker-1"))
}

func TestFormatter_Color(t *testing.T) {
	f := testFormatter()
	f.Color = true
	f.Prefix = PrefixFlags{Severity: true}

	line := f.Format(SeverityError, "boom", sampleSite, "")

	assert.Equal(t, Color256(9)+"[Error] boom"+Reset, line)
}

func TestFormatter_EndsWithMessage(t *testing.T) {
	messages := []string{"", "plain", "with [brackets]", "multi\nline", "trailing space "}
	flagSets := []PrefixFlags{{}, DefaultPrefixFlags(), {Timestamp: true, Severity: true, Thread: true, Namespace: true, Class: true, Method: true, Line: true}}

	for _, msg := range messages {
		for _, flags := range flagSets {
			for _, tier := range []VerbosityTier{TierMinimal, TierNormal, TierMore, TierMaximum} {
				for _, color := range []bool{false, true} {
					for _, sev := range Severities() {
						f := testFormatter()
						f.Prefix = flags
						f.Verbosity = tier
						f.Color = color

						line := strings.TrimSuffix(f.Format(sev, msg, sampleSite, "t"), Reset)
						assert.True(t, strings.HasSuffix(line, msg), "line %q should end with %q", line, msg)
					}
				}
			}
		}
	}
}

func TestFormatter_NilClock(t *testing.T) {
	f := Formatter{Prefix: PrefixFlags{Timestamp: true}}

	line := f.Format(SeverityInfo, "now", sampleSite, "")
	assert.Regexp(t, `^\[\d{2}:\d{2}:\d{2}:\d{3}\] now$`, line)
}

func TestFormatter_WantsSite(t *testing.T) {
	f := testFormatter()
	assert.True(t, f.wantsSite())

	f.Verbosity = TierMinimal
	assert.False(t, f.wantsSite())

	f.Verbosity = TierMaximum
	f.Prefix = PrefixFlags{Timestamp: true, Severity: true, Thread: true}
	assert.False(t, f.wantsSite())
}
