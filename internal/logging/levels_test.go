package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		sev      Severity
		expected string
	}{
		{SeverityDebug, "Debug"},
		{SeverityInfo, "Info"},
		{SeverityWarning, "Warning"},
		{SeverityError, "Error"},
		{SeverityFatal, "Fatal"},
		{Severity(42), "Severity(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.sev.String())
		})
	}
}

func TestSeverity_Ordering(t *testing.T) {
	sevs := Severities()
	for i := 1; i < len(sevs); i++ {
		assert.Less(t, sevs[i-1], sevs[i])
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input    string
		expected Severity
		ok       bool
	}{
		{"debug", SeverityDebug, true},
		{"INFO", SeverityInfo, true},
		{"Warning", SeverityWarning, true},
		{"warn", SeverityWarning, true},
		{"error", SeverityError, true},
		{" fatal ", SeverityFatal, true},
		{"critical", SeverityInfo, false},
		{"", SeverityInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sev, ok := ParseSeverity(tt.input)
			assert.Equal(t, tt.expected, sev)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestVerbosityTier_StringRoundTrip(t *testing.T) {
	for _, tier := range []VerbosityTier{TierMinimal, TierNormal, TierMore, TierMaximum} {
		parsed, ok := ParseVerbosity(tier.String())
		assert.True(t, ok)
		assert.Equal(t, tier, parsed)
	}
	assert.Equal(t, "unknown", VerbosityTier(9).String())
}

func TestParseVerbosity_Invalid(t *testing.T) {
	tier, ok := ParseVerbosity("loud")
	assert.False(t, ok)
	assert.Equal(t, TierNormal, tier)

	tier, ok = ParseVerbosity("MAX")
	assert.True(t, ok)
	assert.Equal(t, TierMaximum, tier)
}

func TestVerbosityTier_Allows(t *testing.T) {
	tests := []struct {
		tier                          VerbosityTier
		namespace, class, method, line bool
	}{
		{TierMinimal, false, false, false, false},
		{TierNormal, false, false, true, true},
		{TierMore, false, true, true, true},
		{TierMaximum, true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			assert.Equal(t, tt.namespace, tt.tier.allows(segNamespace))
			assert.Equal(t, tt.class, tt.tier.allows(segClass))
			assert.Equal(t, tt.method, tt.tier.allows(segMethod))
			assert.Equal(t, tt.line, tt.tier.allows(segLine))
		})
	}
}
