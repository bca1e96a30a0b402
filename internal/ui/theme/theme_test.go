package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tungetti/teelog/internal/logging"
)

func TestDefaultTheme(t *testing.T) {
	th := DefaultTheme()

	require.NotNil(t, th)
	assert.Equal(t, ThemeDark, th.Name)
	assert.Equal(t, ColorWarning, th.Warning)
	assert.Equal(t, ColorFatal, th.Fatal)
}

func TestGetTheme(t *testing.T) {
	tests := []struct {
		name     ThemeName
		expected ThemeName
	}{
		{ThemeDark, ThemeDark},
		{ThemeHighContrast, ThemeHighContrast},
		{"neon", ThemeDark},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			assert.Equal(t, tt.expected, GetTheme(tt.name).Name)
		})
	}
}

func TestAvailableThemes(t *testing.T) {
	for _, name := range AvailableThemes() {
		assert.Equal(t, name, GetTheme(name).Name)
	}
}

func TestTheme_SeverityColor(t *testing.T) {
	th := DefaultTheme()

	tests := []struct {
		sev      logging.Severity
		expected lipgloss.TerminalColor
	}{
		{logging.SeverityDebug, ColorDebug},
		{logging.SeverityInfo, ColorInfo},
		{logging.SeverityWarning, ColorWarning},
		{logging.SeverityError, ColorError},
		{logging.SeverityFatal, ColorFatal},
		{logging.Severity(42), ColorInfo},
	}

	for _, tt := range tests {
		t.Run(tt.sev.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, th.SeverityColor(tt.sev))
		})
	}
}

func TestSeverityColors_MatchFacilityPalette(t *testing.T) {
	palette := logging.DefaultPalette()

	assert.Equal(t, logging.Color256(7), palette.Debug)
	assert.Equal(t, "7", ColorDebug.Dark)
	assert.Equal(t, logging.Color256(3), palette.Warning)
	assert.Equal(t, "3", ColorWarning.Dark)
	assert.Equal(t, logging.Color256(9), palette.Error)
	assert.Equal(t, "9", ColorError.Dark)
}

func TestStyles_ForSeverity(t *testing.T) {
	s := DefaultTheme().Styles

	assert.Equal(t, "x", s.ForSeverity(logging.SeverityInfo).Copy().UnsetForeground().Render("x"))
	assert.True(t, s.ForSeverity(logging.SeverityFatal).GetBold())
	assert.False(t, s.ForSeverity(logging.SeverityError).GetBold())
	assert.Equal(t, s.Raw.Render("y"), s.ForSeverity(logging.Severity(9)).Render("y"))
	assert.Equal(t, s.Raw.Render("y"), s.ForSeverity(logging.Severity(-1)).Render("y"))
}

func TestStyles_RenderStatusLine(t *testing.T) {
	s := DefaultTheme().Styles

	line := s.RenderStatusLine("following", 30)
	assert.Equal(t, 30, lipgloss.Width(line))
	assert.Contains(t, line, "following")
}

func TestHighContrastTheme(t *testing.T) {
	th := HighContrastTheme()

	assert.Equal(t, HighContrastError, th.Error)
	assert.Equal(t, HighContrastError, th.Fatal)
	assert.Equal(t, HighContrastText, th.Text)
}
