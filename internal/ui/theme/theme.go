package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tungetti/teelog/internal/logging"
)

// ThemeName identifies a theme variant.
type ThemeName string

const (
	// ThemeDark is the default theme.
	ThemeDark ThemeName = "dark"

	// ThemeHighContrast is the high-contrast accessibility theme.
	ThemeHighContrast ThemeName = "high-contrast"
)

// Theme represents the complete visual theme for the viewer.
type Theme struct {
	// Name is the theme identifier.
	Name ThemeName

	Primary lipgloss.TerminalColor
	Border  lipgloss.TerminalColor

	// One color per severity
	Debug   lipgloss.TerminalColor
	Info    lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Fatal   lipgloss.TerminalColor

	Text      lipgloss.TerminalColor
	TextMuted lipgloss.TerminalColor
	StatusBg  lipgloss.TerminalColor

	// Styles contains pre-built lipgloss styles using theme colors.
	Styles Styles
}

// DefaultTheme returns the default theme, whose severity colors follow the
// facility's default palette.
func DefaultTheme() *Theme {
	t := &Theme{
		Name:      ThemeDark,
		Primary:   Accent,
		Border:    ColorBorder,
		Debug:     ColorDebug,
		Info:      ColorInfo,
		Warning:   ColorWarning,
		Error:     ColorError,
		Fatal:     ColorFatal,
		Text:      ColorText,
		TextMuted: ColorTextMuted,
		StatusBg:  ColorStatusBg,
	}
	t.Styles = NewStyles(t)
	return t
}

// HighContrastTheme returns a high-contrast theme for accessibility.
func HighContrastTheme() *Theme {
	t := &Theme{
		Name:      ThemeHighContrast,
		Primary:   HighContrastText,
		Border:    HighContrastText,
		Debug:     HighContrastMuted,
		Info:      HighContrastText,
		Warning:   HighContrastWarning,
		Error:     HighContrastError,
		Fatal:     HighContrastError,
		Text:      HighContrastText,
		TextMuted: HighContrastMuted,
		StatusBg:  lipgloss.Color("#000000"),
	}
	t.Styles = NewStyles(t)
	return t
}

// GetTheme returns a theme by name, the default theme when unknown.
func GetTheme(name ThemeName) *Theme {
	switch name {
	case ThemeHighContrast:
		return HighContrastTheme()
	default:
		return DefaultTheme()
	}
}

// AvailableThemes returns a list of all available theme names.
func AvailableThemes() []ThemeName {
	return []ThemeName{ThemeDark, ThemeHighContrast}
}

// SeverityColor returns the color for sev.
func (t *Theme) SeverityColor(sev logging.Severity) lipgloss.TerminalColor {
	switch sev {
	case logging.SeverityDebug:
		return t.Debug
	case logging.SeverityWarning:
		return t.Warning
	case logging.SeverityError:
		return t.Error
	case logging.SeverityFatal:
		return t.Fatal
	default:
		return t.Info
	}
}
