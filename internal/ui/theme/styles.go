package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tungetti/teelog/internal/logging"
)

// Styles contains pre-built lipgloss styles for the viewer.
type Styles struct {
	Header    lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Footer    lipgloss.Style
	StatusBar lipgloss.Style
	Help      lipgloss.Style

	// Line segments
	Timestamp lipgloss.Style
	Thread    lipgloss.Style
	Site      lipgloss.Style
	Raw       lipgloss.Style

	// Severity badges, indexed by logging.Severity
	Severity [5]lipgloss.Style

	Error lipgloss.Style
}

// NewStyles creates a Styles instance from a Theme.
func NewStyles(t *Theme) Styles {
	s := Styles{
		Header: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Border),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),

		Subtitle: lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Italic(true),

		Footer: lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(t.Border),

		StatusBar: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.StatusBg).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(t.TextMuted),

		Timestamp: lipgloss.NewStyle().Foreground(t.TextMuted),
		Thread:    lipgloss.NewStyle().Foreground(t.Primary),
		Site:      lipgloss.NewStyle().Foreground(t.TextMuted).Italic(true),
		Raw:       lipgloss.NewStyle().Foreground(t.Text),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Error),
	}
	for _, sev := range logging.Severities() {
		s.Severity[sev] = lipgloss.NewStyle().Foreground(t.SeverityColor(sev))
	}
	s.Severity[logging.SeverityFatal] = s.Severity[logging.SeverityFatal].Copy().Bold(true)
	return s
}

// ForSeverity returns the style for sev.
func (s Styles) ForSeverity(sev logging.Severity) lipgloss.Style {
	if sev < 0 || int(sev) >= len(s.Severity) {
		return s.Raw
	}
	return s.Severity[sev]
}

// RenderStatusLine renders a status bar of the given width.
func (s Styles) RenderStatusLine(text string, width int) string {
	return s.StatusBar.Copy().Width(width).Render(text)
}
