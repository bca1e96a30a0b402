// Package components holds the reusable pieces of the log viewer screen.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tungetti/teelog/internal/ui/theme"
)

// HeaderModel shows the viewer title, the file being viewed and a
// right-aligned status such as the active severity filter.
type HeaderModel struct {
	title    string
	subtitle string
	status   string
	width    int
	styles   theme.Styles
}

// NewHeader creates a new header with title and subtitle.
func NewHeader(styles theme.Styles, title, subtitle string) HeaderModel {
	return HeaderModel{
		title:    title,
		subtitle: subtitle,
		styles:   styles,
	}
}

// View renders the header.
func (m HeaderModel) View() string {
	left := m.styles.Title.Render(m.title)
	if m.subtitle != "" {
		left += " " + m.styles.Subtitle.Render(m.subtitle)
	}
	right := m.styles.Help.Render(m.status)

	if m.width <= 0 {
		if m.status == "" {
			return m.styles.Header.Render(left)
		}
		return m.styles.Header.Render(left + "  " + right)
	}

	// Header padding is one column on each side.
	spacerWidth := m.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	spacer := lipgloss.NewStyle().Width(spacerWidth).Render("")

	return m.styles.Header.Copy().Width(m.width).Render(left + spacer + right)
}

// SetWidth updates the header's width.
func (m *HeaderModel) SetWidth(width int) {
	m.width = width
}

// Width returns the header's width.
func (m HeaderModel) Width() int {
	return m.width
}

// SetSubtitle updates the header's subtitle.
func (m *HeaderModel) SetSubtitle(subtitle string) {
	m.subtitle = subtitle
}

// Subtitle returns the header's subtitle.
func (m HeaderModel) Subtitle() string {
	return m.subtitle
}

// SetStatus updates the right-aligned status.
func (m *HeaderModel) SetStatus(status string) {
	m.status = status
}

// Status returns the right-aligned status.
func (m HeaderModel) Status() string {
	return m.status
}

// Height returns the rendered height of the header.
func (m HeaderModel) Height() int {
	return lipgloss.Height(m.View())
}
