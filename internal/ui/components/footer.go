package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/tungetti/teelog/internal/ui/theme"
)

// FooterModel represents the viewer footer with help and status.
type FooterModel struct {
	help    help.Model
	keyMap  help.KeyMap
	status  string
	isError bool
	width   int
	styles  theme.Styles
}

// NewFooter creates a new footer with help integration.
func NewFooter(styles theme.Styles, keyMap help.KeyMap) FooterModel {
	h := help.New()
	h.ShowAll = false

	return FooterModel{
		help:   h,
		keyMap: keyMap,
		styles: styles,
	}
}

// View renders the footer with status and help.
func (m FooterModel) View() string {
	var content string

	if m.status != "" {
		style := m.styles.Help
		if m.isError {
			style = m.styles.Error
		}
		content = style.Render("● "+m.status) + "\n"
	}

	if m.keyMap != nil {
		m.help.Width = m.width
		content += m.help.View(m.keyMap)
	}

	return m.styles.Footer.Copy().Width(m.width).Render(content)
}

// SetStatus sets an informational status message.
func (m *FooterModel) SetStatus(status string) {
	m.status = status
	m.isError = false
}

// SetErrorStatus sets an error status message.
func (m *FooterModel) SetErrorStatus(status string) {
	m.status = status
	m.isError = true
}

// ClearStatus clears the status message.
func (m *FooterModel) ClearStatus() {
	m.status = ""
	m.isError = false
}

// Status returns the current status message.
func (m FooterModel) Status() string {
	return m.status
}

// IsError reports whether the status is an error.
func (m FooterModel) IsError() bool {
	return m.isError
}

// SetWidth updates the footer's width.
func (m *FooterModel) SetWidth(width int) {
	m.width = width
}

// ToggleFullHelp toggles between short and full help display.
func (m *FooterModel) ToggleFullHelp() {
	m.help.ShowAll = !m.help.ShowAll
}

// IsFullHelpShown returns whether full help is shown.
func (m FooterModel) IsFullHelpShown() bool {
	return m.help.ShowAll
}

// Height returns the rendered height of the footer.
func (m FooterModel) Height() int {
	return lipgloss.Height(m.View())
}
