package ui

import tea "github.com/charmbracelet/bubbletea"

// LineMsg carries one line appended to the followed file.
type LineMsg struct {
	Line string
}

// FollowDoneMsg signals the follower stopped. Err is nil when the lines
// channel was closed.
type FollowDoneMsg struct {
	Err error
}

// ErrorMsg carries an error to be displayed in the footer.
type ErrorMsg struct {
	Err error
}

// QuitMsg signals the application should quit.
type QuitMsg struct{}

// waitForLine returns a command that delivers the next followed line.
func waitForLine(lines <-chan string) tea.Cmd {
	return func() tea.Msg {
		line, ok := <-lines
		if !ok {
			return FollowDoneMsg{}
		}
		return LineMsg{Line: line}
	}
}

// ReportError returns a command that reports an error.
func ReportError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// Quit returns a command that quits the application.
func Quit() tea.Cmd {
	return func() tea.Msg {
		return QuitMsg{}
	}
}
