// Package ui provides the Bubble Tea log viewer for teelog. It shows a log
// file written by the facility in a scrollable viewport, colours each line
// by severity and appends lines as they are written when following.
package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tungetti/teelog/internal/constants"
	"github.com/tungetti/teelog/internal/logging"
	"github.com/tungetti/teelog/internal/ui/components"
	"github.com/tungetti/teelog/internal/ui/theme"
	"github.com/tungetti/teelog/internal/viewer"
)

// Options configures a Model.
type Options struct {
	// Path is the file shown in the header.
	Path string
	// Lines is the initial content.
	Lines []string
	// Follow appends lines received from Updates and keeps the view at the end.
	Follow bool
	// Updates delivers lines appended to the file. May be nil.
	Updates <-chan string
	// MinSeverity hides lines below it. Lines without a severity are always shown.
	MinSeverity logging.Severity
	// Theme defaults to theme.DefaultTheme.
	Theme *theme.Theme
}

// Model is the Bubble Tea model of the log viewer.
type Model struct {
	path        string
	records     []viewer.Record
	updates     <-chan string
	minSeverity logging.Severity
	follow      bool

	width    int
	height   int
	ready    bool
	quitting bool
	err      error

	viewport viewport.Model
	header   components.HeaderModel
	footer   components.FooterModel
	keyMap   KeyMap
	theme    *theme.Theme

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a viewer model.
func New(opts Options) Model {
	return NewWithContext(context.Background(), opts)
}

// NewWithContext creates a viewer model whose context is cancelled on quit.
func NewWithContext(ctx context.Context, opts Options) Model {
	th := opts.Theme
	if th == nil {
		th = theme.DefaultTheme()
	}
	childCtx, cancel := context.WithCancel(ctx)
	km := DefaultKeyMap()

	m := Model{
		path:        opts.Path,
		records:     viewer.ParseLines(opts.Lines),
		updates:     opts.Updates,
		minSeverity: opts.MinSeverity,
		follow:      opts.Follow,
		keyMap:      km,
		theme:       th,
		header:      components.NewHeader(th.Styles, constants.AppName, filepath.Base(opts.Path)),
		footer:      components.NewFooter(th.Styles, km),
		ctx:         childCtx,
		cancel:      cancel,
	}
	m.header.SetStatus(m.statusText())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	return waitForLine(m.updates)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case LineMsg:
		m.records = append(m.records, viewer.ParseLine(msg.Line))
		m.refresh()
		if m.updates == nil {
			return m, nil
		}
		return m, waitForLine(m.updates)

	case FollowDoneMsg:
		if msg.Err != nil {
			m.err = msg.Err
			m.footer.SetErrorStatus(msg.Err.Error())
		}
		m.updates = nil
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.footer.SetErrorStatus(msg.Err.Error())
		return m, nil

	case QuitMsg:
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, Quit()

	case key.Matches(msg, m.keyMap.Help):
		m.footer.ToggleFullHelp()
		m.layout()
		return m, nil

	case key.Matches(msg, m.keyMap.Follow):
		m.follow = !m.follow
		m.header.SetStatus(m.statusText())
		if m.follow && m.ready {
			m.viewport.GotoBottom()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Severity):
		m.minSeverity = nextSeverity(m.minSeverity)
		m.header.SetStatus(m.statusText())
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keyMap.Home):
		if m.ready {
			m.follow = false
			m.header.SetStatus(m.statusText())
			m.viewport.GotoTop()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.End):
		if m.ready {
			m.viewport.GotoBottom()
		}
		return m, nil
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// layout sizes the viewport between the header and the footer.
func (m *Model) layout() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)

	body := m.height - m.header.Height() - m.footer.Height()
	if body < 1 {
		body = 1
	}
	if !m.ready {
		m.viewport = viewport.New(m.width, body)
		m.viewport.KeyMap.Up = m.keyMap.Up
		m.viewport.KeyMap.Down = m.keyMap.Down
		m.viewport.KeyMap.PageUp = m.keyMap.PageUp
		m.viewport.KeyMap.PageDown = m.keyMap.PageDown
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = body
	}
	m.refresh()
}

// refresh re-renders the visible records into the viewport.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	visible := viewer.Filter(m.records, m.minSeverity)
	rendered := make([]string, len(visible))
	for i, rec := range visible {
		rendered[i] = m.RenderRecord(rec)
	}
	m.viewport.SetContent(strings.Join(rendered, "\n"))
	if m.follow {
		m.viewport.GotoBottom()
	}
}

// RenderRecord styles one parsed line.
func (m Model) RenderRecord(rec viewer.Record) string {
	s := m.theme.Styles
	if !rec.HasSeverity && rec.Timestamp == "" {
		return s.Raw.Render(rec.Message)
	}

	var parts []string
	if rec.Timestamp != "" {
		parts = append(parts, s.Timestamp.Render("["+rec.Timestamp+"]"))
	}
	msgStyle := s.Raw
	if rec.HasSeverity {
		msgStyle = s.ForSeverity(rec.Severity)
		parts = append(parts, msgStyle.Render("["+rec.Severity.String()+"]"))
	}
	if rec.Thread != "" {
		parts = append(parts, s.Thread.Render("["+rec.Thread+"]"))
	}
	if rec.Site != "" {
		parts = append(parts, s.Site.Render("["+rec.Site+"]"))
	}
	parts = append(parts, msgStyle.Render(rec.Message))
	return strings.Join(parts, " ")
}

func (m Model) statusText() string {
	mode := "paused"
	if m.follow {
		mode = "following"
	}
	return fmt.Sprintf("%s | >= %s", mode, m.minSeverity)
}

// nextSeverity cycles Debug through Fatal.
func nextSeverity(sev logging.Severity) logging.Severity {
	if sev >= logging.SeverityFatal || sev < logging.SeverityDebug {
		return logging.SeverityDebug
	}
	return sev + 1
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	return m.header.View() + "\n" + m.viewport.View() + "\n" + m.footer.View()
}

// Context returns the model's context.
func (m Model) Context() context.Context {
	return m.ctx
}

// Shutdown cancels the model's context.
func (m *Model) Shutdown() {
	if m.cancel != nil {
		m.cancel()
	}
}

// Records returns every parsed line, including filtered ones.
func (m Model) Records() []viewer.Record {
	return m.records
}

// VisibleRecords returns the lines that pass the severity filter.
func (m Model) VisibleRecords() []viewer.Record {
	return viewer.Filter(m.records, m.minSeverity)
}

// MinSeverity returns the current severity filter.
func (m Model) MinSeverity() logging.Severity {
	return m.minSeverity
}

// IsFollowing reports whether the view sticks to the end.
func (m Model) IsFollowing() bool {
	return m.follow
}

// IsReady returns whether the viewer has a window size.
func (m Model) IsReady() bool {
	return m.ready
}

// IsQuitting returns whether the application is quitting.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Err returns the last error reported to the viewer.
func (m Model) Err() error {
	return m.err
}

// KeyMap returns the current key bindings.
func (m Model) KeyMap() KeyMap {
	return m.keyMap
}
