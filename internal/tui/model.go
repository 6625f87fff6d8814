package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// chromeHeight is the number of rows taken by the title bar, separator,
// input bar and status line.
const chromeHeight = 4

const inputCharLimit = 256

// rowReset ends every rendered row so colors do not leak into the next one.
const rowReset = termenv.CSI + termenv.ResetSeq + "m"

// CallMsg runs Fn on the UI goroutine. Send it with tea.Program.Send to
// reach the host from another goroutine.
type CallMsg struct {
	Fn func()
}

// Model is the Bubble Tea model driving a Host.
type Model struct {
	host  *Host
	input textinput.Model

	// Display dimensions
	width  int
	height int
}

// NewModel creates the model for host.
func NewModel(host *Host) *Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = inputCharLimit
	ti.Focus()

	m := &Model{
		host:   host,
		input:  ti,
		width:  defaultWidth,
		height: defaultHeight + chromeHeight,
	}
	m.host.Resize(m.width, m.height-chromeHeight)
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 0)
		m.host.Resize(msg.Width, max(msg.Height-chromeHeight, 0))
		return m, nil

	case CallMsg:
		if msg.Fn != nil {
			msg.Fn()
		}
		return m.afterHost()

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyMsg processes keyboard input.
//
//nolint:exhaustive // Only handling keys with a host meaning.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.host.CloseAll()
		return m, tea.Quit

	case tea.KeyEnter:
		text := m.input.Value()
		m.input.Reset()
		m.host.Submit(text)
		return m.afterHost()

	case tea.KeyPgUp:
		m.host.ScrollPage(-1)
		return m, nil

	case tea.KeyPgDown:
		m.host.ScrollPage(1)
		return m, nil
	}

	if m.host.PressKey(msg.String()) {
		return m.afterHost()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// afterHost picks up an input line requested by the pane and quits once the
// last pane has been closed.
func (m *Model) afterHost() (tea.Model, tea.Cmd) {
	if m.host.Done() {
		return m, tea.Quit
	}
	if text, ok := m.host.TakeInput(); ok {
		m.input.SetValue(text)
		m.input.CursorEnd()
	}
	return m, nil
}

// View renders the current view.
func (m *Model) View() string {
	p := m.host.Current()
	if p == nil {
		return ""
	}

	rowStyle := lipgloss.NewStyle().MaxWidth(m.width)
	rows := p.Rows()
	body := m.host.Window().View().View(func(row int) string {
		return rowStyle.Render(rows[row]) + rowReset
	})

	var sb strings.Builder
	sb.WriteString(RenderTitle(p.Title(), m.width))
	sb.WriteByte('\n')
	if body != "" {
		sb.WriteString(body)
		sb.WriteByte('\n')
	}
	sb.WriteString(RenderSeparator(m.width))
	sb.WriteByte('\n')
	sb.WriteString(m.input.View())
	sb.WriteByte('\n')
	sb.WriteString(RenderStatus(m.host.Status(), m.width))
	return sb.String()
}
