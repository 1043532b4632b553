package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginSubmitMsg is emitted when the player presses Enter on the login form.
type loginSubmitMsg struct {
	username string
}

// LoginModel is the username form.
type LoginModel struct {
	input  textinput.Model
	err    string
	width  int
	height int
}

// NewLoginModel creates an empty, focused login form.
func NewLoginModel(width, height int) LoginModel {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = 24
	ti.Width = 24
	ti.Prompt = "> "
	ti.Focus()

	return LoginModel{input: ti, width: width, height: height}
}

// Init starts the cursor blink.
func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles typing and submission.
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			name := m.input.Value()
			return m, func() tea.Msg { return loginSubmitMsg{username: name} }
		}
		m.err = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// SetError shows a validation message under the input.
func (m *LoginModel) SetError(msg string) {
	m.err = msg
}

// Reset clears the form for the next login.
func (m *LoginModel) Reset() {
	m.input.Reset()
	m.input.Focus()
	m.err = ""
}

// Value returns the text typed so far.
func (m LoginModel) Value() string {
	return m.input.Value()
}

// View renders the form.
func (m LoginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("S T I C K   R U N"))
	b.WriteString("\n\n")
	b.WriteString("Username\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
	} else {
		b.WriteString(mutedStyle.Render("at least 3 characters"))
	}
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("Enter: login  |  Ctrl+C: quit"))

	return center(m.width, m.height, boxStyle.Render(b.String()))
}
