package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stickrun/internal/config"
	"github.com/vovakirdan/stickrun/internal/storage"
)

// scoreboardBackMsg asks the app to return to difficulty selection.
type scoreboardBackMsg struct{}

// ScoreboardKeyMap defines the key bindings for the high score screen.
type ScoreboardKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left/h", "prev level"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/l", "next level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "enter"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the player's best score per difficulty and the
// run history leaderboard of the selected difficulty.
type ScoreboardModel struct {
	levels []config.Difficulty
	cursor int
	best   map[config.Difficulty]int
	runs   []storage.Run
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
}

// NewScoreboardModel creates the screen with selected as the active tab.
func NewScoreboardModel(selected config.Difficulty, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		levels: config.Difficulties(),
		best:   make(map[config.Difficulty]int),
		help:   h,
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	for i, d := range m.levels {
		if d == selected {
			m.cursor = i
		}
	}
	m.table = m.createTable()
	return m
}

// createTable creates the leaderboard table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 16},
		{Title: "Score", Width: 8},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-14, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the loaded runs.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Username,
			fmt.Sprintf("%d", r.Score),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Selected returns the difficulty whose history is shown.
func (m ScoreboardModel) Selected() config.Difficulty {
	return m.levels[m.cursor]
}

// Update handles keys and loaded data. Switching tabs returns the
// difficulty to load through changed.
func (m ScoreboardModel) Update(msg tea.Msg) (ScoreboardModel, tea.Cmd, bool) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case highScoresLoadedMsg:
		m.best = msg.scores
		return m, nil, false

	case runsLoadedMsg:
		if msg.difficulty == m.Selected() {
			m.runs = msg.runs
			m.updateTableRows()
		}
		return m, nil, false

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil, false

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit, false
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return scoreboardBackMsg{} }, false
		case key.Matches(msg, m.keys.Right):
			m.cursor = (m.cursor + 1) % len(m.levels)
			m.runs = nil
			m.updateTableRows()
			return m, nil, true
		case key.Matches(msg, m.keys.Left):
			m.cursor = (m.cursor - 1 + len(m.levels)) % len(m.levels)
			m.runs = nil
			m.updateTableRows()
			return m, nil, true
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd, false
}

// View renders the screen.
func (m ScoreboardModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("HIGH SCORES"))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.levels))
	for i, d := range m.levels {
		label := fmt.Sprintf("%s %d", d, m.best[d])
		if i == m.cursor {
			tabs[i] = selectedStyle.Render(label)
		} else {
			tabs[i] = itemStyle.Render(label)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	if len(m.runs) == 0 {
		b.WriteString(mutedStyle.Italic(true).Render("No runs recorded yet."))
	} else {
		b.WriteString(m.table.View())
	}
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))

	return center(m.width, m.height, boxStyle.Render(b.String()))
}
