package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/stickrun/internal/config"
)

// difficultyChosenMsg is emitted when a difficulty is picked.
type difficultyChosenMsg struct {
	difficulty config.Difficulty
}

// menuRequestMsg asks the app to leave the menu for another screen.
type menuRequestMsg struct {
	action MenuAction
}

// MenuModel is the difficulty picker, showing the best score of each level.
type MenuModel struct {
	items     []config.Difficulty
	cursor    int
	best      map[config.Difficulty]int
	width     int
	height    int
	keyMapper *KeyMapper
}

// NewMenuModel creates a menu with the cursor on preselected.
func NewMenuModel(preselected config.Difficulty, width, height int) MenuModel {
	items := config.Difficulties()
	cursor := 0
	for i, d := range items {
		if d == preselected {
			cursor = i
		}
	}
	return MenuModel{
		items:     items,
		cursor:    cursor,
		best:      make(map[config.Difficulty]int),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Update handles menu navigation.
func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case highScoresLoadedMsg:
		m.best = msg.scores

	case tea.KeyMsg:
		switch action := m.keyMapper.MapKeyToMenuAction(msg); action {
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			d := m.items[m.cursor]
			return m, func() tea.Msg { return difficultyChosenMsg{difficulty: d} }
		case MenuActionScores, MenuActionLogout, MenuActionQuit:
			return m, func() tea.Msg { return menuRequestMsg{action: action} }
		}
	}
	return m, nil
}

// Selected returns the difficulty under the cursor.
func (m MenuModel) Selected() config.Difficulty {
	return m.items[m.cursor]
}

// View renders the menu.
func (m MenuModel) View(username string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("S T I C K   R U N"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Hi, %s! Choose a difficulty:", username))
	b.WriteString("\n\n")

	for i, d := range m.items {
		line := fmt.Sprintf("%-8s best %d", d, m.best[d])
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(itemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Up/Down: navigate  |  Enter: play  |  H: scores  |  L: logout  |  Q: quit"))

	return center(m.width, m.height, boxStyle.Render(b.String()))
}
