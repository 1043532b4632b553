package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stickrun/internal/config"
	"github.com/vovakirdan/stickrun/internal/core"
	"github.com/vovakirdan/stickrun/internal/runner"
)

// gameEndedMsg is emitted on the tick a run ends. The score has not been
// submitted yet.
type gameEndedMsg struct {
	game       *runner.Game
	difficulty config.Difficulty
	score      int
}

// gameRequestMsg asks the app to leave the game for another screen.
type gameRequestMsg struct {
	action core.Action
}

// GameModel drives one runner.Game from the tick chain.
type GameModel struct {
	game       *runner.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	username   string
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	logger     *log.Logger

	// gen identifies the live tick chain. Any change of it orphans the
	// previous chain: its next TickMsg is dropped and not rescheduled.
	// Ids come from gens, which is shared by every game of the session.
	gen     int
	gens    *genCounter
	running bool
}

// NewGameModel wraps game for username. The game is reset with cfg's seed.
func NewGameModel(game *runner.Game, username string, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	game.Reset(cfg)
	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		config:     cfg,
		username:   username,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keyMapper:  NewKeyMapper(),
		logger:     logger,
		gens:       &genCounter{},
	}
}

// Start begins a new tick chain and returns its first tick.
func (m *GameModel) Start() tea.Cmd {
	m.gen = m.gens.next()
	m.running = true
	return tickCmd(m.config.TickRate, m.gen)
}

// Stop orphans the running tick chain.
func (m *GameModel) Stop() {
	m.gen = m.gens.next()
	m.running = false
}

// Update handles keys, resizes and ticks.
func (m GameModel) Update(msg tea.Msg) (GameModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		return m, nil

	case TickMsg:
		if !m.running || msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

// handleKey buffers game input for the next tick. On the game over overlay
// there is no tick chain, so restart is applied immediately.
func (m GameModel) handleKey(msg tea.KeyMsg) (GameModel, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit, core.ActionScores, core.ActionLogout:
		m.Stop()
		return m, func() tea.Msg { return gameRequestMsg{action: action} }
	}

	if m.gameState.GameOver {
		if action != core.ActionJump && action != core.ActionRestart {
			return m, nil
		}
		frame := core.NewInputFrame()
		frame.Set(action)
		m.gameState = m.game.Step(frame).State
		m.inputFrame.Clear()
		m.logger.Debug("run restarted", "user", m.username, "difficulty", m.game.Difficulty())
		return m, m.Start()
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleTick runs one step. The chain ends on the tick that ends the game.
func (m GameModel) handleTick() (GameModel, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Ended {
		m.Stop()
		ended := gameEndedMsg{
			game:       m.game,
			difficulty: m.game.Difficulty(),
			score:      result.State.Score,
		}
		m.logger.Info("run ended", "user", m.username, "difficulty", ended.difficulty, "score", ended.score)
		return m, func() tea.Msg { return ended }
	}

	return m, tickCmd(m.config.TickRate, m.gen)
}

// Game returns the wrapped game.
func (m GameModel) Game() *runner.Game {
	return m.game
}

// Gen returns the id of the live tick chain.
func (m GameModel) Gen() int {
	return m.gen
}

// View renders the header line and the playfield.
func (m GameModel) View() string {
	header := fmt.Sprintf(" %s  |  %s  |  Space: jump  P: pause  H: scores  L: logout  Q: quit", m.username, m.game.Difficulty())
	if w := m.screen.Width(); w > 0 && len(header) < w {
		header += fmt.Sprintf("%*s", w-len(header), "")
	}

	m.game.Render(m.screen)
	return headerStyle.Render(header) + "\n" + RenderScreen(m.screen)
}

// newGame builds a game and its model from the current settings. The game
// does not write high scores; the app submits them off the update loop.
func newGame(cfg config.RunnerConfig, d config.Difficulty, gens *genCounter, username string, rt core.RuntimeConfig, logger *log.Logger) GameModel {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	m := NewGameModel(runner.New(cfg, d, nil), username, rt, logger)
	m.gens = gens
	return m
}
