package tui

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stickrun/internal/config"
	"github.com/vovakirdan/stickrun/internal/core"
	"github.com/vovakirdan/stickrun/internal/highscore"
	"github.com/vovakirdan/stickrun/internal/kv"
	"github.com/vovakirdan/stickrun/internal/nav"
)

// Deps are the collaborators of an app session.
type Deps struct {
	// Store holds USERNAME and the HIGH_<Difficulty> keys. Nil means
	// in-memory only.
	Store kv.Store

	// History records finished runs. Optional.
	History History

	Config  config.RunnerConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// AppModel is the whole runner session: login, difficulty menu, game and
// high score screens, switched by a nav.Navigator.
type AppModel struct {
	nav     *nav.Navigator
	store   kv.Store
	scores  *highscore.Table
	history History
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	logger  *log.Logger

	login      LoginModel
	menu       MenuModel
	game       *GameModel
	scoreboard ScoreboardModel

	// gens numbers the tick chains of every game in this session.
	gens *genCounter

	// restored is set once the stored username has been looked up.
	restored bool
	quitting bool
}

// NewAppModel creates a session starting on the login screen.
func NewAppModel(deps Deps) AppModel {
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	if deps.Store == nil {
		deps.Store = kv.NewMemory()
	}

	rt := deps.Runtime
	return AppModel{
		nav:        nav.New(),
		store:      deps.Store,
		scores:     highscore.New(deps.Store, deps.Logger),
		history:    deps.History,
		cfg:        deps.Config,
		runtime:    rt,
		logger:     deps.Logger,
		login:      NewLoginModel(rt.ScreenW, rt.ScreenH),
		menu:       NewMenuModel(config.Normal, rt.ScreenW, rt.ScreenH),
		scoreboard: NewScoreboardModel(config.Normal, rt.ScreenW, rt.ScreenH),
		gens:       &genCounter{},
	}
}

// Init looks up a stored username so returning players skip the login.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.login.Init(), loadUsernameCmd(m.store, m.logger))
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.runtime.ScreenW, m.runtime.ScreenH = msg.Width, msg.Height
		m.login, _ = m.login.Update(msg)
		m.menu, _ = m.menu.Update(msg)
		m.scoreboard, _, _ = m.scoreboard.Update(msg)
		if m.game != nil {
			g, _ := m.game.Update(msg)
			m.game = &g
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}

	case TickMsg:
		if m.game == nil || m.nav.Screen() != nav.ScreenGame {
			return m, nil
		}

	case usernameLoadedMsg:
		m.restored = true
		if !msg.ok || m.nav.Screen() != nav.ScreenLogin {
			return m, nil
		}
		if err := m.nav.Restore(msg.name); err != nil {
			m.logger.Warn("ignoring stored username", "error", err)
			return m, nil
		}
		m.logger.Info("session restored", "user", msg.name)
		return m, loadHighScoresCmd(m.scores)

	case loginSubmitMsg:
		return m.handleLogin(msg.username)

	case difficultyChosenMsg:
		return m.startGame(msg.difficulty)

	case menuRequestMsg:
		return m.handleMenuRequest(msg.action)

	case gameRequestMsg:
		return m.handleGameRequest(msg.action)

	case gameEndedMsg:
		return m, tea.Batch(
			saveRunCmd(m.history, m.logger, m.nav.Session().Username, msg.difficulty, msg.score),
			submitScoreCmd(m.scores, msg),
		)

	case scoreSubmittedMsg:
		if msg.newBest {
			m.logger.Info("new best", "user", m.nav.Session().Username, "difficulty", msg.difficulty, "score", msg.score)
		}
		if m.game != nil && m.game.Game() == msg.game && msg.game.Score() == msg.score {
			msg.game.SetNewBest(msg.newBest)
		}
		return m, loadHighScoresCmd(m.scores)

	case scoreboardBackMsg:
		if err := m.nav.Back(); err != nil {
			m.logger.Debug("back rejected", "error", err)
			return m, nil
		}
		m.menu = NewMenuModel(m.nav.Session().Difficulty, m.runtime.ScreenW, m.runtime.ScreenH)
		return m, loadHighScoresCmd(m.scores)

	case highScoresLoadedMsg:
		m.menu, _ = m.menu.Update(msg)
		m.scoreboard, _, _ = m.scoreboard.Update(msg)
		return m, nil

	case runsLoadedMsg:
		m.scoreboard, _, _ = m.scoreboard.Update(msg)
		return m, nil

	case storedMsg:
		return m, nil
	}

	return m.updateScreen(msg)
}

// updateScreen forwards msg to the model of the current screen.
func (m AppModel) updateScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.nav.Screen() {
	case nav.ScreenLogin:
		m.login, cmd = m.login.Update(msg)

	case nav.ScreenDifficulty:
		m.menu, cmd = m.menu.Update(msg)

	case nav.ScreenGame:
		if m.game != nil {
			g, c := m.game.Update(msg)
			m.game, cmd = &g, c
		}

	case nav.ScreenHighScore:
		var switched bool
		m.scoreboard, cmd, switched = m.scoreboard.Update(msg)
		if switched {
			cmd = tea.Batch(cmd, loadRunsCmd(m.history, m.logger, m.scoreboard.Selected()))
		}
	}
	return m, cmd
}

func (m AppModel) handleLogin(username string) (tea.Model, tea.Cmd) {
	if err := m.nav.Login(username); err != nil {
		if errors.Is(err, nav.ErrUsernameTooShort) {
			m.login.SetError("Username must be at least 3 characters")
		}
		return m, nil
	}

	name := m.nav.Session().Username
	m.logger.Info("login", "user", name)
	m.menu = NewMenuModel(config.Normal, m.runtime.ScreenW, m.runtime.ScreenH)
	return m, tea.Batch(saveUsernameCmd(m.store, m.logger, name), loadHighScoresCmd(m.scores))
}

func (m AppModel) startGame(d config.Difficulty) (tea.Model, tea.Cmd) {
	if err := m.nav.SelectDifficulty(d); err != nil {
		m.logger.Debug("difficulty rejected", "error", err)
		return m, nil
	}

	g := newGame(m.cfg, d, m.gens, m.nav.Session().Username, m.runtime, m.logger)
	cmd := g.Start()
	m.game = &g
	m.logger.Info("run started", "user", m.nav.Session().Username, "difficulty", d)
	return m, cmd
}

func (m AppModel) handleMenuRequest(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		return m.quit()
	case MenuActionLogout:
		return m.logout()
	case MenuActionScores:
		return m.showScores(m.menu.Selected())
	}
	return m, nil
}

func (m AppModel) handleGameRequest(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		return m.quit()
	case core.ActionLogout:
		return m.logout()
	case core.ActionScores:
		return m.showScores(m.nav.Session().Difficulty)
	}
	return m, nil
}

func (m AppModel) showScores(d config.Difficulty) (tea.Model, tea.Cmd) {
	if err := m.nav.ShowHighScores(); err != nil {
		m.logger.Debug("scores rejected", "error", err)
		return m, nil
	}
	m.stopGame()
	m.scoreboard = NewScoreboardModel(d, m.runtime.ScreenW, m.runtime.ScreenH)
	return m, tea.Batch(loadHighScoresCmd(m.scores), loadRunsCmd(m.history, m.logger, d))
}

func (m AppModel) logout() (tea.Model, tea.Cmd) {
	user := m.nav.Session().Username
	if err := m.nav.Logout(); err != nil {
		return m, nil
	}
	m.stopGame()
	m.login.Reset()
	m.logger.Info("logout", "user", user)
	return m, removeUsernameCmd(m.store, m.logger)
}

func (m AppModel) quit() (tea.Model, tea.Cmd) {
	m.stopGame()
	m.quitting = true
	return m, tea.Quit
}

// stopGame orphans the tick chain and drops the game.
func (m *AppModel) stopGame() {
	if m.game != nil {
		m.game.Stop()
		m.game = nil
	}
}

// Screen returns the current screen.
func (m AppModel) Screen() nav.Screen {
	return m.nav.Screen()
}

// Session returns the current session.
func (m AppModel) Session() nav.Session {
	return m.nav.Session()
}

// Game returns the active game model, or nil off the game screen.
func (m AppModel) Game() *GameModel {
	return m.game
}

// View renders the current screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.nav.Screen() {
	case nav.ScreenDifficulty:
		return m.menu.View(m.nav.Session().Username)
	case nav.ScreenGame:
		if m.game != nil {
			return m.game.View()
		}
	case nav.ScreenHighScore:
		return m.scoreboard.View()
	}

	if !m.restored {
		return ""
	}
	return m.login.View()
}

// Run starts the runner on the local terminal.
func Run(deps Deps) error {
	p := tea.NewProgram(
		NewAppModel(deps),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
