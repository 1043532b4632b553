// Package touch is the screen logic of the touch frontend: an on-screen
// keyboard for the login, tappable menus and tap-to-jump. It is driven by
// Input snapshots and has no graphics dependency; ebitenui draws it.
package touch

import (
	"context"
	"errors"
	"io"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stickrun/internal/config"
	"github.com/vovakirdan/stickrun/internal/core"
	"github.com/vovakirdan/stickrun/internal/highscore"
	"github.com/vovakirdan/stickrun/internal/kv"
	"github.com/vovakirdan/stickrun/internal/nav"
	"github.com/vovakirdan/stickrun/internal/runner"
)

// maxNameLen caps the username typed on the login screen.
const maxNameLen = 16

// readTimeout bounds the synchronous reads done when a screen opens.
const readTimeout = time.Second

// Point is a tap position in logical pixels.
type Point struct {
	X, Y int
}

// Input is everything that happened since the previous update.
type Input struct {
	Chars     []rune // typed characters
	Taps      []Point
	Backspace bool
	Enter     bool
	Escape    bool
	Up        bool
	Down      bool
	Jump      bool // space
	Pause     bool
}

// Deps are the collaborators of a Controller.
type Deps struct {
	Store  kv.Store
	Config config.RunnerConfig
	Seed   int64
	Logger *log.Logger
}

// Controller owns the navigator and the running game of one touch session.
// It is driven from a single loop; only persistence runs elsewhere.
type Controller struct {
	nav    *nav.Navigator
	cfg    config.RunnerConfig
	store  kv.Store
	scores *highscore.Table
	writer *writer
	logger *log.Logger
	seed   int64

	started  bool
	name     []rune
	loginErr string
	cursor   int
	best     map[config.Difficulty]int
	game     *runner.Game
	quit     bool

	// submitted receives high score outcomes from the writer goroutine.
	submitted chan submission
}

// submission is the outcome of one high score submit.
type submission struct {
	game       *runner.Game
	difficulty config.Difficulty
	score      int
	newBest    bool
}

// NewController creates a controller on the login screen. Stored data is
// read on the first Update.
func NewController(deps Deps) *Controller {
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	if deps.Store == nil {
		deps.Store = kv.NewMemory()
	}
	return &Controller{
		nav:    nav.New(),
		cfg:    deps.Config,
		store:  deps.Store,
		scores: highscore.New(deps.Store, deps.Logger),
		writer: newWriter(deps.Logger),
		logger: deps.Logger,
		seed:   deps.Seed,
		cursor: int(config.Normal),
		best:   make(map[config.Difficulty]int),

		submitted: make(chan submission, 8),
	}
}

// start restores a stored username, skipping the login screen.
func (c *Controller) start() {
	c.started = true

	ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
	defer cancel()

	name, ok, err := c.store.Get(ctx, kv.KeyUsername)
	if err != nil {
		c.logger.Warn("username read failed", "error", err)
		return
	}
	if !ok {
		return
	}
	if err := c.nav.Restore(name); err != nil {
		c.logger.Warn("ignoring stored username", "error", err)
		return
	}
	c.refreshBest()
}

// Update applies one frame of input and, on the game screen, advances the
// game by one tick.
func (c *Controller) Update(in Input) {
	if !c.started {
		c.start()
	}
	c.collectSubmissions()

	switch c.nav.Screen() {
	case nav.ScreenLogin:
		c.updateLogin(in)
	case nav.ScreenDifficulty:
		c.updateDifficulty(in)
	case nav.ScreenGame:
		c.updateGame(in)
	case nav.ScreenHighScore:
		c.updateHighScore(in)
	}
}

func (c *Controller) updateLogin(in Input) {
	for _, r := range in.Chars {
		c.typeRune(r)
	}
	if in.Backspace {
		c.deleteRune()
	}
	submit := in.Enter

	for _, p := range in.Taps {
		b, ok := hit(loginButtons(), p)
		if !ok {
			continue
		}
		switch b.ID {
		case ButtonKey:
			c.typeRune(b.Rune)
		case ButtonDelete:
			c.deleteRune()
		case ButtonLogin:
			submit = true
		}
	}

	if in.Escape {
		c.quit = true
		return
	}
	if submit {
		c.login()
	}
}

func (c *Controller) typeRune(r rune) {
	if len(c.name) >= maxNameLen || r < ' ' || !utf8.ValidRune(r) {
		return
	}
	c.name = append(c.name, r)
	c.loginErr = ""
}

func (c *Controller) deleteRune() {
	if len(c.name) > 0 {
		c.name = c.name[:len(c.name)-1]
	}
}

func (c *Controller) login() {
	if err := c.nav.Login(string(c.name)); err != nil {
		if errors.Is(err, nav.ErrUsernameTooShort) {
			c.loginErr = "At least 3 characters"
		}
		return
	}
	name := c.nav.Session().Username
	c.logger.Info("login", "user", name)
	c.name = c.name[:0]
	c.cursor = int(config.Normal)
	c.writer.set(c.store, kv.KeyUsername, name)
	c.refreshBest()
}

func (c *Controller) updateDifficulty(in Input) {
	levels := config.Difficulties()
	if in.Up && c.cursor > 0 {
		c.cursor--
	}
	if in.Down && c.cursor < len(levels)-1 {
		c.cursor++
	}
	if in.Enter {
		c.startGame(levels[c.cursor])
		return
	}
	if in.Escape {
		c.quit = true
		return
	}

	for _, p := range in.Taps {
		b, ok := hit(difficultyButtons(), p)
		if !ok {
			continue
		}
		switch b.ID {
		case ButtonEasy:
			c.startGame(config.Easy)
		case ButtonNormal:
			c.startGame(config.Normal)
		case ButtonHard:
			c.startGame(config.Hard)
		case ButtonScores:
			c.showScores()
		case ButtonLogout:
			c.logout()
		}
		return
	}
}

func (c *Controller) startGame(d config.Difficulty) {
	if err := c.nav.SelectDifficulty(d); err != nil {
		return
	}
	c.cursor = int(d)
	c.game = runner.New(c.cfg, d, nil)
	c.game.Reset(core.RuntimeConfig{Seed: c.seed})
	c.logger.Info("run started", "user", c.nav.Session().Username, "difficulty", d)
}

func (c *Controller) updateGame(in Input) {
	frame := core.NewInputFrame()
	if in.Jump || in.Up || in.Enter {
		frame.Set(core.ActionJump)
	}
	if in.Pause || in.Escape {
		frame.Set(core.ActionPause)
	}

	for _, p := range in.Taps {
		if b, ok := hit(gameButtons(), p); ok {
			switch b.ID {
			case ButtonPause:
				frame.Set(core.ActionPause)
			case ButtonScores:
				c.showScores()
				return
			case ButtonLogout:
				c.logout()
				return
			}
			continue
		}
		// Anywhere else: jump, or restart from the game over overlay.
		frame.Set(core.ActionJump)
	}

	res := c.game.Step(frame)
	if res.Ended {
		c.logger.Info("run ended", "user", c.nav.Session().Username, "difficulty", c.game.Difficulty(), "score", res.State.Score)
		c.submitScore(c.game, res.State.Score)
	}
}

// submitScore offers a finished run to the high score table on the writer
// goroutine. The outcome is picked up by a later Update.
func (c *Controller) submitScore(g *runner.Game, score int) {
	d := g.Difficulty()
	c.writer.submit(func(ctx context.Context) error {
		best, err := c.scores.Submit(ctx, d, score)
		select {
		case c.submitted <- submission{game: g, difficulty: d, score: score, newBest: best}:
		default:
			c.logger.Debug("dropping high score outcome", "difficulty", d, "score", score)
		}
		return err
	})
}

func (c *Controller) collectSubmissions() {
	for {
		select {
		case s := <-c.submitted:
			if s.newBest {
				c.best[s.difficulty] = s.score
			}
			if s.game == c.game && s.game.Score() == s.score {
				s.game.SetNewBest(s.newBest)
			}
		default:
			return
		}
	}
}

func (c *Controller) updateHighScore(in Input) {
	back := in.Escape || in.Enter
	for _, p := range in.Taps {
		if b, ok := hit(highScoreButtons(), p); ok && b.ID == ButtonBack {
			back = true
		}
	}
	if back {
		if err := c.nav.Back(); err == nil {
			c.refreshBest()
		}
	}
}

func (c *Controller) showScores() {
	if err := c.nav.ShowHighScores(); err != nil {
		return
	}
	c.game = nil
	c.refreshBest()
}

func (c *Controller) logout() {
	user := c.nav.Session().Username
	if err := c.nav.Logout(); err != nil {
		return
	}
	c.game = nil
	c.name = c.name[:0]
	c.loginErr = ""
	c.writer.remove(c.store, kv.KeyUsername)
	c.logger.Info("logout", "user", user)
}

func (c *Controller) refreshBest() {
	ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
	defer cancel()
	c.best = c.scores.All(ctx)
}

// Close waits for pending writes to finish.
func (c *Controller) Close() {
	c.writer.close()
}

// Screen returns the current screen.
func (c *Controller) Screen() nav.Screen { return c.nav.Screen() }

// Session returns the logged-in player and difficulty.
func (c *Controller) Session() nav.Session { return c.nav.Session() }

// Name returns the username typed so far.
func (c *Controller) Name() string { return string(c.name) }

// LoginError returns the validation message of the last login attempt.
func (c *Controller) LoginError() string { return c.loginErr }

// Cursor returns the highlighted difficulty on the menu.
func (c *Controller) Cursor() config.Difficulty { return config.Difficulty(c.cursor) }

// Best returns the best score of d.
func (c *Controller) Best(d config.Difficulty) int { return c.best[d] }

// Game returns the running game, or nil off the game screen.
func (c *Controller) Game() *runner.Game { return c.game }

// Config returns the runner configuration.
func (c *Controller) Config() config.RunnerConfig { return c.cfg }

// Quit reports whether the player asked to leave.
func (c *Controller) Quit() bool { return c.quit }

// Buttons returns the tappable areas of the current screen.
func (c *Controller) Buttons() []Button {
	switch c.nav.Screen() {
	case nav.ScreenLogin:
		return loginButtons()
	case nav.ScreenDifficulty:
		return difficultyButtons()
	case nav.ScreenGame:
		return gameButtons()
	case nav.ScreenHighScore:
		return highScoreButtons()
	}
	return nil
}
