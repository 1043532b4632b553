// Package nav holds the screen flow of the runner: login, difficulty
// selection, the game and the high score table. It is pure state; frontends
// render the current screen and persist the username themselves.
package nav

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/stickrun/internal/config"
)

// MinUsernameLen is the shortest accepted username, in runes.
const MinUsernameLen = 3

var (
	ErrUsernameTooShort  = errors.New("nav: username must be at least 3 characters")
	ErrInvalidTransition = errors.New("nav: invalid transition")
)

// Screen identifies what the frontend shows.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenDifficulty
	ScreenGame
	ScreenHighScore
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "Login"
	case ScreenDifficulty:
		return "Difficulty"
	case ScreenGame:
		return "Game"
	case ScreenHighScore:
		return "HighScore"
	default:
		return "Unknown"
	}
}

// Session is the logged-in player and the difficulty they picked.
type Session struct {
	Username   string
	Difficulty config.Difficulty
}

// Navigator tracks the current screen and session.
type Navigator struct {
	screen  Screen
	session Session
	// from records where HighScore was opened, for display only; Back
	// always returns to Difficulty.
	from Screen
}

// New returns a navigator on the login screen.
func New() *Navigator {
	return &Navigator{screen: ScreenLogin, session: Session{Difficulty: config.Normal}}
}

// Screen returns the current screen.
func (n *Navigator) Screen() Screen { return n.screen }

// Session returns the current session. Username is empty on the login screen.
func (n *Navigator) Session() Session { return n.session }

// LoggedIn reports whether a username is set.
func (n *Navigator) LoggedIn() bool { return n.session.Username != "" }

// HighScoresFrom returns the screen the high score table was opened from.
func (n *Navigator) HighScoresFrom() Screen { return n.from }

// ValidateUsername trims name and checks its length.
func ValidateUsername(name string) (string, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < MinUsernameLen {
		return "", ErrUsernameTooShort
	}
	return name, nil
}

// Login starts a session and moves to difficulty selection.
func (n *Navigator) Login(username string) error {
	if n.screen != ScreenLogin {
		return n.invalid("login")
	}
	name, err := ValidateUsername(username)
	if err != nil {
		return err
	}
	n.session = Session{Username: name, Difficulty: config.Normal}
	n.screen = ScreenDifficulty
	return nil
}

// Restore resumes a session from a stored username, skipping the login
// screen. An invalid stored name leaves the navigator on Login.
func (n *Navigator) Restore(username string) error {
	return n.Login(username)
}

// SelectDifficulty starts a game at d.
func (n *Navigator) SelectDifficulty(d config.Difficulty) error {
	if n.screen != ScreenDifficulty {
		return n.invalid("select difficulty")
	}
	if !d.Valid() {
		return fmt.Errorf("%w: unknown difficulty %d", ErrInvalidTransition, int(d))
	}
	n.session.Difficulty = d
	n.screen = ScreenGame
	return nil
}

// ShowHighScores opens the high score table from difficulty selection or
// from the game.
func (n *Navigator) ShowHighScores() error {
	if n.screen != ScreenDifficulty && n.screen != ScreenGame {
		return n.invalid("show high scores")
	}
	n.from = n.screen
	n.screen = ScreenHighScore
	return nil
}

// Back leaves the high score table for difficulty selection.
func (n *Navigator) Back() error {
	if n.screen != ScreenHighScore {
		return n.invalid("back")
	}
	n.screen = ScreenDifficulty
	return nil
}

// Logout clears the session and returns to the login screen.
func (n *Navigator) Logout() error {
	if n.screen == ScreenLogin {
		return n.invalid("logout")
	}
	n.session = Session{Difficulty: config.Normal}
	n.screen = ScreenLogin
	return nil
}

func (n *Navigator) invalid(op string) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, op, n.screen)
}
