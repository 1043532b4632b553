package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stickrun/internal/config"
	"github.com/vovakirdan/stickrun/internal/highscore"
	"github.com/vovakirdan/stickrun/internal/kv"
	"github.com/vovakirdan/stickrun/internal/runner"
	"github.com/vovakirdan/stickrun/internal/storage"
)

// storeTimeout bounds every storage command run off the update loop.
const storeTimeout = 3 * time.Second

// maxRuns is how many history rows the high score screen loads.
const maxRuns = 50

// History records finished runs for the leaderboard. *storage.Store
// implements it.
type History interface {
	SaveRun(ctx context.Context, username, difficulty string, score int) (int64, error)
	TopRuns(ctx context.Context, difficulty string, limit int) ([]storage.Run, error)
}

// usernameLoadedMsg carries the stored USERNAME, if any.
type usernameLoadedMsg struct {
	name string
	ok   bool
}

// highScoresLoadedMsg carries the best score of every difficulty.
type highScoresLoadedMsg struct {
	scores map[config.Difficulty]int
}

// runsLoadedMsg carries the run history of one difficulty.
type runsLoadedMsg struct {
	difficulty config.Difficulty
	runs       []storage.Run
}

// scoreSubmittedMsg carries the outcome of a high score submit.
type scoreSubmittedMsg struct {
	game       *runner.Game
	difficulty config.Difficulty
	score      int
	newBest    bool
}

// storedMsg reports a finished best-effort write. Nothing reacts to it.
type storedMsg struct{}

// loadUsernameCmd reads USERNAME. A read failure counts as no stored name.
func loadUsernameCmd(store kv.Store, logger *log.Logger) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		name, ok, err := store.Get(ctx, kv.KeyUsername)
		if err != nil {
			logger.Warn("username read failed", "error", err)
			return usernameLoadedMsg{}
		}
		return usernameLoadedMsg{name: name, ok: ok}
	}
}

// saveUsernameCmd persists USERNAME after a successful login.
func saveUsernameCmd(store kv.Store, logger *log.Logger, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		if err := store.Set(ctx, kv.KeyUsername, name); err != nil {
			logger.Warn("username write failed", "error", err)
		}
		return storedMsg{}
	}
}

// removeUsernameCmd forgets USERNAME on logout.
func removeUsernameCmd(store kv.Store, logger *log.Logger) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		if err := store.Remove(ctx, kv.KeyUsername); err != nil {
			logger.Warn("username remove failed", "error", err)
		}
		return storedMsg{}
	}
}

// submitScoreCmd offers a finished run to the high score table.
func submitScoreCmd(table *highscore.Table, ended gameEndedMsg) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		// The table logs write failures itself.
		best, _ := table.Submit(ctx, ended.difficulty, ended.score)
		return scoreSubmittedMsg{
			game:       ended.game,
			difficulty: ended.difficulty,
			score:      ended.score,
			newBest:    best,
		}
	}
}

// loadHighScoresCmd reads the best score of every difficulty.
func loadHighScoresCmd(table *highscore.Table) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		return highScoresLoadedMsg{scores: table.All(ctx)}
	}
}

// saveRunCmd appends a finished run to the history.
func saveRunCmd(history History, logger *log.Logger, username string, d config.Difficulty, score int) tea.Cmd {
	if history == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		if _, err := history.SaveRun(ctx, username, d.String(), score); err != nil {
			logger.Warn("run history write failed", "error", err)
		}
		return storedMsg{}
	}
}

// loadRunsCmd reads the best runs of one difficulty.
func loadRunsCmd(history History, logger *log.Logger, d config.Difficulty) tea.Cmd {
	if history == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		runs, err := history.TopRuns(ctx, d.String(), maxRuns)
		if err != nil {
			logger.Warn("run history read failed", "difficulty", d, "error", err)
		}
		return runsLoadedMsg{difficulty: d, runs: runs}
	}
}
