package runner

import (
	"context"
	"math/rand"
	"time"

	"github.com/vovakirdan/stickrun/internal/config"
	"github.com/vovakirdan/stickrun/internal/core"
)

// saveTimeout bounds the high score write done on game over.
const saveTimeout = 2 * time.Second

// State is the session state of a game.
type State int

const (
	Running State = iota
	GameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// HighScores receives the final score when a game ends.
// *highscore.Table implements it.
type HighScores interface {
	Submit(ctx context.Context, d config.Difficulty, score int) (bool, error)
}

// Game is one runner session: player, obstacles, score and jump budget for
// a fixed difficulty. It is not safe for concurrent use; the platform owns
// it from a single loop.
type Game struct {
	cfg        config.RunnerConfig
	difficulty config.Difficulty
	profile    config.Profile
	scores     HighScores
	rng        Rand

	player    PlayerState
	obstacles []Obstacle
	score     int
	state     State
	paused    bool
	newBest   bool
	tickCount int // ticks since (re)start, drives the leg animation
}

// New creates a running game for difficulty d. scores may be nil, in which
// case the caller submits the final score itself and reports the outcome
// with SetNewBest.
func New(cfg config.RunnerConfig, d config.Difficulty, scores HighScores) *Game {
	g := &Game{
		cfg:        cfg,
		difficulty: d,
		profile:    cfg.Profile(d),
		scores:     scores,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	g.Restart()
	return g
}

// SetRand replaces the random source used for spawning.
func (g *Game) SetRand(r Rand) {
	g.rng = r
}

// Reset reseeds the spawner from the runtime config and restarts.
// A zero seed picks one from the clock.
func (g *Game) Reset(rt core.RuntimeConfig) {
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.Restart()
}

// Restart puts the player back on the ground with a full jump budget,
// clears obstacles and score, and returns to Running.
func (g *Game) Restart() {
	g.player = PlayerState{
		Y:              g.cfg.World.GroundLevel,
		JumpsRemaining: g.maxJumps(),
	}
	g.obstacles = g.obstacles[:0]
	g.score = 0
	g.state = Running
	g.paused = false
	g.newBest = false
	g.tickCount = 0
}

// Jump spends one jump from the budget, allowing a double jump in the air.
// It does nothing unless the game is running with jumps left.
func (g *Game) Jump() bool {
	if g.state != Running || g.paused || g.player.JumpsRemaining <= 0 {
		return false
	}
	g.player.Velocity = g.cfg.Player.JumpImpulse
	g.player.JumpsRemaining--
	return true
}

// TogglePause pauses or resumes a running game.
func (g *Game) TogglePause() {
	if g.state == Running {
		g.paused = !g.paused
	}
}

// Tick advances one fixed step: physics and spawning, +1 score, collision.
// A collision ends the game and submits the score as a high score
// candidate. Ticks outside Running, or while paused, do nothing.
// It returns true on the tick that ended the game.
func (g *Game) Tick() bool {
	if g.state != Running || g.paused {
		return false
	}

	out := Step(StepInput{
		Player:      g.player,
		Obstacles:   g.obstacles,
		Profile:     g.profile,
		Spawn:       g.cfg.Obstacles,
		GroundLevel: g.cfg.World.GroundLevel,
		WorldWidth:  g.cfg.World.Width,
		MaxJumps:    g.maxJumps(),
	}, g.rng)

	g.player = out.Player
	g.obstacles = out.Obstacles
	g.score++
	g.tickCount++

	if !Collides(g.player.Y, g.box(), g.obstacles) {
		return false
	}

	g.state = GameOver
	if g.scores != nil {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		// Best effort: the table logs write failures itself.
		g.newBest, _ = g.scores.Submit(ctx, g.difficulty, g.score)
	}
	return true
}

// Step applies one frame of platform input, then ticks.
// Restart is honored only after game over.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == GameOver {
		if in.Has(core.ActionRestart) || in.Has(core.ActionJump) {
			g.Restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.TogglePause()
	}
	if in.Has(core.ActionJump) {
		g.Jump()
	}

	ended := g.Tick()
	return core.StepResult{
		State:   g.State(),
		Ended:   ended,
		NewBest: ended && g.newBest,
	}
}

func (g *Game) box() PlayerBox {
	return PlayerBox{
		X:           g.cfg.Player.X,
		Width:       g.cfg.Player.Width,
		GroundLevel: g.cfg.World.GroundLevel,
		Clearance:   g.cfg.Player.Clearance,
	}
}

func (g *Game) maxJumps() int {
	if g.cfg.Player.MaxJumps > 0 {
		return g.cfg.Player.MaxJumps
	}
	return DefaultMaxJumps
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == GameOver,
		Paused:   g.paused,
	}
}

// Status returns the session state.
func (g *Game) Status() State { return g.state }

// Player returns the current player state.
func (g *Game) Player() PlayerState { return g.player }

// Obstacles returns a copy of the obstacles, oldest first.
func (g *Game) Obstacles() []Obstacle {
	out := make([]Obstacle, len(g.obstacles))
	copy(out, g.obstacles)
	return out
}

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Difficulty returns the difficulty this game was created with.
func (g *Game) Difficulty() config.Difficulty { return g.difficulty }

// Config returns the configuration the game runs with.
func (g *Game) Config() config.RunnerConfig { return g.cfg }

// NewBest reports whether the last game over set a new high score.
func (g *Game) NewBest() bool { return g.newBest }

// SetNewBest records the outcome of a high score submitted outside Tick.
// It is ignored unless the game is over.
func (g *Game) SetNewBest(best bool) {
	if g.state == GameOver {
		g.newBest = best
	}
}

// Grounded reports whether the player is standing on the ground.
func (g *Game) Grounded() bool {
	return g.player.Y >= g.cfg.World.GroundLevel
}

// LegFrame alternates between 0 and 1 while running, for animation.
func (g *Game) LegFrame() int {
	return (g.tickCount / 4) % 2
}
