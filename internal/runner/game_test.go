package runner

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/stickrun/internal/config"
	"github.com/vovakirdan/stickrun/internal/core"
	"github.com/vovakirdan/stickrun/internal/highscore"
	"github.com/vovakirdan/stickrun/internal/kv"
)

type submission struct {
	difficulty config.Difficulty
	score      int
}

type recordingScores struct {
	calls []submission
	best  bool
}

func (r *recordingScores) Submit(_ context.Context, d config.Difficulty, score int) (bool, error) {
	r.calls = append(r.calls, submission{d, score})
	return r.best, nil
}

// collisionRand spawns one 30-wide obstacle on the first tick and nothing
// after. On Normal it reaches a grounded player on tick 80.
func collisionRand() *scriptedRand {
	return &scriptedRand{vals: []float64{0, 0, 0.99}}
}

const ticksToCollision = 80

func newTestGame(d config.Difficulty, scores HighScores) *Game {
	g := New(config.DefaultRunnerConfig(), d, scores)
	g.SetRand(noSpawnRand())
	return g
}

func noSpawnRand() *scriptedRand {
	return &scriptedRand{vals: []float64{0.99}}
}

func TestNewGameStartsOnGround(t *testing.T) {
	g := newTestGame(config.Normal, nil)

	p := g.Player()
	if p.Y != 624 || p.Velocity != 0 || p.JumpsRemaining != 2 {
		t.Errorf("unexpected initial player %+v", p)
	}
	if g.Status() != Running || g.Score() != 0 || len(g.Obstacles()) != 0 {
		t.Errorf("unexpected initial game: status=%v score=%d obstacles=%d", g.Status(), g.Score(), len(g.Obstacles()))
	}
	if !g.Grounded() {
		t.Error("new game should be grounded")
	}
}

func TestTickScoresOnePerTick(t *testing.T) {
	g := newTestGame(config.Easy, nil)
	for i := 0; i < 25; i++ {
		g.Tick()
	}
	if g.Score() != 25 {
		t.Errorf("score = %d, expected 25", g.Score())
	}
}

func TestDoubleJumpBudget(t *testing.T) {
	g := newTestGame(config.Normal, nil)

	if !g.Jump() {
		t.Fatal("first jump should succeed")
	}
	g.Tick()
	if !g.Jump() {
		t.Fatal("second jump should succeed")
	}
	g.Tick()

	before := g.Player()
	if before.JumpsRemaining != 0 {
		t.Fatalf("jumps = %d, expected 0", before.JumpsRemaining)
	}
	if g.Jump() {
		t.Error("third jump should be rejected")
	}
	if g.Player() != before {
		t.Errorf("third jump changed the player: %+v -> %+v", before, g.Player())
	}
}

func TestJumpSetsImpulse(t *testing.T) {
	g := newTestGame(config.Hard, nil)
	g.Jump()
	if v := g.Player().Velocity; v != -15 {
		t.Errorf("velocity after jump = %v, expected -15", v)
	}
}

func TestLandingRestoresJumps(t *testing.T) {
	g := newTestGame(config.Normal, nil)
	g.Jump()
	g.Jump()

	landed := false
	for i := 0; i < 200; i++ {
		g.Tick()
		if g.Grounded() {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatal("player never landed")
	}
	p := g.Player()
	if p.Velocity != 0 || p.JumpsRemaining != 2 {
		t.Errorf("after landing expected velocity 0 and 2 jumps, got %+v", p)
	}
}

func TestJumpBudgetStaysInRange(t *testing.T) {
	for _, d := range config.Difficulties() {
		t.Run(d.String(), func(t *testing.T) {
			g := New(config.DefaultRunnerConfig(), d, nil)
			g.SetRand(rand.New(rand.NewSource(11)))
			input := rand.New(rand.NewSource(int64(d) + 1))

			for i := 0; i < 5000; i++ {
				if input.Intn(3) == 0 {
					g.Jump()
				}
				g.Tick()
				if g.Status() == GameOver {
					g.Restart()
				}
				if j := g.Player().JumpsRemaining; j < 0 || j > 2 {
					t.Fatalf("step %d: jumps remaining %d out of [0, 2]", i, j)
				}
				if g.Player().Y > 624 {
					t.Fatalf("step %d: player below ground: %v", i, g.Player().Y)
				}
			}
		})
	}
}

func TestCollisionEndsGame(t *testing.T) {
	rec := &recordingScores{best: true}
	g := New(config.DefaultRunnerConfig(), config.Normal, rec)
	g.SetRand(collisionRand())

	ended := 0
	for i := 0; i < ticksToCollision; i++ {
		if g.Tick() {
			ended = i + 1
		}
	}

	if ended != ticksToCollision {
		t.Fatalf("game ended on tick %d, expected %d", ended, ticksToCollision)
	}
	if g.Status() != GameOver || !g.State().GameOver {
		t.Fatal("expected GameOver")
	}
	if len(rec.calls) != 1 || rec.calls[0] != (submission{config.Normal, ticksToCollision}) {
		t.Errorf("submissions = %+v", rec.calls)
	}
	if !g.NewBest() {
		t.Error("NewBest should reflect the table's answer")
	}

	// Ticks after game over change nothing
	player, score := g.Player(), g.Score()
	for i := 0; i < 10; i++ {
		if g.Tick() {
			t.Fatal("tick in GameOver reported an end")
		}
	}
	if g.Player() != player || g.Score() != score || len(rec.calls) != 1 {
		t.Error("ticks in GameOver must be no-ops")
	}
	if g.Jump() {
		t.Error("jump in GameOver should be rejected")
	}
}

func TestJumpClearsObstacle(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), config.Normal, nil)
	g.SetRand(collisionRand())

	// Jump a few ticks before the obstacle arrives and stay airborne over it
	for i := 0; i < 400; i++ {
		if i == ticksToCollision-6 {
			g.Jump()
		}
		g.Tick()
	}
	if g.Status() != Running {
		t.Fatalf("expected to clear the obstacle, game ended at score %d", g.Score())
	}
	if len(g.Obstacles()) != 0 {
		t.Errorf("obstacle should have scrolled off, got %+v", g.Obstacles())
	}
}

func TestGameOverPersistsHighScore(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		stored   string
		expected string
		newBest  bool
	}{
		{"no previous score", "", "80", true},
		{"lower previous score", "12", "80", true},
		{"higher previous score", "150", "150", false},
		{"equal previous score", "80", "80", false},
		{"malformed previous score", "oops", "80", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := kv.NewMemory()
			if tc.stored != "" {
				store.Set(ctx, "HIGH_Normal", tc.stored) //nolint:errcheck
			}

			g := New(config.DefaultRunnerConfig(), config.Normal, highscore.New(store, nil))
			g.SetRand(collisionRand())
			for g.Status() == Running {
				g.Tick()
			}

			if g.Score() != ticksToCollision {
				t.Fatalf("score = %d, expected %d", g.Score(), ticksToCollision)
			}
			got, _, _ := store.Get(ctx, "HIGH_Normal")
			if got != tc.expected {
				t.Errorf("HIGH_Normal = %q, expected %q", got, tc.expected)
			}
			if g.NewBest() != tc.newBest {
				t.Errorf("NewBest = %v, expected %v", g.NewBest(), tc.newBest)
			}
			if _, ok, _ := store.Get(ctx, "HIGH_Easy"); ok {
				t.Error("other difficulties must not be written")
			}
		})
	}
}

func TestRestart(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), config.Normal, nil)
	g.SetRand(collisionRand())
	for g.Status() == Running {
		g.Tick()
	}

	g.Restart()

	if g.Status() != Running || g.Score() != 0 || len(g.Obstacles()) != 0 {
		t.Errorf("restart left status=%v score=%d obstacles=%d", g.Status(), g.Score(), len(g.Obstacles()))
	}
	if p := g.Player(); p != (PlayerState{Y: 624, JumpsRemaining: 2}) {
		t.Errorf("restart left player %+v", p)
	}
	if g.NewBest() {
		t.Error("restart should clear the new-best flag")
	}
}

func TestSetNewBestOnlyAfterGameOver(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), config.Normal, nil)
	g.SetRand(collisionRand())

	g.SetNewBest(true)
	if g.NewBest() {
		t.Error("SetNewBest while running should be ignored")
	}

	for g.Status() == Running {
		g.Tick()
	}
	if g.NewBest() {
		t.Error("without a table the game cannot know about a new best")
	}
	g.SetNewBest(true)
	if !g.NewBest() {
		t.Error("SetNewBest after game over should stick")
	}
}

func TestObstaclesReturnsCopy(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), config.Normal, nil)
	g.SetRand(collisionRand())
	g.Tick()

	obs := g.Obstacles()
	if len(obs) != 1 {
		t.Fatalf("expected one obstacle, got %d", len(obs))
	}
	obs[0].X = -1000
	if g.Obstacles()[0].X == -1000 {
		t.Error("Obstacles should return a copy")
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(config.Normal, nil)
	g.Tick()

	g.TogglePause()
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	g.Tick()
	if g.Score() != 1 {
		t.Errorf("paused tick advanced score to %d", g.Score())
	}
	if g.Jump() {
		t.Error("jump while paused should be rejected")
	}

	g.TogglePause()
	g.Tick()
	if g.Score() != 2 {
		t.Errorf("score = %d after resume, expected 2", g.Score())
	}
}

func TestStepInput(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), config.Normal, &recordingScores{})
	g.SetRand(collisionRand())

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)

	res := g.Step(jump)
	if res.State.Score != 1 || g.Player().JumpsRemaining != 1 {
		t.Fatalf("jump step: score=%d jumps=%d", res.State.Score, g.Player().JumpsRemaining)
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res = g.Step(pause)
	if !res.State.Paused || res.State.Score != 1 {
		t.Fatalf("pause step: %+v", res.State)
	}
	g.Step(pause)

	var last core.StepResult
	for i := 0; i < 1000 && !last.State.GameOver; i++ {
		last = g.Step(core.NewInputFrame())
	}
	if !last.Ended || !last.State.GameOver {
		t.Fatalf("expected the game to end, got %+v", last)
	}

	// Jump on the game over overlay restarts
	res = g.Step(jump)
	if res.State.GameOver || res.State.Score != 0 || g.Status() != Running {
		t.Errorf("jump after game over should restart, got %+v", res.State)
	}
}

func TestResetIsDeterministicForSeed(t *testing.T) {
	play := func() (int, []Obstacle) {
		g := New(config.DefaultRunnerConfig(), config.Hard, nil)
		g.Reset(core.RuntimeConfig{Seed: 1234})
		for i := 0; i < 300 && g.Status() == Running; i++ {
			if i%17 == 0 {
				g.Jump()
			}
			g.Tick()
		}
		return g.Score(), g.Obstacles()
	}

	s1, o1 := play()
	s2, o2 := play()
	if s1 != s2 || len(o1) != len(o2) {
		t.Fatalf("seeded runs diverged: score %d vs %d", s1, s2)
	}
	for i := range o1 {
		if o1[i] != o2[i] {
			t.Fatalf("obstacle %d diverged: %+v vs %+v", i, o1[i], o2[i])
		}
	}
}

func TestRender(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), config.Normal, nil)
	g.SetRand(collisionRand())
	for i := 0; i < 40; i++ {
		g.Tick()
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "Score: 40") {
		t.Error("HUD should show the score")
	}
	if !strings.Contains(out, "Normal") {
		t.Error("HUD should show the difficulty")
	}
	if !strings.ContainsRune(screen.Row(22), GroundChar) {
		t.Error("ground row missing")
	}
	if !strings.ContainsRune(out, ObstacleChar) {
		t.Error("obstacle not drawn")
	}
	if !strings.Contains(out, "o") {
		t.Error("stick man not drawn")
	}

	for g.Status() == Running {
		g.Tick()
	}
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}

	// Too small to draw anything
	tiny := core.NewScreen(10, 4)
	g.Render(tiny)
	if strings.TrimSpace(tiny.String()) != "" {
		t.Error("tiny screen should stay blank")
	}
}
