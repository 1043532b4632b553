package runner

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/stickrun/internal/config"
)

// scriptedRand returns its values in order, repeating the last one.
type scriptedRand struct {
	vals []float64
	i    int
}

func (s *scriptedRand) Float64() float64 {
	v := s.vals[len(s.vals)-1]
	if s.i < len(s.vals) {
		v = s.vals[s.i]
	}
	s.i++
	return v
}

// never spawns
var noSpawn = &scriptedRand{vals: []float64{0.99}}

func baseInput() StepInput {
	cfg := config.DefaultRunnerConfig()
	return StepInput{
		Profile:     cfg.Profile(config.Normal),
		Spawn:       cfg.Obstacles,
		GroundLevel: cfg.World.GroundLevel,
		WorldWidth:  cfg.World.Width,
		MaxJumps:    2,
		Player:      PlayerState{Y: cfg.World.GroundLevel, JumpsRemaining: 2},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStepGravity(t *testing.T) {
	in := baseInput()
	in.Profile.Gravity = 0.85
	in.Player = PlayerState{Y: 480, Velocity: 0, JumpsRemaining: 1}

	out := Step(in, noSpawn)

	if !almostEqual(out.Player.Velocity, 0.85) {
		t.Errorf("velocity = %v, expected 0.85", out.Player.Velocity)
	}
	if !almostEqual(out.Player.Y, 480.85) {
		t.Errorf("y = %v, expected 480.85", out.Player.Y)
	}
	if out.Landed {
		t.Error("player far above ground should not land")
	}
	if out.Player.JumpsRemaining != 1 {
		t.Errorf("jumps changed mid-air: %d", out.Player.JumpsRemaining)
	}
}

func TestStepLandingClamp(t *testing.T) {
	tests := []struct {
		name     string
		y, vel   float64
		jumps    int
		expected bool
	}{
		{"overshoot ground", 620, 10, 0, true},
		{"exactly reach ground", 623, 0, 1, true},
		{"standing on ground", 624, 0, 2, true},
		{"still falling above ground", 500, 1, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := baseInput()
			in.Profile.Gravity = 1
			in.Player = PlayerState{Y: tc.y, Velocity: tc.vel, JumpsRemaining: tc.jumps}

			out := Step(in, noSpawn)
			if out.Landed != tc.expected {
				t.Fatalf("Landed = %v, expected %v", out.Landed, tc.expected)
			}
			if !tc.expected {
				return
			}
			if out.Player.Y != in.GroundLevel || out.Player.Velocity != 0 || out.Player.JumpsRemaining != 2 {
				t.Errorf("landing should clamp to ground with full budget, got %+v", out.Player)
			}
		})
	}
}

func TestStepScrollsAndRemovesObstacles(t *testing.T) {
	in := baseInput()
	in.Profile.ScrollSpeed = 9
	in.Obstacles = []Obstacle{
		{X: 0, Width: 5},    // -9 + 5 < 0: removed
		{X: 5, Width: 4},    // -4 + 4 == 0: kept
		{X: 300, Width: 40}, // kept
	}

	out := Step(in, noSpawn)

	expected := []Obstacle{{X: -4, Width: 4}, {X: 291, Width: 40}}
	if len(out.Obstacles) != len(expected) {
		t.Fatalf("obstacles = %+v, expected %+v", out.Obstacles, expected)
	}
	for i := range expected {
		if out.Obstacles[i] != expected[i] {
			t.Errorf("obstacle %d = %+v, expected %+v", i, out.Obstacles[i], expected[i])
		}
	}
	if out.Spawned {
		t.Error("nothing should spawn with a high random draw")
	}

	// The input slice is left untouched
	if in.Obstacles[0].X != 0 || in.Obstacles[2].X != 300 {
		t.Errorf("Step mutated its input: %+v", in.Obstacles)
	}
}

func TestStepSpawn(t *testing.T) {
	in := baseInput()
	in.Obstacles = []Obstacle{{X: 400, Width: 30}}

	out := Step(in, &scriptedRand{vals: []float64{0.01, 0.5}})

	if !out.Spawned || len(out.Obstacles) != 2 {
		t.Fatalf("expected a spawn, got %+v", out)
	}
	// Appended last, at the right edge, unshifted
	spawned := out.Obstacles[1]
	if spawned.X != in.WorldWidth {
		t.Errorf("spawned x = %v, expected %v", spawned.X, in.WorldWidth)
	}
	if !almostEqual(spawned.Width, 40) {
		t.Errorf("spawned width = %v, expected 40 (midpoint of 30..50)", spawned.Width)
	}

	// At the probability boundary nothing spawns
	out = Step(in, &scriptedRand{vals: []float64{in.Spawn.SpawnChance}})
	if out.Spawned {
		t.Error("a draw equal to the spawn chance should not spawn")
	}
}

func TestStepSpawnWidthRange(t *testing.T) {
	in := baseInput()
	in.Spawn.SpawnChance = 1
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 1000; i++ {
		out := Step(in, rng)
		w := out.Obstacles[len(out.Obstacles)-1].Width
		if w < in.Spawn.MinWidth || w >= in.Spawn.MaxWidth {
			t.Fatalf("spawned width %v outside [%v, %v)", w, in.Spawn.MinWidth, in.Spawn.MaxWidth)
		}
	}
}

func TestStepDeterministicWithSeed(t *testing.T) {
	run := func() StepInput {
		in := baseInput()
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 2000; i++ {
			out := Step(in, rng)
			in.Player, in.Obstacles = out.Player, out.Obstacles
		}
		return in
	}

	a, b := run(), run()
	if a.Player != b.Player || len(a.Obstacles) != len(b.Obstacles) {
		t.Fatalf("runs diverged: %+v vs %+v", a.Player, b.Player)
	}
	for i := range a.Obstacles {
		if a.Obstacles[i] != b.Obstacles[i] {
			t.Fatalf("obstacle %d diverged: %+v vs %+v", i, a.Obstacles[i], b.Obstacles[i])
		}
	}
}

func TestRemovedObstaclesNeverReappear(t *testing.T) {
	in := baseInput()
	in.Spawn.SpawnChance = 0.2
	rng := rand.New(rand.NewSource(9))

	// ids tracks obstacle identity alongside in.Obstacles
	var ids []int
	nextID := 0
	removed := make(map[int]bool)

	for tick := 0; tick < 3000; tick++ {
		out := Step(in, rng)

		survivors := out.Obstacles
		if out.Spawned {
			survivors = survivors[:len(survivors)-1]
		}

		var newIDs []int
		j := 0
		for i, o := range in.Obstacles {
			moved := Obstacle{X: o.X - in.Profile.ScrollSpeed, Width: o.Width}
			if j < len(survivors) && survivors[j] == moved {
				newIDs = append(newIDs, ids[i])
				j++
				continue
			}
			if moved.Right() >= 0 {
				t.Fatalf("tick %d: on-screen obstacle %+v was dropped", tick, moved)
			}
			removed[ids[i]] = true
		}
		if j != len(survivors) {
			t.Fatalf("tick %d: output holds obstacles not derived from input", tick)
		}
		if out.Spawned {
			newIDs = append(newIDs, nextID)
			nextID++
		}

		for k, id := range newIDs {
			if removed[id] {
				t.Fatalf("tick %d: removed obstacle %d reappeared", tick, id)
			}
			if out.Obstacles[k].Right() < 0 {
				t.Fatalf("tick %d: off-screen obstacle kept: %+v", tick, out.Obstacles[k])
			}
		}

		in.Player, in.Obstacles, ids = out.Player, out.Obstacles, newIDs
	}

	if len(removed) == 0 {
		t.Error("expected some obstacles to scroll off during the run")
	}
}
