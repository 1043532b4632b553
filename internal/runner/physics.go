// Package runner implements the Stick Man Runner simulation: a pure
// physics/spawn step, an AABB collision check and the game session state
// machine that sequences them once per tick.
package runner

import "github.com/vovakirdan/stickrun/internal/config"

// DefaultMaxJumps is the jump budget when the config does not set one.
const DefaultMaxJumps = 2

// Rand is the random source used for spawning. *math/rand.Rand satisfies it;
// tests inject seeded or scripted sources.
type Rand interface {
	Float64() float64
}

// PlayerState is the vertical state of the player. Y grows downward and
// equals the ground level while standing.
type PlayerState struct {
	Y              float64
	Velocity       float64
	JumpsRemaining int
}

// Obstacle is a ground obstacle scrolling toward the player.
type Obstacle struct {
	X     float64 // left edge
	Width float64
}

// Right returns the x coordinate of the right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// StepInput is everything one physics/spawn step depends on.
type StepInput struct {
	Player      PlayerState
	Obstacles   []Obstacle
	Profile     config.Profile   // gravity and scroll speed of the difficulty
	Spawn       config.Obstacles // spawn chance and width range
	GroundLevel float64
	WorldWidth  float64 // obstacles spawn at x = WorldWidth
	MaxJumps    int     // jump budget restored on landing
}

// StepOutput is the state after one step.
type StepOutput struct {
	Player    PlayerState
	Obstacles []Obstacle
	Landed    bool // the ground clamp fired this step
	Spawned   bool
}

// Step advances the player and the obstacle list by one tick.
//
// Gravity is integrated before position. Reaching or passing the ground
// clamps y to the ground, zeroes velocity and restores the jump budget;
// clamp-on-overshoot is the landing detection, never float equality.
// Obstacles move left by the scroll speed and are dropped once
// x+width < 0. Then, with probability Spawn.SpawnChance, one obstacle with
// a width drawn from [MinWidth, MaxWidth) is appended at the right edge.
// The input slice is not modified.
func Step(in StepInput, rng Rand) StepOutput {
	maxJumps := in.MaxJumps
	if maxJumps <= 0 {
		maxJumps = DefaultMaxJumps
	}

	var out StepOutput

	p := in.Player
	p.Velocity += in.Profile.Gravity
	p.Y += p.Velocity
	if p.Y >= in.GroundLevel {
		p.Y = in.GroundLevel
		p.Velocity = 0
		p.JumpsRemaining = maxJumps
		out.Landed = true
	}
	out.Player = p

	obstacles := make([]Obstacle, 0, len(in.Obstacles)+1)
	for _, o := range in.Obstacles {
		o.X -= in.Profile.ScrollSpeed
		if o.Right() < 0 {
			continue
		}
		obstacles = append(obstacles, o)
	}

	if rng.Float64() < in.Spawn.SpawnChance {
		span := in.Spawn.MaxWidth - in.Spawn.MinWidth
		obstacles = append(obstacles, Obstacle{
			X:     in.WorldWidth,
			Width: in.Spawn.MinWidth + rng.Float64()*span,
		})
		out.Spawned = true
	}
	out.Obstacles = obstacles

	return out
}
