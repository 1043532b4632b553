// Package config provides YAML-based configuration for the runner: world
// geometry, player and obstacle parameters, and per-difficulty physics.
package config

// RunnerConfig contains all tunable parameters of the runner game.
type RunnerConfig struct {
	World        World              `yaml:"world"`
	Player       Player             `yaml:"player"`
	Obstacles    Obstacles          `yaml:"obstacles"`
	Difficulties DifficultyProfiles `yaml:"difficulties"`
}

// World defines the play field. Y grows downward.
type World struct {
	Width       float64 `yaml:"width"`
	GroundLevel float64 `yaml:"ground_level"`
	ViewHeight  float64 `yaml:"view_height"`
}

// Player defines the fixed horizontal span of the player and its jump.
type Player struct {
	X           float64 `yaml:"x"`
	Width       float64 `yaml:"width"`
	Clearance   float64 `yaml:"clearance"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	MaxJumps    int     `yaml:"max_jumps"`
}

// Obstacles defines spawning. None of it depends on difficulty.
type Obstacles struct {
	SpawnChance float64 `yaml:"spawn_chance"`
	MinWidth    float64 `yaml:"min_width"`
	MaxWidth    float64 `yaml:"max_width"`
	Height      float64 `yaml:"height"`
}

// Profile is the physics tuple selected at game start.
type Profile struct {
	Gravity     float64 `yaml:"gravity"`
	ScrollSpeed float64 `yaml:"scroll_speed"`
}

// DifficultyProfiles holds one profile per difficulty.
type DifficultyProfiles struct {
	Easy   Profile `yaml:"easy"`
	Normal Profile `yaml:"normal"`
	Hard   Profile `yaml:"hard"`
}
