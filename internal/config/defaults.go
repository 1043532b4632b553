package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in configuration. It matches the
// embedded defaults/runner.yaml and is used if that fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: World{
			Width:       800,
			GroundLevel: 624,
			ViewHeight:  360,
		},
		Player: Player{
			X:           60,
			Width:       30,
			Clearance:   20,
			JumpImpulse: -15,
			MaxJumps:    2,
		},
		Obstacles: Obstacles{
			SpawnChance: 0.025,
			MinWidth:    30,
			MaxWidth:    50,
			Height:      50,
		},
		Difficulties: DifficultyProfiles{
			Easy:   Profile{Gravity: 0.6, ScrollSpeed: 7},
			Normal: Profile{Gravity: 0.85, ScrollSpeed: 9},
			Hard:   Profile{Gravity: 1.1, ScrollSpeed: 12},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
