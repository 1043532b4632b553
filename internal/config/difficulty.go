package config

import (
	"fmt"
	"strings"
)

// Difficulty selects the physics profile of a game session.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

// Difficulties lists every difficulty in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Normal, Hard}
}

// String returns the canonical name, also used in storage keys.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Normal:
		return "Normal"
	case Hard:
		return "Hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// Valid reports whether d is one of the fixed difficulty values.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

// ParseDifficulty parses a difficulty name case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "normal":
		return Normal, nil
	case "hard":
		return Hard, nil
	}
	return 0, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// Profile returns the physics profile configured for d.
// Unknown values fall back to the normal profile.
func (c RunnerConfig) Profile(d Difficulty) Profile {
	switch d {
	case Easy:
		return c.Difficulties.Easy
	case Hard:
		return c.Difficulties.Hard
	default:
		return c.Difficulties.Normal
	}
}
