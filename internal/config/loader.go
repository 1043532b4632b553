package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.stickrun/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
//
// Only an explicit customPath reports read, parse or validation errors;
// broken files found during the search are skipped.
func LoadRunner(customPath string) (RunnerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("runner.yaml"), filepath.Join("configs", "runner.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so a file only needs
// the keys it overrides, then validates the result.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate checks the invariants the game relies on.
func (c RunnerConfig) Validate() error {
	switch {
	case c.World.Width <= 0:
		return fmt.Errorf("%w: world.width must be positive", ErrInvalid)
	case c.World.ViewHeight <= 0:
		return fmt.Errorf("%w: world.view_height must be positive", ErrInvalid)
	case c.Player.Width <= 0:
		return fmt.Errorf("%w: player.width must be positive", ErrInvalid)
	case c.Player.JumpImpulse >= 0:
		return fmt.Errorf("%w: player.jump_impulse must be negative (y grows downward)", ErrInvalid)
	case c.Player.MaxJumps < 1:
		return fmt.Errorf("%w: player.max_jumps must be at least 1", ErrInvalid)
	case c.Obstacles.SpawnChance < 0 || c.Obstacles.SpawnChance > 1:
		return fmt.Errorf("%w: obstacles.spawn_chance must be within [0, 1]", ErrInvalid)
	case c.Obstacles.MinWidth <= 0 || c.Obstacles.MaxWidth < c.Obstacles.MinWidth:
		return fmt.Errorf("%w: obstacles need 0 < min_width <= max_width", ErrInvalid)
	}

	for _, d := range Difficulties() {
		p := c.Profile(d)
		if p.Gravity <= 0 || p.ScrollSpeed <= 0 {
			return fmt.Errorf("%w: difficulties.%s needs positive gravity and scroll_speed", ErrInvalid, d)
		}
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stickrun", "configs", filename)
}
