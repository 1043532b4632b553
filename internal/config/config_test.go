package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("embedded YAML and DefaultRunnerConfig diverged:\n%+v\n%+v", cfg, DefaultRunnerConfig())
	}
}

func TestProfiles(t *testing.T) {
	cfg := DefaultRunnerConfig()

	tests := []struct {
		d       Difficulty
		gravity float64
		speed   float64
	}{
		{Easy, 0.6, 7},
		{Normal, 0.85, 9},
		{Hard, 1.1, 12},
	}

	for _, tc := range tests {
		p := cfg.Profile(tc.d)
		if p.Gravity != tc.gravity || p.ScrollSpeed != tc.speed {
			t.Errorf("Profile(%s) = %+v, expected {%v %v}", tc.d, p, tc.gravity, tc.speed)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		expected Difficulty
		wantErr  bool
	}{
		{"Easy", Easy, false},
		{"normal", Normal, false},
		{" HARD ", Hard, false},
		{"nightmare", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		d, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && d != tc.expected {
			t.Errorf("ParseDifficulty(%q) = %s, expected %s", tc.in, d, tc.expected)
		}
	}

	if Difficulty(7).Valid() {
		t.Error("Difficulty(7) should not be valid")
	}
}

func TestLoadRunnerCustomPathOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("difficulties:\n  hard:\n    gravity: 1.5\n    scroll_speed: 15\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}

	if got := cfg.Profile(Hard); got.Gravity != 1.5 || got.ScrollSpeed != 15 {
		t.Errorf("hard profile = %+v, expected override", got)
	}
	// Keys missing from the file keep their defaults
	if got := cfg.Profile(Easy); got.Gravity != 0.6 {
		t.Errorf("easy gravity = %v, expected default 0.6", got.Gravity)
	}
	if cfg.Player.X != 60 {
		t.Errorf("player.x = %v, expected default 60", cfg.Player.X)
	}
}

func TestLoadRunnerErrors(t *testing.T) {
	if _, err := LoadRunner(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadRunner() should fail for a missing custom path")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("player:\n  jump_impulse: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadRunner(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadRunner() error = %v, expected ErrInvalid", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultRunnerConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Error("marshalled config should parse back to the defaults")
	}
}

func TestParseDifficultyProfiles(t *testing.T) {
	cfg, err := Parse([]byte("difficulties:\n  hard:\n    gravity: 1.5\n    scroll_speed: 15\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if p := cfg.Profile(Hard); p.Gravity != 1.5 || p.ScrollSpeed != 15 {
		t.Errorf("Profile(Hard) = %+v, expected {1.5 15}", p)
	}
	if p := cfg.Profile(Easy); p != DefaultRunnerConfig().Difficulties.Easy {
		t.Errorf("Profile(Easy) = %+v, expected the default", p)
	}

	for _, d := range Difficulties() {
		yml := "difficulties:\n  " + strings.ToLower(d.String()) + ":\n    gravity: 0\n"
		if _, err := Parse([]byte(yml)); !errors.Is(err, ErrInvalid) {
			t.Errorf("Parse(zero gravity for %s) error = %v, expected ErrInvalid", d, err)
		}
	}
}
