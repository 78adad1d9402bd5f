package config

import (
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultTetrisConfig().Validate(); err != nil {
		t.Fatalf("DefaultTetrisConfig().Validate() = %v, expected nil", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *TetrisConfig)
		wantErr string
	}{
		{"narrow board", func(c *TetrisConfig) { c.Board.Width = 5 }, "smaller than"},
		{"short board", func(c *TetrisConfig) { c.Board.Height = 5 }, "smaller than"},
		{"minimum board", func(c *TetrisConfig) { c.Board.Width, c.Board.Height = 6, 6 }, ""},
		{"zero gravity", func(c *TetrisConfig) { c.Timing.GravityMS = 0 }, "gravity_ms"},
		{"floor above base", func(c *TetrisConfig) { c.Timing.MinGravityMS = 500 }, "min_gravity_ms"},
		{"negative pause", func(c *TetrisConfig) { c.Timing.ClearPauseMS = -1 }, "clear_pause_ms"},
		{"zero pause", func(c *TetrisConfig) { c.Timing.ClearPauseMS = 0 }, ""},
		{"short points table", func(c *TetrisConfig) { c.Scoring.Points = []int{40, 100} }, "scoring.points"},
		{"negative points", func(c *TetrisConfig) { c.Scoring.Points[2] = -1 }, "scoring.points[2]"},
		{"unknown progression", func(c *TetrisConfig) { c.Difficulty.Progression.Type = "level" }, "progression"},
		{"initial level too high", func(c *TetrisConfig) { c.Difficulty.InitialLevel = 1.5 }, "initial_level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
	}{
		{"easy", DifficultyEasy},
		{"normal", DifficultyNormal},
		{"hard", DifficultyHard},
		{"fixed", DifficultyFixed},
		{"", ""},
		{"insane", ""},
	}

	for _, tc := range tests {
		if got := ParsePreset(tc.in); got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
