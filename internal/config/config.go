// Package config provides YAML-based game configuration loading and
// difficulty management for termtris.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/termtris/internal/tetris"
)

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Board      TetrisBoard      `yaml:"board"`
	Timing     TetrisTiming     `yaml:"timing"`
	Scoring    TetrisScoring    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisBoard defines the grid size, border included.
type TetrisBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisTiming defines wall-clock intervals in milliseconds.
type TetrisTiming struct {
	GravityMS    int `yaml:"gravity_ms"`     // Interval between gravity steps at level 0
	MinGravityMS int `yaml:"min_gravity_ms"` // Floor for the interval at max difficulty
	ClearPauseMS int `yaml:"clear_pause_ms"` // How long cleared rows stay visible before compaction
}

// TetrisScoring defines points awarded per lock.
type TetrisScoring struct {
	// Points[n-1] is awarded for clearing n rows at once.
	Points []int `yaml:"points"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = slowest, 1.0 = fastest
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "lines", "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Lines/score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Gravity rate added at max difficulty
}

// Progression types.
const (
	ProgressionLines = "lines"
	ProgressionScore = "score"
	ProgressionTime  = "time"
	ProgressionNone  = "none"
)

// MaxClearRows is the most rows a single lock can clear.
const MaxClearRows = tetris.BitmapWidth

// Validate reports the first problem that would make the config unplayable.
func (c TetrisConfig) Validate() error {
	if c.Board.Width < tetris.MinWidth || c.Board.Height < tetris.MinHeight {
		return fmt.Errorf("board %dx%d is smaller than %dx%d",
			c.Board.Width, c.Board.Height, tetris.MinWidth, tetris.MinHeight)
	}
	if c.Timing.GravityMS <= 0 {
		return fmt.Errorf("gravity_ms must be positive, got %d", c.Timing.GravityMS)
	}
	if c.Timing.MinGravityMS <= 0 || c.Timing.MinGravityMS > c.Timing.GravityMS {
		return fmt.Errorf("min_gravity_ms must be in (0, %d], got %d", c.Timing.GravityMS, c.Timing.MinGravityMS)
	}
	if c.Timing.ClearPauseMS < 0 {
		return fmt.Errorf("clear_pause_ms must not be negative, got %d", c.Timing.ClearPauseMS)
	}
	if len(c.Scoring.Points) != MaxClearRows {
		return fmt.Errorf("scoring.points needs %d entries, got %d", MaxClearRows, len(c.Scoring.Points))
	}
	for i, p := range c.Scoring.Points {
		if p < 0 {
			return fmt.Errorf("scoring.points[%d] must not be negative, got %d", i, p)
		}
	}
	switch c.Difficulty.Progression.Type {
	case ProgressionLines, ProgressionScore, ProgressionTime, ProgressionNone, "":
	default:
		return fmt.Errorf("unknown progression type %q", c.Difficulty.Progression.Type)
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		return errors.New("difficulty.initial_level must be within [0, 1]")
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.2
	case DifficultyHard:
		return 0.5
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
