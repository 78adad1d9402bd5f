package config

import (
	_ "embed"

	"github.com/vovakirdan/termtris/internal/tetris"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisYAML returns the embedded default configuration file.
func DefaultTetrisYAML() []byte {
	out := make([]byte, len(defaultTetrisYAML))
	copy(out, defaultTetrisYAML)
	return out
}

// DefaultTetrisConfig returns the default game configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Width:  tetris.DefaultWidth,
			Height: tetris.DefaultHeight,
		},
		Timing: TetrisTiming{
			GravityMS:    400,
			MinGravityMS: 80,
			ClearPauseMS: 400,
		},
		Scoring: TetrisScoring{
			Points: []int{40, 100, 300, 1200},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionLines,
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 4.0,
			},
		},
	}
}
