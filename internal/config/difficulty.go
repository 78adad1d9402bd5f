package config

import (
	"math"
	"time"
)

// DifficultyManager calculates dynamic game parameters from cleared lines,
// score or elapsed ticks.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// Progress is the input to difficulty calculations.
type Progress struct {
	Lines int
	Score int
	Ticks int
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone && d.cfg.Progression.Type != ""
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case ProgressionLines:
		progress = float64(p.Lines) / maxAt
	case ProgressionScore:
		progress = float64(p.Score) / maxAt
	case ProgressionTime:
		progress = float64(p.Ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Stage maps the difficulty level onto a displayed level number 1..10.
func (d *DifficultyManager) Stage(p Progress) int {
	return 1 + int(math.Floor(d.Level(p)*9+1e-9))
}

// GravityInterval returns the time between gravity steps. The rate grows
// from 1x at level 0 to (1 + speed_multiplier)x at level 1, and the interval
// never drops below floor.
func (d *DifficultyManager) GravityInterval(base, floor time.Duration, p Progress) time.Duration {
	level := d.Level(p)
	rate := 1.0 + level*math.Max(0, d.cfg.Scaling.SpeedMultiplier)
	interval := time.Duration(float64(base) / rate)
	if interval < floor {
		return floor
	}
	return interval
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
