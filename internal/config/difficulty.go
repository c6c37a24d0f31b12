package config

import "math"

// Progression types accepted in difficulty.progression.type.
const (
	ProgressNone  = "none"
	ProgressScore = "score" // max_at is a score
	ProgressTime  = "time"  // max_at is a tick count
)

// DifficultyManager turns a game's score and elapsed ticks into a level
// between the configured initial level and 1, and scales hostile speeds
// and intervals by it.
type DifficultyManager struct {
	cfg   DifficultyConfig
	start float64
}

func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, start: unit(cfg.InitialLevel)}
}

// IsEnabled reports whether the level ever moves off the initial level.
func (d *DifficultyManager) IsEnabled() bool {
	switch d.cfg.Progression.Type {
	case ProgressScore, ProgressTime:
		return d.cfg.Enabled
	}
	return false
}

// progress is how far along the curve score or ticks are, in [0, 1].
func (d *DifficultyManager) progress(score, ticks int) float64 {
	at := float64(max(d.cfg.Progression.MaxAt, 1))
	if d.cfg.Progression.Type == ProgressTime {
		return unit(float64(ticks) / at)
	}
	return unit(float64(score) / at)
}

// Level is the current difficulty in [initial, 1].
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.start
	}
	return d.start + d.progress(score, ticks)*(1-d.start)
}

// Speed scales base up to base * (1 + speed_multiplier) at level 1.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Interval shortens a spawn or fire interval by up to interval_reduction.
// It never drops below one tick.
func (d *DifficultyManager) Interval(base, score, ticks int) int {
	cut := unit(d.Level(score, ticks) * d.cfg.Scaling.IntervalReduction)
	return max(int(math.Round(float64(base)*(1-cut))), 1)
}

func unit(v float64) float64 {
	return min(max(v, 0), 1)
}
