package config

import (
	"fmt"
	"strings"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParseDifficulty accepts a preset name; empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// IsFixedPreset reports whether the preset leaves the file values untouched.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPacmanPreset adjusts ghosts, budget and pace for a preset. Normal keeps
// the file's ghost settings; fixed changes nothing.
func ApplyPacmanPreset(cfg *PacmanConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty = string(preset)
		return
	}
	cfg.Difficulty = string(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Ghosts.Count = min(cfg.Ghosts.Count, 1)
		cfg.Ghosts.Policy = "stationary"
		cfg.Rules.StepBudget = 0
		cfg.Timing.TickInterval = 200 * time.Millisecond
	case DifficultyHard:
		cfg.Ghosts.Count = max(cfg.Ghosts.Count, 4)
		cfg.Ghosts.Policy = "random"
		if cfg.Rules.StepBudget == 0 || cfg.Rules.StepBudget > 300 {
			cfg.Rules.StepBudget = 300
		}
		cfg.Timing.TickInterval = 100 * time.Millisecond
	}
}
