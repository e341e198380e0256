package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the built-in configuration. It matches
// defaults/pacman.yaml.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Board: BoardConfig{
			Height:    11,
			Width:     21,
			Pellets:   24,
			Walls:     "scatter",
			WallCount: 30,
		},
		Rules: RulesConfig{
			PelletValue:   10,
			StepBudget:    500,
			WallCollision: "block",
		},
		Ghosts: GhostsConfig{
			Count:  2,
			Policy: "random",
		},
		Timing: TimingConfig{
			TickInterval: 150 * time.Millisecond,
		},
		Maps: MapsConfig{
			Dir: "~/.pacman/maps",
		},
		Storage: StorageConfig{
			Path: "~/.pacman/pacman.db",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Difficulty: string(DifficultyNormal),
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPacmanYAML
}
