// Package config provides YAML-based configuration loading and difficulty
// presets for the pacman frontends.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
)

// PacmanConfig is the whole configuration file.
type PacmanConfig struct {
	Board      BoardConfig   `yaml:"board"`
	Rules      RulesConfig   `yaml:"rules"`
	Ghosts     GhostsConfig  `yaml:"ghosts"`
	Timing     TimingConfig  `yaml:"timing"`
	Maps       MapsConfig    `yaml:"maps"`
	Storage    StorageConfig `yaml:"storage"`
	Server     ServerConfig  `yaml:"server"`
	Difficulty string        `yaml:"difficulty"` // easy, normal, hard or fixed
}

// BoardConfig describes a randomly populated board.
type BoardConfig struct {
	Height     int    `yaml:"height"`
	Width      int    `yaml:"width"`
	Pellets    int    `yaml:"pellets"`
	Walls      string `yaml:"walls"`      // none, border, diagonal or scatter
	WallCount  int    `yaml:"wall_count"` // scatter count or diagonal length
	WrapAround bool   `yaml:"wrap_around"`
}

// RulesConfig holds scoring and termination rules.
type RulesConfig struct {
	PelletValue   int    `yaml:"pellet_value"`
	StepBudget    int    `yaml:"step_budget"`    // 0 = unlimited
	WallCollision string `yaml:"wall_collision"` // block or lethal
	Facing        string `yaml:"facing"`         // initial facing for random boards
}

// GhostsConfig selects ghost population and behaviour.
type GhostsConfig struct {
	Count  int    `yaml:"count"`
	Policy string `yaml:"policy"` // stationary or random
}

// TimingConfig holds the tick cadence.
type TimingConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

// MapsConfig points at a directory of map files.
type MapsConfig struct {
	Dir string `yaml:"dir"`
}

// StorageConfig locates the episode journal.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig configures `pacman serve`.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Engine converts the file settings into an engine configuration.
func (c PacmanConfig) Engine(seed int64) (engine.Config, error) {
	walls, err := engine.WallLayoutByName(c.Board.Walls, c.Board.WallCount)
	if err != nil {
		return engine.Config{}, fmt.Errorf("config: board.walls: %w", err)
	}
	policy, err := engine.GhostPolicyByName(c.Ghosts.Policy)
	if err != nil {
		return engine.Config{}, fmt.Errorf("config: ghosts.policy: %w", err)
	}
	collision, err := engine.ParseWallCollision(c.Rules.WallCollision)
	if err != nil {
		return engine.Config{}, fmt.Errorf("config: rules.wall_collision: %w", err)
	}

	cfg := engine.Config{
		Height:        c.Board.Height,
		Width:         c.Board.Width,
		PelletCount:   c.Board.Pellets,
		GhostCount:    c.Ghosts.Count,
		Walls:         walls,
		StepBudget:    c.Rules.StepBudget,
		TickInterval:  c.Timing.TickInterval,
		PelletValue:   c.Rules.PelletValue,
		WrapAround:    c.Board.WrapAround,
		WallCollision: collision,
		GhostPolicy:   policy,
		Seed:          seed,
	}
	if c.Rules.Facing != "" {
		d, err := engine.ParseDirection(c.Rules.Facing)
		if err != nil {
			return engine.Config{}, fmt.Errorf("config: rules.facing: %w", err)
		}
		cfg.Layout = &engine.Layout{Facing: d}
	}
	return cfg, nil
}
