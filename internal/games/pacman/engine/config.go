package engine

import (
	"fmt"
	"time"
)

// Defaults applied when the corresponding Config field is zero.
const (
	DefaultPelletValue  = 10
	DefaultTickInterval = 150 * time.Millisecond
)

// Config describes one episode. Layout fixes positions; when it lists walls
// they replace the Walls generator.
type Config struct {
	Height int
	Width  int

	PelletCount int
	GhostCount  int
	Walls       WallLayout
	Layout      *Layout

	StepBudget   int           // 0 means unlimited
	TickInterval time.Duration // cadence of Controller.Run
	PelletValue  int           // 0 means DefaultPelletValue

	WrapAround    bool
	WallCollision WallCollision
	GhostPolicy   GhostPolicy

	Seed int64
}

// DefaultConfig is a 10x10 open board with 10 pellets and 2 stationary ghosts.
func DefaultConfig() Config {
	return Config{
		Height:       10,
		Width:        10,
		PelletCount:  10,
		GhostCount:   2,
		Walls:        NoWalls{},
		TickInterval: DefaultTickInterval,
		PelletValue:  DefaultPelletValue,
		GhostPolicy:  Stationary{},
	}
}

func (c Config) withDefaults() Config {
	if c.PelletValue == 0 {
		c.PelletValue = DefaultPelletValue
	}
	if c.TickInterval == 0 {
		c.TickInterval = DefaultTickInterval
	}
	if c.Walls == nil {
		c.Walls = NoWalls{}
	}
	if c.GhostPolicy == nil {
		c.GhostPolicy = Stationary{}
	}
	return c
}

// Validate performs the checks that do not depend on generated walls.
func (c Config) Validate() error {
	if c.Height < 1 || c.Width < 1 {
		return fmt.Errorf("engine: grid size %dx%d: %w", c.Height, c.Width, ErrConfiguration)
	}
	if c.PelletCount < 0 || c.GhostCount < 0 {
		return fmt.Errorf("engine: negative population (pellets %d, ghosts %d): %w", c.PelletCount, c.GhostCount, ErrConfiguration)
	}
	if c.StepBudget < 0 {
		return fmt.Errorf("engine: negative step budget %d: %w", c.StepBudget, ErrConfiguration)
	}
	if c.TickInterval < 0 {
		return fmt.Errorf("engine: negative tick interval %s: %w", c.TickInterval, ErrConfiguration)
	}
	if c.PelletValue < 0 {
		return fmt.Errorf("engine: negative pellet value %d: %w", c.PelletValue, ErrConfiguration)
	}
	if c.WallCollision != WallBlock && c.WallCollision != WallLethal {
		return fmt.Errorf("engine: wall collision policy %d: %w", c.WallCollision, ErrConfiguration)
	}
	if c.pellets() < 1 {
		return fmt.Errorf("engine: episode needs at least one pellet: %w", ErrConfiguration)
	}
	if c.Layout != nil && c.Layout.Facing != DirNone && !c.Layout.Facing.Valid() {
		return fmt.Errorf("engine: layout facing %d: %w", c.Layout.Facing, ErrConfiguration)
	}
	return nil
}

// checkCapacity verifies that player, ghosts and pellets fit beside the walls.
func (c Config) checkCapacity(walls int) error {
	need := walls + 1 + c.ghosts() + c.pellets()
	if cells := c.Height * c.Width; need > cells {
		return fmt.Errorf("engine: %d walls + player + %d ghosts + %d pellets exceed %d cells: %w",
			walls, c.ghosts(), c.pellets(), cells, ErrConfiguration)
	}
	return nil
}

func (c Config) pellets() int {
	if c.Layout != nil && len(c.Layout.Pellets) > 0 {
		return len(c.Layout.Pellets)
	}
	return c.PelletCount
}

func (c Config) ghosts() int {
	if c.Layout != nil && len(c.Layout.Ghosts) > 0 {
		return len(c.Layout.Ghosts)
	}
	return c.GhostCount
}
