package engine

import (
	"fmt"
	"math/rand"
)

// Controller owns the episode lifecycle (Idle, Running, Won or Lost) and the
// per-tick algorithm. SubmitDirection and SubmitAction may be called from any
// goroutine; every other method belongs to the goroutine driving the ticks.
type Controller struct {
	mailbox Mailbox

	cfg      Config
	grid     Grid
	resolver Resolver
	ents     *Entities
	engine   *Engine
	last     TickResult
}

// NewController returns an Idle controller. Call Reset to start an episode.
func NewController() *Controller {
	return &Controller{}
}

// Reset discards any current episode and builds a fresh one from cfg. On error
// the previous episode, if any, is left untouched.
func (c *Controller) Reset(cfg Config) (Snapshot, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return Snapshot{}, err
	}

	grid, err := NewGrid(cfg.Height, cfg.Width)
	if err != nil {
		return Snapshot{}, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	var walls []Coord
	if cfg.Layout != nil && len(cfg.Layout.Walls) > 0 {
		walls = cfg.Layout.Walls
	} else {
		walls = cfg.Walls.Walls(grid, rng)
	}
	if err := cfg.checkCapacity(NewCoordSet(walls...).Size()); err != nil {
		return Snapshot{}, err
	}

	ents := NewEntities()
	if err := ents.Populate(grid, walls, cfg.Layout, cfg.PelletCount, cfg.GhostCount, rng); err != nil {
		return Snapshot{}, err
	}

	rules := Rules{
		PelletValue:   cfg.PelletValue,
		StepBudget:    cfg.StepBudget,
		WallCollision: cfg.WallCollision,
	}

	c.cfg = cfg
	c.grid = grid
	c.resolver = Resolver{Wrap: cfg.WrapAround}
	c.ents = ents
	c.engine = NewEngine(grid, ents, rules, cfg.GhostPolicy, rng)
	c.last = TickResult{Status: StatusRunning}
	c.mailbox.Clear()

	return c.engine.Snapshot(), nil
}

// SubmitDirection queues d for the next tick, replacing any earlier pending
// direction. It never blocks.
func (c *Controller) SubmitDirection(d Direction) error {
	if !d.Valid() {
		return fmt.Errorf("engine: submit direction %d: %w", d, ErrConfiguration)
	}
	c.mailbox.Put(d)
	return nil
}

// SubmitAction queues the direction for action index i (0 Up, 1 Right, 2 Down, 3 Left).
func (c *Controller) SubmitAction(i int) error {
	d, err := DirectionFromIndex(i)
	if err != nil {
		return err
	}
	c.mailbox.Put(d)
	return nil
}

// Tick advances the episode by one step:
//
//  1. the latest pending direction, if any, becomes the player's facing
//  2. the resolver turns facing into a candidate cell
//  3. the engine resolves the tick
//  4. a snapshot of the result is returned
func (c *Controller) Tick() (Snapshot, error) {
	if c.engine == nil {
		return Snapshot{}, fmt.Errorf("engine: tick before reset: %w", ErrInvalidState)
	}
	if st := c.engine.State().Status; st != StatusRunning {
		return Snapshot{}, fmt.Errorf("engine: tick in status %s: %w", st, ErrInvalidState)
	}

	if d, ok := c.mailbox.Take(); ok {
		c.ents.Player.Facing = d
	}
	candidate := c.resolver.Resolve(c.ents.Player.Position, c.ents.Player.Facing, c.grid)

	res, err := c.engine.ResolveTick(candidate)
	if err != nil {
		return Snapshot{}, err
	}
	c.last = res

	return c.engine.Snapshot(), nil
}

// Status returns the lifecycle stage; StatusIdle before the first Reset.
func (c *Controller) Status() Status {
	if c.engine == nil {
		return StatusIdle
	}
	return c.engine.State().Status
}

// Snapshot returns the current world, or a zero Snapshot while Idle.
func (c *Controller) Snapshot() Snapshot {
	if c.engine == nil {
		return Snapshot{Status: StatusIdle}
	}
	return c.engine.Snapshot()
}

// LastResult describes the most recent tick.
func (c *Controller) LastResult() TickResult {
	return c.last
}

// Config returns the configuration of the current episode, defaults applied.
func (c *Controller) Config() Config {
	return c.cfg
}
