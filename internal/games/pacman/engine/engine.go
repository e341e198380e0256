package engine

import (
	"fmt"
	"math/rand"
	"strings"
)

// WallCollision selects what happens when the player walks into a wall.
type WallCollision uint8

const (
	// WallBlock rejects the move; the episode continues.
	WallBlock WallCollision = iota
	// WallLethal ends the episode as Lost with ReasonWall.
	WallLethal
)

// String returns the policy name used in configuration files.
func (w WallCollision) String() string {
	if w == WallLethal {
		return "lethal"
	}
	return "block"
}

// ParseWallCollision accepts "block" (or empty) and "lethal".
func ParseWallCollision(s string) (WallCollision, error) {
	switch strings.ToLower(s) {
	case "", "block":
		return WallBlock, nil
	case "lethal", "terminate":
		return WallLethal, nil
	}
	return WallBlock, fmt.Errorf("engine: unknown wall collision policy %q: %w", s, ErrConfiguration)
}

// Rules are the episode constants consulted by the collision engine.
type Rules struct {
	PelletValue   int
	StepBudget    int // 0 disables the timeout
	WallCollision WallCollision
}

// TickResult describes what one resolved tick did.
type TickResult struct {
	Tick       int
	Blocked    bool // move rejected by a wall
	Ate        bool
	PelletAt   Coord // valid when Ate
	GhostHit   bool
	ScoreDelta int
	Status     Status
	Reason     Reason
}

// Engine resolves every interaction of a tick in a fixed order and owns the
// episode state. It is not safe for concurrent use.
type Engine struct {
	grid   Grid
	ents   *Entities
	rules  Rules
	policy GhostPolicy
	rng    *rand.Rand
	state  EpisodeState
}

// NewEngine starts a Running episode over already-populated entities.
func NewEngine(g Grid, ents *Entities, rules Rules, policy GhostPolicy, rng *rand.Rand) *Engine {
	if policy == nil {
		policy = Stationary{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Engine{
		grid:   g,
		ents:   ents,
		rules:  rules,
		policy: policy,
		rng:    rng,
		state:  EpisodeState{Status: StatusRunning},
	}
}

// State returns the current episode state.
func (e *Engine) State() EpisodeState {
	return e.state
}

// ResolveTick applies one tick with the player's candidate position:
//
//  1. candidate on a wall: reject the move (or lose, under WallLethal)
//  2. commit the player position
//  3. advance ghosts
//  4. player on a ghost: Lost, skip 5-6
//  5. pellet under the player: consume and score
//  6. no pellets left: Won
//  7. tick++
//  8. tick past the step budget while still Running: Lost (timeout)
//
// Calling it on a finished episode returns ErrInvalidState and changes nothing.
func (e *Engine) ResolveTick(candidate Coord) (TickResult, error) {
	if e.state.Status != StatusRunning {
		return TickResult{}, fmt.Errorf("engine: resolve tick in status %s: %w", e.state.Status, ErrInvalidState)
	}

	var res TickResult

	blocked := !e.grid.Contains(candidate) || e.ents.Walls.Has(candidate)
	if blocked {
		res.Blocked = true
		candidate = e.ents.Player.Position
	}

	if res.Blocked && e.rules.WallCollision == WallLethal {
		e.lose(ReasonWall)
	} else {
		e.ents.Player.Position = candidate
		e.moveGhosts()

		if e.ents.GhostAt(e.ents.Player.Position) {
			res.GhostHit = true
			e.lose(ReasonGhost)
		} else {
			if e.ents.Pellets.Has(e.ents.Player.Position) {
				e.ents.Pellets.Remove(e.ents.Player.Position)
				e.state.Score += e.rules.PelletValue
				res.Ate = true
				res.PelletAt = e.ents.Player.Position
				res.ScoreDelta = e.rules.PelletValue
			}
			if e.ents.Pellets.Size() == 0 {
				e.state.Status = StatusWon
			}
		}
	}

	e.state.Tick++

	if e.state.Status == StatusRunning && e.rules.StepBudget > 0 && e.state.Tick > e.rules.StepBudget {
		e.lose(ReasonTimeout)
	}

	res.Tick = e.state.Tick
	res.Status = e.state.Status
	res.Reason = e.state.Reason
	return res, nil
}

func (e *Engine) lose(r Reason) {
	e.state.Status = StatusLost
	e.state.Reason = r
}

// moveGhosts asks the policy for each ghost's next cell, in list order.
func (e *Engine) moveGhosts() {
	for i, pos := range e.ents.Ghosts {
		next := e.policy.Next(e, i, pos)
		if next == pos || !e.grid.Contains(next) || e.ents.Walls.Has(next) || next.Manhattan(pos) != 1 {
			continue
		}
		e.ents.Ghosts[i] = next
	}
}

// Grid implements GhostView.
func (e *Engine) Grid() Grid { return e.grid }

// IsWall implements GhostView.
func (e *Engine) IsWall(c Coord) bool { return e.ents.Walls.Has(c) }

// Player implements GhostView.
func (e *Engine) Player() Coord { return e.ents.Player.Position }

// Rand implements GhostView.
func (e *Engine) Rand() *rand.Rand { return e.rng }

// Snapshot copies the full world state.
func (e *Engine) Snapshot() Snapshot {
	return newSnapshot(e.grid, e.ents, e.state, e.rules)
}
