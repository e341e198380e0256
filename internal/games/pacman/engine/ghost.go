package engine

import (
	"fmt"
	"math/rand"
	"strings"
)

// GhostView is the read-only world a ghost policy may consult.
type GhostView interface {
	Grid() Grid
	IsWall(c Coord) bool
	Player() Coord
	Rand() *rand.Rand
}

// GhostPolicy decides where a ghost moves each tick. Results that leave the
// board, land on a wall or jump more than one step are discarded by the engine.
type GhostPolicy interface {
	Next(view GhostView, index int, pos Coord) Coord
}

// Stationary keeps every ghost where it is.
type Stationary struct{}

// Next returns pos.
func (Stationary) Next(_ GhostView, _ int, pos Coord) Coord { return pos }

// RandomWalk moves each ghost to a uniformly chosen open neighbour, or keeps
// it in place, using the episode's seeded source.
type RandomWalk struct{}

// Next picks among pos and its non-wall neighbours.
func (RandomWalk) Next(view GhostView, _ int, pos Coord) Coord {
	options := []Coord{pos}
	for _, n := range view.Grid().Neighbours(pos) {
		if !view.IsWall(n) {
			options = append(options, n)
		}
	}
	return options[view.Rand().Intn(len(options))]
}

// GhostPolicyByName resolves the names accepted in configuration files.
func GhostPolicyByName(name string) (GhostPolicy, error) {
	switch strings.ToLower(name) {
	case "", "stationary", "none":
		return Stationary{}, nil
	case "random", "random_walk", "wander":
		return RandomWalk{}, nil
	}
	return nil, fmt.Errorf("engine: unknown ghost policy %q: %w", name, ErrConfiguration)
}
