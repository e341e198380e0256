package engine

import (
	"fmt"
	"math/rand"
)

// Kind tags what occupies a cell. The set is closed; behaviour hangs off the
// capability predicates rather than a shared base type.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindWall
	KindPellet
	KindGhost
	KindPlayer
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindPellet:
		return "pellet"
	case KindGhost:
		return "ghost"
	case KindPlayer:
		return "player"
	default:
		return "empty"
	}
}

// Movable reports whether entities of this kind change position between ticks.
func (k Kind) Movable() bool { return k == KindPlayer || k == KindGhost }

// Blocking reports whether the player cannot enter a cell of this kind.
func (k Kind) Blocking() bool { return k == KindWall }

// Collectible reports whether the player consumes this kind on contact.
func (k Kind) Collectible() bool { return k == KindPellet }

// Lethal reports whether contact with this kind ends the episode.
func (k Kind) Lethal() bool { return k == KindGhost }

// Glyph is the map-file character for the kind.
func (k Kind) Glyph() rune {
	switch k {
	case KindWall:
		return '#'
	case KindPellet:
		return 'o'
	case KindGhost:
		return 'G'
	case KindPlayer:
		return 'O'
	default:
		return ' '
	}
}

// PlayerAgent is the single player-controlled entity.
type PlayerAgent struct {
	Position Coord
	Facing   Direction
}

// Entities holds every entity of one episode.
type Entities struct {
	Walls   CoordSet
	Pellets CoordSet
	Ghosts  []Coord
	Player  PlayerAgent
}

// NewEntities returns an empty registry.
func NewEntities() *Entities {
	return &Entities{
		Walls:   NewCoordSet(),
		Pellets: NewCoordSet(),
	}
}

// PlaceInitial installs the walls and samples the player, ghostCount ghosts and
// pelletCount pellets onto distinct free cells.
func (e *Entities) PlaceInitial(g Grid, walls []Coord, pelletCount, ghostCount int, rng *rand.Rand) error {
	return e.Populate(g, walls, nil, pelletCount, ghostCount, rng)
}

// PlaceExplicit installs a fully specified layout. The layout must name the
// player start and at least one pellet.
func (e *Entities) PlaceExplicit(g Grid, layout Layout) error {
	if layout.Player == nil {
		return fmt.Errorf("engine: explicit layout without player start: %w", ErrConfiguration)
	}
	if len(layout.Pellets) == 0 {
		return fmt.Errorf("engine: explicit layout without pellets: %w", ErrConfiguration)
	}
	return e.Populate(g, layout.Walls, &layout, 0, 0, nil)
}

// Populate is the general placement routine. Every cell the layout fixes is
// validated and claimed first; the rest is then sampled in the order player,
// ghosts, pellets, each sample excluding walls and every cell claimed before it.
func (e *Entities) Populate(g Grid, walls []Coord, fixed *Layout, pelletCount, ghostCount int, rng *rand.Rand) error {
	e.Walls = NewCoordSet()
	e.Pellets = NewCoordSet()
	e.Ghosts = nil
	e.Player = PlayerAgent{Facing: DirRight}

	for _, w := range walls {
		if !g.Contains(w) {
			return fmt.Errorf("engine: wall %v outside %dx%d grid: %w", w, g.Height, g.Width, ErrConfiguration)
		}
		e.Walls.Put(w)
	}

	occupied := NewCoordSet()
	e.Walls.Each(func(c Coord) { occupied.Put(c) })

	claim := func(what string, c Coord) error {
		if !g.Contains(c) {
			return fmt.Errorf("engine: %s %v outside %dx%d grid: %w", what, c, g.Height, g.Width, ErrConfiguration)
		}
		if e.Walls.Has(c) {
			return fmt.Errorf("engine: %s %v on a wall: %w", what, c, ErrConfiguration)
		}
		if occupied.Has(c) {
			return fmt.Errorf("engine: %s %v on an occupied cell: %w", what, c, ErrConfiguration)
		}
		occupied.Put(c)
		return nil
	}
	sample := func() (Coord, error) {
		if rng == nil {
			return Coord{}, fmt.Errorf("engine: random placement without a source: %w", ErrConfiguration)
		}
		c, err := g.RandomFreeCell(rng, occupied)
		if err != nil {
			return Coord{}, err
		}
		occupied.Put(c)
		return c, nil
	}

	var (
		fixedPlayer  bool
		fixedGhosts  bool
		fixedPellets bool
	)
	if fixed != nil {
		if fixed.Player != nil {
			if err := claim("player start", *fixed.Player); err != nil {
				return err
			}
			e.Player.Position = *fixed.Player
			fixedPlayer = true
		}
		if fixed.Facing.Valid() {
			e.Player.Facing = fixed.Facing
		}
		for _, gh := range fixed.Ghosts {
			if err := claim("ghost", gh); err != nil {
				return err
			}
			e.Ghosts = append(e.Ghosts, gh)
			fixedGhosts = true
		}
		for _, p := range fixed.Pellets {
			if err := claim("pellet", p); err != nil {
				return err
			}
			e.Pellets.Put(p)
			fixedPellets = true
		}
	}

	if !fixedPlayer {
		pos, err := sample()
		if err != nil {
			return err
		}
		e.Player.Position = pos
	}
	if !fixedGhosts {
		for range ghostCount {
			pos, err := sample()
			if err != nil {
				return err
			}
			e.Ghosts = append(e.Ghosts, pos)
		}
	}
	if !fixedPellets {
		for range pelletCount {
			pos, err := sample()
			if err != nil {
				return err
			}
			e.Pellets.Put(pos)
		}
	}

	return nil
}

// GhostAt reports whether any ghost occupies c.
func (e *Entities) GhostAt(c Coord) bool {
	for _, g := range e.Ghosts {
		if g == c {
			return true
		}
	}
	return false
}

// At returns the most significant kind at c: player, then ghost, then pellet, then wall.
func (e *Entities) At(c Coord) Kind {
	switch {
	case e.Player.Position == c:
		return KindPlayer
	case e.GhostAt(c):
		return KindGhost
	case e.Pellets.Has(c):
		return KindPellet
	case e.Walls.Has(c):
		return KindWall
	default:
		return KindEmpty
	}
}
