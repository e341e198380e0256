package engine

import (
	"fmt"
	"math/rand"
	"strings"
)

// Layout fixes some or all start positions, typically from a map file.
// Empty Ghosts or Pellets fall back to random placement from the configured counts.
type Layout struct {
	Walls   []Coord
	Player  *Coord
	Facing  Direction
	Ghosts  []Coord
	Pellets []Coord
}

// WallLayout produces the wall set for an episode. It is either an explicit
// set (FixedWalls) or a generator.
type WallLayout interface {
	Walls(g Grid, rng *rand.Rand) []Coord
}

// FixedWalls is an explicit wall set.
type FixedWalls []Coord

// Walls returns the set unchanged.
func (f FixedWalls) Walls(Grid, *rand.Rand) []Coord {
	out := make([]Coord, len(f))
	copy(out, f)
	return out
}

// NoWalls is an open board.
type NoWalls struct{}

// Walls returns nil.
func (NoWalls) Walls(Grid, *rand.Rand) []Coord { return nil }

// BorderWalls rings the board with a one-cell wall.
type BorderWalls struct{}

// Walls returns the perimeter cells.
func (BorderWalls) Walls(g Grid, _ *rand.Rand) []Coord {
	var out []Coord
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if row == 0 || row == g.Height-1 || col == 0 || col == g.Width-1 {
				out = append(out, C(row, col))
			}
		}
	}
	return out
}

// DiagonalWalls places a short diagonal starting at (2,2), clipped to the board.
type DiagonalWalls struct {
	Length int // 0 means 3
}

// Walls returns the diagonal cells that fit on the board.
func (d DiagonalWalls) Walls(g Grid, _ *rand.Rand) []Coord {
	n := d.Length
	if n <= 0 {
		n = 3
	}
	var out []Coord
	for i := range n {
		c := C(2+i, 2+i)
		if g.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// ScatterWalls drops Count walls on uniformly sampled distinct cells.
type ScatterWalls struct {
	Count int
}

// Walls samples the wall cells. It never fills more than half the board.
func (s ScatterWalls) Walls(g Grid, rng *rand.Rand) []Coord {
	n := min(s.Count, g.Cells()/2)
	if n <= 0 || rng == nil {
		return nil
	}
	taken := NewCoordSet()
	out := make([]Coord, 0, n)
	for range n {
		c, err := g.RandomFreeCell(rng, taken)
		if err != nil {
			break
		}
		taken.Put(c)
		out = append(out, c)
	}
	return out
}

// WallLayoutByName resolves the names accepted in configuration files.
func WallLayoutByName(name string, count int) (WallLayout, error) {
	switch strings.ToLower(name) {
	case "", "none", "open":
		return NoWalls{}, nil
	case "border":
		return BorderWalls{}, nil
	case "diagonal":
		return DiagonalWalls{Length: count}, nil
	case "scatter", "random":
		return ScatterWalls{Count: count}, nil
	}
	return nil, fmt.Errorf("engine: unknown wall layout %q: %w", name, ErrConfiguration)
}
