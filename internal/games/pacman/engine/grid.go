package engine

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// CoordSet is the set type used for walls, pellets and exclusion lists.
type CoordSet = mapset.Set[Coord]

// NewCoordSet builds a set holding the given coordinates.
func NewCoordSet(coords ...Coord) CoordSet {
	s := mapset.New[Coord]()
	for _, c := range coords {
		s.Put(c)
	}
	return s
}

// Grid is the fixed-size board. It never changes during an episode.
type Grid struct {
	Height int
	Width  int
}

// NewGrid validates the dimensions and returns a grid.
func NewGrid(height, width int) (Grid, error) {
	if height < 1 || width < 1 {
		return Grid{}, fmt.Errorf("engine: grid size %dx%d: %w", height, width, ErrConfiguration)
	}
	return Grid{Height: height, Width: width}, nil
}

// Cells returns the number of cells on the board.
func (g Grid) Cells() int {
	return g.Height * g.Width
}

// Contains reports whether c lies inside [0, Height) x [0, Width).
func (g Grid) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

// Wrap folds c onto the board as if its edges were joined.
func (g Grid) Wrap(c Coord) Coord {
	return Coord{Row: mod(c.Row, g.Height), Col: mod(c.Col, g.Width)}
}

// Neighbours returns the in-bounds orthogonal neighbours of c in Up, Right, Down, Left order.
func (g Grid) Neighbours(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range AllDirections() {
		if n := c.Step(d); g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// RandomFreeCell samples uniformly among the cells not in excluded.
// Returns ErrExhaustedSpace when every cell is excluded.
func (g Grid) RandomFreeCell(rng *rand.Rand, excluded CoordSet) (Coord, error) {
	free := make([]Coord, 0, g.Cells())
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			c := C(row, col)
			if !excluded.Has(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Coord{}, fmt.Errorf("engine: %dx%d grid: %w", g.Height, g.Width, ErrExhaustedSpace)
	}
	return free[rng.Intn(len(free))], nil
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
