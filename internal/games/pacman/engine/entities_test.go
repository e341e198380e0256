package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func TestPlaceInitialDistinctCells(t *testing.T) {
	g := Grid{Height: 6, Width: 6}
	walls := BorderWalls{}.Walls(g, nil)

	for seed := int64(0); seed < 20; seed++ {
		ents := NewEntities()
		err := ents.PlaceInitial(g, walls, 8, 3, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed %d: PlaceInitial() failed: %v", seed, err)
		}

		seen := NewCoordSet(ents.Player.Position)
		for _, gh := range ents.Ghosts {
			if seen.Has(gh) || ents.Walls.Has(gh) {
				t.Fatalf("seed %d: ghost %v overlaps", seed, gh)
			}
			seen.Put(gh)
		}
		if ents.Walls.Has(ents.Player.Position) {
			t.Fatalf("seed %d: player on wall", seed)
		}
		ents.Pellets.Each(func(p Coord) {
			if seen.Has(p) || ents.Walls.Has(p) {
				t.Fatalf("seed %d: pellet %v overlaps", seed, p)
			}
		})
		if ents.Pellets.Size() != 8 || len(ents.Ghosts) != 3 {
			t.Fatalf("seed %d: %d pellets, %d ghosts", seed, ents.Pellets.Size(), len(ents.Ghosts))
		}
		if ents.Player.Facing != DirRight {
			t.Errorf("seed %d: facing %v, expected right", seed, ents.Player.Facing)
		}
	}
}

func TestPlaceInitialExhaustsSpace(t *testing.T) {
	g := Grid{Height: 2, Width: 2}
	ents := NewEntities()
	err := ents.PlaceInitial(g, nil, 4, 0, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrExhaustedSpace) {
		t.Errorf("PlaceInitial() error = %v, expected ErrExhaustedSpace", err)
	}
}

func TestPlaceInitialWallOutsideGrid(t *testing.T) {
	g := Grid{Height: 2, Width: 2}
	ents := NewEntities()
	err := ents.PlaceInitial(g, []Coord{C(5, 5)}, 1, 0, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("PlaceInitial() error = %v, expected ErrConfiguration", err)
	}
}

func TestPlaceExplicitRequiresPlayerAndPellets(t *testing.T) {
	g := Grid{Height: 3, Width: 3}
	tests := []struct {
		name   string
		layout Layout
	}{
		{"no player", Layout{Pellets: []Coord{C(0, 0)}}},
		{"no pellets", Layout{Player: at(C(0, 0))}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := NewEntities().PlaceExplicit(g, tc.layout); !errors.Is(err, ErrConfiguration) {
				t.Errorf("PlaceExplicit() error = %v, expected ErrConfiguration", err)
			}
		})
	}
}

func TestPopulateMixedMode(t *testing.T) {
	g := Grid{Height: 4, Width: 4}
	layout := &Layout{
		Walls:  []Coord{C(1, 1), C(2, 2)},
		Player: at(C(0, 0)),
		Facing: DirDown,
	}
	ents := NewEntities()
	if err := ents.Populate(g, layout.Walls, layout, 5, 2, rand.New(rand.NewSource(4))); err != nil {
		t.Fatalf("Populate() failed: %v", err)
	}
	if ents.Player.Position != C(0, 0) || ents.Player.Facing != DirDown {
		t.Errorf("player = %+v, expected fixed start facing down", ents.Player)
	}
	if ents.Pellets.Size() != 5 || len(ents.Ghosts) != 2 {
		t.Errorf("sampled %d pellets, %d ghosts; expected 5 and 2", ents.Pellets.Size(), len(ents.Ghosts))
	}
}

func TestPopulateSamplesAroundFixedCells(t *testing.T) {
	g := Grid{Height: 1, Width: 4}
	layout := &Layout{
		Ghosts:  []Coord{C(0, 3)},
		Pellets: []Coord{C(0, 0), C(0, 1)},
	}
	for seed := int64(0); seed < 50; seed++ {
		ents := NewEntities()
		if err := ents.Populate(g, nil, layout, 0, 0, rand.New(rand.NewSource(seed))); err != nil {
			t.Fatalf("seed %d: Populate() failed: %v", seed, err)
		}
		if ents.Player.Position != C(0, 2) {
			t.Errorf("seed %d: player at %v, expected the only free cell (0,2)", seed, ents.Player.Position)
		}
		if len(ents.Ghosts) != 1 || ents.Ghosts[0] != C(0, 3) || ents.Pellets.Size() != 2 {
			t.Errorf("seed %d: ghosts %v, %d pellets; expected the fixed ones", seed, ents.Ghosts, ents.Pellets.Size())
		}
	}
}

func TestPopulateRejectsOverlappingFixedCells(t *testing.T) {
	g := Grid{Height: 2, Width: 2}
	layout := &Layout{Ghosts: []Coord{C(0, 0)}, Pellets: []Coord{C(0, 0)}}
	err := NewEntities().Populate(g, nil, layout, 0, 0, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("Populate() error = %v, expected ErrConfiguration", err)
	}
}

func TestPopulateNeedsRandomSource(t *testing.T) {
	g := Grid{Height: 3, Width: 3}
	ents := NewEntities()
	err := ents.Populate(g, nil, &Layout{Player: at(C(0, 0))}, 2, 0, nil)
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("Populate() error = %v, expected ErrConfiguration", err)
	}
}

func TestKindCapabilities(t *testing.T) {
	tests := []struct {
		kind                                   Kind
		movable, blocking, collectible, lethal bool
	}{
		{KindEmpty, false, false, false, false},
		{KindWall, false, true, false, false},
		{KindPellet, false, false, true, false},
		{KindGhost, true, false, false, true},
		{KindPlayer, true, false, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if tc.kind.Movable() != tc.movable || tc.kind.Blocking() != tc.blocking ||
				tc.kind.Collectible() != tc.collectible || tc.kind.Lethal() != tc.lethal {
				t.Errorf("capabilities of %v do not match", tc.kind)
			}
		})
	}
}

func TestWallLayouts(t *testing.T) {
	g := Grid{Height: 5, Width: 5}

	if got := len(BorderWalls{}.Walls(g, nil)); got != 16 {
		t.Errorf("border walls = %d, expected 16", got)
	}

	diag := DiagonalWalls{}.Walls(g, nil)
	expected := []Coord{C(2, 2), C(3, 3), C(4, 4)}
	if len(diag) != len(expected) {
		t.Fatalf("diagonal walls = %v, expected %v", diag, expected)
	}
	for i := range expected {
		if diag[i] != expected[i] {
			t.Errorf("diagonal[%d] = %v, expected %v", i, diag[i], expected[i])
		}
	}
	if got := len(DiagonalWalls{Length: 10}.Walls(g, nil)); got != 3 {
		t.Errorf("clipped diagonal = %d cells, expected 3", got)
	}

	scatter := ScatterWalls{Count: 100}.Walls(g, rand.New(rand.NewSource(2)))
	if len(scatter) != 12 {
		t.Errorf("scatter walls = %d, expected half the board (12)", len(scatter))
	}
	if NewCoordSet(scatter...).Size() != len(scatter) {
		t.Error("scatter walls are not distinct")
	}

	if _, err := WallLayoutByName("maze", 0); !errors.Is(err, ErrConfiguration) {
		t.Errorf("WallLayoutByName(maze) error = %v, expected ErrConfiguration", err)
	}
}

func TestRandomWalkStaysLegal(t *testing.T) {
	g := Grid{Height: 3, Width: 3}
	eng, ents := newTestEngine(t, g, Layout{
		Walls:   []Coord{C(0, 1), C(1, 0)},
		Player:  at(C(2, 2)),
		Ghosts:  []Coord{C(0, 0)},
		Pellets: []Coord{C(2, 0)},
	}, Rules{PelletValue: 10}, RandomWalk{})

	for range 50 {
		if _, err := eng.ResolveTick(C(2, 2)); err != nil {
			t.Fatalf("ResolveTick() failed: %v", err)
		}
		if ents.Ghosts[0] != C(0, 0) {
			t.Fatalf("boxed-in ghost moved to %v", ents.Ghosts[0])
		}
	}
}
