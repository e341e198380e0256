package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func openConfig(h, w int, layout *Layout) Config {
	return Config{
		Height:      h,
		Width:       w,
		Layout:      layout,
		PelletValue: 10,
		StepBudget:  10,
	}
}

func drive(t *testing.T, c *Controller, moves ...Direction) Snapshot {
	t.Helper()
	var snap Snapshot
	for i, d := range moves {
		if err := c.SubmitDirection(d); err != nil {
			t.Fatalf("SubmitDirection(%v) failed: %v", d, err)
		}
		s, err := c.Tick()
		if err != nil {
			t.Fatalf("tick %d failed: %v", i+1, err)
		}
		snap = s
	}
	return snap
}

func TestControllerCollectsLastPellet(t *testing.T) {
	c := NewController()
	_, err := c.Reset(openConfig(5, 5, &Layout{
		Player:  at(C(0, 0)),
		Facing:  DirRight,
		Pellets: []Coord{C(2, 2)},
	}))
	if err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	snap := drive(t, c, DirRight, DirRight, DirDown, DirDown)

	if snap.Player != C(2, 2) {
		t.Errorf("player = %v, expected (2,2)", snap.Player)
	}
	if snap.Score != 10 {
		t.Errorf("score = %d, expected 10", snap.Score)
	}
	if snap.Status != StatusWon {
		t.Errorf("status = %v, expected won", snap.Status)
	}
	if snap.Tick != 4 {
		t.Errorf("tick = %d, expected 4", snap.Tick)
	}
	if snap.PelletsLeft() != 0 {
		t.Errorf("pellets left = %d, expected 0", snap.PelletsLeft())
	}
}

func TestControllerWallBlocksButCountsTick(t *testing.T) {
	c := NewController()
	_, err := c.Reset(openConfig(5, 5, &Layout{
		Walls:   []Coord{C(1, 2)},
		Player:  at(C(1, 1)),
		Pellets: []Coord{C(4, 4)},
	}))
	if err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	snap := drive(t, c, DirRight)
	if snap.Player != C(1, 1) {
		t.Errorf("player = %v, expected (1,1)", snap.Player)
	}
	if snap.Tick != 1 {
		t.Errorf("tick = %d, expected 1", snap.Tick)
	}
	if snap.Status != StatusRunning {
		t.Errorf("status = %v, expected running", snap.Status)
	}
	if !c.LastResult().Blocked {
		t.Error("LastResult().Blocked = false, expected true")
	}
}

func TestControllerGhostEndsEpisode(t *testing.T) {
	c := NewController()
	_, err := c.Reset(openConfig(5, 5, &Layout{
		Player:  at(C(3, 2)),
		Ghosts:  []Coord{C(3, 3)},
		Pellets: []Coord{C(0, 0)},
	}))
	if err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	snap := drive(t, c, DirRight)
	if snap.Status != StatusLost || snap.Reason != ReasonGhost {
		t.Errorf("result = %v/%v, expected lost/ghost", snap.Status, snap.Reason)
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, expected 0", snap.Score)
	}

	if _, err := c.Tick(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Tick() after loss error = %v, expected ErrInvalidState", err)
	}
}

func TestControllerLatestDirectionWins(t *testing.T) {
	c := NewController()
	_, err := c.Reset(openConfig(5, 5, &Layout{
		Player:  at(C(2, 2)),
		Pellets: []Coord{C(0, 0)},
	}))
	if err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	for _, d := range []Direction{DirUp, DirLeft, DirDown} {
		if err := c.SubmitDirection(d); err != nil {
			t.Fatalf("SubmitDirection() failed: %v", err)
		}
	}
	snap, err := c.Tick()
	if err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}
	if snap.Player != C(3, 2) || snap.Facing != DirDown {
		t.Errorf("player = %v facing %v, expected (3,2) facing down", snap.Player, snap.Facing)
	}

	// No new input: keep going the same way.
	snap, err = c.Tick()
	if err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}
	if snap.Player != C(4, 2) {
		t.Errorf("player = %v, expected (4,2)", snap.Player)
	}
}

func TestControllerSubmitRejectsInvalid(t *testing.T) {
	c := NewController()
	if err := c.SubmitDirection(DirNone); !errors.Is(err, ErrConfiguration) {
		t.Errorf("SubmitDirection(none) error = %v, expected ErrConfiguration", err)
	}
	if err := c.SubmitDirection(Direction(42)); !errors.Is(err, ErrConfiguration) {
		t.Errorf("SubmitDirection(42) error = %v, expected ErrConfiguration", err)
	}
	for _, i := range []int{-1, 4} {
		if err := c.SubmitAction(i); !errors.Is(err, ErrConfiguration) {
			t.Errorf("SubmitAction(%d) error = %v, expected ErrConfiguration", i, err)
		}
	}
}

func TestControllerSubmitAction(t *testing.T) {
	c := NewController()
	_, err := c.Reset(openConfig(3, 3, &Layout{
		Player:  at(C(1, 1)),
		Pellets: []Coord{C(0, 0)},
	}))
	if err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if err := c.SubmitAction(0); err != nil {
		t.Fatalf("SubmitAction(0) failed: %v", err)
	}
	snap, err := c.Tick()
	if err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}
	if snap.Player != C(0, 1) {
		t.Errorf("action 0 moved player to %v, expected (0,1)", snap.Player)
	}
}

func TestControllerTickBeforeReset(t *testing.T) {
	c := NewController()
	if c.Status() != StatusIdle {
		t.Errorf("Status() = %v, expected idle", c.Status())
	}
	if _, err := c.Tick(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Tick() error = %v, expected ErrInvalidState", err)
	}
}

func TestControllerResetRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"empty grid", Config{Height: 0, Width: 5, PelletCount: 1}},
		{"no pellets", Config{Height: 5, Width: 5}},
		{"negative ghosts", Config{Height: 5, Width: 5, PelletCount: 1, GhostCount: -1}},
		{"overfull", Config{Height: 2, Width: 2, PelletCount: 3, GhostCount: 1}},
		{"overfull with walls", Config{Height: 3, Width: 3, PelletCount: 2, Walls: BorderWalls{}}},
		{"pellet on wall", Config{Height: 3, Width: 3, Layout: &Layout{
			Walls: []Coord{C(1, 1)}, Player: at(C(0, 0)), Pellets: []Coord{C(1, 1)},
		}}},
		{"pellet under player", Config{Height: 3, Width: 3, Layout: &Layout{
			Player: at(C(0, 0)), Pellets: []Coord{C(0, 0)},
		}}},
		{"player off board", Config{Height: 3, Width: 3, Layout: &Layout{
			Player: at(C(5, 5)), Pellets: []Coord{C(0, 0)},
		}}},
		{"ghost on player", Config{Height: 3, Width: 3, Layout: &Layout{
			Player: at(C(0, 0)), Ghosts: []Coord{C(0, 0)}, Pellets: []Coord{C(2, 2)},
		}}},
		{"bad wall policy", Config{Height: 3, Width: 3, PelletCount: 1, WallCollision: WallCollision(9)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewController()
			if _, err := c.Reset(tc.cfg); !errors.Is(err, ErrConfiguration) {
				t.Errorf("Reset() error = %v, expected ErrConfiguration", err)
			}
			if c.Status() != StatusIdle {
				t.Errorf("Status() = %v after failed reset, expected idle", c.Status())
			}
		})
	}
}

func TestControllerResetPartialLayoutAnySeed(t *testing.T) {
	layout := &Layout{Ghosts: []Coord{C(0, 2)}, Pellets: []Coord{C(0, 0)}}
	for seed := int64(1); seed <= 50; seed++ {
		cfg := openConfig(1, 3, layout)
		cfg.Seed = seed
		snap, err := NewController().Reset(cfg)
		if err != nil {
			t.Fatalf("seed %d: Reset() failed: %v", seed, err)
		}
		if snap.Player != C(0, 1) {
			t.Errorf("seed %d: player at %v, expected (0,1)", seed, snap.Player)
		}
	}
}

func TestControllerZeroPelletValueUsesDefault(t *testing.T) {
	cfg := openConfig(1, 2, &Layout{Player: at(C(0, 0)), Pellets: []Coord{C(0, 1)}})
	cfg.PelletValue = 0
	c := NewController()
	if _, err := c.Reset(cfg); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	snap := drive(t, c, DirRight)
	if snap.PelletValue != DefaultPelletValue || snap.Score != DefaultPelletValue {
		t.Errorf("pellet value %d, score %d; expected %d", snap.PelletValue, snap.Score, DefaultPelletValue)
	}
}

func TestControllerFailedResetKeepsEpisode(t *testing.T) {
	c := NewController()
	if _, err := c.Reset(openConfig(3, 3, &Layout{Player: at(C(0, 0)), Pellets: []Coord{C(2, 2)}})); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	drive(t, c, DirRight)

	if _, err := c.Reset(Config{Height: 0, Width: 0}); err == nil {
		t.Fatal("Reset() with empty grid should fail")
	}
	snap := c.Snapshot()
	if snap.Tick != 1 || snap.Player != C(0, 1) {
		t.Errorf("snapshot = tick %d player %v, expected the previous episode", snap.Tick, snap.Player)
	}
}

func TestControllerResetStartsFresh(t *testing.T) {
	c := NewController()
	cfg := openConfig(1, 2, &Layout{Player: at(C(0, 0)), Pellets: []Coord{C(0, 1)}})
	if _, err := c.Reset(cfg); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	drive(t, c, DirRight)
	if c.Status() != StatusWon {
		t.Fatalf("Status() = %v, expected won", c.Status())
	}

	// A stale direction must not leak into the new episode.
	if err := c.SubmitDirection(DirLeft); err != nil {
		t.Fatalf("SubmitDirection() failed: %v", err)
	}
	snap, err := c.Reset(cfg)
	if err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if snap.Tick != 0 || snap.Score != 0 || snap.Status != StatusRunning || snap.PelletsLeft() != 1 {
		t.Errorf("fresh snapshot = %+v", snap)
	}
	snap, err = c.Tick()
	if err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}
	if snap.Status != StatusWon {
		t.Errorf("status = %v, expected the default facing to win", snap.Status)
	}
}

func TestControllerDeterministicForSeed(t *testing.T) {
	cfg := Config{
		Height:      8,
		Width:       8,
		PelletCount: 6,
		GhostCount:  3,
		Walls:       ScatterWalls{Count: 8},
		GhostPolicy: RandomWalk{},
		Seed:        99,
	}
	moves := []Direction{DirUp, DirLeft, DirDown, DirDown, DirRight, DirRight, DirUp}

	run := func() []Snapshot {
		c := NewController()
		first, err := c.Reset(cfg)
		if err != nil {
			t.Fatalf("Reset() failed: %v", err)
		}
		out := []Snapshot{first}
		for _, d := range moves {
			if c.Status() != StatusRunning {
				break
			}
			_ = c.SubmitDirection(d)
			s, err := c.Tick()
			if err != nil {
				t.Fatalf("Tick() failed: %v", err)
			}
			out = append(out, s)
		}
		return out
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("runs diverged in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].String() != b[i].String() || a[i].Score != b[i].Score || a[i].Status != b[i].Status {
			t.Fatalf("runs diverged at step %d:\n%s\n---\n%s", i, a[i], b[i])
		}
	}
}

func TestControllerInvariantsHold(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		c := NewController()
		cfg := Config{
			Height:      7,
			Width:       9,
			PelletCount: 8,
			GhostCount:  2,
			Walls:       ScatterWalls{Count: 10},
			GhostPolicy: RandomWalk{},
			StepBudget:  60,
			Seed:        seed,
		}
		snap, err := c.Reset(cfg)
		if err != nil {
			t.Fatalf("seed %d: Reset() failed: %v", seed, err)
		}
		walls := NewCoordSet(snap.Walls...)
		rng := rand.New(rand.NewSource(seed))
		prevPellets := snap.PelletsLeft()

		for c.Status() == StatusRunning {
			_ = c.SubmitAction(rng.Intn(4))
			prevTick := snap.Tick
			snap, err = c.Tick()
			if err != nil {
				t.Fatalf("seed %d: Tick() failed: %v", seed, err)
			}

			if snap.Tick != prevTick+1 {
				t.Fatalf("seed %d: tick %d after %d", seed, snap.Tick, prevTick)
			}
			if walls.Has(snap.Player) || snap.Player.Row < 0 || snap.Player.Row >= 7 || snap.Player.Col < 0 || snap.Player.Col >= 9 {
				t.Fatalf("seed %d: player at illegal cell %v", seed, snap.Player)
			}
			if snap.PelletsLeft() > prevPellets {
				t.Fatalf("seed %d: pellets grew", seed)
			}
			if want := (cfg.PelletCount - snap.PelletsLeft()) * DefaultPelletValue; snap.Score != want {
				t.Fatalf("seed %d: score %d, expected %d", seed, snap.Score, want)
			}
			if snap.Status == StatusRunning && containsSorted(snap.Pellets, snap.Player) {
				t.Fatalf("seed %d: running with a pellet under the player", seed)
			}
			for _, g := range snap.Ghosts {
				if walls.Has(g) {
					t.Fatalf("seed %d: ghost on wall %v", seed, g)
				}
			}
			prevPellets = snap.PelletsLeft()
		}
		if snap.Tick > cfg.StepBudget+1 {
			t.Errorf("seed %d: ran %d ticks past a budget of %d", seed, snap.Tick, cfg.StepBudget)
		}
	}
}
