// Package pacman adapts the engine to the registry: one Game per board
// variant, rendered into a core.Screen.
package pacman

import (
	"fmt"
	"sync"
	"time"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maps"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// RandomID is the variant that builds a board from the configuration file.
const RandomID = "random"

// Package-level configuration shared by every variant instance.
var (
	settingsMu sync.RWMutex
	settings   = config.DefaultPacmanConfig()
)

// SetConfig replaces the configuration used by subsequent Resets.
func SetConfig(cfg config.PacmanConfig) {
	settingsMu.Lock()
	settings = cfg
	settingsMu.Unlock()
}

// CurrentConfig returns the configuration used by Reset.
func CurrentConfig() config.PacmanConfig {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

func init() {
	registry.Register(RandomID, func() registry.Game {
		return New()
	})

	builtin, err := maps.Builtin()
	if err != nil {
		panic(err)
	}
	for _, m := range builtin {
		id, title := m.ID, m.Name
		registry.Register(id, func() registry.Game {
			return newVariant(id, title)
		})
	}
}

// Game is one playable variant.
type Game struct {
	id    string
	title string
	board *maps.Map // fixed map; nil for the random board

	ctrl       *engine.Controller
	snap       engine.Snapshot
	seed       int64
	difficulty string
	paused     bool
	err        error
}

// New creates the random-board variant.
func New() *Game {
	return &Game{id: RandomID, title: "Random Board", ctrl: engine.NewController()}
}

// NewWithMap creates a variant that always plays m.
func NewWithMap(m maps.Map) *Game {
	return &Game{id: m.ID, title: m.Name, board: &m, ctrl: engine.NewController()}
}

// newVariant creates a named map variant; the map is resolved on Reset so a
// file in the configured map directory can shadow the builtin.
func newVariant(id, title string) *Game {
	return &Game{id: id, title: title, ctrl: engine.NewController()}
}

// ID returns the variant identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// Reset builds a fresh episode from the shared configuration, the runtime
// difficulty and seed, and the variant's map.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	g.paused = false
	g.err = nil

	ec, board, err := g.engineConfig(rc)
	if err != nil {
		g.err = err
		return err
	}

	snap, err := g.ctrl.Reset(ec)
	if err != nil {
		g.err = fmt.Errorf("pacman: %s: %w", g.id, err)
		return g.err
	}
	g.board = board
	g.seed = rc.Seed
	g.snap = snap
	return nil
}

func (g *Game) engineConfig(rc core.RuntimeConfig) (engine.Config, *maps.Map, error) {
	cfg := CurrentConfig()

	preset := config.DifficultyPreset(cfg.Difficulty)
	if rc.Difficulty != "" {
		preset = config.DifficultyPreset(rc.Difficulty)
	}
	p, err := config.ParseDifficulty(string(preset))
	if err != nil {
		return engine.Config{}, nil, err
	}
	config.ApplyPacmanPreset(&cfg, p)
	g.difficulty = string(p)

	ec, err := cfg.Engine(rc.Seed)
	if err != nil {
		return engine.Config{}, nil, err
	}

	board := g.board
	if board == nil && g.id != RandomID {
		m, err := maps.Find(config.ExpandHome(cfg.Maps.Dir), g.id)
		if err != nil {
			return engine.Config{}, nil, err
		}
		board = &m
	}
	if board != nil {
		if ec, err = board.Apply(ec); err != nil {
			return engine.Config{}, nil, err
		}
	}

	if rc.TickInterval > 0 {
		ec.TickInterval = rc.TickInterval
	}
	return ec, board, nil
}

// Step feeds this frame's moves to the controller, latest last, and advances
// one tick. Pausing and finished episodes freeze the board.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.snap.Terminal() {
		g.paused = !g.paused
	}
	if g.paused || g.ctrl.Status() != engine.StatusRunning {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Moves {
		if d := DirectionFor(a); d != engine.DirNone {
			_ = g.ctrl.SubmitDirection(d)
		}
	}

	snap, err := g.ctrl.Tick()
	if err != nil {
		g.err = err
		return core.StepResult{State: g.State()}
	}
	g.snap = snap
	return core.StepResult{State: g.State(), Ended: snap.Terminal()}
}

// State returns the platform summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		Tick:     g.snap.Tick,
		GameOver: g.snap.Terminal(),
		Won:      g.snap.Status == engine.StatusWon,
		Paused:   g.paused,
	}
}

// Snapshot returns the latest engine snapshot.
func (g *Game) Snapshot() engine.Snapshot { return g.snap }

// Seed returns the seed of the current episode.
func (g *Game) Seed() int64 { return g.seed }

// Difficulty returns the preset applied by the last Reset.
func (g *Game) Difficulty() string { return g.difficulty }

// TickInterval returns the cadence of the current episode.
func (g *Game) TickInterval() time.Duration { return g.ctrl.Config().TickInterval }

// Err returns the last Reset or Tick failure, if any.
func (g *Game) Err() error { return g.err }

// Controller exposes the engine controller for frontends that drive it
// directly.
func (g *Game) Controller() *engine.Controller { return g.ctrl }

// DirectionFor maps a movement action to an engine direction.
func DirectionFor(a core.Action) engine.Direction {
	switch a {
	case core.ActionUp:
		return engine.DirUp
	case core.ActionRight:
		return engine.DirRight
	case core.ActionDown:
		return engine.DirDown
	case core.ActionLeft:
		return engine.DirLeft
	}
	return engine.DirNone
}
