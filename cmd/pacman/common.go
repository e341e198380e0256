package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maps"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// runtimeConfig sizes the screen from the terminal and picks the seed.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.Difficulty = appConfig.Difficulty
	return cfg
}

// variantArg returns the board named on the command line, or the random one.
func variantArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return pacman.RandomID
}

// createGame resolves a board: a map file when mapFile is set, otherwise a
// registered variant.
func createGame(id, mapFile string) (*pacman.Game, error) {
	if mapFile != "" {
		m, err := maps.NewLoader("").LoadFile(config.ExpandHome(mapFile))
		if err != nil {
			return nil, err
		}
		return pacman.NewWithMap(m), nil
	}

	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown board %q (run 'pacman list' to see available boards)", id)
	}
	g, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	pg, ok := g.(*pacman.Game)
	if !ok {
		return nil, fmt.Errorf("board %q is not a pacman game", id)
	}
	return pg, nil
}

// openStore opens the journal. Failure is not fatal: the game runs without it.
func openStore() *storage.Store {
	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		logger.Warn("could not open episode journal", "path", appConfig.Storage.Path, "error", err)
		return nil
	}
	return store
}

// currentUser names the local player in the journal.
func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}

// recordSnapshot journals an episode driven outside the TUI.
func recordSnapshot(store *storage.Store, g *pacman.Game, snap engine.Snapshot) {
	if store == nil || snap.Tick == 0 {
		return
	}
	e := storage.Episode{
		Variant:     g.ID(),
		Player:      currentUser(),
		Difficulty:  g.Difficulty(),
		Seed:        g.Seed(),
		Status:      "abandoned",
		Score:       snap.Score,
		Ticks:       snap.Tick,
		PelletsLeft: snap.PelletsLeft(),
	}
	if snap.Terminal() {
		e.Status = snap.Status.String()
	}
	if snap.Reason != engine.ReasonNone {
		e.Reason = snap.Reason.String()
	}
	id, err := store.SaveEpisode(e)
	if err != nil {
		logger.Warn("could not record episode", "error", err)
		return
	}
	logger.Debug("episode recorded", "episode", id, "status", e.Status, "score", e.Score)
}
