package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// StatusAbandoned marks an episode the player left before it ended.
const StatusAbandoned = "abandoned"

// episodeSource is implemented by games that expose engine snapshots.
type episodeSource interface {
	Snapshot() engine.Snapshot
	Seed() int64
	Difficulty() string
}

// newEpisode builds a journal row from the game's current state.
func newEpisode(g registry.Game, player string) storage.Episode {
	st := g.State()
	e := storage.Episode{
		Variant: g.ID(),
		Player:  player,
		Score:   st.Score,
		Ticks:   st.Tick,
		Status:  StatusAbandoned,
	}
	if src, ok := g.(episodeSource); ok {
		snap := src.Snapshot()
		e.Seed = src.Seed()
		e.Difficulty = src.Difficulty()
		e.PelletsLeft = len(snap.Pellets)
		if snap.Terminal() {
			e.Status = snap.Status.String()
		}
		if snap.Reason != engine.ReasonNone {
			e.Reason = snap.Reason.String()
		}
	} else if st.GameOver {
		e.Status = engine.StatusLost.String()
		if st.Won {
			e.Status = engine.StatusWon.String()
		}
	}
	return e
}

// recordEpisode saves the episode if a store is configured. Journal failures
// are logged; the game carries on.
func recordEpisode(store *storage.Store, logger *log.Logger, g registry.Game, player string) {
	if store == nil {
		return
	}
	e := newEpisode(g, player)
	id, err := store.SaveEpisode(e)
	if err != nil {
		if logger != nil {
			logger.Warn("could not record episode", "variant", e.Variant, "error", err)
		}
		return
	}
	if logger != nil {
		logger.Debug("episode recorded",
			"episode", id,
			"variant", e.Variant,
			"status", e.Status,
			"score", e.Score,
			"ticks", e.Ticks,
		)
	}
}
