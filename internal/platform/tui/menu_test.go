package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	view := m.View()
	for _, id := range []string{"arena", "classic", "corridor", "gauntlet", "random"} {
		if !strings.Contains(view, id) {
			t.Errorf("menu is missing %q", id)
		}
	}
	if m.Difficulty() != "normal" {
		t.Errorf("Difficulty() = %q, expected normal", m.Difficulty())
	}
}

func TestMenuDifficultyCycles(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Difficulty = "easy"
	m := NewMenuModel(cfg)

	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != "fixed" {
		t.Errorf("left from easy = %q, expected fixed", m.Difficulty())
	}
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != "normal" {
		t.Errorf("Difficulty() = %q, expected normal", m.Difficulty())
	}
	if m.Config().Difficulty != "normal" {
		t.Errorf("Config().Difficulty = %q", m.Config().Difficulty)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	m = updateMenu(t, m, runeKey('j'))
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil || m.Selected().GameID != "classic" {
		t.Errorf("Selected() = %+v, expected classic", m.Selected())
	}

	m = NewMenuModel(core.DefaultConfig())
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsHistory() {
		t.Error("tab did not open the history")
	}
}

func TestHistoryFilters(t *testing.T) {
	store := testStore(t)
	for _, e := range []storage.Episode{
		{Variant: "classic", Status: "won", Score: 100},
		{Variant: "arena", Status: "lost", Reason: "ghost", Score: 20},
	} {
		if _, err := store.SaveEpisode(e); err != nil {
			t.Fatal(err)
		}
	}

	m := NewHistoryModel(store, 100, 30)
	if m.Filter() != allVariants || len(m.episodes) != 2 {
		t.Fatalf("filter %q with %d episodes", m.Filter(), len(m.episodes))
	}
	if !strings.Contains(m.View(), "2 episodes") {
		t.Error("summary missing from view")
	}

	// The first registered variant is arena
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if m.Filter() != "arena" || len(m.episodes) != 1 {
		t.Errorf("filter %q with %d episodes", m.Filter(), len(m.episodes))
	}
	if !strings.Contains(m.View(), "lost (ghost)") {
		t.Error("result column missing from view")
	}

	next, _ = m.Update(runeKey('b'))
	if !next.(HistoryModel).IsGoingBack() {
		t.Error("back not recorded")
	}
}

func TestHistoryWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("expected unavailable message")
	}
}

func TestSessionFlow(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	s := NewSessionModel(nil, log.New(io.Discard), core.DefaultConfig(), "tester")

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame || s.game == nil || s.game.game.ID() != "arena" {
		t.Fatalf("expected arena game, screen %v", s.screen)
	}

	step(runeKey('p'))
	step(TickMsg{Gen: s.game.gen})
	step(runeKey('b'))
	if s.screen != screenMenu {
		t.Fatalf("expected menu after back, screen %v", s.screen)
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenHistory {
		t.Fatalf("expected history, screen %v", s.screen)
	}
	step(runeKey('q'))
	if !s.quitting {
		t.Error("expected quitting")
	}
}
