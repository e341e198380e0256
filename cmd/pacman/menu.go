package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick boards interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a board, left/right to change the difficulty,
Enter to play and Tab for the episode history. Leaving a game returns to the
menu.

Examples:
  pacman menu
  pacman menu --difficulty easy
  pacman menu --db ./journal.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	cfg.Seed = flagSeed
	return tui.RunSession(store, logger, cfg, currentUser())
}
