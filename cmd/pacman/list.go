package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maps"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available boards",
	Long:  `Shows every registered board with its size and ghost count.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No boards available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "ID", "Title", "Board")
	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "--", "-----", "-----")

	dir := config.ExpandHome(appConfig.Maps.Dir)
	for _, g := range games {
		fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, g.ID, g.Title, describe(g.ID, dir))
	}

	fmt.Println()
	fmt.Println("Run 'pacman play <id>' to play a board.")
}

// describe summarises a board's size and population.
func describe(id, dir string) string {
	if id == pacman.RandomID {
		b := appConfig.Board
		return fmt.Sprintf("%dx%d, %d pellets, %d ghosts, %s walls", b.Height, b.Width, b.Pellets, appConfig.Ghosts.Count, b.Walls)
	}
	m, err := maps.Find(dir, id)
	if err != nil {
		return "unavailable"
	}
	return mapSummary(m)
}

func mapSummary(m maps.Map) string {
	pellets := len(m.Pellets)
	if pellets == 0 {
		pellets = m.Settings.PelletCount
	}
	return fmt.Sprintf("%dx%d, %d pellets, %d ghosts", m.Height, m.Width, pellets, len(m.Ghosts))
}
