package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagHistoryLimit       int
	flagHistoryClear       bool
	flagHistoryInteractive bool
)

var historyCmd = &cobra.Command{
	Use:   "history [board]",
	Short: "Show recorded episodes",
	Long: `Display the most recent episodes from the journal, optionally for one
board, followed by per-board totals.

Examples:
  pacman history
  pacman history classic --limit 5
  pacman history -i             # browse in the terminal UI
  pacman history arena --clear  # forget arena episodes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Number of episodes to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the listed episodes instead of showing them")
	historyCmd.Flags().BoolVarP(&flagHistoryInteractive, "interactive", "i", false, "Browse the journal in the terminal UI")
}

func runHistory(_ *cobra.Command, args []string) error {
	variant := ""
	if len(args) > 0 {
		variant = args[0]
	}

	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearEpisodes(variant); err != nil {
			return err
		}
		fmt.Println("Journal cleared.")
		return nil
	}

	if flagHistoryInteractive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("--interactive needs a terminal")
		}
		cfg := runtimeConfig()
		_, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	episodes, err := store.RecentEpisodes(variant, flagHistoryLimit)
	if err != nil {
		return err
	}

	if len(episodes) == 0 {
		fmt.Println("No episodes recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pacman play' to start the journal!")
		return nil
	}

	fmt.Printf("  %-16s  %-10s  %-16s  %6s  %6s  %5s  %s\n", "Date", "Board", "Result", "Score", "Ticks", "Left", "Seed")
	fmt.Printf("  %-16s  %-10s  %-16s  %6s  %6s  %5s  %s\n", "----", "-----", "------", "-----", "-----", "----", "----")
	for _, e := range episodes {
		result := e.Status
		if e.Reason != "" {
			result += " (" + e.Reason + ")"
		}
		fmt.Printf("  %-16s  %-10s  %-16s  %6d  %6d  %5d  %d\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Variant, result, e.Score, e.Ticks, e.PelletsLeft, e.Seed)
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(stats))
	for id := range stats {
		if variant == "" || id == variant {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	fmt.Println()
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-10s  %d episodes, %d won, avg score %.1f, avg ticks %.1f\n", id, s.Episodes, s.Wins, s.AvgScore, s.AvgTicks)
	}
	return nil
}
