package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
	"github.com/vovakirdan/tui-pacman/internal/platform/headless"
)

var (
	flagSimMoves       string
	flagSimMap         string
	flagSimFrames      bool
	flagSimObservation bool
	flagSimRecord      bool
)

var simCmd = &cobra.Command{
	Use:   "sim [board]",
	Short: "Apply a scripted move sequence and print the result",
	Long: `Step an episode one tick per move, without a clock. Moves are U R D L;
'.' ticks without new input. The run stops early when the episode ends.

Examples:
  pacman sim corridor --moves RRRRRRR
  pacman sim classic --seed 3 --moves "LLUU..RR" --frames
  pacman sim arena --seed 9 --moves RD --observation`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimMoves, "moves", "", "Move script, e.g. RRDD.L")
	simCmd.Flags().StringVar(&flagSimMap, "map", "", "Simulate a map file instead of a registered board")
	simCmd.Flags().BoolVar(&flagSimFrames, "frames", false, "Print every frame, not just the last")
	simCmd.Flags().BoolVar(&flagSimObservation, "observation", false, "Print the final observation vector")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Record the episode in the journal")
}

func runSim(_ *cobra.Command, args []string) error {
	moves, err := headless.ParseMoves(flagSimMoves)
	if err != nil {
		return err
	}

	game, err := createGame(variantArg(args), flagSimMap)
	if err != nil {
		return err
	}
	if err := game.Reset(runtimeConfig()); err != nil {
		return err
	}

	snaps, err := headless.Simulate(game.Controller(), moves)
	if err != nil {
		return err
	}
	logger.Debug("simulated", "board", game.ID(), "seed", game.Seed(), "moves", headless.FormatMoves(moves), "ticks", len(snaps)-1)

	if flagSimFrames {
		for _, s := range snaps[:len(snaps)-1] {
			printFrame(game.Title(), s)
			fmt.Println()
		}
	}
	last := snaps[len(snaps)-1]
	printFrame(game.Title(), last)
	fmt.Println(headless.Outcome(last))

	if flagSimObservation {
		fmt.Println(formatObservation(last.Observation()))
	}

	if flagSimRecord {
		store := openStore()
		if store != nil {
			recordSnapshot(store, game, last)
			store.Close()
		}
	}
	return nil
}

func printFrame(title string, s engine.Snapshot) {
	fmt.Println(headless.Header(title, s))
	fmt.Println(s.String())
}

func formatObservation(obs []float64) string {
	parts := make([]string, len(obs))
	for i, v := range obs {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return strings.Join(parts, ",")
}
