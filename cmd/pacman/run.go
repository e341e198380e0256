package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/platform/headless"
)

var (
	flagRunMap     string
	flagRunNoInput bool
)

var runCmd = &cobra.Command{
	Use:   "run [board]",
	Short: "Play on a plain terminal, driven by the engine clock",
	Long: `Run an episode without the full-screen UI. The engine ticks on its own
schedule while key presses are read concurrently; the latest key before a
tick decides the move.

Keys: arrows/WASD/HJKL steer, Q or Ctrl+C quits.

Examples:
  pacman run corridor
  pacman run --tick 300ms
  pacman run arena --no-input --seed 7   # watch the ghosts`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagRunMap, "map", "", "Play a map file instead of a registered board")
	runCmd.Flags().BoolVar(&flagRunNoInput, "no-input", false, "Do not read keys; the player keeps its facing")
}

func runRun(cmd *cobra.Command, args []string) error {
	game, err := createGame(variantArg(args), flagRunMap)
	if err != nil {
		return err
	}
	if err := game.Reset(runtimeConfig()); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := &headless.Runner{
		Out:    os.Stdout,
		Logger: logger,
		Title:  game.Title(),
	}

	restore := func() {}
	if !flagRunNoInput {
		runner.In = os.Stdin
		runner.Raw = term.IsTerminal(int(os.Stdin.Fd()))
		if restore, err = headless.MakeRaw(os.Stdin); err != nil {
			return fmt.Errorf("cannot switch terminal to raw mode: %w", err)
		}
	}

	snap, runErr := runner.Run(ctx, game.Controller())
	restore()

	recordSnapshot(store, game, snap)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	fmt.Println(headless.Outcome(snap))
	return nil
}
