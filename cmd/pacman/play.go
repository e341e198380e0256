package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
)

var flagPlayMap string

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board in the terminal UI",
	Long: `Start playing the specified board (default: random).

Controls:
  Arrows/WASD/HJKL - Steer
  P/Space          - Pause
  R                - Restart (after the episode ends)
  B/Esc            - Leave (while paused or after the end)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - One stationary ghost, no step budget, slower ticks
  normal - Ghosts and budget as configured
  hard   - At least four roaming ghosts, tight budget, faster ticks
  fixed  - Exactly what the config file says

Examples:
  pacman play
  pacman play classic --difficulty hard
  pacman play --map ./boards/maze.txt
  pacman play arena --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayMap, "map", "", "Play a map file instead of a registered board")
}

func runPlay(_ *cobra.Command, args []string) error {
	game, err := createGame(variantArg(args), flagPlayMap)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, logger, runtimeConfig(), currentUser())
}
