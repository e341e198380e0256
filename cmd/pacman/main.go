// pacman is a grid pursuit-and-collection game for the terminal.
//
// Usage:
//
//	pacman list               - List available boards
//	pacman play [board]       - Play a board in the terminal UI
//	pacman run [board]        - Play on a plain terminal, driven by the engine clock
//	pacman sim [board]        - Apply a scripted move sequence and print the result
//	pacman menu               - Pick boards interactively
//	pacman history [board]    - Show the episode journal
//	pacman serve              - Start SSH server for remote play
//	pacman maps               - List, show and validate map files
//	pacman config             - Print the effective configuration
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set journal path (default from config)
//	--config <path>       - Use a specific config file
//	--difficulty <name>   - easy, normal, hard or fixed
//	--maps <dir>          - Directory of map files
//	--tick <duration>     - Override the tick interval
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMapsDir    string
	flagTick       time.Duration
	flagLogLevel   string

	logger    = log.Default()
	appConfig = config.DefaultPacmanConfig()
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pacman - collect every pellet before the ghosts catch you",
	Long: `Pacman is a terminal game on a grid: steer the player onto every
pellet while ghosts roam the board. Touching a ghost or running out of
steps loses the episode.

Available commands:
  list     - Show all boards
  play     - Play a board in the terminal UI
  run      - Play on a plain terminal
  sim      - Replay a scripted move sequence
  menu     - Interactive board picker
  history  - Show recorded episodes
  serve    - Start SSH server for remote play
  maps     - Inspect map files
  config   - Print the effective configuration

Examples:
  pacman list
  pacman play classic
  pacman play --difficulty hard
  pacman sim corridor --moves RRRRRRR
  pacman serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "", "Path to the episode journal (default from config)")
	pf.StringVar(&flagConfig, "config", "", "Path to a config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagMapsDir, "maps", "", "Directory of map files (default from config)")
	pf.DurationVar(&flagTick, "tick", 0, "Tick interval override, e.g. 120ms")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(configCmd)
}

// setup builds the logger and loads the configuration shared by every command.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pacman",
		Level:           level,
	})

	cfg, err := config.LoadPacman(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
			return err
		}
		cfg.Difficulty = flagDifficulty
	}
	if flagMapsDir != "" {
		cfg.Maps.Dir = flagMapsDir
	}
	if flagTick > 0 {
		cfg.Timing.TickInterval = flagTick
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}

	appConfig = cfg
	pacman.SetConfig(cfg)
	logger.Debug("configuration loaded", "difficulty", cfg.Difficulty, "maps", cfg.Maps.Dir, "journal", cfg.Storage.Path)
	return nil
}
