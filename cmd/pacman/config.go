package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pacman/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the search order and flags are applied.
Copy the output to ~/.pacman/configs/pacman.yaml to customise it.

Examples:
  pacman config
  pacman config --defaults > ~/.pacman/configs/pacman.yaml
  pacman config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default file")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg := appConfig
	preset, err := config.ParseDifficulty(cfg.Difficulty)
	if err != nil {
		return err
	}
	config.ApplyPacmanPreset(&cfg, preset)

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: cannot encode: %w", err)
	}
	fmt.Printf("# effective configuration (difficulty %s applied)\n", preset)
	_, err = os.Stdout.Write(out)
	return err
}
