package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maps"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List, show and validate map files",
	Long: `Inspect the built-in maps and the map directory.

Map files are plain text (.txt, .dat) or YAML (.yaml, .yml):
  #  wall          o .  pellet
  O  player start  R P I C G  ghosts
  space _ -  empty

Examples:
  pacman maps
  pacman maps show classic
  pacman maps validate ./boards/maze.yaml`,
	Args: cobra.NoArgs,
	RunE: runMapsList,
}

var mapsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a map",
	Args:  cobra.ExactArgs(1),
	RunE:  runMapsShow,
}

var mapsValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check that map files parse and produce a playable board",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMapsValidate,
}

func init() {
	mapsCmd.AddCommand(mapsShowCmd)
	mapsCmd.AddCommand(mapsValidateCmd)
}

func runMapsList(_ *cobra.Command, _ []string) error {
	builtin, err := maps.Builtin()
	if err != nil {
		return err
	}
	fmt.Println("Built-in maps:")
	for _, m := range builtin {
		fmt.Printf("  %-12s  %-16s  %s\n", m.ID, m.Name, mapSummary(m))
	}

	dir := config.ExpandHome(appConfig.Maps.Dir)
	fmt.Println()
	if _, err := os.Stat(dir); err != nil {
		fmt.Printf("Map directory %s does not exist.\n", dir)
		return nil
	}
	found, err := maps.NewLoader(dir).LoadAll()
	if err != nil {
		return err
	}
	fmt.Printf("Maps in %s:\n", dir)
	if len(found) == 0 {
		fmt.Println("  (none)")
	}
	for _, m := range found {
		fmt.Printf("  %-12s  %-16s  %s\n", m.ID, m.Name, mapSummary(m))
	}
	return nil
}

func runMapsShow(_ *cobra.Command, args []string) error {
	m, err := maps.Find(config.ExpandHome(appConfig.Maps.Dir), args[0])
	if err != nil {
		return err
	}

	source := m.FilePath
	if source == "" {
		source = "built-in"
	}
	fmt.Printf("%s (%s) - %s\n", m.Name, m.ID, source)
	fmt.Println(mapSummary(m))
	fmt.Println()
	for _, row := range renderMap(m) {
		fmt.Println(row)
	}
	keys := make([]string, 0, len(m.Metadata))
	for k := range m.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s: %s\n", k, m.Metadata[k])
	}
	return nil
}

// renderMap draws the map's fixed layout in the text map glyphs.
func renderMap(m maps.Map) []string {
	grid := make([][]rune, m.Height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", m.Width))
	}
	set := func(c engine.Coord, ch rune) {
		if c.Row >= 0 && c.Row < m.Height && c.Col >= 0 && c.Col < m.Width {
			grid[c.Row][c.Col] = ch
		}
	}
	for _, c := range m.Walls {
		set(c, '#')
	}
	for _, c := range m.Pellets {
		set(c, '.')
	}
	for i, c := range m.Ghosts {
		set(c, ghostGlyph(m.GhostName(i)))
	}
	if m.Player != nil {
		set(*m.Player, 'O')
	}

	rows := make([]string, len(grid))
	for i, r := range grid {
		rows[i] = strings.TrimRight(string(r), " ")
	}
	return rows
}

func ghostGlyph(name string) rune {
	switch name {
	case "blinky":
		return 'R'
	case "pinky":
		return 'P'
	case "inky":
		return 'I'
	case "clyde":
		return 'C'
	}
	return 'G'
}

func runMapsValidate(_ *cobra.Command, args []string) error {
	base, err := appConfig.Engine(1)
	if err != nil {
		return err
	}

	loader := maps.NewLoader("")
	failed := 0
	for _, path := range args {
		m, err := loader.LoadFile(path)
		if err == nil {
			var cfg engine.Config
			if cfg, err = m.Apply(base); err == nil {
				_, err = engine.NewController().Reset(cfg)
			}
		}
		if err != nil {
			failed++
			fmt.Printf("FAIL  %s: %v\n", path, err)
			continue
		}
		fmt.Printf("ok    %s (%s, %s)\n", path, m.ID, mapSummary(m))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d maps invalid", failed, len(args))
	}
	return nil
}
