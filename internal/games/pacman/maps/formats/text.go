// Package formats provides the map file parsers.
package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
)

// Map glyphs.
const (
	GlyphWall   = '#'
	GlyphPellet = 'o'
	GlyphDot    = '.'
	GlyphPlayer = 'O'
	GlyphBlinky = 'R'
	GlyphPinky  = 'P'
	GlyphInky   = 'I'
	GlyphClyde  = 'C'
	GlyphGhost  = 'G'
	GlyphEmpty  = ' '
	GlyphPlace  = '_'
	GlyphDoor   = '-'
)

// Settings are per-map overrides of the episode configuration. Zero values
// mean "use the configured default".
type Settings struct {
	PelletValue   int
	StepBudget    int
	GhostPolicy   string
	WallCollision string
	WrapAround    *bool
	Facing        string
	PelletCount   int
	GhostCount    int
}

// Level is a parsed map.
type Level struct {
	ID       string
	Name     string
	Height   int
	Width    int
	Walls    []engine.Coord
	Player   *engine.Coord
	Ghosts   []engine.Coord
	Names    []string // ghost names, parallel to Ghosts
	Pellets  []engine.Coord
	Settings Settings
	Metadata map[string]string
}

// ParseText parses a plain character-grid map. Lines shorter than the widest
// line are padded with empty cells; trailing blank lines are ignored.
func ParseText(data []byte) (Level, error) {
	var rows []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return Level{}, fmt.Errorf("reading rows: %w", err)
	}
	return ParseRows(rows)
}

// ParseRows builds a Level from board rows.
func ParseRows(rows []string) (Level, error) {
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return Level{}, fmt.Errorf("empty map")
	}

	lvl := Level{Height: len(rows)}
	for _, r := range rows {
		lvl.Width = max(lvl.Width, len([]rune(r)))
	}
	if lvl.Width == 0 {
		return Level{}, fmt.Errorf("empty map")
	}

	for row, line := range rows {
		for col, ch := range []rune(line) {
			c := engine.C(row, col)
			switch ch {
			case GlyphWall:
				lvl.Walls = append(lvl.Walls, c)
			case GlyphPellet, GlyphDot:
				lvl.Pellets = append(lvl.Pellets, c)
			case GlyphPlayer:
				if lvl.Player != nil {
					return Level{}, fmt.Errorf("second player start at %v (first at %v)", c, *lvl.Player)
				}
				lvl.Player = &c
			case GlyphBlinky, GlyphPinky, GlyphInky, GlyphClyde, GlyphGhost:
				lvl.Ghosts = append(lvl.Ghosts, c)
				lvl.Names = append(lvl.Names, GhostName(ch))
			case GlyphEmpty, GlyphPlace, GlyphDoor:
			default:
				return Level{}, fmt.Errorf("unknown glyph %q at %v", ch, c)
			}
		}
	}
	return lvl, nil
}

// GhostName maps a ghost glyph to its name.
func GhostName(ch rune) string {
	switch ch {
	case GlyphBlinky:
		return "blinky"
	case GlyphPinky:
		return "pinky"
	case GlyphInky:
		return "inky"
	case GlyphClyde:
		return "clyde"
	default:
		return "ghost"
	}
}
