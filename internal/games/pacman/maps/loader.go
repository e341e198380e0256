// Package maps loads board layouts from map files and turns them into engine
// configuration. The engine does not depend on this package.
package maps

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maps/formats"
)

// Map is a parsed map together with where it came from.
type Map struct {
	formats.Level
	FilePath string // empty for built-in maps
}

// Layout converts the map into an engine layout. Slices are copied.
func (m *Map) Layout() *engine.Layout {
	l := &engine.Layout{
		Walls:   append([]engine.Coord(nil), m.Walls...),
		Ghosts:  append([]engine.Coord(nil), m.Ghosts...),
		Pellets: append([]engine.Coord(nil), m.Pellets...),
	}
	if m.Player != nil {
		p := *m.Player
		l.Player = &p
	}
	return l
}

// Apply returns cfg with the map's board and settings applied on top.
func (m *Map) Apply(cfg engine.Config) (engine.Config, error) {
	cfg.Height = m.Height
	cfg.Width = m.Width
	cfg.Walls = engine.FixedWalls(m.Walls)
	cfg.Layout = m.Layout()

	// A map that draws the player and the pellets places exactly the ghosts it shows.
	if m.Player != nil && len(m.Pellets) > 0 {
		cfg.GhostCount = len(m.Ghosts)
	}

	s := m.Settings
	if s.PelletValue > 0 {
		cfg.PelletValue = s.PelletValue
	}
	if s.StepBudget > 0 {
		cfg.StepBudget = s.StepBudget
	}
	if s.PelletCount > 0 {
		cfg.PelletCount = s.PelletCount
	}
	if s.GhostCount > 0 {
		cfg.GhostCount = s.GhostCount
	}
	if s.WrapAround != nil {
		cfg.WrapAround = *s.WrapAround
	}
	if s.GhostPolicy != "" {
		p, err := engine.GhostPolicyByName(s.GhostPolicy)
		if err != nil {
			return cfg, fmt.Errorf("maps: %s: %w", m.ID, err)
		}
		cfg.GhostPolicy = p
	}
	if s.WallCollision != "" {
		w, err := engine.ParseWallCollision(s.WallCollision)
		if err != nil {
			return cfg, fmt.Errorf("maps: %s: %w", m.ID, err)
		}
		cfg.WallCollision = w
	}
	if s.Facing != "" {
		d, err := engine.ParseDirection(s.Facing)
		if err != nil {
			return cfg, fmt.Errorf("maps: %s: %w", m.ID, err)
		}
		cfg.Layout.Facing = d
	}
	return cfg, nil
}

// GhostName returns the name of ghost i, or "ghost" when the map has none.
func (m *Map) GhostName(i int) string {
	if i >= 0 && i < len(m.Names) {
		return m.Names[i]
	}
	return "ghost"
}

// Loader handles loading maps from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new map loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all map files.
// Returns maps sorted by ID for deterministic ordering; unparsable files are skipped.
func (l *Loader) LoadAll() ([]Map, error) {
	var maps []Map

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		m, err := l.LoadFile(path)
		if err != nil {
			return nil
		}
		maps = append(maps, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("maps: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(maps, func(i, j int) bool {
		return maps[i].ID < maps[j].ID
	})
	return maps, nil
}

// LoadFile loads a single map file. Text maps take their ID from the file name.
func (l *Loader) LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Map{}, fmt.Errorf("maps: reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	lvl, err := parseByExtension(data, ext)
	if err != nil {
		return Map{}, fmt.Errorf("maps: parsing file %s: %w", path, err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if lvl.ID == "" {
		lvl.ID = stem
	}
	if lvl.Name == "" {
		lvl.Name = lvl.ID
	}
	return Map{Level: lvl, FilePath: path}, nil
}

// LoadByID loads a specific map by ID.
func (l *Loader) LoadByID(id string) (Map, error) {
	maps, err := l.LoadAll()
	if err != nil {
		return Map{}, err
	}
	for _, m := range maps {
		if m.ID == id {
			return m, nil
		}
	}
	return Map{}, fmt.Errorf("maps: map not found: %s", id)
}

// ListIDs returns all map IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	maps, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(maps))
	for i, m := range maps {
		ids[i] = m.ID
	}
	return ids, nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".txt", ".dat":
		return formats.ParseText(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
