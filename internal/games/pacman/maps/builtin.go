package maps

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maps/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

var (
	builtinOnce sync.Once
	builtinMaps []Map
	builtinErr  error
)

// Builtin returns the maps compiled into the binary, sorted by ID.
func Builtin() ([]Map, error) {
	builtinOnce.Do(func() {
		entries, err := fs.ReadDir(builtinFS, "builtin")
		if err != nil {
			builtinErr = fmt.Errorf("maps: reading builtin maps: %w", err)
			return
		}
		for _, e := range entries {
			data, err := builtinFS.ReadFile(path.Join("builtin", e.Name()))
			if err != nil {
				builtinErr = fmt.Errorf("maps: reading builtin %s: %w", e.Name(), err)
				return
			}
			lvl, err := formats.ParseYAML(data)
			if err != nil {
				builtinErr = fmt.Errorf("maps: parsing builtin %s: %w", e.Name(), err)
				return
			}
			builtinMaps = append(builtinMaps, Map{Level: lvl})
		}
		sort.Slice(builtinMaps, func(i, j int) bool {
			return builtinMaps[i].ID < builtinMaps[j].ID
		})
	})
	return builtinMaps, builtinErr
}

// BuiltinByID returns the named builtin map.
func BuiltinByID(id string) (Map, error) {
	all, err := Builtin()
	if err != nil {
		return Map{}, err
	}
	for _, m := range all {
		if m.ID == id {
			return m, nil
		}
	}
	return Map{}, fmt.Errorf("maps: map not found: %s", id)
}

// Find looks for id in dir first (when dir is non-empty and exists) and then
// among the builtin maps.
func Find(dir, id string) (Map, error) {
	if dir != "" {
		if m, err := NewLoader(dir).LoadByID(id); err == nil {
			return m, nil
		}
	}
	return BuiltinByID(id)
}
