package formats

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
)

func TestParseTextGlyphs(t *testing.T) {
	data := []byte("#####\n#O.R#\n#_-o#\n#PIC#\n#####\n\n")

	lvl, err := ParseText(data)
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if lvl.Height != 5 || lvl.Width != 5 {
		t.Errorf("expected 5x5, got %dx%d", lvl.Height, lvl.Width)
	}
	if lvl.Player == nil || *lvl.Player != engine.C(1, 1) {
		t.Errorf("player = %v, expected (1,1)", lvl.Player)
	}
	if len(lvl.Pellets) != 2 {
		t.Errorf("expected 2 pellets, got %d", len(lvl.Pellets))
	}
	if len(lvl.Walls) != 16 {
		t.Errorf("expected 16 walls, got %d", len(lvl.Walls))
	}

	names := strings.Join(lvl.Names, ",")
	if names != "blinky,pinky,inky,clyde" {
		t.Errorf("ghost names = %s", names)
	}
	if lvl.Ghosts[0] != engine.C(1, 3) {
		t.Errorf("first ghost = %v, expected (1,3)", lvl.Ghosts[0])
	}
}

func TestParseTextPadsShortRows(t *testing.T) {
	lvl, err := ParseText([]byte("#O o\r\n#\r\n"))
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if lvl.Width != 4 || lvl.Height != 2 {
		t.Errorf("expected 2x4, got %dx%d", lvl.Height, lvl.Width)
	}
}

func TestParseTextErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"blank lines", "\n\n"},
		{"two players", "#OO#"},
		{"unknown glyph", "#O?o#"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseText([]byte(tc.data)); err == nil {
				t.Errorf("expected error for %q", tc.data)
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: tiny
name: Tiny Board
layout:
  - "####"
  - "#Oo#"
  - "####"
settings:
  pellet_value: 50
  ghost_policy: random
  wrap_around: true
metadata:
  author: test
`)
	lvl, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if lvl.ID != "tiny" || lvl.Name != "Tiny Board" {
		t.Errorf("got id %q name %q", lvl.ID, lvl.Name)
	}
	if lvl.Settings.PelletValue != 50 || lvl.Settings.GhostPolicy != "random" {
		t.Errorf("settings = %+v", lvl.Settings)
	}
	if lvl.Settings.WrapAround == nil || !*lvl.Settings.WrapAround {
		t.Error("expected wrap_around true")
	}
	if lvl.Metadata["author"] != "test" {
		t.Errorf("metadata = %v", lvl.Metadata)
	}
}

func TestParseYAMLRequiresLayout(t *testing.T) {
	if _, err := ParseYAML([]byte("id: x\nname: X\n")); err == nil {
		t.Error("expected error for a map without layout")
	}
	if _, err := ParseYAML([]byte("id: [unterminated")); err == nil {
		t.Error("expected error for invalid yaml")
	}
}
