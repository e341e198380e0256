package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLMap is the YAML structure of a map file.
type YAMLMap struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Layout   []string          `yaml:"layout"`
	Settings YAMLSettings      `yaml:"settings,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSettings mirrors Settings.
type YAMLSettings struct {
	PelletValue   int    `yaml:"pellet_value,omitempty"`
	StepBudget    int    `yaml:"step_budget,omitempty"`
	GhostPolicy   string `yaml:"ghost_policy,omitempty"`
	WallCollision string `yaml:"wall_collision,omitempty"`
	WrapAround    *bool  `yaml:"wrap_around,omitempty"`
	Facing        string `yaml:"facing,omitempty"`
	Pellets       int    `yaml:"pellets,omitempty"`
	Ghosts        int    `yaml:"ghosts,omitempty"`
}

// ParseYAML parses a YAML map file.
func ParseYAML(data []byte) (Level, error) {
	var ym YAMLMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	lvl, err := ParseRows(ym.Layout)
	if err != nil {
		return Level{}, fmt.Errorf("layout: %w", err)
	}
	lvl.ID = ym.ID
	lvl.Name = ym.Name
	lvl.Metadata = ym.Metadata
	lvl.Settings = Settings{
		PelletValue:   ym.Settings.PelletValue,
		StepBudget:    ym.Settings.StepBudget,
		GhostPolicy:   ym.Settings.GhostPolicy,
		WallCollision: ym.Settings.WallCollision,
		WrapAround:    ym.Settings.WrapAround,
		Facing:        ym.Settings.Facing,
		PelletCount:   ym.Settings.Pellets,
		GhostCount:    ym.Settings.Ghosts,
	}
	return lvl, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt", ".dat"}
}
