package engine

import (
	"fmt"
	"strings"
)

// Direction is one of the four moves available to the player.
type Direction uint8

// The zero value is deliberately invalid so an unset direction is detectable.
const (
	DirNone Direction = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// AllDirections returns the valid directions in action-index order.
func AllDirections() []Direction {
	return []Direction{DirUp, DirRight, DirDown, DirLeft}
}

// Valid reports whether d is one of Up, Right, Down, Left.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirLeft
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "None"
	}
}

// Delta returns the (row, col) offset for one step in this direction.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirRight:
		return 0, 1
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

// Index returns the learning-agent action index (0 Up, 1 Right, 2 Down, 3 Left),
// or -1 for an invalid direction.
func (d Direction) Index() int {
	if !d.Valid() {
		return -1
	}
	return int(d - DirUp)
}

// DirectionFromIndex maps an action index in [0, 4) to a Direction.
func DirectionFromIndex(i int) (Direction, error) {
	if i < 0 || i >= len(AllDirections()) {
		return DirNone, fmt.Errorf("engine: action index %d outside [0, 4): %w", i, ErrConfiguration)
	}
	return AllDirections()[i], nil
}

// ParseDirection accepts full names or their first letter, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "right", "r":
		return DirRight, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	}
	return DirNone, fmt.Errorf("engine: unknown direction %q: %w", s, ErrConfiguration)
}
