package headless

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
)

// ParseMoves reads a move script: U R D L (either case) submit a direction,
// '.' ticks without new input. Spaces and commas are ignored.
func ParseMoves(script string) ([]engine.Direction, error) {
	var moves []engine.Direction
	for _, r := range script {
		switch r {
		case ' ', ',', '\t', '\n':
			continue
		case '.':
			moves = append(moves, engine.DirNone)
			continue
		}
		d, err := engine.ParseDirection(string(r))
		if err != nil {
			return nil, fmt.Errorf("headless: move %d: %w", len(moves)+1, err)
		}
		moves = append(moves, d)
	}
	return moves, nil
}

// Simulate applies one move per tick without a timer, stopping early when the
// episode ends. It returns every snapshot produced, starting with the
// position before the first move.
func Simulate(ctrl *engine.Controller, moves []engine.Direction) ([]engine.Snapshot, error) {
	snaps := []engine.Snapshot{ctrl.Snapshot()}
	for _, d := range moves {
		if ctrl.Status() != engine.StatusRunning {
			break
		}
		if d != engine.DirNone {
			if err := ctrl.SubmitDirection(d); err != nil {
				return snaps, err
			}
		}
		snap, err := ctrl.Tick()
		if err != nil {
			return snaps, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

// FormatMoves renders directions back into a script.
func FormatMoves(moves []engine.Direction) string {
	var b strings.Builder
	for _, d := range moves {
		switch d {
		case engine.DirUp:
			b.WriteByte('U')
		case engine.DirRight:
			b.WriteByte('R')
		case engine.DirDown:
			b.WriteByte('D')
		case engine.DirLeft:
			b.WriteByte('L')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}
