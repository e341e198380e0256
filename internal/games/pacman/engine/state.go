// Package engine is the deterministic simulation behind the pacman game:
// a bounded grid, one player, walls, pellets and ghosts, advanced one tick at a
// time in a fixed resolution order. It is UI-agnostic and never sleeps except
// inside Controller.Run.
package engine

// Status is the lifecycle stage of an episode.
type Status uint8

const (
	StatusIdle Status = iota
	StatusRunning
	StatusWon
	StatusLost
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status is Won or Lost.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Reason explains a Lost status.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonGhost
	ReasonTimeout
	ReasonWall
)

// String returns the reason name.
func (r Reason) String() string {
	switch r {
	case ReasonGhost:
		return "ghost"
	case ReasonTimeout:
		return "timeout"
	case ReasonWall:
		return "wall"
	default:
		return "none"
	}
}

// EpisodeState is the scalar part of the world: clock, score and status.
type EpisodeState struct {
	Tick   int
	Score  int
	Status Status
	Reason Reason
}
