package engine

import (
	"sort"
	"strings"
)

// Observation cell values for learning agents.
const (
	ObsEmpty  = 0.0
	ObsPellet = 0.25
	ObsGhost  = 0.5
	ObsPlayer = 1.0
	ObsWall   = -1.0
)

// Snapshot is an immutable copy of the whole world at one tick. It is the only
// value handed to renderers and observers.
type Snapshot struct {
	Height  int
	Width   int
	Walls   []Coord // row-major order
	Pellets []Coord // row-major order
	Ghosts  []Coord // policy order
	Player  Coord
	Facing  Direction

	Tick   int
	Score  int
	Status Status
	Reason Reason

	PelletValue int
	StepBudget  int
}

func newSnapshot(g Grid, ents *Entities, st EpisodeState, rules Rules) Snapshot {
	ghosts := make([]Coord, len(ents.Ghosts))
	copy(ghosts, ents.Ghosts)
	return Snapshot{
		Height:      g.Height,
		Width:       g.Width,
		Walls:       sortedCoords(ents.Walls),
		Pellets:     sortedCoords(ents.Pellets),
		Ghosts:      ghosts,
		Player:      ents.Player.Position,
		Facing:      ents.Player.Facing,
		Tick:        st.Tick,
		Score:       st.Score,
		Status:      st.Status,
		Reason:      st.Reason,
		PelletValue: rules.PelletValue,
		StepBudget:  rules.StepBudget,
	}
}

func sortedCoords(s CoordSet) []Coord {
	out := make([]Coord, 0, s.Size())
	s.Each(func(c Coord) { out = append(out, c) })
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })
	return out
}

// Terminal reports whether the episode has ended.
func (s Snapshot) Terminal() bool {
	return s.Status.Terminal()
}

// PelletsLeft returns the number of pellets still on the board.
func (s Snapshot) PelletsLeft() int {
	return len(s.Pellets)
}

// At returns the most significant kind at c: player, ghost, pellet, wall.
func (s Snapshot) At(c Coord) Kind {
	if s.Player == c {
		return KindPlayer
	}
	for _, g := range s.Ghosts {
		if g == c {
			return KindGhost
		}
	}
	if containsSorted(s.Pellets, c) {
		return KindPellet
	}
	if containsSorted(s.Walls, c) {
		return KindWall
	}
	return KindEmpty
}

// Board returns a Height x Width matrix of kinds.
func (s Snapshot) Board() [][]Kind {
	board := make([][]Kind, s.Height)
	for row := range board {
		board[row] = make([]Kind, s.Width)
	}
	set := func(c Coord, k Kind) {
		if c.Row >= 0 && c.Row < s.Height && c.Col >= 0 && c.Col < s.Width {
			board[c.Row][c.Col] = k
		}
	}
	for _, c := range s.Walls {
		set(c, KindWall)
	}
	for _, c := range s.Pellets {
		set(c, KindPellet)
	}
	for _, c := range s.Ghosts {
		set(c, KindGhost)
	}
	set(s.Player, KindPlayer)
	return board
}

// Rows renders the board using map-file glyphs, one string per row.
func (s Snapshot) Rows() []string {
	board := s.Board()
	rows := make([]string, len(board))
	for i, line := range board {
		var b strings.Builder
		for _, k := range line {
			b.WriteRune(k.Glyph())
		}
		rows[i] = b.String()
	}
	return rows
}

// String renders the board rows joined by newlines.
func (s Snapshot) String() string {
	return strings.Join(s.Rows(), "\n")
}

// Observation flattens the board row-major into the values a learning agent
// consumes: empty 0, pellet 0.25, ghost 0.5, player 1, wall -1.
func (s Snapshot) Observation() []float64 {
	obs := make([]float64, s.Height*s.Width)
	for row, line := range s.Board() {
		for col, k := range line {
			var v float64
			switch k {
			case KindWall:
				v = ObsWall
			case KindPellet:
				v = ObsPellet
			case KindGhost:
				v = ObsGhost
			case KindPlayer:
				v = ObsPlayer
			default:
				v = ObsEmpty
			}
			obs[row*s.Width+col] = v
		}
	}
	return obs
}

func containsSorted(coords []Coord, c Coord) bool {
	i := sort.Search(len(coords), func(i int) bool { return !coords[i].less(c) })
	return i < len(coords) && coords[i] == c
}
