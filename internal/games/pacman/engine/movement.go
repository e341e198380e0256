package engine

// Resolver maps a requested direction to the candidate next cell.
// It knows the board edges but not the walls; walls are the engine's call.
type Resolver struct {
	// Wrap joins opposite edges. When false an off-board move leaves the
	// position unchanged.
	Wrap bool
}

// Resolve returns the cell one step from pos in direction d.
func (r Resolver) Resolve(pos Coord, d Direction, g Grid) Coord {
	if !d.Valid() {
		return pos
	}
	next := pos.Step(d)
	if g.Contains(next) {
		return next
	}
	if r.Wrap {
		return g.Wrap(next)
	}
	return pos
}
