package pacman

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
)

const (
	hudHeight = 2
	cellW     = 2 // terminal columns per board cell
)

var ghostColors = map[string]core.Color{
	"blinky": core.ColorRed,
	"pinky":  core.ColorPink,
	"inky":   core.ColorCyan,
	"clyde":  core.ColorOrange,
}

// Render draws the HUD, the board and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.err != nil && g.snap.Height == 0 {
		g.renderOverlay(dst, "Cannot start", g.err.Error())
		return
	}

	boardW, boardH := g.snap.Width*cellW, g.snap.Height
	if boardW > dst.Width() || boardH > dst.Height()-hudHeight {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", boardW, boardH+hudHeight))
		return
	}

	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight).Centered(boardW, boardH)
	g.renderBoard(dst, area.X, area.Y)

	switch {
	case g.snap.Status == engine.StatusWon:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Score %d in %d ticks - R to restart", g.snap.Score, g.snap.Tick))
	case g.snap.Status == engine.StatusLost:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("%s - R to restart", lossText(g.snap.Reason)))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	budget := "∞"
	if g.snap.StepBudget > 0 {
		budget = fmt.Sprint(g.snap.StepBudget)
	}
	hud := fmt.Sprintf(" %s  Score: %d  Tick: %d/%s  Pellets: %d",
		g.title, g.snap.Score, g.snap.Tick, budget, g.snap.PelletsLeft())
	dst.DrawTextColor(0, 0, hud, core.ColorBrightYellow)
	dst.DrawTextColor(0, 1, strings.Repeat("─", dst.Width()), core.ColorGray)
}

func (g *Game) renderBoard(dst *core.Screen, ox, oy int) {
	s := g.snap
	for _, c := range s.Walls {
		x, y := ox+c.Col*cellW, oy+c.Row
		dst.SetColor(x, y, '█', core.ColorBlue)
		dst.SetColor(x+1, y, '█', core.ColorBlue)
	}
	for _, c := range s.Pellets {
		dst.SetColor(ox+c.Col*cellW, oy+c.Row, '·', core.ColorWhite)
	}
	for i, c := range s.Ghosts {
		dst.SetColor(ox+c.Col*cellW, oy+c.Row, 'M', g.ghostColor(i))
	}
	dst.SetColor(ox+s.Player.Col*cellW, oy+s.Player.Row, playerGlyph(s.Facing), core.ColorYellow)
}

func (g *Game) ghostColor(i int) core.Color {
	if g.board != nil {
		if c, ok := ghostColors[g.board.GhostName(i)]; ok {
			return c
		}
	}
	return core.ColorMagenta
}

// playerGlyph opens the mouth toward the facing direction.
func playerGlyph(d engine.Direction) rune {
	switch d {
	case engine.DirUp:
		return 'V'
	case engine.DirDown:
		return '^'
	case engine.DirLeft:
		return '>'
	default:
		return '<'
	}
}

func lossText(r engine.Reason) string {
	switch r {
	case engine.ReasonGhost:
		return "Caught by a ghost"
	case engine.ReasonTimeout:
		return "Out of time"
	case engine.ReasonWall:
		return "Hit a wall"
	default:
		return "Lost"
	}
}

func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().Centered(w, 5)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorBrightBlue)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
