package headless

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
)

const clearScreen = "\x1b[H\x1b[2J"

// Runner plays one episode of a reset controller.
type Runner struct {
	In     io.Reader // key source; nil disables input
	Out    io.Writer // frames are written here
	Logger *log.Logger
	Title  string

	// Raw terminals need CRLF and benefit from clearing between frames.
	Raw bool
}

// Run draws the start position, then lets the controller tick until the
// episode ends, ctx is cancelled or the player quits. It returns the last
// snapshot; the error is nil only when the episode reached Won or Lost.
func (r *Runner) Run(ctx context.Context, ctrl *engine.Controller) (engine.Snapshot, error) {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if r.In != nil {
		go func() {
			if err := Pump(ctx, r.In, ctrl, cancel); err != nil {
				logger.Warn("input stopped", "error", err)
			}
		}()
	}

	obs := &frameWriter{r: r, logger: logger}
	obs.Observe(ctrl.Snapshot())

	err := ctrl.Run(ctx, obs)
	snap := ctrl.Snapshot()
	if err != nil {
		logger.Debug("episode interrupted", "tick", snap.Tick, "error", err)
		return snap, err
	}
	logger.Debug("episode finished", "status", snap.Status, "reason", snap.Reason, "score", snap.Score, "tick", snap.Tick)
	return snap, nil
}

// frameWriter is the observer that prints each snapshot. Write failures are
// logged once and otherwise ignored.
type frameWriter struct {
	r      *Runner
	logger *log.Logger
	failed bool
}

// Observe writes one frame.
func (w *frameWriter) Observe(s engine.Snapshot) {
	if w.r.Out == nil {
		return
	}
	if _, err := io.WriteString(w.r.Out, w.frame(s)); err != nil && !w.failed {
		w.failed = true
		w.logger.Warn("cannot draw frame", "error", err)
	}
}

func (w *frameWriter) frame(s engine.Snapshot) string {
	nl := "\n"
	var b strings.Builder
	if w.r.Raw {
		nl = "\r\n"
		b.WriteString(clearScreen)
	}
	b.WriteString(Header(w.r.Title, s))
	b.WriteString(nl)
	for _, row := range s.Rows() {
		b.WriteString(row)
		b.WriteString(nl)
	}
	if s.Terminal() {
		b.WriteString(Outcome(s))
		b.WriteString(nl)
	}
	return b.String()
}

// Header is the one-line status above the board.
func Header(title string, s engine.Snapshot) string {
	budget := "∞"
	if s.StepBudget > 0 {
		budget = fmt.Sprintf("%d", s.StepBudget)
	}
	h := fmt.Sprintf("Score: %d  Tick: %d/%s  Pellets: %d", s.Score, s.Tick, budget, s.PelletsLeft())
	if title != "" {
		h = title + "  " + h
	}
	return h
}

// Outcome describes a finished episode.
func Outcome(s engine.Snapshot) string {
	switch s.Status {
	case engine.StatusWon:
		return fmt.Sprintf("Won with %d points in %d ticks", s.Score, s.Tick)
	case engine.StatusLost:
		return fmt.Sprintf("Lost (%s) with %d points after %d ticks", s.Reason, s.Score, s.Tick)
	}
	return fmt.Sprintf("Stopped at tick %d with %d points", s.Tick, s.Score)
}
