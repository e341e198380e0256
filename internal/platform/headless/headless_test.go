package headless

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
)

func at(c engine.Coord) *engine.Coord { return &c }

// newController starts a 5x5 episode with the player top-left facing right.
func newController(t *testing.T, interval time.Duration, pellets ...engine.Coord) *engine.Controller {
	t.Helper()
	c := engine.NewController()
	_, err := c.Reset(engine.Config{
		Height:       5,
		Width:        5,
		PelletValue:  10,
		StepBudget:   10,
		TickInterval: interval,
		Layout: &engine.Layout{
			Player:  at(engine.C(0, 0)),
			Facing:  engine.DirRight,
			Pellets: pellets,
		},
	})
	if err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return c
}

func TestReadKey(t *testing.T) {
	tests := []struct {
		input string
		key   Key
	}{
		{"w", Key{Dir: engine.DirUp}},
		{"l", Key{Dir: engine.DirRight}},
		{"s", Key{Dir: engine.DirDown}},
		{"a", Key{Dir: engine.DirLeft}},
		{"\x1b[A", Key{Dir: engine.DirUp}},
		{"\x1b[C", Key{Dir: engine.DirRight}},
		{"\x1bOB", Key{Dir: engine.DirDown}},
		{"\x1b[D", Key{Dir: engine.DirLeft}},
		{"\x1b[Z", Key{}},
		{"q", Key{Quit: true}},
		{"\x03", Key{Quit: true}},
		{"x", Key{}},
	}

	for _, tt := range tests {
		k, err := ReadKey(bufio.NewReader(strings.NewReader(tt.input)))
		if err != nil {
			t.Errorf("ReadKey(%q) failed: %v", tt.input, err)
			continue
		}
		if k != tt.key {
			t.Errorf("ReadKey(%q) = %+v, expected %+v", tt.input, k, tt.key)
		}
	}

	if k, err := ReadKey(bufio.NewReader(strings.NewReader("\x1b"))); err != nil || k != (Key{}) {
		t.Errorf("lone escape = %+v, %v; expected the zero Key", k, err)
	}
}

func TestReadKeyEscapeKeepsNextKey(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("\x1bq"))
	if k, err := ReadKey(r); err != nil || k != (Key{}) {
		t.Fatalf("first ReadKey = %+v, %v; expected the zero Key", k, err)
	}
	k, err := ReadKey(r)
	if err != nil {
		t.Fatalf("second ReadKey failed: %v", err)
	}
	if !k.Quit {
		t.Errorf("ReadKey after escape = %+v, expected quit", k)
	}
}

func TestReadKeyLoneEscapeDoesNotBlock(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	r := bufio.NewReader(pr)
	go func() { _, _ = pw.Write([]byte{0x1b}) }()

	done := make(chan Key, 1)
	go func() {
		k, _ := ReadKey(r)
		done <- k
	}()
	select {
	case k := <-done:
		if k != (Key{}) {
			t.Errorf("ReadKey = %+v, expected the zero Key", k)
		}
	case <-time.After(time.Second):
		t.Fatal("ReadKey blocked after a lone escape")
	}
}

func TestPumpFeedsMailbox(t *testing.T) {
	c := newController(t, time.Hour, engine.C(4, 4))

	quit := false
	if err := Pump(context.Background(), strings.NewReader("wxs"), c, func() { quit = true }); err != nil {
		t.Fatalf("Pump() failed: %v", err)
	}
	if quit {
		t.Fatal("unexpected quit")
	}

	snap, err := c.Tick()
	if err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}
	// Latest key wins: down
	if snap.Player != engine.C(1, 0) {
		t.Errorf("player = %v, expected (1,0)", snap.Player)
	}
}

func TestPumpQuit(t *testing.T) {
	c := newController(t, time.Hour, engine.C(4, 4))

	quit := false
	if err := Pump(context.Background(), strings.NewReader("dq"), c, func() { quit = true }); err != nil {
		t.Fatalf("Pump() failed: %v", err)
	}
	if !quit {
		t.Error("expected quit callback")
	}
}

func TestRunnerPlaysToEnd(t *testing.T) {
	c := newController(t, time.Millisecond, engine.C(0, 3))

	var out bytes.Buffer
	r := &Runner{Out: &out, Title: "Test", Logger: log.New(io.Discard)}
	snap, err := r.Run(context.Background(), c)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if snap.Status != engine.StatusWon || snap.Tick != 3 {
		t.Errorf("final snapshot: status %v tick %d", snap.Status, snap.Tick)
	}

	text := out.String()
	if got := strings.Count(text, "Test  Score:"); got != 4 {
		t.Errorf("expected 4 frames, got %d", got)
	}
	if !strings.Contains(text, "Won with 10 points in 3 ticks") {
		t.Errorf("missing outcome in output:\n%s", text)
	}
}

func TestRunnerQuitCancels(t *testing.T) {
	c := newController(t, time.Hour, engine.C(4, 4))

	r := &Runner{In: strings.NewReader("q"), Out: io.Discard, Logger: log.New(io.Discard)}
	snap, err := r.Run(context.Background(), c)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if snap.Status != engine.StatusRunning || snap.Tick != 0 {
		t.Errorf("quit changed the episode: %v at tick %d", snap.Status, snap.Tick)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRunnerSurvivesWriteFailures(t *testing.T) {
	c := newController(t, time.Millisecond, engine.C(0, 2))

	var logs bytes.Buffer
	r := &Runner{Out: failingWriter{}, Logger: log.New(&logs)}
	snap, err := r.Run(context.Background(), c)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if snap.Status != engine.StatusWon {
		t.Errorf("status = %v, expected won", snap.Status)
	}
	if strings.Count(logs.String(), "cannot draw frame") != 1 {
		t.Errorf("expected one warning, got:\n%s", logs.String())
	}
}

func TestRawFramesUseCRLF(t *testing.T) {
	c := newController(t, time.Hour, engine.C(4, 4))
	w := &frameWriter{r: &Runner{Raw: true}}

	frame := w.frame(c.Snapshot())
	if !strings.HasPrefix(frame, clearScreen) {
		t.Error("raw frame does not clear the screen")
	}
	if strings.Count(frame, "\r\n") != 6 {
		t.Errorf("expected header and 5 rows with CRLF:\n%q", frame)
	}
}

func TestSimulate(t *testing.T) {
	moves, err := ParseMoves("rr, dd ll")
	if err != nil {
		t.Fatalf("ParseMoves() failed: %v", err)
	}
	if FormatMoves(moves) != "RRDDLL" {
		t.Errorf("FormatMoves() = %q", FormatMoves(moves))
	}

	c := newController(t, time.Hour, engine.C(2, 2))
	snaps, err := Simulate(c, moves)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	// Start position plus four ticks; the last two moves come after the win
	if len(snaps) != 5 {
		t.Fatalf("expected 5 snapshots, got %d", len(snaps))
	}
	last := snaps[len(snaps)-1]
	if last.Status != engine.StatusWon || last.Score != 10 {
		t.Errorf("last snapshot: %v score %d", last.Status, last.Score)
	}
}

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves("U.d")
	if err != nil {
		t.Fatalf("ParseMoves() failed: %v", err)
	}
	expected := []engine.Direction{engine.DirUp, engine.DirNone, engine.DirDown}
	if len(moves) != len(expected) {
		t.Fatalf("moves = %v", moves)
	}
	for i := range expected {
		if moves[i] != expected[i] {
			t.Errorf("move %d = %v, expected %v", i, moves[i], expected[i])
		}
	}

	if _, err := ParseMoves("RX"); !errors.Is(err, engine.ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}

	_, err = ParseMoves("R, D, X")
	if err == nil || !strings.Contains(err.Error(), "move 3:") {
		t.Errorf("ParseMoves(\"R, D, X\") error = %v, expected it to name move 3", err)
	}
}
