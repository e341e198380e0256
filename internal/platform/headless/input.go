// Package headless runs an episode on a plain terminal: the engine's own
// ticker drives the game while a reader task feeds key presses into the
// controller's mailbox.
package headless

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
)

// Key is a decoded key press.
type Key struct {
	Dir  engine.Direction // DirNone unless the key is a move
	Quit bool
}

const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
)

// ReadKey decodes one key press: arrows, WASD, vim keys, q and Ctrl+C.
// Unknown bytes decode to the zero Key.
func ReadKey(r *bufio.Reader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return Key{}, err
	}

	switch b {
	case keyCtrlC, 'q', 'Q':
		return Key{Quit: true}, nil
	case 'w', 'W', 'k':
		return Key{Dir: engine.DirUp}, nil
	case 'd', 'D', 'l':
		return Key{Dir: engine.DirRight}, nil
	case 's', 'S', 'j':
		return Key{Dir: engine.DirDown}, nil
	case 'a', 'A', 'h':
		return Key{Dir: engine.DirLeft}, nil
	case keyEscape:
		if r.Buffered() == 0 {
			return Key{}, nil
		}
		return readArrow(r)
	}
	return Key{}, nil
}

// readArrow finishes an ESC [ X or ESC O X sequence. A lone Esc with nothing
// buffered behind it is decoded by ReadKey as the zero Key.
func readArrow(r *bufio.Reader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return Key{}, err
	}
	if b != '[' && b != 'O' {
		// Not a sequence: leave the byte for the next ReadKey.
		return Key{}, r.UnreadByte()
	}
	code, err := r.ReadByte()
	if err != nil {
		return Key{}, err
	}
	switch code {
	case 'A':
		return Key{Dir: engine.DirUp}, nil
	case 'B':
		return Key{Dir: engine.DirDown}, nil
	case 'C':
		return Key{Dir: engine.DirRight}, nil
	case 'D':
		return Key{Dir: engine.DirLeft}, nil
	}
	return Key{}, nil
}

// Pump reads keys from in until it fails or ctx is done. Moves go to the
// controller's mailbox; a quit key calls quit. The read itself cannot be
// interrupted, so Pump may outlive ctx until the next byte or EOF.
func Pump(ctx context.Context, in io.Reader, ctrl *engine.Controller, quit func()) error {
	r := bufio.NewReader(in)
	for {
		k, err := ReadKey(r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
		switch {
		case k.Quit:
			quit()
			return nil
		case k.Dir != engine.DirNone:
			// Only fails for an invalid direction, which ReadKey never yields
			_ = ctrl.SubmitDirection(k.Dir)
		}
	}
}

// MakeRaw switches f to raw mode when it is a terminal. The returned function
// restores the previous state; it is a no-op for non-terminals.
func MakeRaw(f *os.File) (restore func(), err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() {
		//nolint:errcheck // Best-effort restore on exit
		term.Restore(fd, state)
	}, nil
}
