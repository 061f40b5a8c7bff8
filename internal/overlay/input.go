package overlay

import (
	"context"
	"io"
)

// Command is one discrete control action decoded from keyboard input.
type Command int

const (
	CmdNone Command = iota
	CmdTogglePause
	CmdSeekBack
	CmdSeekForward
	CmdToggleTimer
	CmdSpeedUp
	CmdSpeedDown
	CmdFontUp
	CmdFontDown
	CmdQuit
)

const (
	keyEscape = 0x1b
	keyCtrlC  = 0x03
	keyCtrlD  = 0x04
)

// decodeKey translates the key event at the start of buf into a command
// and reports how many bytes it consumed. Arrow keys arrive as three-byte
// CSI sequences in raw mode; everything else is a single byte.
func decodeKey(buf []byte) (Command, int) {
	if len(buf) == 0 {
		return CmdNone, 0
	}

	if buf[0] == keyEscape {
		if len(buf) >= 3 && buf[1] == '[' {
			switch buf[2] {
			case 'C': // right arrow
				return CmdSeekForward, 3
			case 'D': // left arrow
				return CmdSeekBack, 3
			}
			return CmdNone, 3
		}
		return CmdNone, 1
	}

	switch buf[0] {
	case ' ':
		return CmdTogglePause, 1
	case 'a', 'A':
		return CmdToggleTimer, 1
	case '+', '=':
		return CmdSpeedUp, 1
	case '-', '_':
		return CmdSpeedDown, 1
	case 'x', 'X':
		return CmdFontUp, 1
	case 'c', 'C':
		return CmdFontDown, 1
	case 'q', 'Q', keyCtrlC, keyCtrlD:
		return CmdQuit, 1
	}

	return CmdNone, 1
}

// ReadCommands decodes key presses from r into commands. The channel is
// closed when r reaches EOF, errors, or ctx is cancelled. A blocking
// read on a terminal cannot be interrupted, so cancellation takes effect
// on the next key press at the latest; the process exits regardless.
func ReadCommands(ctx context.Context, r io.Reader) <-chan Command {
	cmds := make(chan Command)

	go func() {
		defer close(cmds)

		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			if err != nil {
				return
			}

			rest := buf[:n]
			for len(rest) > 0 {
				cmd, consumed := decodeKey(rest)
				rest = rest[consumed:]
				if cmd == CmdNone {
					continue
				}
				select {
				case <-ctx.Done():
					return
				case cmds <- cmd:
				}
			}
		}
	}()

	return cmds
}
