package overlay

import (
	"context"
	"strings"
	"testing"
)

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		want     Command
		consumed int
	}{
		{"space toggles pause", []byte(" "), CmdTogglePause, 1},
		{"right arrow seeks forward", []byte{0x1b, '[', 'C'}, CmdSeekForward, 3},
		{"left arrow seeks back", []byte{0x1b, '[', 'D'}, CmdSeekBack, 3},
		{"up arrow ignored", []byte{0x1b, '[', 'A'}, CmdNone, 3},
		{"lone escape ignored", []byte{0x1b}, CmdNone, 1},
		{"a toggles timer", []byte("a"), CmdToggleTimer, 1},
		{"A toggles timer", []byte("A"), CmdToggleTimer, 1},
		{"plus speeds up", []byte("+"), CmdSpeedUp, 1},
		{"equals speeds up", []byte("="), CmdSpeedUp, 1},
		{"minus slows down", []byte("-"), CmdSpeedDown, 1},
		{"x grows font", []byte("x"), CmdFontUp, 1},
		{"c shrinks font", []byte("c"), CmdFontDown, 1},
		{"q quits", []byte("q"), CmdQuit, 1},
		{"ctrl-c quits", []byte{0x03}, CmdQuit, 1},
		{"ctrl-d quits", []byte{0x04}, CmdQuit, 1},
		{"unknown key ignored", []byte("z"), CmdNone, 1},
		{"empty buffer", nil, CmdNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, consumed := decodeKey(tt.input)
			if cmd != tt.want || consumed != tt.consumed {
				t.Errorf(
					"decodeKey(%v) = (%v, %d), want (%v, %d)",
					tt.input, cmd, consumed, tt.want, tt.consumed,
				)
			}
		})
	}
}

func TestReadCommands(t *testing.T) {
	ctx := context.Background()

	// a pause toggle, an ignored key, two speed steps, then quit
	cmds := ReadCommands(ctx, strings.NewReader(" z++q"))

	want := []Command{CmdTogglePause, CmdSpeedUp, CmdSpeedUp, CmdQuit}
	var got []Command
	for cmd := range cmds {
		got = append(got, cmd)
	}

	if len(got) != len(want) {
		t.Fatalf("commands = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %v, want %v", i, got[i], want[i])
		}
	}
}
