package subtitle

import (
	"testing"
	"time"
)

func TestParseVTT(t *testing.T) {
	content := `WEBVTT

1
00:00:01.000 --> 00:00:04.000
Hello, world!

2
00:00:05.500 --> 00:00:08.200
This is a test.
With multiple lines.

00:00:10.000 --> 00:00:12.500
No cue identifier.
`
	cues := parseVTT(content)

	if len(cues) != 3 {
		t.Fatalf("expected 3 cues, got %d", len(cues))
	}
	if cues[0].Start != 1*time.Second {
		t.Errorf("cue 0: start = %v, want 1s", cues[0].Start)
	}
	if cues[0].Text != "Hello, world!" {
		t.Errorf("cue 0: text = %q", cues[0].Text)
	}
	if cues[1].Text != "This is a test.\nWith multiple lines." {
		t.Errorf("cue 1: text = %q", cues[1].Text)
	}
	if cues[2].Text != "No cue identifier." {
		t.Errorf("cue 2: text = %q", cues[2].Text)
	}
}

func TestParseVTTShortTimestamps(t *testing.T) {
	content := `WEBVTT

01:30.000 --> 01:35.500
Short form timing.
`
	cues := parseVTT(content)
	if len(cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(cues))
	}
	if cues[0].Start != 90*time.Second {
		t.Errorf("start = %v, want 1m30s", cues[0].Start)
	}
	if cues[0].End != 95500*time.Millisecond {
		t.Errorf("end = %v, want 1m35.5s", cues[0].End)
	}
}

func TestParseVTTSkipsMetadataBlocks(t *testing.T) {
	content := `WEBVTT

NOTE this block is commentary
spanning two lines

STYLE
::cue { color: lime }

00:00:01.000 --> 00:00:02.000
Actual cue.
`
	cues := parseVTT(content)
	if len(cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(cues))
	}
	if cues[0].Text != "Actual cue." {
		t.Errorf("text = %q", cues[0].Text)
	}
}

func TestParseVTTSkipsMalformedBlocks(t *testing.T) {
	content := `WEBVTT

broken block without timing

00:00:05.000 --> 00:00:03.000
End before start.

00:00:06.000 --> 00:00:07.000
Survivor.
`
	cues := parseVTT(content)
	if len(cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(cues))
	}
	if cues[0].Text != "Survivor." {
		t.Errorf("text = %q", cues[0].Text)
	}
}
