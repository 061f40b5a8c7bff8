package subtitle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func sampleTrack() *Track {
	return &Track{
		Format: FormatSRT,
		Cues: []Cue{
			{Index: 1, Start: 1 * time.Second, End: 2500 * time.Millisecond,
				Text: "First cue."},
			{Index: 2, Start: 3 * time.Second, End: 4 * time.Second,
				Text: "Second cue.\nSecond line."},
		},
	}
}

func TestSRTWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.srt")
	w := &SRTWriter{}
	if err := w.Write(sampleTrack(), path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	track, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if len(track.Cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(track.Cues))
	}
	if track.Cues[0].End != 2500*time.Millisecond {
		t.Errorf("end = %v, want 2.5s", track.Cues[0].End)
	}
	if track.Cues[1].Text != "Second cue.\nSecond line." {
		t.Errorf("text = %q", track.Cues[1].Text)
	}
}

func TestVTTWriterHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.vtt")
	w := &VTTWriter{}
	if err := w.Write(sampleTrack(), path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	out := string(data)
	if !strings.HasPrefix(out, "WEBVTT\n") {
		t.Errorf("output missing WEBVTT header: %q", out[:20])
	}
	if !strings.Contains(out, "00:00:01.000 --> 00:00:02.500") {
		t.Errorf("output missing timing line:\n%s", out)
	}
}

func TestASSWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ass")
	w, err := NewWriter(FormatASS)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	if err := w.Write(sampleTrack(), path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	track, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if len(track.Cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(track.Cues))
	}
	// line breaks survive the \N escaping
	if track.Cues[1].Text != "Second cue.\nSecond line." {
		t.Errorf("text = %q", track.Cues[1].Text)
	}
}

func TestNewWriterUnsupportedFormat(t *testing.T) {
	if _, err := NewWriter(Format("bogus")); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWriterFormatFromExtension(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"out.vtt", FormatVTT},
		{"out.ass", FormatASS},
		{"out.ssa", FormatASS},
		{"out.srt", FormatSRT},
		{"out.unknown", FormatSRT},
	}
	for _, tt := range tests {
		if got := WriterFormatFromExtension(tt.path); got != tt.want {
			t.Errorf("WriterFormatFromExtension(%q) = %v, want %v",
				tt.path, got, tt.want)
		}
	}
}
