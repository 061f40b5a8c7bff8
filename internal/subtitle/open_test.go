package subtitle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeTempSubtitle(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestOpenSRT(t *testing.T) {
	path := writeTempSubtitle(t, "movie.srt", `1
00:00:01,000 --> 00:00:02,000
Hello.
`)
	track, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if track.Format != FormatSRT {
		t.Errorf("format = %v, want %v", track.Format, FormatSRT)
	}
	if len(track.Cues) != 1 || track.Cues[0].Text != "Hello." {
		t.Errorf("unexpected cues: %+v", track.Cues)
	}
}

func TestOpenVTT(t *testing.T) {
	path := writeTempSubtitle(t, "movie.vtt", `WEBVTT

00:00:01.000 --> 00:00:02.000
Hello.
`)
	track, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if track.Format != FormatVTT {
		t.Errorf("format = %v, want %v", track.Format, FormatVTT)
	}
	if len(track.Cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(track.Cues))
	}
}

func TestOpenStripsBOMAndCRLF(t *testing.T) {
	path := writeTempSubtitle(t, "movie.srt",
		"\ufeff1\r\n00:00:01,000 --> 00:00:02,000\r\nHello.\r\n")
	track, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if len(track.Cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(track.Cues))
	}
	if track.Cues[0].Start != 1*time.Second {
		t.Errorf("start = %v, want 1s", track.Cues[0].Start)
	}
}

func TestOpenUnsupportedExtension(t *testing.T) {
	path := writeTempSubtitle(t, "movie.sub", "junk")
	_, err := Open(path)
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if !strings.Contains(err.Error(), "unsupported subtitle format") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.srt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
