package subtitle

import (
	"time"
)

// single timed caption
type Cue struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string // may contain embedded newlines
}

// complete caption track, immutable after load
type Track struct {
	Cues   []Cue
	Format Format
}

// represents supported subtitle formats
type Format string

const (
	FormatSRT  Format = "srt"
	FormatVTT  Format = "vtt"
	FormatASS  Format = "ass"
	FormatTTML Format = "ttml"
	FormatSTL  Format = "stl"
)

// interface for writing caption tracks to files
type Writer interface {
	Write(track *Track, path string) error
}

// reports whether the cue covers the given offset, both bounds inclusive.
func (c Cue) Contains(at time.Duration) bool {
	return c.Start <= at && at <= c.End
}
