package timeline

import (
	"time"

	"overcue/internal/subtitle"
)

// Lookup selects the caption active at a given virtual time. The track
// is read-only after construction, so lookups need no synchronization.
type Lookup struct {
	cues []subtitle.Cue
}

func NewLookup(track *subtitle.Track) *Lookup {
	return &Lookup{cues: track.Cues}
}

// Find returns the text of the first cue in file order whose interval
// covers the virtual time, both bounds inclusive, or "" when none does.
// File order is the tie-break for overlapping cues; overlaps are never
// merged or reordered.
func (l *Lookup) Find(virtualSeconds float64) string {
	at := time.Duration(virtualSeconds * float64(time.Second))
	for _, cue := range l.cues {
		if cue.Contains(at) {
			return cue.Text
		}
	}
	return ""
}

// Len reports the number of cues available for selection.
func (l *Lookup) Len() int {
	return len(l.cues)
}
