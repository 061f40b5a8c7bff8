package subtitle

import (
	"regexp"
	"strings"
)

var vttTimingRegex = regexp.MustCompile(
	`^(?:(\d{2,}):)?(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(?:(\d{2,}):)?(\d{2}):(\d{2})\.(\d{3})`,
)

// parseVTT handles WEBVTT content. The header, NOTE and STYLE blocks are
// skipped; cue identifiers are optional. Short MM:SS.mmm timings are
// accepted alongside the full HH:MM:SS.mmm form. Blocks without a valid
// timing line are dropped.
func parseVTT(content string) []Cue {
	var cues []Cue

	for _, block := range splitBlocks(content) {
		first := strings.TrimSpace(block[0])
		if strings.HasPrefix(first, "WEBVTT") ||
			strings.HasPrefix(first, "NOTE") ||
			strings.HasPrefix(first, "STYLE") ||
			strings.HasPrefix(first, "REGION") {
			continue
		}

		cue, ok := vttCueFromBlock(block)
		if !ok {
			continue
		}
		cue.Index = len(cues) + 1
		cues = append(cues, cue)
	}

	return cues
}

func vttCueFromBlock(lines []string) (Cue, bool) {
	// timing is on the first line, or the second when a cue identifier
	// precedes it
	i := 0
	m := vttTimingRegex.FindStringSubmatch(lines[i])
	if m == nil && len(lines) > 1 {
		i = 1
		m = vttTimingRegex.FindStringSubmatch(lines[i])
	}
	if m == nil {
		return Cue{}, false
	}
	i++

	start, ok := timestampFromParts(orZero(m[1]), m[2], m[3], m[4])
	if !ok {
		return Cue{}, false
	}
	end, ok := timestampFromParts(orZero(m[5]), m[6], m[7], m[8])
	if !ok || end < start {
		return Cue{}, false
	}

	text := strings.Join(lines[i:], "\n")
	if strings.TrimSpace(text) == "" {
		return Cue{}, false
	}

	return Cue{Start: start, End: end, Text: text}, true
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
