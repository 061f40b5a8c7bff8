package subtitle

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var srtTimingRegex = regexp.MustCompile(
	`^(\d{2}):(\d{2}):(\d{2})[,.](\d{1,3})\s*-->\s*(\d{2}):(\d{2}):(\d{2})[,.](\d{1,3})`,
)

// parseSRT splits the content into blank-line separated blocks and keeps
// every block that carries a valid timing line. Malformed blocks are
// dropped without a diagnostic.
func parseSRT(content string) []Cue {
	var cues []Cue

	for _, block := range splitBlocks(content) {
		cue, ok := srtCueFromBlock(block)
		if !ok {
			continue
		}
		cue.Index = len(cues) + 1
		cues = append(cues, cue)
	}

	return cues
}

// srtCueFromBlock expects an optional numeric counter line, a timing line
// and at least one text line. Embedded line breaks in the text are kept.
func srtCueFromBlock(lines []string) (Cue, bool) {
	i := 0
	if i < len(lines) && isCounterLine(lines[i]) {
		i++
	}
	if i >= len(lines) {
		return Cue{}, false
	}

	m := srtTimingRegex.FindStringSubmatch(lines[i])
	if m == nil {
		return Cue{}, false
	}
	i++

	start, ok := timestampFromParts(m[1], m[2], m[3], m[4])
	if !ok {
		return Cue{}, false
	}
	end, ok := timestampFromParts(m[5], m[6], m[7], m[8])
	if !ok || end < start {
		return Cue{}, false
	}

	text := strings.Join(lines[i:], "\n")
	if strings.TrimSpace(text) == "" {
		return Cue{}, false
	}

	return Cue{Start: start, End: end, Text: text}, true
}

// splitBlocks groups non-empty lines into blocks separated by blank lines.
func splitBlocks(content string) [][]string {
	var blocks [][]string
	var current []string

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}

	return blocks
}

func isCounterLine(line string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(line))
	return err == nil
}

func timestampFromParts(hours, minutes, seconds, millis string) (time.Duration, bool) {
	h, err := strconv.Atoi(hours)
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(minutes)
	if err != nil {
		return 0, false
	}
	s, err := strconv.Atoi(seconds)
	if err != nil {
		return 0, false
	}
	// millis may be 1-3 digits; pad to milliseconds
	for len(millis) < 3 {
		millis += "0"
	}
	ms, err := strconv.Atoi(millis)
	if err != nil {
		return 0, false
	}

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(ms)*time.Millisecond, true
}
