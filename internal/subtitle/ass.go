package subtitle

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var assOverrideTags = regexp.MustCompile(`\{[^}]*\}`)

// parseASS reads Dialogue lines from the [Events] section. The Format line
// determines the column layout; dialogue lines that do not fit it are
// dropped. Override tags are stripped from the text and \N / \n markers
// become real line breaks.
func parseASS(content string) []Cue {
	var cues []Cue

	inEvents := false
	var columns []string

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			section := strings.ToLower(trimmed[1 : len(trimmed)-1])
			inEvents = section == "events"
			continue
		}
		if !inEvents {
			continue
		}

		if rest, ok := strings.CutPrefix(trimmed, "Format:"); ok {
			columns = splitAndTrim(rest, ",")
			continue
		}
		if rest, ok := strings.CutPrefix(trimmed, "Dialogue:"); ok {
			cue, valid := assCueFromDialogue(rest, columns)
			if !valid {
				continue
			}
			cue.Index = len(cues) + 1
			cues = append(cues, cue)
		}
	}

	return cues
}

func assCueFromDialogue(rest string, columns []string) (Cue, bool) {
	if len(columns) == 0 {
		return Cue{}, false
	}

	startIdx, endIdx, textIdx := -1, -1, -1
	for i, col := range columns {
		switch strings.ToLower(col) {
		case "start":
			startIdx = i
		case "end":
			endIdx = i
		case "text":
			textIdx = i
		}
	}
	if startIdx < 0 || endIdx < 0 || textIdx < 0 {
		return Cue{}, false
	}

	// the Text column absorbs any commas past the last declared field
	fields := strings.SplitN(strings.TrimSpace(rest), ",", len(columns))
	if len(fields) < len(columns) {
		return Cue{}, false
	}

	start, ok := parseASSTimestamp(fields[startIdx])
	if !ok {
		return Cue{}, false
	}
	end, ok := parseASSTimestamp(fields[endIdx])
	if !ok || end < start {
		return Cue{}, false
	}

	text := assOverrideTags.ReplaceAllString(fields[textIdx], "")
	text = strings.ReplaceAll(text, `\N`, "\n")
	text = strings.ReplaceAll(text, `\n`, "\n")
	if strings.TrimSpace(text) == "" {
		return Cue{}, false
	}

	return Cue{Start: start, End: end, Text: text}, true
}

// parseASSTimestamp reads the H:MM:SS.cc form used by ASS events.
func parseASSTimestamp(ts string) (time.Duration, bool) {
	parts := strings.Split(strings.TrimSpace(ts), ":")
	if len(parts) != 3 {
		return 0, false
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	secParts := strings.Split(parts[2], ".")
	if len(secParts) != 2 {
		return 0, false
	}
	s, err := strconv.Atoi(secParts[0])
	if err != nil {
		return 0, false
	}
	cs, err := strconv.Atoi(secParts[1])
	if err != nil {
		return 0, false
	}

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(cs)*10*time.Millisecond, true
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
