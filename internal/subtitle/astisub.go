package subtitle

import (
	"fmt"
	"strings"

	"github.com/asticode/go-astisub"
)

// openAstisub loads formats without a native parser (TTML, DFXP, STL)
// through go-astisub and flattens the items into cues.
func openAstisub(path, ext string) (*Track, error) {
	subs, err := astisub.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open subtitle file: %w", err)
	}

	format := FormatTTML
	if ext == ".stl" {
		format = FormatSTL
	}

	var cues []Cue
	for _, item := range subs.Items {
		if item == nil {
			continue
		}

		lines := make([]string, 0, len(item.Lines))
		for _, line := range item.Lines {
			lines = append(lines, line.String())
		}
		text := strings.Join(lines, "\n")
		if strings.TrimSpace(text) == "" {
			continue
		}
		if item.EndAt < item.StartAt {
			continue
		}

		cues = append(cues, Cue{
			Index: len(cues) + 1,
			Start: item.StartAt,
			End:   item.EndAt,
			Text:  text,
		})
	}

	return &Track{Cues: cues, Format: format}, nil
}
