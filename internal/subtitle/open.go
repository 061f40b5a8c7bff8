package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Open parses the caption file at path into a Track. The format is chosen
// by file extension. Records that do not match the expected structure are
// silently dropped; only an unreadable file is an error.
func Open(path string) (*Track, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".srt":
		return openWith(path, FormatSRT, parseSRT)
	case ".vtt":
		return openWith(path, FormatVTT, parseVTT)
	case ".ass", ".ssa":
		return openWith(path, FormatASS, parseASS)
	case ".ttml", ".dfxp", ".xml", ".stl":
		return openAstisub(path, ext)
	default:
		return nil, fmt.Errorf("unsupported subtitle format: %s", ext)
	}
}

func openWith(
	path string,
	format Format,
	parse func(content string) []Cue,
) (*Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open subtitle file: %w", err)
	}

	content := strings.TrimPrefix(string(data), "\ufeff")
	content = strings.ReplaceAll(content, "\r\n", "\n")

	return &Track{Cues: parse(content), Format: format}, nil
}
