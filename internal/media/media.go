// Package media pulls embedded subtitle tracks out of video containers
// with ffmpeg so they can be overlaid from a plain caption file.
package media

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// one embedded subtitle stream inside a container
type SubtitleStream struct {
	Index    int // position among the file's subtitle streams
	Codec    string
	Language string
	Title    string
}

// Extractor lists and extracts subtitle streams from video files.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

type probeOutput struct {
	Streams []probeStream `json:"streams"`
}

type probeStream struct {
	Index     int    `json:"index"`
	CodecType string `json:"codec_type"`
	CodecName string `json:"codec_name"`
	Tags      struct {
		Language string `json:"language"`
		Title    string `json:"title"`
	} `json:"tags"`
}

// ListSubtitleStreams probes the container and returns its subtitle
// streams in order. The Index of each result counts subtitle streams
// only, matching ffmpeg's 0:s:N selector.
func (e *Extractor) ListSubtitleStreams(
	ctx context.Context,
	videoPath string,
) ([]SubtitleStream, error) {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("video file not found: %s", videoPath)
	}

	raw, err := ffmpeg.Probe(videoPath)
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	var probed probeOutput
	if err := json.Unmarshal([]byte(raw), &probed); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	var streams []SubtitleStream
	for _, s := range probed.Streams {
		if s.CodecType != "subtitle" {
			continue
		}
		streams = append(streams, SubtitleStream{
			Index:    len(streams),
			Codec:    s.CodecName,
			Language: s.Tags.Language,
			Title:    s.Tags.Title,
		})
	}

	return streams, nil
}

// ExtractSubtitle writes the streamIndex-th subtitle stream of the video
// to outputPath, transcoding to the codec implied by the output
// extension.
func (e *Extractor) ExtractSubtitle(
	ctx context.Context,
	videoPath, outputPath string,
	streamIndex int,
) error {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("video file not found: %s", videoPath)
	}
	if streamIndex < 0 {
		return fmt.Errorf("stream index must be non-negative, got %d", streamIndex)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	kwargs := ffmpeg.KwArgs{
		"map": fmt.Sprintf("0:s:%d", streamIndex),
		"c:s": subtitleCodecFor(outputPath),
	}

	err := ffmpeg.Input(videoPath).
		Output(outputPath, kwargs).
		OverWriteOutput().
		Run()
	if err != nil {
		return fmt.Errorf("ffmpeg extraction failed: %w", err)
	}

	return nil
}

func subtitleCodecFor(outputPath string) string {
	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".vtt":
		return "webvtt"
	case ".ass", ".ssa":
		return "ass"
	default:
		return "srt"
	}
}
