package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"overcue/internal/media"
)

var extractCmd = &cobra.Command{
	Use:   "extract [video_file]",
	Short: "Extract an embedded subtitle track from a video file",
	Long: `Extract a subtitle stream from a video container so it can be shown
as an overlay. The output format follows the output file extension
(.srt, .vtt, .ass).

Use --list to see the subtitle streams a file carries before choosing
one with --stream.

Examples:
  overcue extract movie.mkv --list
  overcue extract movie.mkv
  overcue extract movie.mkv --stream 1 -o movie.en.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().
		IntP("stream", "s", 0, "Subtitle stream index within the file (0-based)")
	extractCmd.Flags().
		Bool("list", false, "List subtitle streams instead of extracting")
}

func runExtract(cmd *cobra.Command, args []string) error {
	videoPath := args[0]

	streamIndex, _ := cmd.Flags().GetInt("stream")
	list, _ := cmd.Flags().GetBool("list")
	outputPath, _ := cmd.Flags().GetString("output")

	extractor := media.NewExtractor()
	ctx := context.Background()

	if list {
		streams, err := extractor.ListSubtitleStreams(ctx, videoPath)
		if err != nil {
			return fmt.Errorf("failed to probe video: %w", err)
		}
		if len(streams) == 0 {
			fmt.Println("No subtitle streams found.")
			return nil
		}
		for _, s := range streams {
			desc := s.Codec
			if s.Language != "" {
				desc += ", " + s.Language
			}
			if s.Title != "" {
				desc += ", " + s.Title
			}
			fmt.Printf("  %d: %s\n", s.Index, desc)
		}
		return nil
	}

	if outputPath == "" {
		base := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))
		outputPath = base + ".srt"
	}

	logger.Infow("Extracting subtitle stream",
		"video", videoPath,
		"output", outputPath,
		"stream", streamIndex,
	)

	if err := extractor.ExtractSubtitle(
		ctx,
		videoPath,
		outputPath,
		streamIndex,
	); err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles extracted successfully: %s\n", absOutput)

	return nil
}
