package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"overcue/internal/subtitle"
)

var convertCmd = &cobra.Command{
	Use:   "convert [subtitle_file]",
	Short: "Convert a subtitle file to another format",
	Long: `Convert between subtitle formats. The input may be SRT, VTT, ASS/SSA,
TTML, or STL; output can be SRT, VTT, or ASS.

Examples:
  overcue convert movie.ttml
  overcue convert movie.vtt -f ass
  overcue convert movie.srt -o movie.vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringP("format", "f", "", "Output format (srt, vtt, ass); inferred from -o when unset")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	formatStr, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")

	track, err := subtitle.Open(inputPath)
	if err != nil {
		return err
	}
	if len(track.Cues) == 0 {
		return fmt.Errorf("subtitle file contains no usable cues")
	}

	var format subtitle.Format
	switch {
	case formatStr != "":
		switch strings.ToLower(formatStr) {
		case "srt":
			format = subtitle.FormatSRT
		case "vtt":
			format = subtitle.FormatVTT
		case "ass":
			format = subtitle.FormatASS
		default:
			return fmt.Errorf(
				"unsupported output format %q: use srt, vtt, or ass",
				formatStr,
			)
		}
	case outputPath != "":
		format = subtitle.WriterFormatFromExtension(outputPath)
	default:
		format = subtitle.FormatSRT
	}

	if outputPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outputPath = base + "." + string(format)
	}

	writer, err := subtitle.NewWriter(format)
	if err != nil {
		return err
	}
	if err := writer.Write(track, outputPath); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	logger.Infow("Converted subtitle file",
		"input", inputPath,
		"output", outputPath,
		"cues", len(track.Cues),
	)

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles converted successfully: %s\n", absOutput)
	fmt.Printf("  Cues: %d\n", len(track.Cues))

	return nil
}
