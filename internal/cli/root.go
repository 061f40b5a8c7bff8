package cli

import (
	"github.com/spf13/cobra"

	"overcue/internal/logging"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "overcue [subtitle_file] [offset_seconds] [scale] [font_size_pt]",
	Short: "Time-synchronized caption overlay for externally controlled video",
	Long: `Overcue displays captions in sync with a video source it cannot query,
such as a streaming player. It keeps its own virtual subtitle clock and
lets you recalibrate it live: pause, nudge the offset, and fine-tune the
playback rate without the displayed caption jumping.

Run it with a subtitle file to start the overlay, or use the subcommands
to extract, convert, or translate caption files first.`,
	Args: cobra.RangeArgs(0, 4),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runShow(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringP("language", "l", "", "Language code (e.g., en, es, fr)")

	addShowFlags(rootCmd)
}
