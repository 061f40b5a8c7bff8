package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"overcue/internal/clock"
	"overcue/internal/overlay"
	"overcue/internal/subtitle"
	"overcue/internal/timeline"
)

var showCmd = &cobra.Command{
	Use:   "show [subtitle_file] [offset_seconds] [scale] [font_size_pt]",
	Short: "Display a caption overlay driven by the virtual subtitle clock",
	Long: `Display captions from a subtitle file on the terminal, timed by a
virtual clock you steer by hand while watching the video next to it.

Positional arguments after the file are optional: an initial offset in
seconds, an initial rate-control scale (24 means real-time speed), and a
font size in points shown in the coefficient readout.

Keys while running:
  space     pause / resume
  left      rewind captions 0.5s
  right     advance captions 0.5s
  +/-       fine-tune playback rate (anchor-preserving)
  a         toggle the elapsed-time readout
  x / c     font size up / down
  q         quit

Examples:
  overcue show movie.srt
  overcue show movie.srt 12.5
  overcue show movie.srt 0 25.0 32 --timer`,
	Args: cobra.RangeArgs(1, 4),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	addShowFlags(showCmd)
}

// addShowFlags registers the overlay flags. The root command doubles as
// show when given positional arguments, so both commands carry them.
func addShowFlags(cmd *cobra.Command) {
	cmd.Flags().
		Duration("interval", timeline.DefaultInterval, "Caption update period")
	cmd.Flags().
		Bool("timer", false, "Start with the elapsed-time readout visible")
	cmd.Flags().
		Bool("no-color", false, "Disable colored output")
}

func runShow(cmd *cobra.Command, args []string) error {
	path := args[0]

	offset := 0.0
	scale := float64(timeline.ReferenceRate)
	fontSize := 24

	if len(args) > 1 {
		v, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid offset %q: %w", args[1], err)
		}
		offset = v
	}
	if len(args) > 2 {
		v, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid scale %q: %w", args[2], err)
		}
		if v <= 0 {
			return fmt.Errorf("scale must be positive, got %g", v)
		}
		scale = v
	}
	if len(args) > 3 {
		v, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("invalid font size %q: %w", args[3], err)
		}
		fontSize = v
	}

	interval, _ := cmd.Flags().GetDuration("interval")
	showTimer, _ := cmd.Flags().GetBool("timer")
	noColor, _ := cmd.Flags().GetBool("no-color")

	// the overlay cannot run without a caption store
	track, err := subtitle.Open(path)
	if err != nil {
		return err
	}

	logger.Infow("Loaded captions",
		"file", path,
		"format", track.Format,
		"cues", len(track.Cues),
		"offset", offset,
		"scale", scale,
	)

	vclock := timeline.NewVirtualClock(clock.RealClock{}, offset, scale)
	lookup := timeline.NewLookup(track)

	color := !noColor && term.IsTerminal(int(os.Stdout.Fd()))
	presenter := overlay.NewTermPresenter(os.Stdout, color)
	runner := timeline.NewRunner(vclock, lookup, presenter, interval)
	session := overlay.NewSession(vclock, runner, presenter, fontSize)

	stdinFd := int(os.Stdin.Fd())
	if term.IsTerminal(stdinFd) {
		oldState, err := term.MakeRaw(stdinFd)
		if err != nil {
			return fmt.Errorf("failed to enter raw mode: %w", err)
		}
		defer func() {
			_ = term.Restore(stdinFd, oldState)
		}()
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	presenter.Start()
	defer presenter.Close()

	if showTimer {
		runner.SetTimerShown(true)
	}
	session.Start()

	go runner.Run(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	cmds := overlay.ReadCommands(ctx, os.Stdin)
	for {
		select {
		case <-sigCh:
			return nil
		case command, ok := <-cmds:
			if !ok {
				return nil
			}
			if session.HandleCommand(command) {
				return nil
			}
		}
	}
}
