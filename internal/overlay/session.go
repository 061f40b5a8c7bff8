package overlay

import (
	"overcue/internal/timeline"
)

// Font size is presentation-only state; the timeline core never sees it.
const (
	FontStep    = 2
	MinFontSize = 8
	MaxFontSize = 172
)

// Session dispatches decoded commands to the virtual clock, the runner
// and the presenter. Commands arrive from a single input goroutine, so
// the font size needs no locking; clock and runner handle their own
// synchronization against the tick loop.
type Session struct {
	vclock    *timeline.VirtualClock
	runner    *timeline.Runner
	presenter timeline.Presenter
	fontSize  int
}

func NewSession(
	vclock *timeline.VirtualClock,
	runner *timeline.Runner,
	presenter timeline.Presenter,
	fontSize int,
) *Session {
	if fontSize < MinFontSize {
		fontSize = MinFontSize
	}
	if fontSize > MaxFontSize {
		fontSize = MaxFontSize
	}
	return &Session{
		vclock:    vclock,
		runner:    runner,
		presenter: presenter,
		fontSize:  fontSize,
	}
}

// Start emits the initial coefficient readout, mirroring the transient
// banner shown when the overlay comes up.
func (s *Session) Start() {
	s.presenter.ShowCoefficientInfo(s.vclock.Scale(), s.fontSize)
}

// HandleCommand applies one control command and reports whether the
// session should end.
func (s *Session) HandleCommand(cmd Command) (quit bool) {
	switch cmd {
	case CmdTogglePause:
		s.vclock.TogglePause()

	case CmdSeekBack:
		s.vclock.ShiftOffset(-timeline.OffsetStep)

	case CmdSeekForward:
		s.vclock.ShiftOffset(timeline.OffsetStep)

	case CmdToggleTimer:
		s.runner.ToggleTimer()

	case CmdSpeedUp, CmdSpeedDown:
		scale := s.vclock.AdjustScale(cmd == CmdSpeedUp)
		s.presenter.ShowCoefficientInfo(scale, s.fontSize)

	case CmdFontUp:
		if s.fontSize+FontStep <= MaxFontSize {
			s.fontSize += FontStep
		}
		s.presenter.ShowCoefficientInfo(s.vclock.Scale(), s.fontSize)

	case CmdFontDown:
		if s.fontSize-FontStep >= MinFontSize {
			s.fontSize -= FontStep
		}
		s.presenter.ShowCoefficientInfo(s.vclock.Scale(), s.fontSize)

	case CmdQuit:
		return true
	}

	return false
}

// FontSize returns the current caption font size in points.
func (s *Session) FontSize() int {
	return s.fontSize
}
