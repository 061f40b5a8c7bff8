package timeline

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// Presenter receives display updates from the runner. Implementations
// must tolerate calls from multiple goroutines: captions and timer text
// arrive from the tick loop, coefficient info from command handling.
type Presenter interface {
	RenderCaption(text string)
	RenderTimer(text string)
	ShowCoefficientInfo(scale float64, fontSize int)
}

// DefaultInterval is the reference update period.
const DefaultInterval = 100 * time.Millisecond

// Runner drives the periodic update cycle. It owns the last-emitted
// caption cache; the virtual clock and the lookup know nothing about
// what is displayed.
type Runner struct {
	vclock     *VirtualClock
	lookup     *Lookup
	presenter  Presenter
	interval   time.Duration
	timerShown atomic.Bool
	last       string
}

func NewRunner(
	vclock *VirtualClock,
	lookup *Lookup,
	presenter Presenter,
	interval time.Duration,
) *Runner {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Runner{
		vclock:    vclock,
		lookup:    lookup,
		presenter: presenter,
		interval:  interval,
	}
}

// Tick performs one update cycle: read the virtual time, select the
// active caption and notify the presenter. The caption event is edge
// triggered, including transitions to and from empty; the timer readout
// is re-emitted on every tick while enabled.
func (r *Runner) Tick() {
	v := r.vclock.ElapsedVirtual()

	text := r.lookup.Find(v)
	if text != r.last {
		r.last = text
		r.presenter.RenderCaption(text)
	}

	if r.timerShown.Load() {
		r.presenter.RenderTimer(FormatTimestamp(v))
	}
}

// Run ticks at the configured interval until ctx is cancelled. An
// immediate first tick avoids a blank interval at startup.
func (r *Runner) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.Tick()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Tick()
		}
	}
}

// SetTimerShown enables or disables the continuous timer readout.
// Disabling clears it.
func (r *Runner) SetTimerShown(shown bool) {
	r.timerShown.Store(shown)
	if !shown {
		r.presenter.RenderTimer("")
	}
}

// ToggleTimer flips the timer readout and reports the new visibility.
func (r *Runner) ToggleTimer() bool {
	shown := !r.timerShown.Load()
	r.SetTimerShown(shown)
	return shown
}

// FormatTimestamp renders a virtual time in seconds as HH:MM:SS.mmm.
// Every component is truncated, not rounded. Negative virtual time is
// clamped to zero for display.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	whole := int64(seconds)
	hours := whole / 3600
	minutes := (whole % 3600) / 60
	secs := whole % 60
	millis := int64((seconds - float64(whole)) * 1000)

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, secs, millis)
}
