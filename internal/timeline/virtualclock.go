// Package timeline implements the virtual subtitle clock and the periodic
// caption-selection loop behind the overlay. The virtual clock maps real
// elapsed time to subtitle time through an adjustable affine transform so
// the user can recalibrate sync against a video source that cannot be
// queried for its own position.
package timeline

import (
	"errors"
	"math"
	"sync"
	"time"

	"overcue/internal/clock"
)

// ReferenceRate is the scale factor at which virtual time advances at
// exactly real-time speed. The rate multiplier is scale/ReferenceRate.
const ReferenceRate = 24.0

// AdjustScale bounds and step size.
const (
	MinScale  = 0.1
	MaxScale  = 122.0
	scaleStep = 0.001
)

// OffsetStep is the seek correction in seconds applied per keypress.
const OffsetStep = 0.5

var (
	ErrAlreadyPaused = errors.New("virtual clock is already paused")
	ErrNotPaused     = errors.New("virtual clock is not paused")
)

// State of the pause machine.
type State int

const (
	StateRunning State = iota
	StatePaused
)

func (s State) String() string {
	if s == StatePaused {
		return "paused"
	}
	return "running"
}

// VirtualClock converts wall-clock readings into virtual subtitle time.
// All mutation goes through the control methods, each of which applies
// its read-modify-write over the offset, scale and pause fields as one
// atomic unit under the mutex. A concurrent ElapsedVirtual can therefore
// never observe a new scale paired with an old offset.
type VirtualClock struct {
	mu               sync.Mutex
	clk              clock.Clock
	origin           time.Time
	pausedAt         time.Time
	accumulatedPause time.Duration
	state            State
	offset           float64 // seconds added to virtual time
	scale            float64 // rate control, ReferenceRate means 1:1
}

// NewVirtualClock starts a running clock with origin at the source's
// current instant and the given initial corrections.
func NewVirtualClock(clk clock.Clock, offsetSeconds, scale float64) *VirtualClock {
	return &VirtualClock{
		clk:    clk,
		origin: clk.Now(),
		state:  StateRunning,
		offset: offsetSeconds,
		scale:  scale,
	}
}

// ElapsedReal returns the wall-clock seconds spent running since the
// origin, excluding time spent paused. The value is frozen while paused.
func (vc *VirtualClock) ElapsedReal() float64 {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.elapsedReal()
}

// ElapsedVirtual returns the current virtual subtitle time in seconds.
func (vc *VirtualClock) ElapsedVirtual() float64 {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.virtualAt(vc.elapsedReal())
}

func (vc *VirtualClock) elapsedReal() float64 {
	ref := vc.clk.Now()
	if vc.state == StatePaused {
		ref = vc.pausedAt
	}
	return ref.Sub(vc.origin).Seconds() - vc.accumulatedPause.Seconds()
}

func (vc *VirtualClock) virtualAt(elapsedReal float64) float64 {
	return elapsedReal*vc.scale/ReferenceRate + vc.offset
}

// Pause freezes virtual time. Calling it on an already paused clock is a
// caller error; the command layer toggles instead of calling blindly.
func (vc *VirtualClock) Pause() error {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	if vc.state == StatePaused {
		return ErrAlreadyPaused
	}
	vc.pausedAt = vc.clk.Now()
	vc.state = StatePaused
	return nil
}

// Resume continues a paused clock, folding the paused interval into the
// accumulated pause total so elapsed real time is unaffected by it.
func (vc *VirtualClock) Resume() error {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	if vc.state != StatePaused {
		return ErrNotPaused
	}
	vc.accumulatedPause += vc.clk.Now().Sub(vc.pausedAt)
	vc.state = StateRunning
	return nil
}

// TogglePause flips between running and paused and reports whether the
// clock is paused afterwards.
func (vc *VirtualClock) TogglePause() bool {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	if vc.state == StatePaused {
		vc.accumulatedPause += vc.clk.Now().Sub(vc.pausedAt)
		vc.state = StateRunning
		return false
	}
	vc.pausedAt = vc.clk.Now()
	vc.state = StatePaused
	return true
}

// ShiftOffset applies a manual seek correction and returns the new
// offset. The jump in virtual time is intentional and takes effect on
// the next evaluation. The offset is unbounded.
func (vc *VirtualClock) ShiftOffset(delta float64) float64 {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	vc.offset += delta
	return vc.offset
}

// AdjustScale nudges the rate control one step up or down, clamped to
// [MinScale, MaxScale], while solving for the offset that keeps the
// virtual time at this instant unchanged. Only the future rate of
// advance changes; the displayed caption does not jump. At a clamp
// boundary the scale stays put but the offset is still recomputed
// consistently. Returns the new scale.
func (vc *VirtualClock) AdjustScale(increase bool) float64 {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	r := vc.elapsedReal()
	before := vc.virtualAt(r)

	newScale := vc.scale
	if increase {
		newScale = math.Min(MaxScale, newScale+scaleStep)
	} else {
		newScale = math.Max(MinScale, newScale-scaleStep)
	}

	// unique offset satisfying before == r*newScale/ReferenceRate + offset
	vc.offset = before - r*newScale/ReferenceRate
	vc.scale = newScale
	return newScale
}

// Scale returns the current rate control value.
func (vc *VirtualClock) Scale() float64 {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.scale
}

// Offset returns the current additive correction in seconds.
func (vc *VirtualClock) Offset() float64 {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.offset
}

// CurrentState reports whether the clock is running or paused.
func (vc *VirtualClock) CurrentState() State {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.state
}
