// Package clock abstracts the wall clock so the timeline engine can be
// driven by synthetic time in tests instead of real delays.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock. Use at application entry points.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FakeClock is a manually advanced clock for deterministic tests.
type FakeClock struct {
	current time.Time
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{current: start}
}

func (f *FakeClock) Now() time.Time { return f.current }

// Advance moves the clock forward by d.
func (f *FakeClock) Advance(d time.Duration) { f.current = f.current.Add(d) }

// Set moves the clock to an absolute instant.
func (f *FakeClock) Set(t time.Time) { f.current = t }

var (
	_ Clock = RealClock{}
	_ Clock = (*FakeClock)(nil)
)
