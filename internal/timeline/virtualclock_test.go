package timeline

import (
	"math"
	"testing"
	"time"

	"overcue/internal/clock"
)

func newTestClock(
	offset, scale float64,
) (*VirtualClock, *clock.FakeClock) {
	fake := clock.NewFakeClock(time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC))
	return NewVirtualClock(fake, offset, scale), fake
}

func TestElapsedRealTracksClock(t *testing.T) {
	vc, fake := newTestClock(0, ReferenceRate)

	if got := vc.ElapsedReal(); got != 0 {
		t.Errorf("ElapsedReal at start = %v, want 0", got)
	}

	fake.Advance(2500 * time.Millisecond)
	if got := vc.ElapsedReal(); got != 2.5 {
		t.Errorf("ElapsedReal after 2.5s = %v, want 2.5", got)
	}
}

func TestElapsedVirtualAppliesOffsetAndScale(t *testing.T) {
	tests := []struct {
		name    string
		offset  float64
		scale   float64
		advance time.Duration
		want    float64
	}{
		{"real-time rate", 0, 24.0, 10 * time.Second, 10},
		{"double speed", 0, 48.0, 10 * time.Second, 20},
		{"half speed", 0, 12.0, 10 * time.Second, 5},
		{"with offset", 3.5, 24.0, 10 * time.Second, 13.5},
		{"negative offset", -20, 24.0, 10 * time.Second, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vc, fake := newTestClock(tt.offset, tt.scale)
			fake.Advance(tt.advance)
			if got := vc.ElapsedVirtual(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ElapsedVirtual() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPauseFreezesVirtualTime(t *testing.T) {
	vc, fake := newTestClock(0, ReferenceRate)

	fake.Advance(4 * time.Second)
	if err := vc.Pause(); err != nil {
		t.Fatalf("Pause() returned error: %v", err)
	}

	first := vc.ElapsedVirtual()
	fake.Advance(42 * time.Second)
	second := vc.ElapsedVirtual()

	if first != second {
		t.Errorf(
			"virtual time moved while paused: %v then %v",
			first,
			second,
		)
	}
	if first != 4 {
		t.Errorf("paused virtual time = %v, want 4", first)
	}
}

func TestResumeExcludesPausedInterval(t *testing.T) {
	vc, fake := newTestClock(0, ReferenceRate)

	fake.Advance(4 * time.Second)
	if err := vc.Pause(); err != nil {
		t.Fatalf("Pause() returned error: %v", err)
	}
	fake.Advance(10 * time.Second)
	if err := vc.Resume(); err != nil {
		t.Fatalf("Resume() returned error: %v", err)
	}
	fake.Advance(2 * time.Second)

	if got := vc.ElapsedReal(); got != 6 {
		t.Errorf("ElapsedReal after pause cycle = %v, want 6", got)
	}
}

func TestPauseResumeGuards(t *testing.T) {
	vc, _ := newTestClock(0, ReferenceRate)

	if err := vc.Resume(); err != ErrNotPaused {
		t.Errorf("Resume while running = %v, want ErrNotPaused", err)
	}
	if err := vc.Pause(); err != nil {
		t.Fatalf("Pause() returned error: %v", err)
	}
	if err := vc.Pause(); err != ErrAlreadyPaused {
		t.Errorf("double Pause = %v, want ErrAlreadyPaused", err)
	}
}

func TestTogglePause(t *testing.T) {
	vc, fake := newTestClock(0, ReferenceRate)

	if !vc.TogglePause() {
		t.Error("first toggle should pause")
	}
	if vc.CurrentState() != StatePaused {
		t.Errorf("state = %v, want paused", vc.CurrentState())
	}

	fake.Advance(7 * time.Second)
	if vc.TogglePause() {
		t.Error("second toggle should resume")
	}
	if vc.CurrentState() != StateRunning {
		t.Errorf("state = %v, want running", vc.CurrentState())
	}
	if got := vc.ElapsedReal(); got != 0 {
		t.Errorf("ElapsedReal after paused toggle cycle = %v, want 0", got)
	}
}

func TestShiftOffsetLinearity(t *testing.T) {
	vc, fake := newTestClock(1.0, ReferenceRate)
	fake.Advance(30 * time.Second)

	before := vc.ElapsedVirtual()
	scaleBefore := vc.Scale()

	vc.ShiftOffset(OffsetStep)
	if got := vc.ElapsedVirtual(); math.Abs(got-(before+OffsetStep)) > 1e-9 {
		t.Errorf(
			"virtual after +%v shift = %v, want %v",
			OffsetStep, got, before+OffsetStep,
		)
	}

	vc.ShiftOffset(-3 * OffsetStep)
	if got := vc.ElapsedVirtual(); math.Abs(got-(before-2*OffsetStep)) > 1e-9 {
		t.Errorf(
			"virtual after net -%v shift = %v, want %v",
			2*OffsetStep, got, before-2*OffsetStep,
		)
	}

	if vc.Scale() != scaleBefore {
		t.Errorf(
			"ShiftOffset changed scale: %v -> %v",
			scaleBefore, vc.Scale(),
		)
	}
}

func TestAdjustScaleKeepsAnchor(t *testing.T) {
	tests := []struct {
		name     string
		offset   float64
		scale    float64
		advance  time.Duration
		increase bool
	}{
		{"increase mid-range", 0, 24.0, 90 * time.Second, true},
		{"decrease mid-range", 0, 24.0, 90 * time.Second, false},
		{"increase with offset", -12.5, 30.0, 10 * time.Minute, true},
		{"decrease with offset", 7.25, 18.0, 45 * time.Second, false},
		{"increase at max clamp", 0, MaxScale, 2 * time.Minute, true},
		{"decrease at min clamp", 0, MinScale, 2 * time.Minute, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vc, fake := newTestClock(tt.offset, tt.scale)
			fake.Advance(tt.advance)

			before := vc.ElapsedVirtual()
			vc.AdjustScale(tt.increase)
			after := vc.ElapsedVirtual()

			if math.Abs(after-before) > 1e-9 {
				t.Errorf(
					"virtual time jumped on AdjustScale: %v -> %v",
					before, after,
				)
			}
		})
	}
}

func TestAdjustScaleChangesFutureRate(t *testing.T) {
	vc, fake := newTestClock(0, ReferenceRate)
	fake.Advance(time.Minute)

	newScale := vc.AdjustScale(true)
	if math.Abs(newScale-24.001) > 1e-9 {
		t.Fatalf("scale after one increase = %v, want 24.001", newScale)
	}

	anchor := vc.ElapsedVirtual()
	fake.Advance(24 * time.Second)
	want := anchor + 24*newScale/ReferenceRate
	if got := vc.ElapsedVirtual(); math.Abs(got-want) > 1e-9 {
		t.Errorf("virtual after rate change = %v, want %v", got, want)
	}
}

func TestAdjustScaleClampIdempotence(t *testing.T) {
	vc, fake := newTestClock(0, 121.9995)
	fake.Advance(time.Minute)

	for i := 0; i < 5; i++ {
		before := vc.ElapsedVirtual()
		got := vc.AdjustScale(true)
		if got > MaxScale {
			t.Fatalf("scale exceeded max: %v", got)
		}
		if after := vc.ElapsedVirtual(); math.Abs(after-before) > 1e-9 {
			t.Errorf(
				"iteration %d: virtual time jumped at clamp: %v -> %v",
				i, before, after,
			)
		}
	}
	if got := vc.Scale(); got != MaxScale {
		t.Errorf("scale after repeated increases = %v, want %v", got, MaxScale)
	}

	vc, fake = newTestClock(0, 0.1005)
	fake.Advance(time.Minute)

	for i := 0; i < 5; i++ {
		vc.AdjustScale(false)
	}
	if got := vc.Scale(); math.Abs(got-MinScale) > 1e-12 {
		t.Errorf("scale after repeated decreases = %v, want %v", got, MinScale)
	}
}
