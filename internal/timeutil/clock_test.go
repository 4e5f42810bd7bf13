package timeutil

import (
	"testing"
	"time"
)

func TestRealClock_Now(t *testing.T) {
	clock := RealClock{}
	before := time.Now()
	now := clock.Now()
	after := time.Now()

	if now.Before(before) || now.After(after) {
		t.Errorf("Now() = %v, expected between %v and %v", now, before, after)
	}
}

func TestRealClock_Since(t *testing.T) {
	clock := RealClock{}
	past := time.Now().Add(-time.Second)
	d := clock.Since(past)

	if d < time.Second {
		t.Errorf("Since() returned %v, expected >= 1s", d)
	}
}

func TestMockClock_SetAndAdvance(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewMockClock(start)

	if got := clock.Now(); !got.Equal(start) {
		t.Errorf("Now() = %v, want %v", got, start)
	}

	clock.Advance(5 * time.Second)
	if got := clock.Since(start); got != 5*time.Second {
		t.Errorf("Since() after Advance = %v, want 5s", got)
	}

	later := start.Add(time.Hour)
	clock.Set(later)
	if got := clock.Now(); !got.Equal(later) {
		t.Errorf("Now() after Set = %v, want %v", got, later)
	}
}

func TestMockClock_Step(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewMockClock(start)
	clock.SetStep(time.Millisecond)

	t0 := clock.Now()
	t1 := clock.Now()
	if d := t1.Sub(t0); d != time.Millisecond {
		t.Errorf("consecutive Now() differ by %v, want 1ms", d)
	}
	if d := clock.Since(t0); d != 2*time.Millisecond {
		t.Errorf("Since() = %v, want 2ms", d)
	}
	if d := clock.Since(t0); d != 2*time.Millisecond {
		t.Errorf("Since() stepped the clock: %v", d)
	}
}
