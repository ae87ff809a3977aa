package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestFrameClockDelta(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewFrameClock(mock)

	if d := clock.Delta(); d != 0 {
		t.Errorf("Expected 0ms before any advance, got %d", d)
	}

	mock.Advance(16 * time.Millisecond)
	if d := clock.Delta(); d != 16 {
		t.Errorf("Expected 16ms, got %d", d)
	}

	// Remainders accumulate instead of being lost
	mock.Advance(1500 * time.Microsecond)
	if d := clock.Delta(); d != 1 {
		t.Errorf("Expected 1ms, got %d", d)
	}
	mock.Advance(500 * time.Microsecond)
	if d := clock.Delta(); d != 1 {
		t.Errorf("Expected carried remainder to yield 1ms, got %d", d)
	}

	mock.Advance(time.Second)
	clock.Reset()
	if d := clock.Delta(); d != 0 {
		t.Errorf("Expected 0ms after Reset, got %d", d)
	}
}
