package engine

import (
	"sync"
	"time"
)

// TimeProvider supplies wall-clock readings to the driver loop
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// FrameClock turns successive time readings into per-frame millisecond deltas for Step
type FrameClock struct {
	provider TimeProvider
	last     time.Time
}

// NewFrameClock starts measuring from the provider's current time
func NewFrameClock(p TimeProvider) *FrameClock {
	return &FrameClock{provider: p, last: p.Now()}
}

// Delta returns milliseconds since the previous call and restarts the measurement
// Sub-millisecond remainders carry over to the next call
func (c *FrameClock) Delta() int64 {
	now := c.provider.Now()
	ms := now.Sub(c.last).Milliseconds()
	if ms < 0 {
		c.last = now
		return 0
	}
	c.last = c.last.Add(time.Duration(ms) * time.Millisecond)
	return ms
}

// Reset discards elapsed time, used when a match starts
func (c *FrameClock) Reset() {
	c.last = c.provider.Now()
}
