package clock

import (
	"sync"
	"time"
)

// TimeProvider abstracts the wall clock
// Lets every timing-sensitive path run against a deterministic source in tests
type TimeProvider interface {
	Now() time.Time
}

// SystemTime provides the real system time with monotonic clock readings
type SystemTime struct{}

// NewSystemTime creates a new system time provider
func NewSystemTime() SystemTime {
	return SystemTime{}
}

// Now returns the current time with monotonic clock reading
func (SystemTime) Now() time.Time {
	return time.Now()
}

// ManualTime provides a controllable time source for testing
type ManualTime struct {
	mu      sync.RWMutex
	current time.Time
}

// NewManualTime creates a manual time provider starting at the given instant
func NewManualTime(start time.Time) *ManualTime {
	return &ManualTime{current: start}
}

// Now returns the current manual time
func (m *ManualTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// SetTime sets the current time
func (m *ManualTime) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// Advance moves the current time forward by d
func (m *ManualTime) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}
