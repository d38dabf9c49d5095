package clock

import (
	"sync"
	"time"
)

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time
}

// Advancer is a Clock whose time only moves when told to
type Advancer interface {
	Clock
	Advance(d time.Duration)
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// VirtualClock is a Clock driven by explicit Advance calls.
// Headless sessions use it to run at simulation speed.
type VirtualClock struct {
	mu  sync.Mutex
	now time.Time
}

var _ Advancer = (*VirtualClock)(nil)

// NewVirtual creates a VirtualClock starting at the given time
func NewVirtual(start time.Time) *VirtualClock {
	return &VirtualClock{now: start}
}

// Now returns the virtual time
func (c *VirtualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the virtual time forward
func (c *VirtualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
