package animations

import (
	"sync"
	"time"
)

// Clock is the monotonic millisecond source animations are driven by.
type Clock interface {
	Now() time.Duration
}

// WallClock measures time since it was created or restarted.
type WallClock struct {
	start time.Time
}

func NewClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (c *WallClock) Now() time.Duration {
	return time.Since(c.start)
}

func (c *WallClock) Restart() {
	c.start = time.Now()
}

// ManualClock only moves when told to. Tests and replays use it.
type ManualClock struct {
	mu  sync.Mutex
	now time.Duration
}

func (c *ManualClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d and returns the new time.
func (c *ManualClock) Advance(d time.Duration) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += d
	return c.now
}

func (c *ManualClock) Set(now time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
