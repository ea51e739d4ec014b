package scene

import "time"

// Clock reports elapsed real time in seconds since some fixed start.
type Clock interface {
	Elapsed() float64
}

// RealClock measures wall time from its creation.
type RealClock struct {
	start time.Time
}

func NewRealClock() *RealClock {
	return &RealClock{start: time.Now()}
}

func (c *RealClock) Elapsed() float64 {
	return time.Since(c.start).Seconds()
}

// ManualClock is a Clock advanced by hand, for deterministic tests.
type ManualClock struct {
	Now float64
}

func (c *ManualClock) Elapsed() float64 { return c.Now }

// Advance moves the clock forward by dt seconds.
func (c *ManualClock) Advance(dt float64) { c.Now += dt }
