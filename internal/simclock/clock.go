// Package simclock gates the render loop's two fixed cadences against
// continuously advancing real time: physics steps against elapsed seconds,
// trail samples against rendered frames. Decoupling both from the display
// refresh keeps orbital speed and trail density stable across frame rates.
package simclock

// Clock owns the cadence state. It is reset only at construction and
// advances monotonically.
type Clock struct {
	PhysicsInterval float64 // real seconds between physics steps
	TrailEvery      int     // sample trails every N rendered frames

	lastPhysics float64 // real time of the last granted physics step
	simTime     float64 // accumulated simulated seconds
	frames      int
}

func New(physicsInterval float64, trailEvery int) *Clock {
	if trailEvery < 1 {
		trailEvery = 1
	}
	return &Clock{
		PhysicsInterval: physicsInterval,
		TrailEvery:      trailEvery,
	}
}

// PhysicsDue reports whether a physics step is due at real time now, and if
// so consumes it. At most one step is granted per call: a render stall
// spanning several intervals yields a single step, not a backfill burst.
func (c *Clock) PhysicsDue(now float64) bool {
	if now-c.lastPhysics >= c.PhysicsInterval {
		c.lastPhysics = now
		return true
	}
	return false
}

// Advance accumulates dt simulated seconds after a granted physics step.
func (c *Clock) Advance(dt float64) { c.simTime += dt }

// TickFrame counts one rendered frame and reports whether trails should be
// sampled on it.
func (c *Clock) TickFrame() bool {
	c.frames++
	return c.frames%c.TrailEvery == 0
}

// SimulationTime returns accumulated simulated seconds.
func (c *Clock) SimulationTime() float64 { return c.simTime }

// Frames returns the number of frames ticked so far.
func (c *Clock) Frames() int { return c.frames }
