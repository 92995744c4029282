package system

import "time"

// Clock is the simulation time. It only moves when the loop ticks.
type Clock struct {
	now time.Duration
}

func (c *Clock) Now() time.Duration {
	if c == nil {
		return 0
	}
	return c.now
}

// Advance moves the clock forward by dt seconds.
func (c *Clock) Advance(dt float64) {
	if c == nil || dt <= 0 {
		return
	}
	c.now += seconds(dt)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
