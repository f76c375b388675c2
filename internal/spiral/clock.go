package spiral

// Clock is the animation time within the current cycle plus the number of
// completed cycles. Time stays within [0, period]; wrapping it keeps Phi^Time
// and every projected coordinate bounded.
//
// Time is accumulated in float64. With the default step and period a cycle
// is 2666 frames and the 2667th advance wraps; a float32 clock accumulates
// different rounding and can wrap one frame apart.
type Clock struct {
	Time  float64
	Cycle int
}

// Advance moves the clock forward by step. Once Time would exceed period it
// restarts at zero and Cycle increments.
func (c Clock) Advance(step, period float64) Clock {
	t := c.Time + step
	if t > period {
		return Clock{Time: 0, Cycle: c.Cycle + 1}
	}
	return Clock{Time: t, Cycle: c.Cycle}
}

// Wrapped reports whether next started a new cycle relative to c.
func (c Clock) Wrapped(next Clock) bool {
	return next.Cycle != c.Cycle
}
