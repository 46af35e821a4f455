package wheel

import "time"

// Clock is a time source for frame pacing.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock that only moves when told to. Used by tests and
// by headless simulations.
type ManualClock struct {
	now time.Time
}

// NewManualClock returns a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the frozen time.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Animator paces a wheel from frame timestamps. Each frame advances the
// physics by the time elapsed since the previous frame, so the spin takes the
// same wall time at any refresh rate.
type Animator struct {
	wheel *Wheel
	clock Clock
	last  time.Time
	live  bool
}

// NewAnimator binds an animator to a wheel. A nil clock uses SystemClock.
func NewAnimator(w *Wheel, clock Clock) *Animator {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Animator{wheel: w, clock: clock}
}

// Wheel returns the driven wheel.
func (a *Animator) Wheel() *Wheel {
	return a.wheel
}

// Spin starts a random spin and begins timing from now.
func (a *Animator) Spin() bool {
	if !a.wheel.Spin() {
		return false
	}
	a.last = a.clock.Now()
	a.live = true
	return true
}

// Frame advances the wheel to the clock's current time.
func (a *Animator) Frame() *StopEvent {
	return a.FrameAt(a.clock.Now())
}

// FrameAt advances the wheel to t. Timestamps that go backwards are ignored.
func (a *Animator) FrameAt(t time.Time) *StopEvent {
	if !a.wheel.Spinning() {
		a.live = false
		return nil
	}
	if !a.live {
		// Spin was started directly on the wheel; start timing here.
		a.last = t
		a.live = true
		return nil
	}

	dt := t.Sub(a.last)
	if dt <= 0 {
		return nil
	}
	a.last = t

	ev := a.wheel.Advance(dt)
	if ev != nil {
		a.live = false
	}
	return ev
}

// Run consumes frame timestamps until the current spin stops or frames is
// closed. It returns false if the channel closed first.
func (a *Animator) Run(frames <-chan time.Time) (StopEvent, bool) {
	for t := range frames {
		if ev := a.FrameAt(t); ev != nil {
			return *ev, true
		}
		if !a.wheel.Spinning() {
			return StopEvent{}, false
		}
	}
	return StopEvent{}, false
}
