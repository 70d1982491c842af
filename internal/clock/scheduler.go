// Package clock paces the frame driver's loop. Unlike a cycle-exact
// scheduler, it drives frames from wall-clock time: cricket's CPU has
// no fixed cycles-per-instruction cost to schedule against.
package clock

import "time"

// FrameInterval is the minimum wall-clock gap between rendered frames.
const FrameInterval = 17 * time.Millisecond

// Ticker decides when the next frame is due.
type Ticker struct {
	last time.Time
	now  func() time.Time
}

// NewTicker constructs a Ticker using the real wall clock, with the
// deadline starting now so the first frame isn't rendered immediately.
func NewTicker() *Ticker {
	t := &Ticker{now: time.Now}
	t.Advance()
	return t
}

// NewTickerWithClock constructs a Ticker driven by now instead of the
// real wall clock, for deterministic tests.
func NewTickerWithClock(now func() time.Time) *Ticker {
	return &Ticker{now: now}
}

// Due reports whether at least FrameInterval has elapsed since the
// last frame was rendered. It does not itself advance the deadline;
// call Advance once the frame has actually been produced.
func (t *Ticker) Due() bool {
	return t.now().Sub(t.last) >= FrameInterval
}

// Advance resets the deadline to now.
func (t *Ticker) Advance() {
	t.last = t.now()
}
