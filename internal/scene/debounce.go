package scene

import "time"

// DefaultResizeDelay is how long the viewport has to stay the same size
// before the orbs' bounds are recomputed.
const DefaultResizeDelay = 250 * time.Millisecond

// Debouncer coalesces bursts of resize events into one, delivered once no new
// event has arrived for the configured delay. It's polled from the render
// loop, so the resize is always applied on the main (GL) thread.
type Debouncer struct {
	delay time.Duration
	now   func() time.Time

	pending       bool
	deadline      time.Time
	width, height int
}

// NewDebouncer returns a debouncer using the given clock; nil means
// time.Now.
func NewDebouncer(delay time.Duration, now func() time.Time) *Debouncer {
	if now == nil {
		now = time.Now
	}
	return &Debouncer{delay: delay, now: now}
}

// Trigger records a resize to the given size, restarting the quiet period.
func (d *Debouncer) Trigger(width, height int) {
	d.pending = true
	d.width, d.height = width, height
	d.deadline = d.now().Add(d.delay)
}

// Poll returns the most recent size once the quiet period has elapsed. Each
// burst is delivered exactly once.
func (d *Debouncer) Poll() (width, height int, ok bool) {
	if !d.pending || d.now().Before(d.deadline) {
		return 0, 0, false
	}
	d.pending = false
	return d.width, d.height, true
}
