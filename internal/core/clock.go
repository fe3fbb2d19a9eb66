package core

import "time"

// DefaultMaxCatchUp bounds how many ticks a single Advance may release
// after the host stalls.
const DefaultMaxCatchUp = 5

// FixedStep turns monotonic elapsed time into a whole number of fixed ticks.
// Elapsed time accumulates between calls; every full interval releases one tick
// and the remainder carries over, so the simulation rate does not depend on how
// promptly the host wakes the loop.
type FixedStep struct {
	MaxCatchUp int

	last    time.Time
	acc     time.Duration
	started bool
}

// NewFixedStep creates a scheduler starting at now.
func NewFixedStep(now time.Time) *FixedStep {
	f := &FixedStep{MaxCatchUp: DefaultMaxCatchUp}
	f.Reset(now)
	return f
}

// Reset drops any accumulated time and restarts measuring from now.
// Used after blocking waits so they do not count as backlog.
func (f *FixedStep) Reset(now time.Time) {
	f.last = now
	f.acc = 0
	f.started = true
}

// Advance accounts for the time elapsed since the previous call and returns
// how many ticks of the given interval are due.
func (f *FixedStep) Advance(now time.Time, interval time.Duration) int {
	if !f.started {
		f.Reset(now)
		return 0
	}
	if interval <= 0 {
		interval = time.Millisecond
	}

	// time.Time.Sub uses the monotonic reading when both carry one.
	if elapsed := now.Sub(f.last); elapsed > 0 {
		f.acc += elapsed
	}
	f.last = now

	n := int(f.acc / interval)
	f.acc -= time.Duration(n) * interval

	if limit := f.MaxCatchUp; limit > 0 && n > limit {
		n = limit
		f.acc = 0
	}
	return n
}

// Until returns how long to wait from now before the next tick is due.
func (f *FixedStep) Until(now time.Time, interval time.Duration) time.Duration {
	pending := f.acc
	if elapsed := now.Sub(f.last); elapsed > 0 {
		pending += elapsed
	}
	if d := interval - pending; d > 0 {
		return d
	}
	return 0
}
