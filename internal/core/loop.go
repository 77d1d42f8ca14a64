package core

import "time"

// maxFrameTime caps how much real time one frame may feed into the
// accumulator, so a stalled host does not run hundreds of catch-up ticks.
const maxFrameTime = 0.25

// FixedStep converts real elapsed time into whole fixed simulation ticks.
type FixedStep struct {
	dt          float64
	accumulator float64
	lastTime    time.Time
}

// NewFixedStep creates an accumulator for the given tick rate.
func NewFixedStep(tickRate int) *FixedStep {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FixedStep{dt: 1.0 / float64(tickRate)}
}

// DT returns the fixed timestep in seconds.
func (f *FixedStep) DT() float64 {
	return f.dt
}

// Advance feeds the real time elapsed since the previous call and returns
// how many fixed ticks are due. The first call only records the time.
func (f *FixedStep) Advance(now time.Time) int {
	if f.lastTime.IsZero() {
		f.lastTime = now
		return 0
	}
	return f.Feed(now.Sub(f.lastTime).Seconds(), now)
}

// Feed adds elapsed seconds directly and returns the number of due ticks.
func (f *FixedStep) Feed(elapsed float64, now time.Time) int {
	f.lastTime = now
	if elapsed > maxFrameTime {
		elapsed = maxFrameTime
	}
	if elapsed < 0 {
		elapsed = 0
	}
	f.accumulator += elapsed

	ticks := 0
	for f.accumulator >= f.dt {
		f.accumulator -= f.dt
		ticks++
	}
	return ticks
}
