package engine

import "time"

// DefaultMaxFrameDelta bounds a single step after a stall.
const DefaultMaxFrameDelta = 250 * time.Millisecond

// Loop turns wall-clock readings into simulation steps.
//
// The first tick only records a baseline. Every later tick yields the time
// elapsed since the previous one, clamped to the maximum frame delta.
type Loop struct {
	maxDelta time.Duration
	last     time.Time
	started  bool
	frames   uint64
}

// NewLoop creates a loop. A non-positive maxDelta disables clamping.
func NewLoop(maxDelta time.Duration) *Loop {
	return &Loop{maxDelta: maxDelta}
}

// Tick records now and returns the step in seconds.
// ok is false on the baseline tick, when nothing should be updated.
func (l *Loop) Tick(now time.Time) (dt float64, ok bool) {
	if !l.started {
		l.started = true
		l.last = now
		return 0, false
	}

	elapsed := now.Sub(l.last)
	l.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	if l.maxDelta > 0 && elapsed > l.maxDelta {
		elapsed = l.maxDelta
	}
	l.frames++
	return elapsed.Seconds(), true
}

// Rebase forgets the baseline, so the next tick starts over.
// Used after a pause so the paused time is not simulated.
func (l *Loop) Rebase() {
	l.started = false
}

// Frames returns the number of stepped frames.
func (l *Loop) Frames() uint64 {
	return l.frames
}
