package tetris

import "time"

// maxDropsPerStep bounds catch-up after a stalled frame.
const maxDropsPerStep = 4

// DropScheduler turns the platform's fixed simulation tick into automatic
// drops. It is armed only while the session runs; any phase or speed change
// cancels the pending period.
type DropScheduler struct {
	armed    bool
	interval time.Duration
	elapsed  time.Duration
	fired    int
}

// Sync arms or disarms the scheduler for the given engine state.
func (s *DropScheduler) Sync(phase Phase, interval time.Duration) {
	if phase != PhaseRunning || interval <= 0 {
		s.armed = false
		s.elapsed = 0
		return
	}
	if !s.armed || interval != s.interval {
		s.armed = true
		s.interval = interval
		s.elapsed = 0
	}
}

// Advance adds elapsed time to the current period and resets the per-step
// fire budget.
func (s *DropScheduler) Advance(dt time.Duration) {
	s.fired = 0
	if !s.armed || dt <= 0 {
		return
	}
	s.elapsed += dt
}

// Fire reports whether a drop is due and consumes one period if so.
func (s *DropScheduler) Fire() bool {
	if !s.armed || s.elapsed < s.interval || s.fired >= maxDropsPerStep {
		return false
	}
	s.elapsed -= s.interval
	s.fired++
	if s.fired == maxDropsPerStep {
		s.elapsed = 0
	}
	return true
}
