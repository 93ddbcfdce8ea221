package tetris

import (
	"testing"
	"time"
)

func TestSchedulerFiresAfterInterval(t *testing.T) {
	var s DropScheduler
	s.Sync(PhaseRunning, time.Second)

	s.Advance(999 * time.Millisecond)
	if s.Fire() {
		t.Fatal("Fire() = true before the interval elapsed")
	}

	s.Advance(time.Millisecond)
	if !s.Fire() {
		t.Fatal("Fire() = false after the interval elapsed")
	}
	if s.Fire() {
		t.Error("Fire() = true twice for one period")
	}
}

func TestSchedulerIdleWhenNotRunning(t *testing.T) {
	for _, phase := range []Phase{PhaseIdle, PhasePaused, PhaseGameOver} {
		var s DropScheduler
		s.Sync(phase, time.Second)
		s.Advance(5 * time.Second)
		if s.Fire() {
			t.Errorf("Fire() = true in phase %v", phase)
		}
	}
}

func TestSchedulerPauseCancelsPeriod(t *testing.T) {
	var s DropScheduler
	s.Sync(PhaseRunning, time.Second)
	s.Advance(900 * time.Millisecond)

	s.Sync(PhasePaused, time.Second)
	s.Sync(PhaseRunning, time.Second)

	s.Advance(200 * time.Millisecond)
	if s.Fire() {
		t.Error("Fire() = true, resuming should start a fresh period")
	}
	s.Advance(800 * time.Millisecond)
	if !s.Fire() {
		t.Error("Fire() = false after a full period since resuming")
	}
}

func TestSchedulerIntervalChangeRestarts(t *testing.T) {
	var s DropScheduler
	s.Sync(PhaseRunning, time.Second)
	s.Advance(900 * time.Millisecond)

	s.Sync(PhaseRunning, 800*time.Millisecond)
	s.Advance(500 * time.Millisecond)
	if s.Fire() {
		t.Error("Fire() = true, a speed change should restart the period")
	}
	s.Advance(300 * time.Millisecond)
	if !s.Fire() {
		t.Error("Fire() = false after the new interval elapsed")
	}

	// Same interval keeps the running period.
	s.Advance(700 * time.Millisecond)
	s.Sync(PhaseRunning, 800*time.Millisecond)
	s.Advance(100 * time.Millisecond)
	if !s.Fire() {
		t.Error("Fire() = false, an unchanged interval should not restart the period")
	}
}

func TestSchedulerCapsDropsPerStep(t *testing.T) {
	var s DropScheduler
	s.Sync(PhaseRunning, 10*time.Millisecond)
	s.Advance(time.Second)

	fired := 0
	for s.Fire() {
		fired++
	}
	if fired != maxDropsPerStep {
		t.Errorf("fired %d drops, expected %d", fired, maxDropsPerStep)
	}

	// The backlog is dropped once the cap is hit.
	s.Advance(5 * time.Millisecond)
	if s.Fire() {
		t.Error("Fire() = true, backlog should have been discarded")
	}
}

func TestSchedulerRejectsNonPositiveInterval(t *testing.T) {
	var s DropScheduler
	s.Sync(PhaseRunning, 0)
	s.Advance(time.Second)
	if s.Fire() {
		t.Error("Fire() = true with a zero interval")
	}
}
