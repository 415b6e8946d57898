package lumen

import "testing"

func TestSchedulerCoalesces(t *testing.T) {
	ticks := 0
	s := scheduler{tick: func() { ticks++ }}

	for i := 0; i < 10; i++ {
		s.schedule()
	}
	s.frame()
	if ticks != 1 {
		t.Errorf("ticks = %d after 10 schedules and 1 frame, want 1", ticks)
	}

	// No pending tick: frame is a no-op.
	s.frame()
	if ticks != 1 {
		t.Errorf("ticks = %d after idle frame, want 1", ticks)
	}
}

func TestSchedulerReentrantScheduleHonored(t *testing.T) {
	ticks := 0
	var s scheduler
	s.tick = func() {
		ticks++
		if ticks == 1 {
			// A schedule issued mid-tick must produce a subsequent tick,
			// not be swallowed by the one in flight.
			s.schedule()
		}
	}

	s.schedule()
	s.frame()
	if !s.pending {
		t.Fatal("reentrant schedule should leave a tick pending")
	}
	s.frame()
	if ticks != 2 {
		t.Errorf("ticks = %d, want 2", ticks)
	}
	if s.pending {
		t.Error("no tick should remain pending")
	}
}
