package catcher

import (
	"testing"
	"time"
)

func TestSchedulerFiresInDeadlineOrder(t *testing.T) {
	s := NewScheduler()
	var got []string
	s.Schedule(300*time.Millisecond, func() { got = append(got, "c") })
	s.Schedule(100*time.Millisecond, func() { got = append(got, "a") })
	s.Schedule(100*time.Millisecond, func() { got = append(got, "b") })

	if n := s.RunDue(50*time.Millisecond, 1); n != 0 {
		t.Fatalf("fired %d callbacks early", n)
	}
	if n := s.RunDue(time.Second, 2); n != 3 {
		t.Fatalf("fired %d callbacks, want 3", n)
	}
	if want := "abc"; joined(got) != want {
		t.Errorf("order = %q, want %q", joined(got), want)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestSchedulerHoldsSameTickCallbacks(t *testing.T) {
	s := NewScheduler()
	s.RunDue(0, 5)

	fired := false
	s.Schedule(0, func() { fired = true })
	if s.RunDue(time.Second, 5); fired {
		t.Fatal("callback scheduled during tick 5 fired in tick 5")
	}
	if s.RunDue(time.Second, 6); !fired {
		t.Error("callback did not fire on the next tick")
	}
}

func TestSchedulerCallbackSchedulesForLaterTick(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.Schedule(0, func() {
		order = append(order, "outer")
		s.Schedule(0, func() { order = append(order, "inner") })
	})

	s.RunDue(time.Millisecond, 1)
	if joined(order) != "outer" {
		t.Fatalf("tick 1 ran %v", order)
	}
	s.RunDue(2*time.Millisecond, 2)
	if joined(order) != "outerinner" {
		t.Errorf("tick 2 ran %v", order)
	}
}

func TestSchedulerPostponeAndRemaining(t *testing.T) {
	s := NewScheduler()
	fired := false
	id := s.Schedule(30*time.Second, func() { fired = true })

	s.RunDue(10*time.Second, 1)
	if r, ok := s.Remaining(id); !ok || r != 20*time.Second {
		t.Fatalf("Remaining = %v, %v; want 20s", r, ok)
	}
	if !s.Postpone(id, 3*time.Second) {
		t.Fatal("Postpone failed")
	}
	if r, _ := s.Remaining(id); r != 23*time.Second {
		t.Errorf("Remaining = %v, want 23s", r)
	}

	s.RunDue(30*time.Second, 2)
	if fired {
		t.Error("postponed callback fired at the old deadline")
	}
	s.RunDue(33*time.Second, 3)
	if !fired {
		t.Error("postponed callback did not fire at the new deadline")
	}
	if _, ok := s.Remaining(id); ok {
		t.Error("fired timer still reports remaining time")
	}
	if s.Postpone(id, time.Second) {
		t.Error("Postpone on fired timer succeeded")
	}
}

func TestSchedulerCancelAndClear(t *testing.T) {
	s := NewScheduler()
	count := 0
	a := s.Schedule(time.Second, func() { count++ })
	s.Schedule(2*time.Second, func() { count++ })

	if !s.Cancel(a) {
		t.Fatal("Cancel failed")
	}
	if s.Cancel(a) {
		t.Error("second Cancel succeeded")
	}
	s.RunDue(3*time.Second, 1)
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	s.Schedule(time.Second, func() { count++ })
	s.Clear()
	s.RunDue(10*time.Second, 2)
	if count != 1 || s.Len() != 0 {
		t.Errorf("Clear left callbacks: count %d len %d", count, s.Len())
	}
}

func TestSchedulerCallbackClearsQueue(t *testing.T) {
	s := NewScheduler()
	later := false
	s.Schedule(time.Second, func() { s.Clear() })
	s.Schedule(time.Second, func() { later = true })

	s.RunDue(time.Second, 1)
	if later {
		t.Error("callback behind a Clear still fired")
	}
}

func TestSchedulerReset(t *testing.T) {
	s := NewScheduler()
	s.RunDue(5*time.Second, 1)
	s.Reset()
	if s.Now() != 0 {
		t.Errorf("Now = %v, want 0", s.Now())
	}
	id := s.Schedule(time.Second, func() {})
	if r, _ := s.Remaining(id); r != time.Second {
		t.Errorf("Remaining = %v, want 1s", r)
	}
}

func joined(parts []string) string {
	out := ""
	for _, p := range parts {
		out += p
	}
	return out
}
