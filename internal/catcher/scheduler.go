package catcher

import (
	"container/heap"
	"time"
)

// TimerID identifies a pending deferred callback.
type TimerID uint64

type timer struct {
	id       TimerID
	deadline time.Duration
	seq      uint64
	tick     uint64 // tick that scheduled it; never fires within the same tick
	fn       func()
	index    int
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline != h[j].deadline {
		return h[i].deadline < h[j].deadline
	}
	return h[i].seq < h[j].seq
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Scheduler is a deadline-ordered queue of callbacks on the session clock.
// Equal deadlines fire in scheduling order.
type Scheduler struct {
	h      timerHeap
	byID   map[TimerID]*timer
	now    time.Duration
	tick   uint64
	nextID TimerID
	seq    uint64
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{byID: make(map[TimerID]*timer)}
}

// Now returns the clock value of the last RunDue call.
func (s *Scheduler) Now() time.Duration { return s.now }

// Len returns the number of pending callbacks.
func (s *Scheduler) Len() int { return len(s.h) }

// Schedule registers fn to run once the clock reaches now+delay.
func (s *Scheduler) Schedule(delay time.Duration, fn func()) TimerID {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	s.seq++
	t := &timer{
		id:       s.nextID,
		deadline: s.now + delay,
		seq:      s.seq,
		tick:     s.tick,
		fn:       fn,
	}
	heap.Push(&s.h, t)
	s.byID[t.id] = t
	return t.id
}

// Postpone moves a pending deadline later by d.
func (s *Scheduler) Postpone(id TimerID, d time.Duration) bool {
	t, ok := s.byID[id]
	if !ok {
		return false
	}
	t.deadline += d
	heap.Fix(&s.h, t.index)
	return true
}

// Remaining returns the time left until id fires.
func (s *Scheduler) Remaining(id TimerID) (time.Duration, bool) {
	t, ok := s.byID[id]
	if !ok {
		return 0, false
	}
	return max(t.deadline-s.now, 0), true
}

// Cancel drops a pending callback.
func (s *Scheduler) Cancel(id TimerID) bool {
	t, ok := s.byID[id]
	if !ok {
		return false
	}
	heap.Remove(&s.h, t.index)
	delete(s.byID, id)
	return true
}

// Clear drops every pending callback and keeps the clock.
func (s *Scheduler) Clear() {
	for _, t := range s.h {
		t.index = -1
	}
	s.h = s.h[:0]
	clear(s.byID)
}

// Reset clears the queue and rewinds the clock to zero.
func (s *Scheduler) Reset() {
	s.Clear()
	s.now = 0
}

// RunDue advances the clock to now and fires every callback whose deadline
// has passed, in deadline order. Callbacks scheduled during tick, including
// ones scheduled by callbacks fired here, wait for a later tick.
// Returns the number of callbacks fired.
func (s *Scheduler) RunDue(now time.Duration, tick uint64) int {
	if now > s.now {
		s.now = now
	}
	s.tick = tick

	var held []*timer
	fired := 0
	for len(s.h) > 0 && s.h[0].deadline <= s.now {
		t := heap.Pop(&s.h).(*timer)
		if t.tick >= tick {
			held = append(held, t)
			continue
		}
		delete(s.byID, t.id)
		t.fn()
		fired++
	}
	for _, t := range held {
		// A callback may have cleared the queue.
		if _, ok := s.byID[t.id]; ok {
			heap.Push(&s.h, t)
		}
	}
	return fired
}
