// Package effect holds the small timer-driven state machines behind the
// portfolio's animations: the typewriter, the count-up counters, the loading
// gate and the scroll flag. Every timer goes through a Scheduler so the same
// code runs against wall-clock time in production and virtual time in tests.
package effect

import (
	"sort"
	"sync"
	"time"
)

// Cancel abandons a scheduled continuation. Calling it more than once, or
// after the continuation already ran, is a no-op.
type Cancel func()

// Scheduler runs fn once after d.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Cancel
}

// TimerScheduler schedules on wall-clock time with time.AfterFunc.
type TimerScheduler struct{}

func (TimerScheduler) Schedule(d time.Duration, fn func()) Cancel {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

type entry struct {
	at       time.Duration
	seq      uint64
	fn       func()
	canceled bool
}

// VirtualScheduler is a manually advanced clock. Nothing runs until Advance
// is called; due entries then run synchronously on the caller's goroutine,
// ordered by due time and then by scheduling order.
type VirtualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   uint64
	queue []*entry
}

func NewVirtualScheduler() *VirtualScheduler {
	return &VirtualScheduler{}
}

// Now returns the virtual time elapsed since creation.
func (v *VirtualScheduler) Now() time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

func (v *VirtualScheduler) Schedule(d time.Duration, fn func()) Cancel {
	if d < 0 {
		d = 0
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.seq++
	e := &entry{at: v.now + d, seq: v.seq, fn: fn}
	i := sort.Search(len(v.queue), func(i int) bool {
		q := v.queue[i]
		return q.at > e.at || (q.at == e.at && q.seq > e.seq)
	})
	v.queue = append(v.queue, nil)
	copy(v.queue[i+1:], v.queue[i:])
	v.queue[i] = e

	return func() {
		v.mu.Lock()
		e.canceled = true
		v.mu.Unlock()
	}
}

// Advance moves the clock forward by d, running every entry that falls due,
// including entries scheduled by the entries it runs.
func (v *VirtualScheduler) Advance(d time.Duration) {
	v.AdvanceTo(v.Now() + d)
}

// AdvanceTo moves the clock to the absolute virtual time t.
func (v *VirtualScheduler) AdvanceTo(t time.Duration) {
	for {
		v.mu.Lock()
		if len(v.queue) == 0 || v.queue[0].at > t {
			if t > v.now {
				v.now = t
			}
			v.mu.Unlock()
			return
		}
		e := v.queue[0]
		v.queue = v.queue[1:]
		if e.at > v.now {
			v.now = e.at
		}
		canceled := e.canceled
		v.mu.Unlock()

		if !canceled {
			e.fn()
		}
	}
}

// Pending reports how many live entries are waiting to run.
func (v *VirtualScheduler) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	n := 0
	for _, e := range v.queue {
		if !e.canceled {
			n++
		}
	}
	return n
}
