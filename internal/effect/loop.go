package effect

import (
	"sync"
	"time"
)

// Step advances an effect by one tick. It returns the delay before the next
// tick and whether there should be one.
type Step func() (next time.Duration, more bool)

// Loop re-arms a Step on a Scheduler until the step reports it is finished
// or Stop is called. Steps never overlap: the next one is scheduled only
// after the current one returns.
type Loop struct {
	sched Scheduler
	step  Step

	mu      sync.Mutex
	pending Cancel
	stopped bool
	done    chan struct{}
}

// Run schedules the first step after delay and returns the running loop.
func Run(sched Scheduler, delay time.Duration, step Step) *Loop {
	l := &Loop{
		sched: sched,
		step:  step,
		done:  make(chan struct{}),
	}

	l.mu.Lock()
	l.pending = sched.Schedule(delay, l.fire)
	l.mu.Unlock()

	return l
}

func (l *Loop) fire() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.pending = nil
	l.mu.Unlock()

	next, more := l.step()

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return
	}
	if !more {
		l.finish()
		return
	}
	l.pending = l.sched.Schedule(next, l.fire)
}

// finish must be called with mu held.
func (l *Loop) finish() {
	l.stopped = true
	close(l.done)
}

// Stop unregisters the pending continuation. A step that is already running
// completes but schedules nothing further. Stop is idempotent.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return
	}
	if l.pending != nil {
		l.pending()
		l.pending = nil
	}
	l.finish()
}

// Done is closed once the loop has finished or been stopped.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Stopped reports whether the loop will run no further steps.
func (l *Loop) Stopped() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stopped
}
