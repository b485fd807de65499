package effect

import (
	"errors"
	"math"
	"strconv"
	"sync"
	"time"
)

var ErrNegativeTarget = errors.New("count-up target must not be negative")

const (
	DefaultCountDuration = 2 * time.Second
	DefaultCountInterval = 50 * time.Millisecond
)

// Counter animates an integer from 0 to Target in Duration/Interval ticks.
type Counter struct {
	target   int
	suffix   string
	interval time.Duration
	steps    int
	inc      float64

	acc   float64
	ticks int
	value int
	done  bool
}

func NewCounter(target int, duration, interval time.Duration, suffix string) (*Counter, error) {
	if target < 0 {
		return nil, ErrNegativeTarget
	}
	if interval <= 0 {
		interval = DefaultCountInterval
	}

	steps := int(duration / interval)
	if steps < 1 {
		steps = 1
	}

	return &Counter{
		target:   target,
		suffix:   suffix,
		interval: interval,
		steps:    steps,
		inc:      float64(target) / float64(steps),
	}, nil
}

func (c *Counter) Target() int { return c.target }
func (c *Counter) Value() int { return c.value }
func (c *Counter) Done() bool { return c.done }
func (c *Counter) Steps() int { return c.steps }
func (c *Counter) Suffix() string { return c.suffix }

// Display renders the value with its suffix, e.g. "42%".
func (c *Counter) Display() string {
	return strconv.Itoa(c.value) + c.suffix
}

// Tick adds one increment. The last tick lands exactly on the target.
func (c *Counter) Tick() (value int, done bool) {
	if c.done {
		return c.value, true
	}

	c.ticks++
	c.acc += c.inc
	if c.acc >= float64(c.target) || c.ticks >= c.steps {
		c.value = c.target
		c.done = true
		return c.value, true
	}

	v := int(math.Floor(c.acc))
	if v > c.value {
		c.value = v
	}
	return c.value, false
}

// CountUp starts a Counter the first time it is notified and ignores every
// later notification.
type CountUp struct {
	sched   Scheduler
	counter *Counter
	sink    func(value int, display string)

	mu      sync.Mutex
	started bool
	stopped bool
	loop    *Loop
	unsub   Cancel
}

func NewCountUp(sched Scheduler, counter *Counter, sink func(value int, display string)) *CountUp {
	return &CountUp{sched: sched, counter: counter, sink: sink}
}

// Watch subscribes to n; the first visible notification starts the count.
func (u *CountUp) Watch(n VisibilityNotifier) {
	unsub := n.Subscribe(func() { u.Start() })

	u.mu.Lock()
	if u.started || u.stopped {
		u.mu.Unlock()
		unsub()
		return
	}
	u.unsub = unsub
	u.mu.Unlock()
}

// Start begins counting. It reports false when the counter was already
// started or has been stopped.
func (u *CountUp) Start() bool {
	u.mu.Lock()
	if u.started || u.stopped {
		u.mu.Unlock()
		return false
	}
	u.started = true
	unsub := u.unsub
	u.unsub = nil
	u.loop = Run(u.sched, u.counter.interval, func() (time.Duration, bool) {
		_, done := u.counter.Tick()
		u.sink(u.counter.Value(), u.counter.Display())
		return u.counter.interval, !done
	})
	u.mu.Unlock()

	if unsub != nil {
		unsub()
	}
	return true
}

func (u *CountUp) Started() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.started
}

// Stop tears the count-up down, cancelling a pending tick and the
// visibility subscription.
func (u *CountUp) Stop() {
	u.mu.Lock()
	u.stopped = true
	loop, unsub := u.loop, u.unsub
	u.unsub = nil
	u.mu.Unlock()

	if loop != nil {
		loop.Stop()
	}
	if unsub != nil {
		unsub()
	}
}

// Done is closed when the count reached its target or was stopped. It is nil
// before Start.
func (u *CountUp) Done() <-chan struct{} {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.loop == nil {
		return nil
	}
	return u.loop.Done()
}
