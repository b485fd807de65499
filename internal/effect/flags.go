package effect

import (
	"sync"
	"time"
)

const (
	DefaultLoadingDelay    = 2 * time.Second
	DefaultScrollThreshold = 50
)

// LoadingGate flips from loading to loaded exactly once, delay after it is
// started.
type LoadingGate struct {
	mu     sync.Mutex
	loaded bool
	cancel Cancel
}

// StartLoading arms the gate. onLoaded runs once, on the scheduler, when the
// gate flips; it may be nil.
func StartLoading(sched Scheduler, delay time.Duration, onLoaded func()) *LoadingGate {
	g := &LoadingGate{}

	g.mu.Lock()
	g.cancel = sched.Schedule(delay, func() {
		g.mu.Lock()
		if g.loaded || g.cancel == nil {
			g.mu.Unlock()
			return
		}
		g.loaded = true
		g.cancel = nil
		g.mu.Unlock()

		if onLoaded != nil {
			onLoaded()
		}
	})
	g.mu.Unlock()

	return g
}

func (g *LoadingGate) Loaded() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loaded
}

// Stop cancels a gate that has not flipped yet.
func (g *LoadingGate) Stop() {
	g.mu.Lock()
	cancel := g.cancel
	g.cancel = nil
	g.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// ScrollWatcher tracks whether the scroll offset is past a threshold.
type ScrollWatcher struct {
	Threshold int
	scrolled  bool
}

func NewScrollWatcher(threshold int) *ScrollWatcher {
	return &ScrollWatcher{Threshold: threshold}
}

// Update recomputes the flag for offset and reports whether it changed.
func (w *ScrollWatcher) Update(offset int) (scrolled, changed bool) {
	scrolled = offset > w.Threshold
	changed = scrolled != w.scrolled
	w.scrolled = scrolled
	return scrolled, changed
}

func (w *ScrollWatcher) Scrolled() bool {
	return w.scrolled
}
