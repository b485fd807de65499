package effect

import "sync"

// VisibilityNotifier tells subscribers when a watched container becomes
// visible. Subscribers run on every not-visible to visible transition;
// fire-once behaviour belongs to the subscriber.
type VisibilityNotifier interface {
	Subscribe(fn func()) Cancel
}

type subscribers struct {
	mu   sync.Mutex
	next int
	fns  map[int]func()
}

func (s *subscribers) add(fn func()) Cancel {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fns == nil {
		s.fns = make(map[int]func())
	}
	id := s.next
	s.next++
	s.fns[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.fns, id)
			s.mu.Unlock()
		})
	}
}

// notify runs the subscribers outside the lock, in subscription order.
func (s *subscribers) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.fns))
	for id := 0; id < s.next; id++ {
		if fn, ok := s.fns[id]; ok {
			fns = append(fns, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// ManualNotifier notifies whenever Trigger is called.
type ManualNotifier struct {
	subs subscribers
}

func (m *ManualNotifier) Subscribe(fn func()) Cancel {
	return m.subs.add(fn)
}

func (m *ManualNotifier) Trigger() {
	m.subs.notify()
}

// Region is a half-open span [Start, End) along the scroll axis, in
// whatever unit the host measures (pixels, rows).
type Region struct {
	Start, End int
}

func (r Region) Intersects(o Region) bool {
	return r.Start < o.End && o.Start < r.End && r.Start < r.End && o.Start < o.End
}

// IntersectionNotifier derives visibility from the overlap between a target
// region and the viewport reported through Observe.
type IntersectionNotifier struct {
	subs subscribers

	mu      sync.Mutex
	target  Region
	visible bool
}

func NewIntersectionNotifier(target Region) *IntersectionNotifier {
	return &IntersectionNotifier{target: target}
}

func (n *IntersectionNotifier) Subscribe(fn func()) Cancel {
	return n.subs.add(fn)
}

// SetTarget moves the watched region, e.g. after a relayout.
func (n *IntersectionNotifier) SetTarget(target Region) {
	n.mu.Lock()
	n.target = target
	n.mu.Unlock()
}

// Observe records the current viewport and notifies on a rising edge.
func (n *IntersectionNotifier) Observe(viewport Region) bool {
	n.mu.Lock()
	visible := n.target.Intersects(viewport)
	rising := visible && !n.visible
	n.visible = visible
	n.mu.Unlock()

	if rising {
		n.subs.notify()
	}
	return visible
}

func (n *IntersectionNotifier) Visible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.visible
}
