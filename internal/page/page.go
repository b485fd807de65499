// Package page enumerates the portfolio's pages and maps page ids to views.
package page

import "strings"

// ID identifies one of the content pages.
type ID string

const (
	Home     ID = "home"
	About    ID = "about"
	Projects ID = "projects"
	Work     ID = "work"
)

// All lists the pages in navigation order.
var All = []ID{Home, About, Projects, Work}

// Resolve maps s to a page id. Anything unrecognised is Home.
func Resolve(s string) ID {
	id := ID(strings.ToLower(strings.TrimSpace(s)))
	for _, p := range All {
		if p == id {
			return p
		}
	}
	return Home
}

// Index is the position of id in All.
func Index(id ID) int {
	for i, p := range All {
		if p == id {
			return i
		}
	}
	return 0
}

// Next cycles forward (delta 1) or backward (delta -1) through All.
func Next(id ID, delta int) ID {
	n := len(All)
	return All[((Index(id)+delta)%n+n)%n]
}

// NavItem is an entry of the navigation bar.
type NavItem struct {
	Name string
	Icon string
	Page ID
}

var nav = []NavItem{
	{Name: "Home", Icon: "home", Page: Home},
	{Name: "About", Icon: "user", Page: About},
	{Name: "Projects", Icon: "project-diagram", Page: Projects},
	{Name: "Work", Icon: "briefcase", Page: Work},
}

// Nav returns the navigation items in order.
func Nav() []NavItem {
	out := make([]NavItem, len(nav))
	copy(out, nav)
	return out
}

func (id ID) Title() string {
	return nav[Index(id)].Name
}

// Selector maps page ids to views of type V, with the home view as the
// fallback for unregistered ids.
type Selector[V any] struct {
	home  V
	views map[ID]V
}

func NewSelector[V any](home V) *Selector[V] {
	return &Selector[V]{home: home, views: map[ID]V{Home: home}}
}

// Register binds a view to id and returns the selector for chaining.
func (s *Selector[V]) Register(id ID, view V) *Selector[V] {
	s.views[id] = view
	if id == Home {
		s.home = view
	}
	return s
}

// Select returns the view for the raw identifier and the id it resolved to.
func (s *Selector[V]) Select(raw string) (ID, V) {
	id := ID(raw)
	if v, ok := s.views[id]; ok {
		return id, v
	}
	resolved := Resolve(raw)
	if v, ok := s.views[resolved]; ok {
		return resolved, v
	}
	return Home, s.home
}
