package page

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestResolve(t *testing.T) {
	Convey("Resolve", t, func() {
		So(Resolve("about"), ShouldEqual, About)
		So(Resolve(" Projects "), ShouldEqual, Projects)
		So(Resolve("work"), ShouldEqual, Work)

		Convey("Should fall back to home", func() {
			So(Resolve(""), ShouldEqual, Home)
			So(Resolve("contact"), ShouldEqual, Home)
			So(Resolve("../admin"), ShouldEqual, Home)
		})
	})
}

func TestNext(t *testing.T) {
	Convey("Next should cycle in navigation order", t, func() {
		So(Next(Home, 1), ShouldEqual, About)
		So(Next(Work, 1), ShouldEqual, Home)
		So(Next(Home, -1), ShouldEqual, Work)
		So(Home.Title(), ShouldEqual, "Home")
		So(Work.Title(), ShouldEqual, "Work")
	})
}

func TestNav(t *testing.T) {
	Convey("Nav", t, func() {
		items := Nav()
		So(items, ShouldHaveLength, len(All))
		for i, item := range items {
			So(item.Page, ShouldEqual, All[i])
		}

		items[0].Name = "changed"
		So(Nav()[0].Name, ShouldEqual, "Home")
	})
}

func TestSelector(t *testing.T) {
	Convey("Given a selector with every page registered", t, func() {
		s := NewSelector("home-view").
			Register(About, "about-view").
			Register(Projects, "projects-view").
			Register(Work, "work-view")

		Convey("It should return the matching view", func() {
			id, v := s.Select("projects")
			So(id, ShouldEqual, Projects)
			So(v, ShouldEqual, "projects-view")
		})

		Convey("It should fall back to home for unknown ids", func() {
			id, v := s.Select("blog")
			So(id, ShouldEqual, Home)
			So(v, ShouldEqual, "home-view")
		})
	})

	Convey("Given a selector missing a page", t, func() {
		s := NewSelector(1).Register(About, 2)

		id, v := s.Select("work")
		So(id, ShouldEqual, Home)
		So(v, ShouldEqual, 1)
	})
}
