package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStore(t *testing.T) {
	Convey("Given an empty store", t, func() {
		s, err := Open(":memory:")
		So(err, ShouldBeNil)
		defer s.Close()

		now := time.Date(2025, 7, 26, 14, 0, 0, 0, time.UTC)
		s.now = func() time.Time { return now }
		ctx := context.Background()

		Convey("Stats should be zero", func() {
			stats, err := s.Stats(ctx)
			So(err, ShouldBeNil)
			So(stats.TotalVisitors, ShouldEqual, 0)
			So(stats.TopPaths, ShouldBeEmpty)
		})

		Convey("When visits are recorded", func() {
			visits := []Visit{
				{HashedIP: "a", Path: "/", Timestamp: now.Add(-time.Hour)},
				{HashedIP: "a", Path: "/p/about", Timestamp: now.Add(-2 * time.Hour)},
				{HashedIP: "b", Path: "/", Timestamp: now.AddDate(0, 0, -3)},
				{HashedIP: "c", Path: "/", Timestamp: now.AddDate(0, -13, 0)},
				{HashedIP: "d", Path: "/p/work"},
			}
			for _, v := range visits {
				So(s.RecordVisit(ctx, v), ShouldBeNil)
			}

			Convey("Stats should aggregate them", func() {
				stats, err := s.Stats(ctx)
				So(err, ShouldBeNil)
				So(stats.TotalVisitors, ShouldEqual, 5)
				So(stats.UniqueVisitors, ShouldEqual, 4)
				So(stats.VisitorsToday, ShouldEqual, 3)
				So(stats.VisitorsThisWeek, ShouldEqual, 4)
				So(stats.TopPaths[0], ShouldResemble, PathStat{Path: "/", Views: 3})
				So(stats.RecentVisitors[0].HashedIP, ShouldEqual, "d")
				So(stats.RecentVisitors[0].Timestamp.Equal(now), ShouldBeTrue)
			})

			Convey("Pruning should drop visits past retention", func() {
				n, err := s.PruneVisitors(ctx, now.AddDate(-1, 0, 0))
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 1)

				stats, _ := s.Stats(ctx)
				So(stats.TotalVisitors, ShouldEqual, 4)
			})
		})

		Convey("Messages should come back newest first", func() {
			_, err := s.SaveMessage(ctx, Message{Name: "Ada", Email: "ada@example.com", Body: "hi", CreatedAt: now.Add(-time.Minute)})
			So(err, ShouldBeNil)
			id, err := s.SaveMessage(ctx, Message{Name: "Linus", Email: "l@example.com", Body: "hello"})
			So(err, ShouldBeNil)
			So(id, ShouldEqual, 2)

			msgs, err := s.Messages(ctx, 10)
			So(err, ShouldBeNil)
			So(msgs, ShouldHaveLength, 2)
			So(msgs[0].Name, ShouldEqual, "Linus")
			So(msgs[1].Body, ShouldEqual, "hi")

			stats, _ := s.Stats(ctx)
			So(stats.TotalMessages, ShouldEqual, 2)
		})
	})
}

func TestOpenFile(t *testing.T) {
	Convey("Open should create the database file and its directory", t, func() {
		path := filepath.Join(t.TempDir(), "nested", "portfolio.db")
		s, err := Open(path)
		So(err, ShouldBeNil)
		So(s.Close(), ShouldBeNil)

		s, err = Open(path)
		So(err, ShouldBeNil)
		So(s.Close(), ShouldBeNil)
	})

	Convey("Open should reject an empty path", t, func() {
		_, err := Open("")
		So(err, ShouldNotBeNil)
	})
}
