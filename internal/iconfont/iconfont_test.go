package iconfont

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

func quietLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func TestProber(t *testing.T) {
	Convey("Given a CDN", t, func() {
		var hits int32
		var status int32 = http.StatusOK
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			w.WriteHeader(int(atomic.LoadInt32(&status)))
		}))
		defer srv.Close()

		sheet := New(srv.URL+"/all.min.css", "sha512-x")

		Convey("The stylesheet should carry the link attributes", func() {
			So(sheet.CrossOrigin, ShouldEqual, "anonymous")
			So(sheet.ReferrerPolicy, ShouldEqual, "no-referrer")
		})

		Convey("Probing should happen once however often it is started", func() {
			p := NewProber(sheet, srv.Client(), quietLog())
			p.Start(context.Background())
			p.Start(context.Background())
			So(p.Wait(), ShouldBeNil)
			So(atomic.LoadInt32(&hits), ShouldEqual, 1)
		})

		Convey("A failing CDN should be reported without retrying", func() {
			atomic.StoreInt32(&status, http.StatusNotFound)
			p := NewProber(sheet, srv.Client(), quietLog())
			p.Start(context.Background())
			So(p.Wait(), ShouldNotBeNil)
			So(atomic.LoadInt32(&hits), ShouldEqual, 1)
		})
	})
}
