package cmd

import (
	"testing"

	"github.com/Zachkp/portfolio/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestServeFlags(t *testing.T) {
	Convey("The serve flags", t, func() {
		Convey("Should advertise the registered defaults", func() {
			So(serveCmd.Flags().Lookup("db").DefValue, ShouldEqual, config.Default[config.DBPath].Value)
			So(serveCmd.Flags().Lookup("port").DefValue, ShouldEqual, "8080")
		})
	})
}
