package log

import (
	"bytes"
	"testing"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestConfigure(t *testing.T) {
	Convey("Given JSON logs at warn level", t, func() {
		viper.Set(config.LogsJSON, true)
		viper.Set(config.LogsLevel, "warn")
		Reset(viper.Reset)

		var out bytes.Buffer
		l := logrus.New()
		So(Configure(l, &out), ShouldBeNil)

		Convey("Info entries should be dropped", func() {
			l.Info("hidden")
			So(out.String(), ShouldBeEmpty)
		})

		Convey("Warnings should be written as JSON", func() {
			l.WithField("component", "web").Warn("shown")
			So(out.String(), ShouldContainSubstring, `"msg":"shown"`)
			So(out.String(), ShouldContainSubstring, `"component":"web"`)
		})

		Convey("An unknown level should fall back to info", func() {
			viper.Set(config.LogsLevel, "loud")
			So(Configure(l, &out), ShouldBeNil)
			So(l.GetLevel(), ShouldEqual, logrus.InfoLevel)
		})
	})
}
