// Package log wraps logrus with the level and format taken from config.
package log

import (
	"io"
	"os"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Setup configures the standard logrus logger.
func Setup() error {
	return Configure(logrus.StandardLogger(), os.Stderr)
}

// Configure applies the configured level and format to l, writing to out.
func Configure(l *logrus.Logger, out io.Writer) error {
	l.SetOutput(out)

	if viper.GetBool(config.LogsJSON) {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(viper.GetString(config.LogsLevel))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return nil
}

// WithComponent tags entries with the subsystem that emitted them.
func WithComponent(name string) *logrus.Entry {
	return logrus.WithField("component", name)
}

func Error(args ...interface{}) { logrus.Error(args...) }
func Warn(args ...interface{})  { logrus.Warn(args...) }
