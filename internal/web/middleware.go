package web

import (
	"context"
	"strings"
	"time"

	"github.com/Zachkp/portfolio/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

func requestLogger(log *logrus.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		})
		switch {
		case len(c.Errors) > 0:
			entry.Error(c.Errors.String())
		case c.Writer.Status() >= 500:
			entry.Error("request failed")
		default:
			entry.Debug("request")
		}
	}
}

// untracked prefixes cover assets, the admin area, fragments and streams,
// so one visit is one row.
var untracked = []string{
	"/static/", "/images/", "/admin", "/favicon", "/privacy",
	"/fragment/", "/stream/", "/projects/grid", "/about/skills", "/stats", "/contact",
}

// visitorTracking records page views with a hashed client address. Requests
// carrying Do Not Track are never recorded.
func (s *Server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != "GET" || c.GetHeader("DNT") == "1" ||
			lo.SomeBy(untracked, func(p string) bool { return strings.HasPrefix(path, p) }) {
			c.Next()
			return
		}

		visit := store.Visit{
			HashedIP:  s.admin.hashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.store.RecordVisit(ctx, visit); err != nil {
				s.log.WithError(err).Error("record visit")
			}
		}()
		c.Next()
	}
}
