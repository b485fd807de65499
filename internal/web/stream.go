package web

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/Zachkp/portfolio/internal/effect"
	"github.com/gin-gonic/gin"
)

func sseHeaders(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()
}

// streamTypewriter pushes every frame of the typewriter as a "typewriter"
// event until the client goes away, which stops the animation.
func (s *Server) streamTypewriter(c *gin.Context) {
	tw, err := effect.NewTypewriter(s.content.Phrases, s.settings.Typewriter)
	if err != nil {
		s.log.WithError(err).Error("typewriter")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx := c.Request.Context()
	frames := make(chan string)
	loop := tw.Animate(s.sched, func(text string) {
		select {
		case frames <- text:
		case <-ctx.Done():
		}
	})
	defer loop.Stop()

	sseHeaders(c)
	for {
		select {
		case <-ctx.Done():
			return
		case text := <-frames:
			c.SSEvent("typewriter", template.HTMLEscapeString(text))
			c.Writer.Flush()
		}
	}
}

type counterFrame struct {
	index   int
	display string
	done    bool
}

// streamCounters counts every stat up once, sending "stat-N" events, then a
// final "done" event that lets the client close the stream.
func (s *Server) streamCounters(c *gin.Context) {
	ctx := c.Request.Context()
	frames := make(chan counterFrame)
	visible := &effect.ManualNotifier{}

	ups := make([]*effect.CountUp, 0, len(s.content.Stats))
	defer func() {
		for _, up := range ups {
			up.Stop()
		}
	}()

	for i, stat := range s.content.Stats {
		counter, err := effect.NewCounter(stat.Target, s.settings.CounterDuration, s.settings.CounterInterval, stat.Suffix)
		if err != nil {
			s.log.WithError(err).WithField("stat", stat.Label).Error("counter")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		up := effect.NewCountUp(s.sched, counter, func(value int, display string) {
			select {
			case frames <- counterFrame{index: i, display: display, done: value == counter.Target()}:
			case <-ctx.Done():
			}
		})
		up.Watch(visible)
		ups = append(ups, up)
	}

	sseHeaders(c)
	// The client only connects once the stats row is on screen.
	visible.Trigger()

	remaining := len(ups)
	for remaining > 0 {
		select {
		case <-ctx.Done():
			return
		case f := <-frames:
			c.SSEvent(fmt.Sprintf("stat-%d", f.index), f.display)
			c.Writer.Flush()
			if f.done {
				remaining--
			}
		}
	}
	c.SSEvent("done", "")
	c.Writer.Flush()
}
