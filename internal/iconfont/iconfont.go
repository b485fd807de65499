// Package iconfont describes the icon font stylesheet linked from every page
// and checks once at startup that its CDN answers. A missing font only
// degrades glyphs, so nothing is retried.
package iconfont

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Stylesheet is rendered as a <link> element in the page head.
type Stylesheet struct {
	Href           string
	Integrity      string
	CrossOrigin    string
	ReferrerPolicy string
}

func New(href, integrity string) Stylesheet {
	return Stylesheet{
		Href:           href,
		Integrity:      integrity,
		CrossOrigin:    "anonymous",
		ReferrerPolicy: "no-referrer",
	}
}

// Prober runs a single reachability check, however often it is asked to.
type Prober struct {
	sheet  Stylesheet
	client *http.Client
	log    *logrus.Entry

	once   sync.Once
	done   chan struct{}
	result error
}

func NewProber(sheet Stylesheet, client *http.Client, log *logrus.Entry) *Prober {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &Prober{sheet: sheet, client: client, log: log, done: make(chan struct{})}
}

// Start launches the check in the background. Later calls do nothing.
func (p *Prober) Start(ctx context.Context) {
	p.once.Do(func() {
		go func() {
			defer close(p.done)
			p.result = p.probe(ctx)
			if p.result != nil {
				p.log.WithError(p.result).Warn("icon font unreachable, icons will fall back to text")
				return
			}
			p.log.Debug("icon font reachable")
		}()
	})
}

// Wait blocks until the check has finished and returns its outcome.
func (p *Prober) Wait() error {
	<-p.done
	return p.result
}

func (p *Prober) probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.sheet.Href, nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("icon font: %s", resp.Status)
	}
	return nil
}
