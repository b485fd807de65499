// Package web serves the portfolio over HTTP: full pages, HTMX fragments,
// server-sent animation streams, the contact form and the admin dashboard.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/effect"
	"github.com/Zachkp/portfolio/internal/iconfont"
	"github.com/Zachkp/portfolio/internal/mail"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Options wires the server's collaborators. Store and Mailer may be nil, in
// which case visitor tracking, the admin dashboard and contact mail are off.
type Options struct {
	Settings  config.Settings
	Content   *content.Portfolio
	Store     *store.Store
	Mailer    mail.Sender
	Assets    afero.Fs
	IconFont  iconfont.Stylesheet
	Scheduler effect.Scheduler
	Log       *logrus.Entry
}

type Server struct {
	settings config.Settings
	content  *content.Portfolio
	store    *store.Store
	mailer   mail.Sender
	assets   afero.Fs
	icons    iconfont.Stylesheet
	sched    effect.Scheduler
	log      *logrus.Entry

	tmpl  *template.Template
	pages *page.Selector[string]
	admin *adminAuth

	engine *gin.Engine
}

func New(opts Options) (*Server, error) {
	if opts.Content == nil {
		return nil, errors.New("web: content is required")
	}
	if opts.Scheduler == nil {
		opts.Scheduler = effect.TimerScheduler{}
	}
	if opts.Assets == nil {
		opts.Assets = afero.NewMemMapFs()
	}
	if opts.Log == nil {
		opts.Log = logrus.NewEntry(logrus.StandardLogger())
	}

	s := &Server{
		settings: opts.Settings,
		content:  opts.Content,
		store:    opts.Store,
		mailer:   opts.Mailer,
		assets:   opts.Assets,
		icons:    opts.IconFont,
		sched:    opts.Scheduler,
		log:      opts.Log,
		pages: page.NewSelector("home").
			Register(page.About, "about").
			Register(page.Projects, "projects").
			Register(page.Work, "work"),
	}

	tmpl, err := template.New("").Funcs(s.funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	s.tmpl = tmpl

	if missing := s.missingImages(); len(missing) > 0 {
		s.log.WithField("images", missing).Warn("images missing from the assets directory will be left out")
	}

	if opts.Store != nil {
		s.admin, err = newAdminAuth(opts.Settings.Admin)
		if err != nil {
			return nil, err
		}
	}

	s.engine = s.routes()
	return s, nil
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log))
	if s.store != nil {
		r.Use(s.visitorTracking())
	}
	r.SetHTMLTemplate(s.tmpl)

	static, _ := fs.Sub(staticFS, "static")
	r.StaticFS("/static", http.FS(static))
	r.StaticFS("/images", afero.NewHttpFs(s.assets))

	r.GET("/", s.showPage)
	r.GET("/p/:page", s.showPage)
	r.GET("/fragment/:page", s.pageFragment)
	r.GET("/projects/grid", s.projectGrid)
	r.GET("/about/skills", s.skillPanel)
	r.GET("/stats", s.statsPanel)

	r.GET("/stream/typewriter", s.streamTypewriter)
	r.GET("/stream/counters", s.streamCounters)

	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.submitContact)

	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", s.view(page.Home))
	})

	if s.store != nil {
		s.setupAdminRoutes(r)
	}
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	if s.store != nil {
		go s.pruneVisitors(ctx)
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(s.settings.Addr, strconv.Itoa(s.settings.Port)),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.log.WithField("addr", srv.Addr).Info("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) pruneVisitors(ctx context.Context) {
	months := s.settings.RetentionMonths
	if months <= 0 {
		return
	}
	n, err := s.store.PruneVisitors(ctx, time.Now().AddDate(0, -months, 0))
	if err != nil {
		s.log.WithError(err).Error("prune visitor data")
		return
	}
	if n > 0 {
		s.log.Infof("privacy cleanup: removed %d visitor records older than %d months", n, months)
	}
}
