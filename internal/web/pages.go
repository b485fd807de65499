package web

import (
	"net/http"

	"github.com/Zachkp/portfolio/internal/page"
	"github.com/gin-gonic/gin"
)

// showPage renders the full document with the selected page in the content
// slot. Unknown page names fall back to home.
func (s *Server) showPage(c *gin.Context) {
	id, name := s.pages.Select(c.Param("page"))
	data := s.pageView(c, id)

	body, err := s.render(name+".html", data)
	if err != nil {
		s.log.WithError(err).WithField("page", id).Error("render page")
		c.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}
	data["body"] = body
	c.HTML(http.StatusOK, "index.html", data)
}

// pageFragment returns only the page body, for navigation without reload.
func (s *Server) pageFragment(c *gin.Context) {
	id, name := s.pages.Select(c.Param("page"))
	c.Header("HX-Push-Url", "/p/"+string(id))
	c.HTML(http.StatusOK, name+".html", s.pageView(c, id))
}

func (s *Server) projectGrid(c *gin.Context) {
	c.HTML(http.StatusOK, "project-grid.html", s.pageView(c, page.Projects))
}

func (s *Server) skillPanel(c *gin.Context) {
	c.HTML(http.StatusOK, "skills.html", s.pageView(c, page.About))
}

// statsPanel swaps in the counters once the stats row has scrolled into
// view. The counters start when the stream connects.
func (s *Server) statsPanel(c *gin.Context) {
	c.HTML(http.StatusOK, "stats-live.html", s.view(page.Home))
}
