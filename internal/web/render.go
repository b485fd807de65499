package web

import (
	"bytes"
	"html/template"
	"net/url"
	"path"
	"time"

	"github.com/Zachkp/portfolio/internal/page"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

func (s *Server) funcs() template.FuncMap {
	return template.FuncMap{
		"asset": s.asset,
		"ms":    func(d time.Duration) int64 { return d.Milliseconds() },
		"title": func(id page.ID) string { return id.Title() },
	}
}

// asset returns the URL of an image in the assets directory, or "" when the
// file is missing so templates can leave the image out.
func (s *Server) asset(name string) string {
	if name == "" {
		return ""
	}
	clean := path.Clean("/" + name)
	if ok, _ := afero.Exists(s.assets, clean); !ok {
		return ""
	}
	return "/images" + (&url.URL{Path: clean}).EscapedPath()
}

// missingImages lists the content's images absent from the assets directory.
func (s *Server) missingImages() []string {
	return lo.Filter(s.content.Images(), func(name string, _ int) bool { return s.asset(name) == "" })
}

// view is the data shared by every template.
func (s *Server) view(id page.ID) gin.H {
	return gin.H{
		"site":            s.content,
		"page":            id,
		"nav":             page.Nav(),
		"iconFont":        s.icons,
		"loadingDelay":    s.settings.LoadingDelay,
		"scrollThreshold": s.settings.ScrollThreshold,
		"category":        s.content.Category(""),
		"projects":        s.content.ProjectsIn(""),
		"skills":          s.content.SkillGroup(""),
		"tabs":            skillTabs(s.content.SkillGroupNames(), s.content.SkillGroup("").Name),
		"year":            time.Now().Year(),
	}
}

// pageView adds the filter state selected by the query string. An unknown
// category selects no projects.
func (s *Server) pageView(c *gin.Context, id page.ID) gin.H {
	data := s.view(id)
	name := c.Query("category")
	skills := s.content.SkillGroup(c.Query("tab"))
	data["category"] = s.content.Category(name)
	data["projects"] = s.content.ProjectsIn(name)
	data["skills"] = skills
	data["tabs"] = skillTabs(s.content.SkillGroupNames(), skills.Name)
	return data
}

func (s *Server) render(name string, data gin.H) (template.HTML, error) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func skillTabs(names []string, active string) []gin.H {
	return lo.Map(names, func(n string, _ int) gin.H {
		return gin.H{"name": n, "active": n == active}
	})
}
