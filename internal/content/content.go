// Package content holds the portfolio's static data: profile, typewriter
// phrases, stats, skills, projects, work history and links. The built-in
// document is embedded; a TOML file with the same shape can replace it.
package content

import (
	_ "embed"
	"errors"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// AllCategory selects every project.
const AllCategory = "all"

var (
	ErrNoPhrases       = errors.New("content has no typewriter phrases")
	ErrNoSkillGroups   = errors.New("content has no skill groups")
	ErrNegativeStat    = errors.New("stat target must not be negative")
	ErrUnknownCategory = errors.New("project uses an undeclared category")
)

//go:embed content.toml
var builtin []byte

type Owner struct {
	Name        string   `toml:"name"`
	FirstName   string   `toml:"first_name"`
	Title       string   `toml:"title"`
	Tagline     string   `toml:"tagline"`
	Summary     string   `toml:"summary"`
	Bio         []string `toml:"bio"`
	Avatar      string   `toml:"avatar"`
	HeroImage   string   `toml:"hero_image"`
	GitHub      string   `toml:"github"`
	Resume      string   `toml:"resume"`
	AboutResume string   `toml:"about_resume"`
}

type Contact struct {
	Email    string `toml:"email"`
	Phone    string `toml:"phone"`
	Location string `toml:"location"`
}

type Footer struct {
	Blurb     string `toml:"blurb"`
	Copyright string `toml:"copyright"`
}

// Stat is an animated counter on the home page.
type Stat struct {
	Label  string `toml:"label"`
	Icon   string `toml:"icon"`
	Target int    `toml:"target"`
	Suffix string `toml:"suffix"`
}

type Experience struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Image       string `toml:"image"`
}

type Skill struct {
	Name     string `toml:"name"`
	Icon     string `toml:"icon"`
	Level    string `toml:"level"`
	Progress int    `toml:"progress"`
	Color    string `toml:"color"`
}

// SkillGroup is one tab of the skills panel.
type SkillGroup struct {
	Name   string  `toml:"name"`
	Skills []Skill `toml:"skills"`
}

type Category struct {
	Name  string `toml:"name"`
	Label string `toml:"label"`
	Icon  string `toml:"icon"`
}

type Project struct {
	ID          int      `toml:"id"`
	Title       string   `toml:"title"`
	Image       string   `toml:"image"`
	Tech        []string `toml:"tech"`
	Category    string   `toml:"category"`
	Description string   `toml:"description"`
	Link        string   `toml:"link"`
	Features    []string `toml:"features"`
	Status      string   `toml:"status"`
}

type Job struct {
	Title           string   `toml:"title"`
	Role            string   `toml:"role"`
	Icon            string   `toml:"icon"`
	Summary         string   `toml:"summary"`
	HighlightsTitle string   `toml:"highlights_title"`
	Highlights      []string `toml:"highlights"`
	LiveURL         string   `toml:"live_url"`
	CodeURL         string   `toml:"code_url"`
}

type Link struct {
	Icon string `toml:"icon"`
	URL  string `toml:"url"`
}

// Portfolio is the whole content document.
type Portfolio struct {
	Brand        string       `toml:"brand"`
	LoadingTitle string       `toml:"loading_title"`
	Phrases      []string     `toml:"phrases"`
	Owner        Owner        `toml:"owner"`
	Contact      Contact      `toml:"contact"`
	Footer       Footer       `toml:"footer"`
	Stats        []Stat       `toml:"stats"`
	Experience   []Experience `toml:"experience"`
	SkillGroups  []SkillGroup `toml:"skill_groups"`
	Categories   []Category   `toml:"categories"`
	Projects     []Project    `toml:"projects"`
	Work         []Job        `toml:"work"`
	Social       []Link       `toml:"social"`
}

// Parse decodes and validates a content document.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Builtin returns the embedded content.
func Builtin() (*Portfolio, error) {
	return Parse(builtin)
}

// Load reads the content file at path from fs, or the embedded content when
// path is empty.
func Load(fs afero.Fs, path string) (*Portfolio, error) {
	if path == "" {
		return Builtin()
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	return Parse(data)
}

func (p *Portfolio) Validate() error {
	if len(p.Phrases) == 0 || lo.Contains(p.Phrases, "") {
		return ErrNoPhrases
	}
	if len(p.SkillGroups) == 0 {
		return ErrNoSkillGroups
	}
	for _, s := range p.Stats {
		if s.Target < 0 {
			return fmt.Errorf("%s: %w", s.Label, ErrNegativeStat)
		}
	}

	declared := lo.Map(p.Categories, func(c Category, _ int) string { return c.Name })
	for _, pr := range p.Projects {
		if !lo.Contains(declared, pr.Category) {
			return fmt.Errorf("%s (%s): %w", pr.Title, pr.Category, ErrUnknownCategory)
		}
	}
	return nil
}

// ProjectsIn returns the projects of a category, or all of them for
// AllCategory. An unknown category yields none.
func (p *Portfolio) ProjectsIn(category string) []Project {
	if category == AllCategory || category == "" {
		return p.Projects
	}
	return lo.Filter(p.Projects, func(pr Project, _ int) bool {
		return pr.Category == category
	})
}

// Category looks up a declared category, falling back to AllCategory.
func (p *Portfolio) Category(name string) Category {
	if c, ok := lo.Find(p.Categories, func(c Category) bool { return c.Name == name }); ok {
		return c
	}
	return Category{Name: AllCategory, Label: "All Projects"}
}

// SkillGroup returns the named group, or the first one when the name is
// unknown.
func (p *Portfolio) SkillGroup(name string) SkillGroup {
	if g, ok := lo.Find(p.SkillGroups, func(g SkillGroup) bool { return g.Name == name }); ok {
		return g
	}
	return p.SkillGroups[0]
}

// SkillGroupNames lists the tabs in declaration order.
func (p *Portfolio) SkillGroupNames() []string {
	return lo.Map(p.SkillGroups, func(g SkillGroup, _ int) string { return g.Name })
}

// Images lists every image file the content refers to.
func (p *Portfolio) Images() []string {
	images := []string{p.Owner.Avatar, p.Owner.HeroImage}
	images = append(images, lo.Map(p.Experience, func(e Experience, _ int) string { return e.Image })...)
	images = append(images, lo.Map(p.Projects, func(pr Project, _ int) string { return pr.Image })...)
	return lo.Compact(lo.Uniq(images))
}
