package tui

import (
	"fmt"
	"strings"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/effect"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
)

func (m *model) View() string {
	if m.loading {
		return m.viewSplash()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewNavbar(), m.viewport.View(), m.viewFooter())
}

func (m *model) viewSplash() string {
	splash := lipgloss.JoinVertical(lipgloss.Center,
		m.spinner.View(),
		"",
		splashStyle.Render(m.content.LoadingTitle),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, splash)
}

func (m *model) viewNavbar() string {
	items := []string{brandStyle.Render(m.content.Brand)}
	for i, item := range page.Nav() {
		label := fmt.Sprintf("%d %s", i+1, item.Name)
		if item.Page == m.page {
			items = append(items, activeTab.Render(label))
		} else {
			items = append(items, tabStyle.Render(label))
		}
	}

	style := navbarStyle
	if m.scroll.Scrolled() {
		style = navbarScrolledStyle
	}
	return style.Width(max(0, m.width)).Render(lipgloss.JoinHorizontal(lipgloss.Top, items...))
}

func (m *model) viewFooter() string {
	return footerStyle.Render(m.help.View(m.keys))
}

func (m *model) wrapWidth() int {
	return max(20, m.width-pageStyle.GetHorizontalPadding())
}

func (m *model) wrap(s string) string {
	return wordwrap.String(s, m.wrapWidth())
}

// renderPage returns the current page body and, on the home page, the rows
// the stats block occupies within it.
func (m *model) renderPage() (string, effect.Region) {
	var body string
	region := effect.Region{}

	switch m.page {
	case page.About:
		body = m.renderAbout()
	case page.Projects:
		body = m.renderProjects()
	case page.Work:
		body = m.renderWork()
	default:
		top, stats := m.renderHome()
		body = top + "\n" + stats
		start := lipgloss.Height(top) + pageStyle.GetPaddingTop()
		region = effect.Region{Start: start, End: start + lipgloss.Height(stats)}
	}
	return pageStyle.Render(body), region
}

func (m *model) renderHome() (top, stats string) {
	owner := m.content.Owner
	hero := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Hi, I'm "+owner.FirstName),
		headingStyle.Render(owner.Title),
		owner.Tagline+" "+accentStyle.Render(m.typed)+cursorStyle.Render("▌"),
		"",
		m.wrap(owner.Summary),
	)

	cards := lo.Map(m.content.Experience, func(e content.Experience, _ int) string {
		return cardStyle.Width(m.wrapWidth() - 2).Render(headingStyle.Render(e.Title) + "\n" + wordwrap.String(e.Description, m.wrapWidth()-6))
	})
	experience := lipgloss.JoinVertical(lipgloss.Left, append([]string{titleStyle.Render("What I Do")}, cards...)...)

	top = lipgloss.JoinVertical(lipgloss.Left, hero, "", experience, "")
	return top, m.renderStats()
}

func (m *model) renderStats() string {
	boxes := make([]string, 0, len(m.content.Stats))
	for i, stat := range m.content.Stats {
		value := "0"
		if i < len(m.statText) {
			value = m.statText[i]
		}
		boxes = append(boxes, statBoxStyle.Render(statNumber.Render(value)+"\n"+mutedStyle.Render(stat.Label)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m *model) renderAbout() string {
	owner := m.content.Owner
	var b strings.Builder
	b.WriteString(titleStyle.Render("About Me") + "\n\n")
	b.WriteString(headingStyle.Render(owner.Title) + "\n\n")
	for _, p := range owner.Bio {
		b.WriteString(m.wrap(p) + "\n\n")
	}

	if len(m.content.SkillGroups) == 0 {
		return b.String()
	}
	group := m.content.SkillGroups[m.skillTab%len(m.content.SkillGroups)]
	tabs := lo.Map(m.content.SkillGroups, func(g content.SkillGroup, _ int) string {
		if g.Name == group.Name {
			return activeChip.Render(g.Name)
		}
		return chipStyle.Render(g.Name)
	})
	b.WriteString(titleStyle.Render("Skills") + "  " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n\n")

	for _, s := range group.Skills {
		bar := progress.New(progress.WithSolidFill(s.Color), progress.WithWidth(30), progress.WithoutPercentage())
		fmt.Fprintf(&b, "%-18s %s %s\n", s.Name, bar.ViewAs(float64(s.Progress)/100), mutedStyle.Render(s.Level))
	}
	return b.String()
}

func (m *model) renderProjects() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("My Projects") + "\n\n")

	selected := content.AllCategory
	if len(m.content.Categories) > 0 {
		selected = m.content.Categories[m.category%len(m.content.Categories)].Name
	}
	chips := lo.Map(m.content.Categories, func(c content.Category, _ int) string {
		if c.Name == selected {
			return activeChip.Render(c.Label)
		}
		return chipStyle.Render(c.Label)
	})
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, chips...) + "\n\n")

	projects := m.content.ProjectsIn(selected)
	if len(projects) == 0 {
		b.WriteString(mutedStyle.Render("No projects in this category yet."))
		return b.String()
	}
	for _, p := range projects {
		header := headingStyle.Render(p.Title)
		if p.Status != "" {
			header += "  " + statusStyle.Render(p.Status)
		}
		tech := lo.Map(p.Tech, func(t string, _ int) string { return techTagStyle.Render(t) })
		card := lipgloss.JoinVertical(lipgloss.Left,
			header,
			wordwrap.String(p.Description, m.wrapWidth()-6),
			mutedStyle.Render(strings.Join(p.Features, " · ")),
			lipgloss.JoinHorizontal(lipgloss.Top, tech...),
			accentStyle.Render(p.Link),
		)
		b.WriteString(cardStyle.Width(m.wrapWidth()-2).Render(card) + "\n")
	}
	return b.String()
}

func (m *model) renderWork() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Work") + "\n\n")
	for _, job := range m.content.Work {
		b.WriteString(headingStyle.Render(job.Title) + "\n")
		b.WriteString(mutedStyle.Render(job.Role) + "\n\n")
		b.WriteString(m.wrap(job.Summary) + "\n\n")
		if job.HighlightsTitle != "" {
			b.WriteString(accentStyle.Render(job.HighlightsTitle) + "\n")
		}
		for _, h := range job.Highlights {
			b.WriteString(wordwrap.String("• "+h, m.wrapWidth()) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
