package tui

import (
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/effect"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

type loadedMsg struct{}

// Animation frames carry the generation of the home page mount that
// produced them, so frames from an unmounted page are dropped.
type typewriterMsg struct {
	gen  int
	text string
}

type counterMsg struct {
	gen     int
	index   int
	display string
}

type model struct {
	content  *content.Portfolio
	settings config.Settings
	sched    effect.Scheduler
	send     func(tea.Msg)

	keys     keymap
	help     help.Model
	spinner  spinner.Model
	viewport viewport.Model

	gate    *effect.LoadingGate
	loading bool
	scroll  *effect.ScrollWatcher

	page     page.ID
	category int
	skillTab int

	gen        int
	typewriter *effect.Loop
	typed      string
	counters   []*effect.CountUp
	stats      *effect.IntersectionNotifier
	statText   []string

	width, height int
}

func newModel(opts Options) *model {
	if opts.Scheduler == nil {
		opts.Scheduler = effect.TimerScheduler{}
	}
	return &model{
		content:  opts.Content,
		settings: opts.Settings,
		sched:    opts.Scheduler,
		send:     func(tea.Msg) {},
		keys:     newKeymap(),
		help:     help.New(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(splashStyle)),
		viewport: viewport.New(0, 0),
		loading:  true,
		scroll:   effect.NewScrollWatcher(opts.Settings.TUIScrollThreshold),
		page:     page.Home,
	}
}

func (m *model) Init() tea.Cmd {
	send := m.send
	m.gate = effect.StartLoading(m.sched, m.settings.LoadingDelay, func() { send(loadedMsg{}) })
	m.mount()
	return m.spinner.Tick
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case loadedMsg:
		m.loading = false
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case typewriterMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.typed = msg.text
		m.refresh()
		return m, nil

	case counterMsg:
		if msg.gen != m.gen || msg.index >= len(m.statText) {
			return m, nil
		}
		m.statText[msg.index] = msg.display
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.refresh()
		return m, cmd
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.quit) {
		m.teardown()
		return m, tea.Quit
	}
	if m.loading {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.pages):
		m.switchTo(page.All[int(msg.Runes[0]-'1')])
	case key.Matches(msg, m.keys.next):
		m.switchTo(page.Next(m.page, 1))
	case key.Matches(msg, m.keys.prev):
		m.switchTo(page.Next(m.page, -1))
	case key.Matches(msg, m.keys.category):
		if m.page == page.Projects && len(m.content.Categories) > 0 {
			m.category = (m.category + 1) % len(m.content.Categories)
			m.refresh()
		}
	case key.Matches(msg, m.keys.skillTab):
		if m.page == page.About && len(m.content.SkillGroups) > 0 {
			m.skillTab = (m.skillTab + 1) % len(m.content.SkillGroups)
			m.refresh()
		}
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.refresh()
		return m, cmd
	}
	return m, nil
}

// switchTo unmounts the current page and mounts id.
func (m *model) switchTo(id page.ID) {
	if id == m.page {
		return
	}
	m.unmount()
	m.page = id
	m.viewport.GotoTop()
	m.mount()
	m.refresh()
}

// mount starts the home page animations. Other pages have none.
func (m *model) mount() {
	if m.page != page.Home {
		return
	}
	m.gen++
	gen, send := m.gen, m.send

	m.typed = ""
	if tw, err := effect.NewTypewriter(m.content.Phrases, m.settings.Typewriter); err == nil {
		m.typewriter = tw.Animate(m.sched, func(text string) {
			send(typewriterMsg{gen: gen, text: text})
		})
	}

	m.stats = effect.NewIntersectionNotifier(effect.Region{})
	m.statText = lo.Map(m.content.Stats, func(content.Stat, int) string { return "0" })
	m.counters = nil
	for i, stat := range m.content.Stats {
		counter, err := effect.NewCounter(stat.Target, m.settings.CounterDuration, m.settings.CounterInterval, stat.Suffix)
		if err != nil {
			continue
		}
		up := effect.NewCountUp(m.sched, counter, func(_ int, display string) {
			send(counterMsg{gen: gen, index: i, display: display})
		})
		up.Watch(m.stats)
		m.counters = append(m.counters, up)
	}
}

// unmount stops every animation and invalidates frames already in flight.
func (m *model) unmount() {
	m.gen++
	if m.typewriter != nil {
		m.typewriter.Stop()
		m.typewriter = nil
	}
	for _, up := range m.counters {
		up.Stop()
	}
	m.counters = nil
	m.stats = nil
}

func (m *model) teardown() {
	m.unmount()
	if m.gate != nil {
		m.gate.Stop()
	}
}

func (m *model) resize() {
	m.help.Width = m.width
	m.viewport.Width = m.width
	m.viewport.Height = max(0, m.height-lipgloss.Height(m.viewNavbar())-lipgloss.Height(m.viewFooter()))
	m.refresh()
}

// refresh re-renders the page into the viewport and re-evaluates the scroll
// flag and the stats visibility against the new layout.
func (m *model) refresh() {
	body, statsRegion := m.renderPage()
	m.viewport.SetContent(body)
	m.scroll.Update(m.viewport.YOffset)

	if m.stats == nil {
		return
	}
	m.stats.SetTarget(statsRegion)
	if !m.loading {
		m.stats.Observe(effect.Region{Start: m.viewport.YOffset, End: m.viewport.YOffset + m.viewport.Height})
	}
}
