package tui

import (
	"testing"
	"time"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/effect"
	"github.com/Zachkp/portfolio/internal/page"
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
)

type harness struct {
	m     *model
	sched *effect.VirtualScheduler
	inbox []tea.Msg
}

func newHarness(width, height int) *harness {
	p, err := content.Builtin()
	So(err, ShouldBeNil)

	h := &harness{sched: effect.NewVirtualScheduler()}
	h.m = newModel(Options{
		Content:   p,
		Scheduler: h.sched,
		Settings: config.Settings{
			Typewriter:         effect.DefaultTypewriterTiming(),
			CounterDuration:    effect.DefaultCountDuration,
			CounterInterval:    effect.DefaultCountInterval,
			LoadingDelay:       2 * time.Second,
			TUIScrollThreshold: 2,
		},
	})
	h.m.send = func(msg tea.Msg) { h.inbox = append(h.inbox, msg) }
	h.m.Init()
	h.m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return h
}

// advance moves virtual time forward and delivers what the animations sent.
func (h *harness) advance(d time.Duration) {
	h.sched.Advance(d)
	msgs := h.inbox
	h.inbox = nil
	for _, msg := range msgs {
		h.m.Update(msg)
	}
}

func (h *harness) press(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "pgdown":
			msg = tea.KeyMsg{Type: tea.KeyPgDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = h.m.Update(msg)
	}
	return cmd
}

func (h *harness) body() string {
	body, _ := h.m.renderPage()
	return body
}

func TestModel(t *testing.T) {
	Convey("Given the terminal portfolio", t, func() {
		h := newHarness(100, 12)

		Convey("It should show the splash until the loading delay has passed", func() {
			So(h.m.View(), ShouldContainSubstring, h.m.content.LoadingTitle)
			h.press("2")
			So(h.m.page, ShouldEqual, page.Home)

			h.advance(2 * time.Second)
			So(h.m.loading, ShouldBeFalse)
			So(h.m.View(), ShouldContainSubstring, h.m.content.Brand)
		})

		Convey("The home page should type the first phrase", func() {
			h.advance(2 * time.Second)
			So(h.m.typed, ShouldEqual, "Full Stack Developme")
			So(h.m.View(), ShouldContainSubstring, "Full Stack Developme")
		})

		Convey("Counters should wait until the stats scroll into view", func() {
			h.advance(2 * time.Second)
			h.advance(5 * time.Second)
			So(h.m.statText, ShouldResemble, []string{"0", "0", "0"})
			for _, up := range h.m.counters {
				So(up.Started(), ShouldBeFalse)
			}

			h.press("pgdown", "pgdown", "pgdown", "pgdown", "pgdown", "pgdown", "pgdown", "pgdown")
			So(h.m.stats.Visible(), ShouldBeTrue)
			So(h.m.scroll.Scrolled(), ShouldBeTrue)

			h.advance(3 * time.Second)
			So(h.m.statText, ShouldResemble, []string{"4", "12", "100%"})
		})

		Convey("Leaving home should stop every animation", func() {
			h.advance(2 * time.Second)
			tw := h.m.typewriter
			h.press("2")
			So(h.m.page, ShouldEqual, page.About)
			So(tw.Stopped(), ShouldBeTrue)
			So(h.sched.Pending(), ShouldEqual, 0)

			before := h.m.gen
			h.m.Update(typewriterMsg{gen: before - 1, text: "stale"})
			So(h.m.typed, ShouldNotEqual, "stale")
		})

		Convey("Coming back home should restart the typewriter", func() {
			h.advance(2 * time.Second)
			h.press("2", "1")
			So(h.m.page, ShouldEqual, page.Home)
			So(h.m.typed, ShouldEqual, "")
			h.advance(200 * time.Millisecond)
			So(h.m.typed, ShouldEqual, "Fu")
		})

		Convey("Tab should cycle through the pages", func() {
			h.advance(2 * time.Second)
			h.press("tab")
			So(h.m.page, ShouldEqual, page.About)
			h.press("shift+tab", "shift+tab")
			So(h.m.page, ShouldEqual, page.Work)
			So(h.body(), ShouldContainSubstring, "DoctorCare-CRM")
		})

		Convey("f should filter the projects", func() {
			h.advance(2 * time.Second)
			h.press("3")
			So(h.body(), ShouldContainSubstring, "Flight Booking System")
			So(h.body(), ShouldContainSubstring, "OneCart E-commerce")

			h.press("f")
			So(h.body(), ShouldContainSubstring, "Flight Booking System")
			So(h.body(), ShouldNotContainSubstring, "OneCart E-commerce")

			h.press("f")
			So(h.body(), ShouldNotContainSubstring, "Flight Booking System")
		})

		Convey("t should switch the skill tab", func() {
			h.advance(2 * time.Second)
			h.press("2")
			So(h.body(), ShouldContainSubstring, "Expert")
			h.press("t")
			So(h.body(), ShouldContainSubstring, "Intermediate")
			So(h.body(), ShouldNotContainSubstring, "Expert")
		})

		Convey("q should quit and tear everything down", func() {
			cmd := h.press("q")
			So(cmd, ShouldNotBeNil)
			So(cmd(), ShouldHaveSameTypeAs, tea.QuitMsg{})
			So(h.sched.Pending(), ShouldEqual, 0)
		})
	})
}
