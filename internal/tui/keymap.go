package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	pages, next, prev, category, skillTab, up, down, quit key.Binding
}

func newKeymap() keymap {
	return keymap{
		pages: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "page"),
		),
		next: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab", "next page"),
		),
		prev: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("shift+tab", "previous page"),
		),
		category: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter projects"),
		),
		skillTab: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "skill tab"),
		),
		up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.pages, k.next, k.down, k.up, k.category, k.skillTab, k.quit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
