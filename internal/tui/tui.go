// Package tui renders the portfolio in the terminal with the same animated
// home page as the web site.
package tui

import (
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/effect"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the terminal program.
type Options struct {
	Settings config.Settings
	Content  *content.Portfolio
	// Scheduler drives the animations; nil means real timers.
	Scheduler effect.Scheduler
}

// Run starts the program and blocks until the user quits.
func Run(opts Options) error {
	m := newModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	m.send = p.Send
	defer m.teardown()

	_, err := p.Run()
	return err
}
