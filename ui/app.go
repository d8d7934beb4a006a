package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RefreshFunc re-collects and renders the requested sections.
type RefreshFunc func() string

type tickMsg time.Time

type refreshMsg string

// Model is the bubbletea model for -watch mode: a timer that re-renders
// the same one-shot report on every tick.
type Model struct {
	refresh  RefreshFunc
	interval time.Duration
	content  string
}

// NewModel builds the watch-mode model.
func NewModel(refresh RefreshFunc, interval time.Duration) Model {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return Model{refresh: refresh, interval: interval}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.collect(), m.tick())
}

func (m Model) collect() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg(m.refresh())
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			return m, m.collect()
		}
	case refreshMsg:
		m.content = string(msg)
		return m, nil
	case tickMsg:
		return m, tea.Batch(m.collect(), m.tick())
	}
	return m, nil
}

func (m Model) View() string {
	if m.content == "" {
		return "\n  collecting...\n"
	}
	return m.content + dimStyle.Render("  q: quit   r: refresh") + "\n"
}
