// Package tui renders the dashboard in the terminal. The same view state as
// the web page is driven by key presses instead of controls.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"startupboom/internal/dashboard"
	"startupboom/internal/engine"
)

type keyMap struct {
	Toggle key.Binding
	Next   key.Binding
	Prev   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Next, k.Prev, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeys() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dark mode")),
		Next:   key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab/→", "next sector")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab/←", "prev sector")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type Model struct {
	view  *dashboard.View
	keys  keyMap
	help  help.Model
	width int
}

func New(store *engine.Store) Model {
	return Model{
		view:  dashboard.New(store),
		keys:  defaultKeys(),
		help:  help.New(),
		width: 120,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.view.ToggleDarkMode()
		case key.Matches(msg, m.keys.Next):
			m.view.CycleSector(1)
		case key.Matches(msg, m.keys.Prev):
			m.view.CycleSector(-1)
		}
	}
	return m, nil
}

func (m Model) View() string {
	return render(m.view, m.width, m.help.View(m.keys))
}
