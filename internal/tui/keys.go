package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/fintrack/internal/dashboard"
)

// KeyMap binds terminal keys to dashboard keys.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Menu  key.Binding
	Quit  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Menu:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Menu, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Decode maps a key press to a dashboard key; unbound keys decode to KeyNone.
func (k KeyMap) Decode(msg tea.KeyMsg) dashboard.Key {
	switch {
	case key.Matches(msg, k.Quit):
		return dashboard.KeyQuit
	case key.Matches(msg, k.Menu):
		return dashboard.KeyMenu
	case key.Matches(msg, k.Up):
		return dashboard.KeyUp
	case key.Matches(msg, k.Down):
		return dashboard.KeyDown
	case key.Matches(msg, k.Enter):
		return dashboard.KeyEnter
	default:
		return dashboard.KeyNone
	}
}
