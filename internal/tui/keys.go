package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/preston-bernstein/club-studio/internal/wizard"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Choose  key.Binding
	Toggle  key.Binding
	Past    key.Binding
	Confirm key.Binding
	Theme   key.Binding
	Kind    key.Binding
	Save    key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		Choose:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Past:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "past games")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Kind:    key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "template")),
		Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// forStep lists the bindings shown in the footer of step.
func (k keyMap) forStep(step wizard.Step) []key.Binding {
	switch step {
	case wizard.StepSport:
		return []key.Binding{k.Up, k.Down, k.Choose, k.Quit}
	case wizard.StepClub:
		// q types into the filter here.
		return []key.Binding{k.Up, k.Down, k.Choose, k.Back}
	case wizard.StepTeam:
		return []key.Binding{k.Up, k.Down, k.Choose, k.Back, k.Quit}
	case wizard.StepGames:
		return []key.Binding{k.Up, k.Down, k.Toggle, k.Past, k.Confirm, k.Back, k.Quit}
	default:
		return []key.Binding{k.Theme, k.Kind, k.Save, k.Back, k.Quit}
	}
}
