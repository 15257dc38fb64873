package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the host bindings. Only Toggle and Quit (ctrl+c) are live
// while the dropdown is open; everything else would collide with typing
type keyMap struct {
	Toggle    key.Binding
	Catalogue key.Binding
	Error     key.Binding
	Pin       key.Binding
	Save      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Toggle:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter/click", "open/close")),
		Catalogue: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "option catalogue")),
		Error:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "toggle error")),
		Pin:       key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "pin value")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save config")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Catalogue, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Catalogue},
		{k.Error, k.Pin, k.Save},
		{k.Help, k.Quit},
	}
}
