package ui

import (
	"combobox/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// configSavedMsg contains the result of writing the config file
type configSavedMsg struct {
	path string
	err  error
}

// pagerMsg contains the result of a catalogue pager command
type pagerMsg struct {
	err error
}
