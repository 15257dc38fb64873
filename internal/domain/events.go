package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventOptionSelected  EventType = "OptionSelected"
	EventQueryChanged    EventType = "QueryChanged"
	EventDropdownToggled EventType = "DropdownToggled"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventError           EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// OptionSelectedEvent is emitted when an option is chosen from a dropdown
type OptionSelectedEvent struct {
	WidgetID int
	Index    int // position in the widget's option list, -1 if not found
	Option   Option
}

func (e OptionSelectedEvent) Type() EventType { return EventOptionSelected }

// QueryChangedEvent is emitted when a widget's search query settles
type QueryChangedEvent struct {
	WidgetID int
	Query    string
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// DropdownToggledEvent is emitted when a widget's dropdown opens or closes
type DropdownToggledEvent struct {
	WidgetID int
	Open     bool
}

func (e DropdownToggledEvent) Type() EventType { return EventDropdownToggled }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	Options int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
