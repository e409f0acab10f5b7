package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionIndexChanged EventType = "SelectionIndexChanged"
	EventSelectionTextChanged  EventType = "SelectionTextChanged"
	EventValueChanged          EventType = "ValueChanged"
	EventTitlesChanged         EventType = "TitlesChanged"
	EventError                 EventType = "Error"
	EventConfigLoaded          EventType = "ConfigLoaded"
	EventConfigSaved           EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionIndexChangedEvent is emitted after every successful selection
type SelectionIndexChangedEvent struct {
	Control string
	Index   int
}

func (e SelectionIndexChangedEvent) Type() EventType { return EventSelectionIndexChanged }

// SelectionTextChangedEvent follows SelectionIndexChangedEvent with the segment label
type SelectionTextChangedEvent struct {
	Control string
	Text    string
}

func (e SelectionTextChangedEvent) Type() EventType { return EventSelectionTextChanged }

// ValueChangedEvent is emitted only for user-initiated selections
type ValueChangedEvent struct {
	Selection Selection
}

func (e ValueChangedEvent) Type() EventType { return EventValueChanged }

// TitlesChangedEvent is emitted when a control's segments are rebuilt
type TitlesChangedEvent struct {
	Control string
	Titles  []string
}

func (e TitlesChangedEvent) Type() EventType { return EventTitlesChanged }

// ErrorEvent is emitted when an operation is rejected
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path   string
	Titles []string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
