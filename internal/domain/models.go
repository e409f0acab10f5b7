package domain

// Selection is a snapshot of a control's selection as seen by hosts
type Selection struct {
	Control string // name the host gave the control, may be empty
	Index   int
	Text    string
}

// Notification is one entry of a host's notification history
type Notification struct {
	Kind    EventType
	Control string
	Index   int
	Text    string
}
