package ui

import (
	"time"

	"segctl/internal/eventbus"
)

// frameInterval paces indicator animation, roughly 60 frames per second
const frameInterval = time.Second / 60

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// ValueChangedMsg is emitted by a control after the user picks a segment,
// by pointer or keyboard. Programmatic selection never emits it.
type ValueChangedMsg struct {
	Control string
	Index   int
	Text    string
}

// frameMsg advances one control's indicator transition. Frames whose
// transition was superseded are dropped.
type frameMsg struct {
	control    int
	transition int
	at         time.Time
}

// quitMsg signals that the application should quit
type quitMsg struct {
	saveConfig bool
}

// pagerClosedMsg reports that an ov pager returned control of the terminal
type pagerClosedMsg struct {
	title string
	err   error
}
