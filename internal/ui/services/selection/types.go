package selection

import (
	"errors"

	"segctl/internal/ui/state"
)

// ErrIndexOutOfRange is returned when selecting an index with no segment
var ErrIndexOutOfRange = errors.New("selection index out of range")

// ErrNoTitles is returned when titles are set to an empty list
var ErrNoTitles = state.ErrNoTitles

// Observer receives selection notifications. Both calls are made synchronously,
// index first, on every successful Select.
type Observer interface {
	SelectedIndex(index int)
	SelectedText(text string)
}

// ObserverFuncs adapts plain functions to Observer. Nil funcs are skipped.
type ObserverFuncs struct {
	OnIndex func(index int)
	OnText  func(text string)
}

func (o ObserverFuncs) SelectedIndex(index int) {
	if o.OnIndex != nil {
		o.OnIndex(index)
	}
}

func (o ObserverFuncs) SelectedText(text string) {
	if o.OnText != nil {
		o.OnText(text)
	}
}
