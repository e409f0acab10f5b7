package adapters

import (
	"segctl/internal/domain"
	"segctl/internal/eventbus"
	"segctl/internal/ui/services/selection"
)

// BusObserver adapts the selection observer callbacks to domain events on a bus
type BusObserver struct {
	bus     eventbus.EventBus
	control string
}

var _ selection.Observer = (*BusObserver)(nil)

// NewBusObserver creates an observer publishing on bus under the given control name
func NewBusObserver(bus eventbus.EventBus, control string) *BusObserver {
	return &BusObserver{bus: bus, control: control}
}

// SelectedIndex publishes a SelectionIndexChangedEvent
func (o *BusObserver) SelectedIndex(index int) {
	if o.bus == nil {
		return
	}
	o.bus.Publish(domain.SelectionIndexChangedEvent{Control: o.control, Index: index})
}

// SelectedText publishes a SelectionTextChangedEvent
func (o *BusObserver) SelectedText(text string) {
	if o.bus == nil {
		return
	}
	o.bus.Publish(domain.SelectionTextChangedEvent{Control: o.control, Text: text})
}

// Chain fans observer calls out to several observers in order. Nil entries are skipped.
type Chain []selection.Observer

// SelectedIndex forwards to every observer
func (c Chain) SelectedIndex(index int) {
	for _, o := range c {
		if o != nil {
			o.SelectedIndex(index)
		}
	}
}

// SelectedText forwards to every observer
func (c Chain) SelectedText(text string) {
	for _, o := range c {
		if o != nil {
			o.SelectedText(text)
		}
	}
}
